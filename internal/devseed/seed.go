// Package devseed holds the demo dataset the portal boots with: the
// login directory, the shelter inventory, and the notification feed.
// The records are stable so screenshots and tests stay reproducible.
package devseed

import (
	"time"

	"github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
)

// Users returns the demo identity directory. One account per role; the
// email address is what the login form asks for.
func Users() []auth.Identity {
	return []auth.Identity{
		{ID: "user-1", Email: "buerger@demo.de", Name: "Maria Schmidt", Role: auth.RoleCitizen},
		{ID: "user-2", Email: "betreiber@demo.de", Name: "Thomas Müller", Role: auth.RoleOperator},
		{
			ID: "user-3", Email: "kommune@demo.de", Name: "Sandra Weber",
			Role: auth.RoleMunicipalAdmin, Municipality: "Berlin-Mitte", State: "Berlin",
		},
		{ID: "user-4", Email: "land@demo.de", Name: "Michael Bauer", Role: auth.RoleStateAdmin, State: "Berlin"},
		{ID: "user-5", Email: "bbk@demo.de", Name: "Dr. Anna Richter", Role: auth.RoleFederalAdmin},
		{ID: "user-6", Email: "krisenstab@demo.de", Name: "Klaus Hoffmann", Role: auth.RoleCrisisManager},
	}
}

// seedTime anchors the dataset so inspection windows and timestamps
// stay consistent across restarts.
var seedTime = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

type shelterSeed struct {
	id       string
	name     string
	typ      model.ShelterType
	status   model.ShelterStatus
	street   string
	city     string
	postal   string
	state    string
	lat      float64
	lng      float64
	capacity int
	level    model.ProtectionLevel
	approval model.ApprovalStatus
	operator string // assigned operator user ID
	nextInsp time.Time
	access   model.Accessibility
}

// Shelters returns the demo shelter inventory.
func Shelters() []*model.Shelter {
	seeds := []shelterSeed{
		{
			id: "shelter-berlin-001", name: "Bunker Gesundbrunnen", typ: model.ShelterTypeBunker,
			status: model.ShelterStatusActive, street: "Brunnenstraße 105", city: "Berlin",
			postal: "13355", state: "Berlin", lat: 52.5486, lng: 13.3884, capacity: 1300,
			level: model.ProtectionFull, approval: model.ApprovalApproved, operator: "user-2",
			nextInsp: seedTime.AddDate(0, 6, 0),
			access:   model.Accessibility{Wheelchair: false, Elevator: false, GroundLevel: false},
		},
		{
			id: "shelter-berlin-002", name: "U-Bahnhof Alexanderplatz", typ: model.ShelterTypeSubway,
			status: model.ShelterStatusActive, street: "Alexanderplatz 1", city: "Berlin",
			postal: "10178", state: "Berlin", lat: 52.5219, lng: 13.4132, capacity: 3500,
			level: model.ProtectionBasic, approval: model.ApprovalApproved, operator: "user-2",
			nextInsp: seedTime.AddDate(0, 3, 0),
			access:   model.Accessibility{Wheelchair: true, Elevator: true, GroundLevel: false},
		},
		{
			id: "shelter-berlin-003", name: "Tiefgarage Potsdamer Platz", typ: model.ShelterTypeParking,
			status: model.ShelterStatusActive, street: "Potsdamer Platz 1", city: "Berlin",
			postal: "10785", state: "Berlin", lat: 52.5096, lng: 13.3759, capacity: 2000,
			level: model.ProtectionBasic, approval: model.ApprovalApproved,
			nextInsp: seedTime.AddDate(0, 0, 20),
			access:   model.Accessibility{Wheelchair: true, Elevator: true, GroundLevel: false},
		},
		{
			id: "shelter-berlin-004", name: "Keller Rathaus Charlottenburg", typ: model.ShelterTypeBasement,
			status: model.ShelterStatusLimited, street: "Otto-Suhr-Allee 100", city: "Berlin",
			postal: "10585", state: "Berlin", lat: 52.5166, lng: 13.3046, capacity: 400,
			level: model.ProtectionBasic, approval: model.ApprovalApproved,
			nextInsp: seedTime.AddDate(0, 1, 0),
			access:   model.Accessibility{Wheelchair: false, Elevator: false, GroundLevel: false},
		},
		{
			id: "shelter-berlin-005", name: "Bunker Anhalter Bahnhof", typ: model.ShelterTypeBunker,
			status: model.ShelterStatusInactive, street: "Schöneberger Straße 23A", city: "Berlin",
			postal: "10963", state: "Berlin", lat: 52.5025, lng: 13.3815, capacity: 3000,
			level: model.ProtectionEnhanced, approval: model.ApprovalApproved,
			nextInsp: seedTime.AddDate(1, 0, 0),
		},
		{
			id: "shelter-berlin-008", name: "Bunker Humboldthain", typ: model.ShelterTypeBunker,
			status: model.ShelterStatusInactive, street: "Hochstraße 1", city: "Berlin",
			postal: "13357", state: "Berlin", lat: 52.5449, lng: 13.3843, capacity: 1500,
			level: model.ProtectionFull, approval: model.ApprovalApproved, operator: "user-2",
			nextInsp: seedTime.AddDate(0, 9, 0),
		},
		{
			id: "shelter-berlin-009", name: "Neuer Schutzraum Friedrichshain", typ: model.ShelterTypeBasement,
			status: model.ShelterStatusPlanned, street: "Warschauer Straße 58", city: "Berlin",
			postal: "10243", state: "Berlin", lat: 52.5058, lng: 13.4494, capacity: 600,
			level: model.ProtectionBasic, approval: model.ApprovalPending, operator: "user-2",
			nextInsp: seedTime.AddDate(1, 0, 0),
			access:   model.Accessibility{Wheelchair: true, Elevator: false, GroundLevel: true},
		},
		{
			id: "shelter-munich-008", name: "Neubau Schutzraum Giesing", typ: model.ShelterTypeBasement,
			status: model.ShelterStatusPlanned, street: "Tegernseer Landstraße 64", city: "München",
			postal: "81541", state: "Bayern", lat: 48.1100, lng: 11.5953, capacity: 800,
			level: model.ProtectionEnhanced, approval: model.ApprovalPending,
			nextInsp: seedTime.AddDate(1, 0, 0),
		},
		{
			id: "shelter-munich-001", name: "U-Bahnhof Marienplatz", typ: model.ShelterTypeSubway,
			status: model.ShelterStatusActive, street: "Marienplatz 1", city: "München",
			postal: "80331", state: "Bayern", lat: 48.1374, lng: 11.5755, capacity: 2800,
			level: model.ProtectionBasic, approval: model.ApprovalApproved,
			nextInsp: seedTime.AddDate(0, 4, 0),
			access:   model.Accessibility{Wheelchair: true, Elevator: true, GroundLevel: false},
		},
		{
			id: "shelter-hamburg-007", name: "Bunker Wilhelmsburg", typ: model.ShelterTypeBunker,
			status: model.ShelterStatusLimited, street: "Neuhöfer Straße 7", city: "Hamburg",
			postal: "21107", state: "Hamburg", lat: 53.5067, lng: 9.9870, capacity: 1800,
			level: model.ProtectionEnhanced, approval: model.ApprovalApproved,
			// Inspection overdue; the warning feed references this record.
			nextInsp: seedTime.AddDate(0, 0, -30),
		},
		{
			id: "shelter-frankfurt-006", name: "Bunker Sachsenhausen", typ: model.ShelterTypeBunker,
			status: model.ShelterStatusActive, street: "Schweizer Straße 100", city: "Frankfurt am Main",
			postal: "60594", state: "Hessen", lat: 50.1015, lng: 8.6820, capacity: 1200,
			level: model.ProtectionEnhanced, approval: model.ApprovalApproved,
			nextInsp: seedTime.AddDate(0, 0, 14),
		},
		{
			id: "shelter-dresden-003", name: "Bunker Neustadt", typ: model.ShelterTypeBunker,
			status: model.ShelterStatusLimited, street: "Königsbrücker Straße 45", city: "Dresden",
			postal: "01099", state: "Sachsen", lat: 51.0687, lng: 13.7470, capacity: 900,
			level: model.ProtectionBasic, approval: model.ApprovalApproved,
			nextInsp: seedTime.AddDate(0, 2, 0),
		},
	}

	shelters := make([]*model.Shelter, 0, len(seeds))
	for _, s := range seeds {
		shelters = append(shelters, &model.Shelter{
			ID:              s.id,
			Name:            s.name,
			Type:            s.typ,
			Status:          s.status,
			Address:         model.Address{Street: s.street, City: s.city, PostalCode: s.postal, State: s.state},
			Coordinates:     model.Coordinates{Lat: s.lat, Lng: s.lng},
			Capacity:        s.capacity,
			ProtectionLevel: s.level,
			Accessibility:   s.access,
			Equipment: model.Equipment{
				Ventilation: true,
				Power:       true,
				Water:       s.status == model.ShelterStatusActive,
				Sanitation:  s.status == model.ShelterStatusActive,
			},
			Condition: model.Condition{
				Structural:     conditionFor(s.status),
				Technical:      conditionFor(s.status),
				LastInspection: s.nextInsp.AddDate(-1, 0, 0),
				NextInspection: s.nextInsp,
			},
			Operator: model.Operator{
				Type:    model.OperatorPublic,
				Name:    "Stadt " + s.city,
				Contact: "zivilschutz@" + s.postal + ".example.de",
			},
			ApprovalStatus:     s.approval,
			AssignedOperatorID: s.operator,
			CreatedAt:          seedTime.AddDate(-2, 0, 0),
			UpdatedAt:          seedTime,
		})
	}
	return shelters
}

func conditionFor(status model.ShelterStatus) model.ConditionRating {
	switch status {
	case model.ShelterStatusActive:
		return model.ConditionGood
	case model.ShelterStatusLimited:
		return model.ConditionFair
	case model.ShelterStatusInactive:
		return model.ConditionPoor
	default:
		return model.ConditionUnknown
	}
}

// adminRoles is the visibility set for approval and capacity messages.
var adminRoles = []auth.Role{auth.RoleMunicipalAdmin, auth.RoleStateAdmin, auth.RoleFederalAdmin}

// operatorAndAdmins extends adminRoles with the operator role.
var operatorAndAdmins = []auth.Role{
	auth.RoleOperator, auth.RoleMunicipalAdmin, auth.RoleStateAdmin, auth.RoleFederalAdmin,
}

// Notifications returns the demo notification feed.
func Notifications() []*model.Notification {
	ts := func(day, hour, minute int) time.Time {
		return time.Date(2024, time.September, day, hour, minute, 0, 0, time.UTC)
	}
	return []*model.Notification{
		{
			ID: "notif-001", VisibleToRoles: adminRoles, Type: model.NotificationApprovalRequest,
			Title:   "Neuer Schutzraum zur Genehmigung",
			Message: "Ein neuer Schutzraum \"Neuer Schutzraum Friedrichshain\" wurde zur Genehmigung eingereicht.",
			CreatedAt: time.Date(2024, 10, 1, 10, 30, 0, 0, time.UTC), Read: false,
			Link: "/admin/approvals/shelter-berlin-009", ShelterID: "shelter-berlin-009",
		},
		{
			ID: "notif-002", VisibleToRoles: adminRoles, Type: model.NotificationApprovalRequest,
			Title:   "Neuer Schutzraum zur Genehmigung",
			Message: "Ein neuer Schutzraum \"Neubau Schutzraum Giesing\" wurde zur Genehmigung eingereicht.",
			CreatedAt: ts(28, 14, 15), Read: false,
			Link: "/admin/approvals/shelter-munich-008", ShelterID: "shelter-munich-008",
		},
		{
			ID: "notif-003", VisibleToRoles: operatorAndAdmins, Type: model.NotificationStatusChange,
			Title:   "Schutzraum-Status geändert",
			Message: "Der Status von \"Bunker Anhalter Bahnhof\" wurde auf \"Inaktiv\" geändert.",
			CreatedAt: ts(25, 9, 0), Read: true, ShelterID: "shelter-berlin-005",
		},
		{
			ID: "notif-004", VisibleToRoles: operatorAndAdmins, Type: model.NotificationStatusChange,
			Title:   "Schutzraum-Status geändert",
			Message: "Der Status von \"Keller Rathaus Charlottenburg\" wurde auf \"Eingeschränkt\" geändert.",
			CreatedAt: ts(20, 11, 30), Read: true, ShelterID: "shelter-berlin-004",
		},
		{
			ID: "notif-005", VisibleToRoles: operatorAndAdmins, Type: model.NotificationWarning,
			Title:   "Inspektion überfällig",
			Message: "Die Inspektion für \"Bunker Wilhelmsburg\" ist seit 30 Tagen überfällig.",
			CreatedAt: time.Date(2024, 10, 2, 8, 0, 0, 0, time.UTC), Read: false,
			ShelterID: "shelter-hamburg-007",
		},
		{
			ID: "notif-006", VisibleToRoles: operatorAndAdmins, Type: model.NotificationWarning,
			Title:   "Inspektion in Kürze fällig",
			Message: "Die Inspektion für \"Bunker Sachsenhausen\" ist in 14 Tagen fällig.",
			CreatedAt: time.Date(2024, 10, 1, 10, 0, 0, 0, time.UTC), Read: false,
			ShelterID: "shelter-frankfurt-006",
		},
		{
			ID: "notif-007", VisibleToRoles: append([]auth.Role{auth.RoleCitizen, auth.RoleCrisisManager}, operatorAndAdmins...),
			Type:  model.NotificationInfo,
			Title: "Neue Schutzräume verfügbar",
			Message: "5 neue Schutzräume wurden im Raum Berlin genehmigt und sind nun auf der Karte sichtbar.",
			CreatedAt: ts(15, 16, 0), Read: true,
		},
		{
			ID: "notif-008", VisibleToRoles: operatorAndAdmins, Type: model.NotificationInfo,
			Title:   "Systemwartung geplant",
			Message: "Am 15.10.2024 zwischen 02:00 und 04:00 Uhr findet eine geplante Systemwartung statt.",
			CreatedAt: time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC), Read: false,
		},
		{
			ID: "notif-009", VisibleToRoles: []auth.Role{auth.RoleOperator}, Type: model.NotificationSuccess,
			Title:   "Schutzraum genehmigt",
			Message: "Ihr Schutzraum \"U-Bahnhof Alexanderplatz\" wurde erfolgreich genehmigt.",
			CreatedAt: ts(10, 14, 30), Read: true, ShelterID: "shelter-berlin-002",
		},
		{
			ID: "notif-010", VisibleToRoles: []auth.Role{auth.RoleOperator}, Type: model.NotificationSuccess,
			Title:   "Inspektion erfolgreich",
			Message: "Die Inspektion für \"Bunker Gesundbrunnen\" wurde erfolgreich abgeschlossen.",
			CreatedAt: ts(5, 11, 0), Read: true, ShelterID: "shelter-berlin-001",
		},
		{
			ID: "notif-011", VisibleToRoles: []auth.Role{auth.RoleCrisisManager, auth.RoleFederalAdmin},
			Type:  model.NotificationAlert,
			Title: "Krisenmodus-Test erfolgreich",
			Message: "Der letzte Krisenmodus-Test wurde erfolgreich durchgeführt. Alle Systeme funktionieren einwandfrei.",
			CreatedAt: ts(1, 9, 0), Read: true,
		},
		{
			ID: "notif-012", VisibleToRoles: adminRoles, Type: model.NotificationWarning,
			Title:   "Kapazitätswarnung",
			Message: "Die Schutzraumkapazität im Bezirk Berlin-Mitte liegt unter 70% der empfohlenen Abdeckung.",
			CreatedAt: ts(28, 15, 0), Read: false,
		},
		{
			ID: "notif-013", VisibleToRoles: adminRoles, Type: model.NotificationApprovalRequest,
			Title:   "Statusänderung zur Genehmigung",
			Message: "Der Betreiber von \"Bunker Humboldthain\" hat eine Statusänderung zu \"Aktiv\" beantragt.",
			CreatedAt: time.Date(2024, 10, 2, 11, 0, 0, 0, time.UTC), Read: false,
			ShelterID: "shelter-berlin-008",
		},
		{
			ID: "notif-014", VisibleToRoles: []auth.Role{auth.RoleOperator}, Type: model.NotificationInfo,
			Title:   "Neue Förderrichtlinien",
			Message: "Die neuen Förderrichtlinien für Schutzraumsanierung sind ab sofort verfügbar.",
			CreatedAt: ts(20, 10, 0), Read: true,
		},
		{
			ID: "notif-015", VisibleToRoles: operatorAndAdmins, Type: model.NotificationWarning,
			Title:   "Daten unvollständig",
			Message: "Die Daten für \"Bunker Neustadt\" sind unvollständig. Bitte ergänzen Sie die fehlenden Informationen.",
			CreatedAt: time.Date(2024, 10, 1, 8, 30, 0, 0, time.UTC), Read: false,
			ShelterID: "shelter-dresden-003",
		},
	}
}
