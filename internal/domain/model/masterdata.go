package model

// Master data for the portal UI: fixed label tables for shelter types,
// statuses, and the sixteen German federal states. German labels are the
// primary display language.

// ShelterTypeInfo is the display metadata for a shelter type.
type ShelterTypeInfo struct {
	Type        ShelterType `json:"type"`
	LabelDE     string      `json:"label_de"`
	LabelEN     string      `json:"label_en"`
	Description string      `json:"description"`
}

// ShelterStatusInfo is the display metadata for a shelter status.
type ShelterStatusInfo struct {
	Status      ShelterStatus `json:"status"`
	LabelDE     string        `json:"label_de"`
	LabelEN     string        `json:"label_en"`
	Color       string        `json:"color"`
	Description string        `json:"description"`
}

// GermanStateInfo identifies a federal state.
type GermanStateInfo struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Capital string `json:"capital"`
}

// ShelterTypes lists display metadata for every shelter type.
func ShelterTypes() []ShelterTypeInfo {
	return []ShelterTypeInfo{
		{Type: ShelterTypeBunker, LabelDE: "Bunker", LabelEN: "Bunker", Description: "Ehemaliger öffentlicher Schutzraum oder militärischer Bunker"},
		{Type: ShelterTypeBasement, LabelDE: "Keller", LabelEN: "Basement", Description: "Gebäudekeller mit Schutzwert"},
		{Type: ShelterTypeSubway, LabelDE: "U-Bahn", LabelEN: "Subway", Description: "U-Bahn-Station"},
		{Type: ShelterTypeParking, LabelDE: "Tiefgarage", LabelEN: "Parking Garage", Description: "Unterirdische Parkstruktur"},
		{Type: ShelterTypeTunnel, LabelDE: "Tunnel", LabelEN: "Tunnel", Description: "Straßen- oder Bahntunnel"},
		{Type: ShelterTypeOther, LabelDE: "Sonstige", LabelEN: "Other", Description: "Anderer geschützter Raum"},
	}
}

// ShelterStatuses lists display metadata for every shelter status.
func ShelterStatuses() []ShelterStatusInfo {
	return []ShelterStatusInfo{
		{Status: ShelterStatusActive, LabelDE: "Aktiv", LabelEN: "Active", Color: "#22C55E", Description: "Bereit zur sofortigen Nutzung"},
		{Status: ShelterStatusLimited, LabelDE: "Eingeschränkt", LabelEN: "Limited", Color: "#EAB308", Description: "Nutzbar mit Einschränkungen"},
		{Status: ShelterStatusInactive, LabelDE: "Inaktiv", LabelEN: "Inactive", Color: "#EF4444", Description: "Derzeit nicht nutzbar"},
		{Status: ShelterStatusPlanned, LabelDE: "Geplant", LabelEN: "Planned", Color: "#3B82F6", Description: "Im Bau oder in Renovierung"},
	}
}

// GermanStates lists the sixteen federal states.
func GermanStates() []GermanStateInfo {
	return []GermanStateInfo{
		{Code: "BW", Name: "Baden-Württemberg", Capital: "Stuttgart"},
		{Code: "BY", Name: "Bayern", Capital: "München"},
		{Code: "BE", Name: "Berlin", Capital: "Berlin"},
		{Code: "BB", Name: "Brandenburg", Capital: "Potsdam"},
		{Code: "HB", Name: "Bremen", Capital: "Bremen"},
		{Code: "HH", Name: "Hamburg", Capital: "Hamburg"},
		{Code: "HE", Name: "Hessen", Capital: "Wiesbaden"},
		{Code: "MV", Name: "Mecklenburg-Vorpommern", Capital: "Schwerin"},
		{Code: "NI", Name: "Niedersachsen", Capital: "Hannover"},
		{Code: "NW", Name: "Nordrhein-Westfalen", Capital: "Düsseldorf"},
		{Code: "RP", Name: "Rheinland-Pfalz", Capital: "Mainz"},
		{Code: "SL", Name: "Saarland", Capital: "Saarbrücken"},
		{Code: "SN", Name: "Sachsen", Capital: "Dresden"},
		{Code: "ST", Name: "Sachsen-Anhalt", Capital: "Magdeburg"},
		{Code: "SH", Name: "Schleswig-Holstein", Capital: "Kiel"},
		{Code: "TH", Name: "Thüringen", Capital: "Erfurt"},
	}
}

// IsGermanState reports whether name matches a federal state name.
func IsGermanState(name string) bool {
	for _, s := range GermanStates() {
		if s.Name == name {
			return true
		}
	}
	return false
}
