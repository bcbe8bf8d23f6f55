package auth

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRoleRank_TotalOrder(t *testing.T) {
	roles := Roles()
	if len(roles) != 6 {
		t.Fatalf("expected 6 roles, got %d", len(roles))
	}
	for i := 1; i < len(roles); i++ {
		if roles[i].Rank() <= roles[i-1].Rank() {
			t.Fatalf("rank order broken between %s and %s", roles[i-1], roles[i])
		}
	}
}

func TestRoleRank_Unknown(t *testing.T) {
	if Role("superuser").Rank() != -1 {
		t.Fatalf("unknown role must rank below every valid role")
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("crisis_manager")
	if err != nil || r != RoleCrisisManager {
		t.Fatalf("ParseRole(crisis_manager) = %v, %v", r, err)
	}
	if _, err := ParseRole("root"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
	if _, err := ParseRole(""); err == nil {
		t.Fatalf("expected error for empty role")
	}
}

func TestHasMinimumRole_Matrix(t *testing.T) {
	// For every pair (r1, r2): HasMinimumRole(identity(r1), r2) must equal
	// rank(r1) >= rank(r2).
	for _, r1 := range Roles() {
		for _, r2 := range Roles() {
			id := &Identity{ID: "u", Role: r1}
			want := r1.Rank() >= r2.Rank()
			if got := HasMinimumRole(id, r2); got != want {
				t.Errorf("HasMinimumRole(%s, %s) = %v, want %v", r1, r2, got, want)
			}
		}
	}
}

func TestPredicates_NilIdentity(t *testing.T) {
	for _, r := range Roles() {
		if HasMinimumRole(nil, r) {
			t.Fatalf("nil identity must never satisfy minimum role %s", r)
		}
	}
	if HasRole(nil, Roles()...) {
		t.Fatalf("nil identity must never satisfy an allow-list")
	}
}

func TestHasRole_Membership(t *testing.T) {
	id := &Identity{ID: "u", Role: RoleCrisisManager}
	if !HasRole(id, RoleCrisisManager, RoleFederalAdmin) {
		t.Fatalf("crisis_manager must be allowed by the crisis allow-list")
	}
	if HasRole(&Identity{Role: RoleStateAdmin}, RoleCrisisManager, RoleFederalAdmin) {
		t.Fatalf("state_admin must not pass the crisis allow-list despite its rank")
	}
	if HasRole(id) {
		t.Fatalf("empty allow-list must not match")
	}
}

func TestSession_RoundTrip(t *testing.T) {
	s := Session{
		ID:        "sess-1",
		UserID:    "user-3",
		Name:      "Sandra Weber",
		Email:     "kommune@demo.de",
		Role:      RoleMunicipalAdmin,
		State:     "Berlin",
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Session
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != s {
		t.Fatalf("session did not round-trip: %+v != %+v", got, s)
	}
}

func TestSession_Identity(t *testing.T) {
	s := Session{UserID: "user-6", Name: "Klaus Hoffmann", Email: "krisenstab@demo.de", Role: RoleCrisisManager}
	id := s.Identity()
	if id.ID != "user-6" || id.Role != RoleCrisisManager || id.Email != "krisenstab@demo.de" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}
