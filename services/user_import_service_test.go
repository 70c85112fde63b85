package services

import (
	"context"
	"testing"

	"asset-management-api/models"
	"asset-management-api/utils"
)

func TestUserProcessRowDefaults(t *testing.T) {
	store := newFakeStore()

	outcome := UserImporter{}.ProcessRow(context.Background(), store, CandidateRow{
		Number: 2,
		Fields: map[string]any{
			"firstname": "Jane",
			"lastname":  "Doe",
			"email":     "jane.doe@example.com",
		},
	})
	if !outcome.OK() {
		t.Fatalf("unexpected failure: %s", outcome.Failure)
	}

	user := outcome.Entity.(*models.User)
	if user.Role != models.RoleOwner {
		t.Errorf("role should default to OWNER, got %q", user.Role)
	}
	if !user.IsActive || user.IsAccountVerified {
		t.Errorf("imported users are active and unverified, got %v/%v", user.IsActive, user.IsAccountVerified)
	}
	if !utils.CheckPasswordHash(defaultImportPassword, user.Password) {
		t.Error("password should be the hashed import default")
	}
}

func TestUserProcessRowRoleHandling(t *testing.T) {
	store := newFakeStore()

	row := func(role string) CandidateRow {
		return CandidateRow{Number: 2, Fields: map[string]any{
			"firstname": "Jane", "lastname": "Doe", "email": "jane@example.com", "role": role,
		}}
	}

	outcome := UserImporter{}.ProcessRow(context.Background(), store, row("asset_staff"))
	if !outcome.OK() {
		t.Fatal(outcome.Failure)
	}
	if got := outcome.Entity.(*models.User).Role; got != models.RoleAssetStaff {
		t.Errorf("role = %q, want ASSET_STAFF", got)
	}

	// Anything off the allow-list quietly falls back to OWNER.
	outcome = UserImporter{}.ProcessRow(context.Background(), store, row("SUPERUSER"))
	if !outcome.OK() {
		t.Fatal(outcome.Failure)
	}
	if got := outcome.Entity.(*models.User).Role; got != models.RoleOwner {
		t.Errorf("role = %q, want OWNER", got)
	}
}

func TestUserProcessRowFailures(t *testing.T) {
	store := newFakeStore()
	store.seedUser(1, "Taken", "Email", "taken@example.com")
	username := "jdoe"
	store.users[0].Username = &username

	tests := []struct {
		name   string
		fields map[string]any
		want   string
	}{
		{"missing fields", map[string]any{"firstname": "Jane"}, "Row 2: firstname, lastname and email are required"},
		{"bad email", map[string]any{"firstname": "J", "lastname": "D", "email": "j@x"}, `Row 2: invalid email format "j@x"`},
		{"duplicate email", map[string]any{"firstname": "J", "lastname": "D", "email": "taken@example.com"}, `Row 2: email "taken@example.com" already exists`},
		{"duplicate username", map[string]any{"firstname": "J", "lastname": "D", "email": "new@example.com", "username": "jdoe"}, `Row 2: username "jdoe" already exists`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := UserImporter{}.ProcessRow(context.Background(), store, CandidateRow{Number: 2, Fields: tt.fields})
			if outcome.OK() {
				t.Fatal("expected failure")
			}
			if outcome.Failure != tt.want {
				t.Errorf("failure = %q, want %q", outcome.Failure, tt.want)
			}
		})
	}
}
