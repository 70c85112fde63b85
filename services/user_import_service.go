package services

import (
	"context"
	"strings"

	"asset-management-api/models"
	"asset-management-api/utils"
)

// Imported accounts get a fixed password; the sheet intentionally never
// carries one. Users are expected to reset it on first login.
const defaultImportPassword = "password123"

// UserImporter validates user rows: firstname, lastname and a
// well-formed unique email are required; the role must come from the
// allow-list and falls back to OWNER.
type UserImporter struct{}

func (UserImporter) Kind() string {
	return models.ImportTypeUser
}

func (UserImporter) PreValidate(ctx context.Context, store ImportStore, rows []CandidateRow) []string {
	return nil
}

func (UserImporter) ProcessRow(ctx context.Context, store ImportStore, row CandidateRow) RowOutcome {
	fields := row.Fields
	n := row.Number

	firstname := fieldString(fields, "firstname")
	lastname := fieldString(fields, "lastname")
	email := fieldString(fields, "email")
	if firstname == "" || lastname == "" || email == "" {
		return failRow(n, "firstname, lastname and email are required")
	}

	if !strings.Contains(email, "@") || len(email) < 5 {
		return failRow(n, "invalid email format %q", email)
	}

	exists, err := store.UserEmailExists(ctx, email)
	if err != nil {
		return failRow(n, "%s", err)
	}
	if exists {
		return failRow(n, "email %q already exists", email)
	}

	keys := []UniqueKey{{Label: "email", Value: email}}

	username := optionalString(fields, "username")
	if username != nil {
		exists, err := store.UserUsernameExists(ctx, *username)
		if err != nil {
			return failRow(n, "%s", err)
		}
		if exists {
			return failRow(n, "username %q already exists", *username)
		}
		keys = append(keys, UniqueKey{Label: "username", Value: *username})
	}

	role := models.RoleOwner
	if r := strings.ToUpper(fieldString(fields, "role")); models.ValidRole(r) {
		role = r
	}

	hashed, err := utils.HashPassword(defaultImportPassword)
	if err != nil {
		return failRow(n, "failed to prepare password: %s", err)
	}

	user := &models.User{
		Firstname:         firstname,
		Lastname:          lastname,
		Email:             email,
		Username:          username,
		Password:          hashed,
		Phone:             optionalString(fields, "phone"),
		Role:              role,
		IsActive:          true,
		IsAccountVerified: false,
	}

	return RowOutcome{Row: n, Entity: user, Keys: keys}
}

func (UserImporter) Persist(ctx context.Context, store ImportStore, entity any) error {
	return store.CreateUser(ctx, entity.(*models.User))
}
