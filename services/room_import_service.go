package services

import (
	"context"

	"asset-management-api/models"
)

// RoomImporter validates room rows: code and name required, code unique.
type RoomImporter struct{}

func (RoomImporter) Kind() string {
	return models.ImportTypeRoom
}

func (RoomImporter) PreValidate(ctx context.Context, store ImportStore, rows []CandidateRow) []string {
	return nil
}

func (RoomImporter) ProcessRow(ctx context.Context, store ImportStore, row CandidateRow) RowOutcome {
	fields := row.Fields
	n := row.Number

	code := fieldString(fields, "code")
	name := fieldString(fields, "name")
	if code == "" || name == "" {
		return failRow(n, "room code and name are required")
	}

	exists, err := store.RoomCodeExists(ctx, code)
	if err != nil {
		return failRow(n, "%s", err)
	}
	if exists {
		return failRow(n, "room code %q already exists", code)
	}

	room := &models.Room{
		Code:        code,
		Name:        name,
		Description: optionalString(fields, "description"),
	}

	return RowOutcome{
		Row:    n,
		Entity: room,
		Keys:   []UniqueKey{{Label: "room code", Value: code}},
	}
}

func (RoomImporter) Persist(ctx context.Context, store ImportStore, entity any) error {
	return store.CreateRoom(ctx, entity.(*models.Room))
}
