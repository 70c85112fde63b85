package services

import (
	"context"

	"asset-management-api/models"
)

// CategoryImporter validates category rows: name required and unique.
type CategoryImporter struct{}

func (CategoryImporter) Kind() string {
	return models.ImportTypeCategory
}

func (CategoryImporter) PreValidate(ctx context.Context, store ImportStore, rows []CandidateRow) []string {
	return nil
}

func (CategoryImporter) ProcessRow(ctx context.Context, store ImportStore, row CandidateRow) RowOutcome {
	fields := row.Fields
	n := row.Number

	name := fieldString(fields, "name")
	if name == "" {
		return failRow(n, "category name is required")
	}

	exists, err := store.CategoryNameExists(ctx, name)
	if err != nil {
		return failRow(n, "%s", err)
	}
	if exists {
		return failRow(n, "category %q already exists", name)
	}

	category := &models.Category{
		Name:        name,
		Description: optionalString(fields, "description"),
	}

	return RowOutcome{
		Row:    n,
		Entity: category,
		Keys:   []UniqueKey{{Label: "category", Value: name}},
	}
}

func (CategoryImporter) Persist(ctx context.Context, store ImportStore, entity any) error {
	return store.CreateCategory(ctx, entity.(*models.Category))
}
