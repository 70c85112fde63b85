package services

import (
	"context"
	"fmt"
	"strings"

	"asset-management-api/models"
)

// AssetImporter validates asset rows and builds the records to insert.
// Assets carry the richest row shape: optional references to category,
// room and owner, a purchase date that may arrive as a spreadsheet
// serial number, and a monetary value.
type AssetImporter struct{}

func (AssetImporter) Kind() string {
	return models.ImportTypeAsset
}

// PreValidate is the two-phase first pass: it only checks that every
// explicitly referenced owner email, category name and room code exists,
// so a single bad reference rejects the file before anything is written.
// One error per row is reported, matching the row the user has to fix.
func (AssetImporter) PreValidate(ctx context.Context, store ImportStore, rows []CandidateRow) []string {
	var errs []string
	for _, row := range rows {
		if email := fieldString(row.Fields, "ownerEmail"); email != "" {
			if !strings.Contains(email, "@") || len(email) < 5 {
				errs = append(errs, fmt.Sprintf("Row %d: invalid owner email %q", row.Number, email))
				continue
			}
			owner, err := store.UserByEmail(ctx, email)
			if err != nil {
				errs = append(errs, fmt.Sprintf("Row %d: %s", row.Number, err))
				continue
			}
			if owner == nil {
				errs = append(errs, fmt.Sprintf("Row %d: owner email %q not found", row.Number, email))
				continue
			}
		}

		if name := fieldString(row.Fields, "categoryName"); name != "" {
			category, err := store.CategoryByName(ctx, name)
			if err != nil {
				errs = append(errs, fmt.Sprintf("Row %d: %s", row.Number, err))
				continue
			}
			if category == nil {
				errs = append(errs, fmt.Sprintf("Row %d: category %q not found", row.Number, name))
				continue
			}
		}

		if code := fieldString(row.Fields, "roomCode"); code != "" {
			room, err := store.RoomByCode(ctx, code)
			if err != nil {
				errs = append(errs, fmt.Sprintf("Row %d: %s", row.Number, err))
				continue
			}
			if room == nil {
				errs = append(errs, fmt.Sprintf("Row %d: room code %q not found", row.Number, code))
			}
		}
	}
	return errs
}

func (AssetImporter) ProcessRow(ctx context.Context, store ImportStore, row CandidateRow) RowOutcome {
	fields := row.Fields
	n := row.Number

	code := fieldString(fields, "code")
	name := fieldString(fields, "name")
	if code == "" || name == "" {
		return failRow(n, "asset code and name are required")
	}

	exists, err := store.AssetCodeExists(ctx, code)
	if err != nil {
		return failRow(n, "%s", err)
	}
	if exists {
		return failRow(n, "asset code %q already exists", code)
	}

	keys := []UniqueKey{{Label: "asset code", Value: code}}

	serial := optionalString(fields, "serial_number")
	if serial != nil {
		exists, err := store.AssetSerialExists(ctx, *serial)
		if err != nil {
			return failRow(n, "%s", err)
		}
		if exists {
			return failRow(n, "serial number %q already exists", *serial)
		}
		keys = append(keys, UniqueKey{Label: "serial number", Value: *serial})
	}

	resolver := NewReferenceResolver(store)

	categoryID, reason, err := resolver.Category(ctx, fields["categoryId"], fields["categoryName"])
	if err != nil {
		return failRow(n, "%s", err)
	}
	if reason != "" {
		return failRow(n, "%s", reason)
	}

	roomID, reason, err := resolver.Room(ctx, fields["roomId"], fields["roomCode"])
	if err != nil {
		return failRow(n, "%s", err)
	}
	if reason != "" {
		return failRow(n, "%s", reason)
	}

	ownerID, reason, err := resolver.Owner(ctx, fields["ownerId"], fields["ownerEmail"], fields["ownerName"])
	if err != nil {
		return failRow(n, "%s", err)
	}
	if reason != "" {
		return failRow(n, "%s", reason)
	}

	purchaseAt, ok := parseDateValue(fields["purchase_at"])
	if !ok {
		return failRow(n, "invalid purchase date %q", fieldString(fields, "purchase_at"))
	}

	value, ok := parseMoney(fields["value"])
	if !ok {
		return failRow(n, "invalid value %q", fieldString(fields, "value"))
	}

	status := fieldString(fields, "status")
	if status == "" {
		status = models.AssetStatusAvailable
	}

	asset := &models.Asset{
		Code:         code,
		Name:         name,
		Description:  optionalString(fields, "description"),
		SerialNumber: serial,
		CategoryID:   categoryID,
		RoomID:       roomID,
		OwnerID:      ownerID,
		Status:       status,
		PurchaseAt:   purchaseAt,
		Value:        value,
		IsActive:     parseBoolDefault(fields["is_active"], true),
	}

	return RowOutcome{Row: n, Entity: asset, Keys: keys}
}

func (AssetImporter) Persist(ctx context.Context, store ImportStore, entity any) error {
	return store.CreateAsset(ctx, entity.(*models.Asset))
}
