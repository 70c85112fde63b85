package services

import (
	"reflect"
	"testing"
)

func TestSanitizeRowsDropsEmptyAndNumbersByPosition(t *testing.T) {
	raw := []map[string]any{
		{"code": "A1", "name": "Laptop"},
		{"code": "", "name": nil},
		{"code": "A2", "name": "Monitor"},
	}

	rows := SanitizeRows(raw)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Number != 2 {
		t.Errorf("first data row should be numbered 2, got %d", rows[0].Number)
	}
	// The empty row is dropped but still occupies its file position.
	if rows[1].Number != 4 {
		t.Errorf("row after the dropped one should be numbered 4, got %d", rows[1].Number)
	}
}

func TestSanitizeRowTrimsAndStringifies(t *testing.T) {
	fields := SanitizeRow(map[string]any{
		"code":      "  A1  ",
		"name":      42.0,
		"is_active": true,
		"value":     1500.5,
		"note":      "  keep me  ",
	})

	if fields["code"] != "A1" {
		t.Errorf("code = %v, want %q", fields["code"], "A1")
	}
	if fields["name"] != "42" {
		t.Errorf("numeric name should be stringified, got %v", fields["name"])
	}
	if fields["is_active"] != "true" {
		t.Errorf("is_active = %v, want %q", fields["is_active"], "true")
	}
	if fields["value"] != 1500.5 {
		t.Errorf("numeric value should stay numeric, got %v", fields["value"])
	}
	if fields["note"] != "keep me" {
		t.Errorf("note = %v, want %q", fields["note"], "keep me")
	}
}

func TestSanitizeRowCompositeCells(t *testing.T) {
	fields := SanitizeRow(map[string]any{
		"name":   map[string]any{"text": " Laptop "},
		"code":   map[string]any{"formula": "A1&B1", "result": "X9"},
		"value":  map[string]any{"error": "#DIV/0!"},
		"status": map[string]any{"weird": "shape"},
	})

	if fields["name"] != "Laptop" {
		t.Errorf("rich-text cell = %v, want %q", fields["name"], "Laptop")
	}
	if fields["code"] != "X9" {
		t.Errorf("formula cell should use its result, got %v", fields["code"])
	}
	if fields["value"] != nil {
		t.Errorf("error cell should become nil, got %v", fields["value"])
	}
	if fields["status"] != nil {
		t.Errorf("unknown composite should become nil, got %v", fields["status"])
	}
}

func TestSanitizeRowIdempotent(t *testing.T) {
	raw := map[string]any{
		"code":      "  A1 ",
		"name":      map[string]any{"text": "Laptop"},
		"is_active": 1,
		"value":     99.9,
	}

	once := SanitizeRow(raw)
	twice := SanitizeRow(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("sanitizing twice changed the row: %v vs %v", once, twice)
	}
}

func TestSanitizeRowNonScalarBecomesNil(t *testing.T) {
	fields := SanitizeRow(map[string]any{
		"code": "A1",
		"tags": []any{"a", "b"},
	})
	if fields["tags"] != nil {
		t.Errorf("slice cell should become nil, got %v", fields["tags"])
	}
}

func TestSanitizeRowAllEmptyIsNil(t *testing.T) {
	if got := SanitizeRow(map[string]any{"code": "   ", "name": nil}); got != nil {
		t.Errorf("fully empty row should be nil, got %v", got)
	}
}
