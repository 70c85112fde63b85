package services

import (
	"log"
	"strconv"
	"strings"
)

// SanitizeRows normalizes raw parsed rows into CandidateRows. Rows where
// every value is absent are dropped; surviving rows are numbered by their
// position in the original file (header is row 1, first data row is 2).
func SanitizeRows(raw []map[string]any) []CandidateRow {
	rows := make([]CandidateRow, 0, len(raw))
	for i, r := range raw {
		fields := SanitizeRow(r)
		if fields == nil {
			continue
		}
		rows = append(rows, CandidateRow{Number: i + 2, Fields: fields})
	}
	return rows
}

// SanitizeRow maps every cell of one raw row to a scalar (string, float64,
// bool or nil). It returns nil when the whole row is empty. Malformed
// cells degrade to nil instead of failing the row; sanitizing an already
// sanitized row yields the same result.
func SanitizeRow(raw map[string]any) map[string]any {
	fields := make(map[string]any, len(raw))
	empty := true
	for key, value := range raw {
		v := sanitizeCell(key, value)
		fields[key] = v
		if v != nil {
			empty = false
		}
	}
	if empty {
		return nil
	}
	return fields
}

func sanitizeCell(key string, value any) any {
	value = resolveComposite(key, value)

	switch value.(type) {
	case nil, string, float64, bool, int:
	default:
		log.Printf("[IMPORT][WARN] non-scalar cell value for %q: %v", key, value)
		return nil
	}

	if isAbsent(value) {
		return nil
	}

	lower := strings.ToLower(key)
	switch {
	case lower == "is_active":
		// Stringified here, boolean-parsed later by the row validator.
		value = strings.TrimSpace(stringify(value))
	case strings.Contains(lower, "code"), strings.Contains(lower, "name"), strings.Contains(lower, "email"):
		value = strings.TrimSpace(stringify(value))
	case isString(value):
		value = strings.TrimSpace(value.(string))
	}

	if isAbsent(value) {
		return nil
	}
	return value
}

// resolveComposite unwraps rich-text, formula and error cell objects the
// way spreadsheet parsers emit them. Unknown composite shapes become nil
// with a warning; they never abort the row.
func resolveComposite(key string, value any) any {
	m, ok := value.(map[string]any)
	if !ok {
		return value
	}
	if text, ok := m["text"]; ok {
		return resolveComposite(key, text)
	}
	if _, ok := m["formula"]; ok {
		if result, ok := m["result"]; ok && result != nil {
			return resolveComposite(key, result)
		}
		return m["formula"]
	}
	if _, ok := m["error"]; ok {
		return nil
	}
	log.Printf("[IMPORT][WARN] unexpected cell value for %q: %v", key, m)
	return nil
}

func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) == ""
}

func isString(value any) bool {
	_, ok := value.(string)
	return ok
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}
