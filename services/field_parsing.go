package services

import (
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serial dates count days from the 1900 epoch; serial 25569
// lands on 1970-01-01, which anchors the conversion to Unix time.
const (
	serialUnixEpoch = 25569
	msPerDay        = 86400000
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func fieldString(fields map[string]any, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(stringify(v))
}

func optionalString(fields map[string]any, key string) *string {
	s := fieldString(fields, key)
	if s == "" {
		return nil
	}
	return &s
}

// parseBoolDefault maps "true"/"1"/"yes" (any case) to true; everything
// else, including an absent value, falls back to the default.
func parseBoolDefault(value any, def bool) bool {
	s := strings.ToLower(strings.TrimSpace(stringify(value)))
	if s == "" {
		return def
	}
	return s == "true" || s == "1" || s == "yes"
}

// parseDateValue accepts either a spreadsheet serial day count or a
// free-form date string. ok is false for a non-empty value that parses
// as neither.
func parseDateValue(value any) (*time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case float64:
		return serialToTime(v)
	case int:
		return serialToTime(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, true
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return serialToTime(serial)
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

func serialToTime(serial float64) (*time.Time, bool) {
	if serial <= serialUnixEpoch {
		return nil, false
	}
	ms := int64((serial - serialUnixEpoch) * msPerDay)
	t := time.UnixMilli(ms).UTC()
	return &t, true
}

// parseMoney distinguishes blank (null) from malformed: a non-empty
// value that is not a number is rejected, not silently dropped.
func parseMoney(value any) (*float64, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case float64:
		return &v, true
	case int:
		f := float64(v)
		return &f, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, true
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		if err != nil {
			return nil, false
		}
		return &f, true
	default:
		return nil, false
	}
}
