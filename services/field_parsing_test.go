package services

import (
	"testing"
	"time"
)

func TestParseBoolDefault(t *testing.T) {
	tests := []struct {
		value any
		def   bool
		want  bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"Yes", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"banana", true, false},
		{"", true, true},
		{"", false, false},
		{nil, true, true},
		{true, false, true},
	}
	for _, tt := range tests {
		if got := parseBoolDefault(tt.value, tt.def); got != tt.want {
			t.Errorf("parseBoolDefault(%v, %v) = %v, want %v", tt.value, tt.def, got, tt.want)
		}
	}
}

func TestParseDateValueSerial(t *testing.T) {
	// Serial 45000 is 19431 days past the Unix epoch anchor.
	got, ok := parseDateValue(45000.0)
	if !ok || got == nil {
		t.Fatalf("serial 45000 should parse, got ok=%v", ok)
	}
	want := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("serial 45000 = %v, want %v", got, want)
	}

	// Serials at or before the epoch anchor are not believable dates.
	if _, ok := parseDateValue(25569.0); ok {
		t.Error("serial 25569 should be rejected")
	}
}

func TestParseDateValueStrings(t *testing.T) {
	got, ok := parseDateValue("2024-01-15")
	if !ok || got == nil {
		t.Fatal("ISO date string should parse")
	}
	if got.Year() != 2024 || got.Month() != time.January || got.Day() != 15 {
		t.Errorf("parsed %v, want 2024-01-15", got)
	}

	// A numeric string is treated as a serial.
	if got, ok := parseDateValue("45000"); !ok || got == nil {
		t.Error("numeric string should be treated as a serial date")
	}

	if _, ok := parseDateValue("not-a-date"); ok {
		t.Error("garbage should not parse")
	}

	if got, ok := parseDateValue(""); !ok || got != nil {
		t.Errorf("blank should mean no date, got (%v, %v)", got, ok)
	}
	if got, ok := parseDateValue(nil); !ok || got != nil {
		t.Errorf("nil should mean no date, got (%v, %v)", got, ok)
	}
}

func TestParseMoney(t *testing.T) {
	if got, ok := parseMoney(1500.5); !ok || got == nil || *got != 1500.5 {
		t.Errorf("float value failed: (%v, %v)", got, ok)
	}
	if got, ok := parseMoney("1,234.50"); !ok || got == nil || *got != 1234.5 {
		t.Errorf("comma-grouped string failed: (%v, %v)", got, ok)
	}
	if got, ok := parseMoney(""); !ok || got != nil {
		t.Errorf("blank should be nil without error: (%v, %v)", got, ok)
	}
	if got, ok := parseMoney(nil); !ok || got != nil {
		t.Errorf("nil should be nil without error: (%v, %v)", got, ok)
	}
	if _, ok := parseMoney("free"); ok {
		t.Error("malformed value should be rejected, not dropped")
	}
}
