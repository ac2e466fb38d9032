package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"123e4567-e89b-92d3-a456-426614174000", // bad version digit
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-15"); !ok {
		t.Error("IsValidDate(2024-01-15) = false, want true")
	}
	for _, bad := range []string{"15-01-2024", "2024-13-01", "2024-01-32", "", "yesterday"} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00+07:00",
		"2024-01-15T10:30:00.123Z",
	}
	invalid := []string{"2024-01-15", "10:30:00", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsNonNegative(t *testing.T) {
	if !IsNonNegative(0) || !IsNonNegative(7.5) {
		t.Error("IsNonNegative should accept zero and positive values")
	}
	if IsNonNegative(-0.1) {
		t.Error("IsNonNegative(-0.1) = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date is required"},
		{Field: "status", Message: "status is invalid"},
	}

	if errs.Error() != "date: date is required; status: status is invalid" {
		t.Errorf("unexpected Error(): %q", errs.Error())
	}

	m := errs.ToMap()
	if m["date"] != "date is required" || m["status"] != "status is invalid" {
		t.Errorf("unexpected ToMap(): %v", m)
	}
}
