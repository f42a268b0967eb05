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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-12-23"); !ok {
		t.Error("IsValidDate(2024-12-23) = false, want true")
	}
	parsed, ok := IsValidDate("2024-02-29")
	if !ok || parsed.Day() != 29 {
		t.Error("IsValidDate should accept the 2024 leap day")
	}
	for _, bad := range []string{"", "23.12.2024", "2024-13-01", "2023-02-29", "2024-12-23T00:00:00Z"} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	for _, y := range []int{1583, 2024, 4099} {
		if !IsValidYear(y) {
			t.Errorf("IsValidYear(%d) = false, want true", y)
		}
	}
	for _, y := range []int{0, 1582, 4100, -5} {
		if IsValidYear(y) {
			t.Errorf("IsValidYear(%d) = true, want false", y)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "end_date", Message: "end_date must not be before start_date"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["start_date"] == "" || m["end_date"] == "" {
		t.Errorf("ToMap() = %v, want both fields present", m)
	}
	if errs.Error() == "" {
		t.Error("Error() should join the messages")
	}
}
