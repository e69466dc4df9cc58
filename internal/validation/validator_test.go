package validation

import (
	"strings"
	"testing"
	"time"

	"timesheet/internal/config"
	"timesheet/internal/domain"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "Projektarbeit", true},
		{"String with leading/trailing spaces", "  Urlaub  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidStringLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		max      int
		expected bool
	}{
		{"Within limit", "Urlaub", 10, true},
		{"Exactly max", "Urlaub", 6, true},
		{"Too long", "Krankheitstage", 5, false},
		{"Counts runes not bytes", "Lehrgänge", 9, true},
		{"Trims before counting", "  ab  ", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidStringLength(tt.input, tt.max)
			if result != tt.expected {
				t.Errorf("IsValidStringLength(%q, %d) = %v, expected %v", tt.input, tt.max, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidProjectID(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		input    string
		expected bool
	}{
		{"890023", true},
		{"PRJ-7", true},
		{"", false},
		{"89 0023", false},
		{"890023\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := validator.IsValidProjectID(tt.input); got != tt.expected {
				t.Errorf("IsValidProjectID(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidDuration(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		duration time.Duration
		expected bool
	}{
		{"Zero", 0, true},
		{"One hour", time.Hour, true},
		{"Exactly max", 7 * 24 * time.Hour, true},
		{"Negative", -time.Millisecond, false},
		{"Over max", 7*24*time.Hour + time.Millisecond, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.IsValidDuration(tt.duration); got != tt.expected {
				t.Errorf("IsValidDuration(%v) = %v, expected %v", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestValidator_WithConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.MaxFieldLength = 3
	cfg.Validation.MaxCommentLength = 4
	cfg.Validation.MaxDuration = time.Hour
	validator := NewValidatorWithConfig(cfg)

	if validator.IsValidFieldLength("abcd") {
		t.Errorf("IsValidFieldLength should use the configured limit")
	}
	if !validator.IsValidCommentLength("abcd") {
		t.Errorf("IsValidCommentLength should accept a comment at the limit")
	}
	if validator.IsValidDuration(2 * time.Hour) {
		t.Errorf("IsValidDuration should use the configured maximum")
	}
}

func TestValidator_IsValidEntryType(t *testing.T) {
	validator := NewValidator()

	if !validator.IsValidEntryType(domain.EntryTypeWork) || !validator.IsValidEntryType(domain.EntryTypeAbsence) {
		t.Errorf("work and absence should be valid")
	}
	if validator.IsValidEntryType("holiday") {
		t.Errorf("holiday should not be a valid entry type")
	}
}

func TestValidator_IsValidTimeRange(t *testing.T) {
	validator := NewValidator()
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	before := start.Add(-time.Second)

	if !validator.IsValidTimeRange(start, nil) {
		t.Errorf("open range should be valid")
	}
	if !validator.IsValidTimeRange(start, &start) {
		t.Errorf("zero-length range should be valid")
	}
	if validator.IsValidTimeRange(start, &before) {
		t.Errorf("end before start should be invalid")
	}
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	validator := NewValidator()

	if got := validator.TrimAndValidateString("  Urlaub \t"); got != "Urlaub" {
		t.Errorf("TrimAndValidateString() = %q", got)
	}
	if got := validator.TrimAndValidateString(strings.Repeat(" ", 3)); got != "" {
		t.Errorf("TrimAndValidateString() = %q, want empty", got)
	}
}
