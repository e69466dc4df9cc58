package validation

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"timesheet/internal/config"
	"timesheet/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks that the trimmed string has at most max runes
func (v *Validator) IsValidStringLength(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= max
}

// IsValidFieldLength checks a catalog or entry field against the configured limit
func (v *Validator) IsValidFieldLength(s string) bool {
	return v.IsValidStringLength(s, v.getMaxFieldLength())
}

// IsValidCommentLength checks a comment against the configured limit
func (v *Validator) IsValidCommentLength(s string) bool {
	return v.IsValidStringLength(s, v.getMaxCommentLength())
}

// IsValidProjectID checks that a project id has no whitespace or control characters
func (v *Validator) IsValidProjectID(id string) bool {
	if !v.IsNonEmptyString(id) {
		return false
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsValidEntryType checks for work or absence
func (v *Validator) IsValidEntryType(t domain.EntryType) bool {
	return t.IsValid()
}

// IsValidDuration checks that a duration is non-negative and within the configured maximum
func (v *Validator) IsValidDuration(duration time.Duration) bool {
	return duration >= 0 && duration <= v.getMaxDuration()
}

// IsValidTimeRange checks that the end time is not before the start time
func (v *Validator) IsValidTimeRange(startTime time.Time, endTime *time.Time) bool {
	if endTime == nil {
		return true // Active entry, no end time
	}
	return !endTime.Before(startTime)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getMaxFieldLength returns configured maximum field length or default
func (v *Validator) getMaxFieldLength() int {
	if v.config != nil {
		return v.config.Validation.MaxFieldLength
	}
	return 255 // Default maximum
}

// getMaxCommentLength returns configured maximum comment length or default
func (v *Validator) getMaxCommentLength() int {
	if v.config != nil {
		return v.config.Validation.MaxCommentLength
	}
	return 1000
}

// getMaxDuration returns configured maximum duration or default
func (v *Validator) getMaxDuration() time.Duration {
	if v.config != nil {
		return v.config.Validation.MaxDuration
	}
	return 7 * 24 * time.Hour // Default maximum
}
