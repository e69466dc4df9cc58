package validation

import (
	"time"

	"timesheet/internal/config"
	"timesheet/internal/domain"
)

// EntryValidator validates input to the entry lifecycle and weekly edits
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{validator: NewValidator()}
}

// NewEntryValidatorWithConfig creates an entry validator using configured limits
func NewEntryValidatorWithConfig(cfg *config.Config) *EntryValidator {
	return &EntryValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateStartRequest checks that the activity, project id and category are
// present and that the entry type is known
func (ev *EntryValidator) ValidateStartRequest(req domain.StartRequest) error {
	validationError := NewValidationError()

	if !ev.validator.IsValidEntryType(req.Type) {
		validationError.AddInvalidValueError("type", string(req.Type), "must be work or absence")
	}

	ev.requireField(validationError, "activity", req.Activity)
	ev.requireField(validationError, "project_id", req.ProjectID)
	ev.requireField(validationError, "category", req.Category)

	if !ev.validator.IsValidCommentLength(req.Comment) {
		validationError.AddInvalidLengthError("comment", req.Comment, ev.validator.getMaxCommentLength())
	}

	return validationError.ErrorOrNil()
}

// ValidateDuration checks an adjusted duration set by an edit
func (ev *EntryValidator) ValidateDuration(field string, d time.Duration) error {
	validationError := NewValidationError()

	if d < 0 {
		validationError.AddInvalidValueError(field, d, "must not be negative")
	} else if !ev.validator.IsValidDuration(d) {
		validationError.AddInvalidRangeError(field, d, "must not exceed "+ev.validator.getMaxDuration().String())
	}

	return validationError.ErrorOrNil()
}

// ValidateOverride checks a stop override. The recorded time may exceed the
// edit limit, so only the sign is checked.
func (ev *EntryValidator) ValidateOverride(field string, d time.Duration) error {
	validationError := NewValidationError()

	if d < 0 {
		validationError.AddInvalidValueError(field, d, "must not be negative")
	}

	return validationError.ErrorOrNil()
}

// ValidateComment checks a comment against the configured length limit
func (ev *EntryValidator) ValidateComment(comment string) error {
	validationError := NewValidationError()

	if !ev.validator.IsValidCommentLength(comment) {
		validationError.AddInvalidLengthError("comment", comment, ev.validator.getMaxCommentLength())
	}

	return validationError.ErrorOrNil()
}

// ValidateEntryUpdate validates the supplied fields of a partial edit
func (ev *EntryValidator) ValidateEntryUpdate(update domain.EntryUpdate) error {
	validationError := NewValidationError()

	if update.AdjustedDuration != nil {
		validationError.Merge(ev.ValidateDuration("adjusted_duration", *update.AdjustedDuration))
	}
	if update.Comment != nil {
		validationError.Merge(ev.ValidateComment(*update.Comment))
	}

	return validationError.ErrorOrNil()
}

// ValidateEntryID validates an entry id
func (ev *EntryValidator) ValidateEntryID(id string) error {
	if !ev.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("id")
		return validationError
	}
	return nil
}

func (ev *EntryValidator) requireField(ve *ValidationError, field, value string) {
	if !ev.validator.IsNonEmptyString(value) {
		ve.AddRequiredError(field)
		return
	}
	if !ev.validator.IsValidFieldLength(value) {
		ve.AddInvalidLengthError(field, value, ev.validator.getMaxFieldLength())
	}
}
