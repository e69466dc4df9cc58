package validation

import (
	"timesheet/internal/config"
	"timesheet/internal/domain"
)

// CatalogValidator provides validation for catalog projects and activities
type CatalogValidator struct {
	validator *Validator
}

// NewCatalogValidator creates a new catalog validator
func NewCatalogValidator() *CatalogValidator {
	return &CatalogValidator{validator: NewValidator()}
}

// NewCatalogValidatorWithConfig creates a catalog validator using configured limits
func NewCatalogValidatorWithConfig(cfg *config.Config) *CatalogValidator {
	return &CatalogValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateProjectID validates a project id
func (cv *CatalogValidator) ValidateProjectID(id string) error {
	validationError := NewValidationError()
	cv.checkProjectID(validationError, id)
	return validationError.ErrorOrNil()
}

// ValidateActivity validates one activity
func (cv *CatalogValidator) ValidateActivity(a domain.ActivityConfig) error {
	validationError := NewValidationError()

	cv.checkName(validationError, "activity", a.Activity)
	cv.checkProjectID(validationError, a.ProjectID)
	cv.checkName(validationError, "category", a.Category)

	if !cv.validator.IsValidFieldLength(a.ExternalComment) {
		validationError.AddInvalidLengthError("external_comment", a.ExternalComment, cv.validator.getMaxFieldLength())
	}

	return validationError.ErrorOrNil()
}

// ValidateProject validates a project and all of its activities. Activity
// names must be unique within the project and belong to it.
func (cv *CatalogValidator) ValidateProject(p domain.ProjectConfig) error {
	validationError := NewValidationError()

	cv.checkProjectID(validationError, p.ProjectID)
	cv.checkName(validationError, "name", p.Name)

	if !cv.validator.IsValidEntryType(p.Type) {
		validationError.AddInvalidValueError("type", string(p.Type), "must be work or absence")
	}

	seen := make(map[string]bool, len(p.Activities))
	for _, a := range p.Activities {
		validationError.Merge(cv.ValidateActivity(a))
		if a.ProjectID != p.ProjectID {
			validationError.AddInvalidValueError("activity.project_id", a.ProjectID, "must match project "+p.ProjectID)
		}
		if seen[a.Activity] {
			validationError.AddDuplicateError("activity", a.Activity)
		}
		seen[a.Activity] = true
	}

	return validationError.ErrorOrNil()
}

func (cv *CatalogValidator) checkProjectID(ve *ValidationError, id string) {
	if !cv.validator.IsNonEmptyString(id) {
		ve.AddRequiredError("project_id")
		return
	}
	if !cv.validator.IsValidProjectID(id) {
		ve.AddInvalidFormatError("project_id", id, "no whitespace")
	}
}

func (cv *CatalogValidator) checkName(ve *ValidationError, field, value string) {
	if !cv.validator.IsNonEmptyString(value) {
		ve.AddRequiredError(field)
		return
	}
	if !cv.validator.IsValidFieldLength(value) {
		ve.AddInvalidLengthError(field, value, cv.validator.getMaxFieldLength())
	}
}
