package solver

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is wrapped by every input validation failure
var ErrInvalidInput = errors.New("invalid solver input")

var validate = validator.New()

// ValidateInput checks the solver input and returns the first problem found.
//
// Structural checks (struct tags):
//   - Section and staff IDs are non-empty
//   - RequiredHours and StaffHours are not negative
//   - Preference ranks are PREFER or STRONGLY_PREFER
//
// Referential checks:
//   - Section IDs and staff IDs are unique
//   - Every locked assignment references a staff member present in StaffPreferences
//   - No staff member is locked to more than one section
func ValidateInput(data SolverData) error {
	if err := validate.Struct(data); err != nil {
		return describeValidationError(err)
	}

	sectionIDs := make(map[string]bool, len(data.Sections))
	for _, section := range data.Sections {
		if sectionIDs[section.ID] {
			return fmt.Errorf("%w: duplicate section %q", ErrInvalidInput, section.ID)
		}
		sectionIDs[section.ID] = true
	}

	staffIDs := make(map[string]bool, len(data.StaffPreferences))
	for _, pref := range data.StaffPreferences {
		if staffIDs[pref.StaffID] {
			return fmt.Errorf("%w: duplicate staff preference for %q", ErrInvalidInput, pref.StaffID)
		}
		staffIDs[pref.StaffID] = true
	}

	lockedTo := make(map[string]string)
	for _, section := range data.Sections {
		for _, staffID := range section.LockedStaffIDs() {
			if !staffIDs[staffID] {
				return fmt.Errorf("%w: staff %q referenced by locked assignment in section %q but not found",
					ErrInvalidInput, staffID, section.ID)
			}
			if previous, exists := lockedTo[staffID]; exists {
				return fmt.Errorf("%w: staff %q is locked to both section %q and section %q",
					ErrInvalidInput, staffID, previous, section.ID)
			}
			lockedTo[staffID] = section.ID
		}
	}

	return nil
}

// describeValidationError turns the first struct-tag failure into a readable message
func describeValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fieldErr := validationErrors[0]
	switch fieldErr.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, fieldErr.Namespace())
	case "min":
		return fmt.Errorf("%w: %s must be at least %s (got %v)",
			ErrInvalidInput, fieldErr.Namespace(), fieldErr.Param(), fieldErr.Value())
	case "oneof":
		return fmt.Errorf("%w: %s must be one of [%s] (got %v)",
			ErrInvalidInput, fieldErr.Namespace(), fieldErr.Param(), fieldErr.Value())
	default:
		return fmt.Errorf("%w: %s failed %q check", ErrInvalidInput, fieldErr.Namespace(), fieldErr.Tag())
	}
}
