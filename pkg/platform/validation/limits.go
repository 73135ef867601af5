package validation

import (
	"fmt"

	dErrors "user-registry/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed request body size (64 KB).
	// Sufficient for JSON APIs while preventing memory exhaustion attacks.
	MaxBodySize = 64 * 1024
)

// String element length limits
const (
	// MaxNameLength is the maximum length of a first or last name.
	MaxNameLength = 100

	// MaxBirthNumberLength covers the canonical form plus slack for raw input.
	// Anything longer is rejected before the format check even runs.
	MaxBirthNumberLength = 16
)

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}
