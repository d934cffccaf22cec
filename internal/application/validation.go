package application

import (
	"fmt"
	"strings"

	"termnotes/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateSeverity checks that sev is one of the defined levels
func ValidateSeverity(sev domain.Severity) error {
	if sev < domain.SeverityInfo || sev > domain.SeverityCritical {
		return &ValidationError{
			Field:   "severity",
			Message: fmt.Sprintf("invalid severity %d", int(sev)),
		}
	}
	return nil
}

// ValidateTag trims tag and checks that it is a single non-empty word
// without commas, which would be ambiguous in the rendered tag list
func ValidateTag(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if err := ValidateRequired("tag", tag); err != nil {
		return "", err
	}
	if strings.ContainsAny(tag, ", \t\n") {
		return "", &ValidationError{
			Field:   "tag",
			Message: fmt.Sprintf("tag %q must be a single word without commas", tag),
		}
	}
	return tag, nil
}
