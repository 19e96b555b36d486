package hub

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ValidationError represents a validation failure with context.
type ValidationError struct {
	Field   string // Field path (e.g., "creators[0].name")
	Code    string // Error code (e.g., "required", "invalid_format")
	Message string // Human-readable message
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult contains all validation errors for a record.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Error returns a combined error message, or nil if valid.
func (r *ValidationResult) Error() error {
	if r.IsValid() {
		return nil
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

// ValidationOptions configures validation behavior.
//
// Mapping never fails on odd data, so these checks are a reporting aid for the
// validate command rather than a gate on conversion.
type ValidationOptions struct {
	// RequireID requires a control number (001)
	RequireID bool
	// RequireTitle requires a title on bibliographic records
	RequireTitle bool
	// RequireLabel requires a heading on authority records
	RequireLabel bool
	// ValidateIdentifierFormats checks ISBN and ISSN shapes
	ValidateIdentifierFormats bool
	// ValidateDates checks that years fall in a plausible range
	ValidateDates bool
}

// DefaultValidationOptions returns standard validation options.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		RequireID:                 true,
		RequireTitle:              false,
		RequireLabel:              false,
		ValidateIdentifierFormats: true,
		ValidateDates:             true,
	}
}

// StrictValidationOptions returns strict validation for production use.
func StrictValidationOptions() ValidationOptions {
	return ValidationOptions{
		RequireID:                 true,
		RequireTitle:              true,
		RequireLabel:              true,
		ValidateIdentifierFormats: true,
		ValidateDates:             true,
	}
}

// MaterialUnknown is the material of records whose leader or 007 is too short
// to classify.
const MaterialUnknown = "Unknown"

var issnPattern = regexp.MustCompile(`^\d{4}-\d{3}[\dX]$`)

// Validate checks a mapped record according to the given options.
func Validate(record Record, opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{}

	if opts.RequireID && strings.TrimSpace(record.RecordID()) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "id",
			Code:    "required",
			Message: "control number (001) is required",
		})
	}

	switch r := record.(type) {
	case *Bibliographic:
		validateBibliographic(r, opts, result)
	case *Authority:
		if opts.RequireLabel && strings.TrimSpace(r.Label) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "label",
				Code:    "required",
				Message: "authority heading is required",
			})
		}
	case *Holdings:
		if r.BibliographicRecord == "" {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "bibliographic_record",
				Code:    "missing_link",
				Message: "holdings record has no 004 link to a bibliographic record",
			})
		}
	}

	return result
}

func validateBibliographic(r *Bibliographic, opts ValidationOptions, result *ValidationResult) {
	if opts.RequireTitle && strings.TrimSpace(r.Title) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "title",
			Code:    "required",
			Message: "title is required",
		})
	}

	if opts.ValidateIdentifierFormats {
		for i, isbn := range r.ISBNs {
			cleaned := strings.ReplaceAll(strings.ReplaceAll(isbn, "-", ""), " ", "")
			if len(cleaned) != 10 && len(cleaned) != 13 {
				result.Errors = append(result.Errors, ValidationError{
					Field:   fmt.Sprintf("isbns[%d]", i),
					Code:    "invalid_format",
					Message: fmt.Sprintf("invalid ISBN format: %s (expected 10 or 13 digits)", isbn),
				})
			}
		}
		for i, issn := range r.ISSNs {
			value := strings.ReplaceAll(issn, "-", "")
			if len(value) == 8 {
				value = value[:4] + "-" + value[4:]
			}
			if !issnPattern.MatchString(value) {
				result.Errors = append(result.Errors, ValidationError{
					Field:   fmt.Sprintf("issns[%d]", i),
					Code:    "invalid_format",
					Message: fmt.Sprintf("invalid ISSN format: %s (expected XXXX-XXXX)", issn),
				})
			}
		}
	}

	if opts.ValidateDates && r.Year != 0 {
		currentYear := time.Now().Year()
		if r.Year < 1000 || r.Year > currentYear+10 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "year",
				Code:    "out_of_range",
				Message: fmt.Sprintf("year %d is outside reasonable range (1000-%d)", r.Year, currentYear+10),
			})
		}
	}

	for i, c := range r.Creators {
		if strings.TrimSpace(DisplayName(c)) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("creators[%d]", i),
				Code:    "required",
				Message: "creator must have a name",
			})
		}
	}

	if r.Material == "" || r.Material == MaterialUnknown {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "material",
			Code:    "unclassified",
			Message: "material type could not be determined from leader, 007 and 008",
		})
	}
}
