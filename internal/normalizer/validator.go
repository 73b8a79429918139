package normalizer

import (
	"errors"
	"fmt"
	"time"

	"holidaygen/internal/models"
)

// Validation errors.
var (
	ErrMalformedLabel = errors.New("malformed holiday label")
	ErrDateOutOfYear  = errors.New("holiday date outside of processed year")
)

// MalformedLabelError reports a raw label that produced an empty name.
type MalformedLabelError struct {
	Label string
	Date  time.Time
}

func (e *MalformedLabelError) Error() string {
	return fmt.Sprintf("%s %q on %s: empty name after normalization",
		ErrMalformedLabel, e.Label, e.Date.Format(time.DateOnly))
}

func (e *MalformedLabelError) Unwrap() error {
	return ErrMalformedLabel
}

// Validator checks normalized holidays before they leave the normalizer.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateName returns a *MalformedLabelError when name is empty.
func (v *Validator) ValidateName(name, rawLabel string, date time.Time) error {
	if name == "" {
		return &MalformedLabelError{Label: rawLabel, Date: date}
	}

	return nil
}

// ValidateHoliday checks that h carries a name and a date inside year.
func (v *Validator) ValidateHoliday(year int, h models.CanonicalHoliday) error {
	if h.Name == "" {
		return &MalformedLabelError{Date: h.Date}
	}

	if h.Date.Year() != year {
		return fmt.Errorf("%w: %q on %s, year %d",
			ErrDateOutOfYear, h.Name, h.Date.Format(time.DateOnly), year)
	}

	return nil
}
