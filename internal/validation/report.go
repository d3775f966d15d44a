// Package validation checks report form input before it reaches storage.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted date format (MM/DD/YYYY).
const DateLayout = "01/02/2006"

var (
	ErrInvalidReport     = errors.New("invalid report")
	ErrLocationRequired  = fmt.Errorf("%w: location is required", ErrInvalidReport)
	ErrWasteTypeRequired = fmt.Errorf("%w: waste type is required", ErrInvalidReport)
	ErrInvalidDate       = fmt.Errorf("%w: date must be MM/DD/YYYY", ErrInvalidReport)
)

// ValidateReport requires a non-blank location and waste type. The date is
// optional; when present it must parse as MM/DD/YYYY with two-digit month
// and day.
func ValidateReport(location, wasteType, date string) error {
	if strings.TrimSpace(location) == "" {
		return ErrLocationRequired
	}
	if strings.TrimSpace(wasteType) == "" {
		return ErrWasteTypeRequired
	}

	if d := strings.TrimSpace(date); d != "" {
		if _, err := time.Parse(DateLayout, d); err != nil {
			return ErrInvalidDate
		}
	}

	return nil
}

func Valid(location, wasteType, date string) bool {
	return ValidateReport(location, wasteType, date) == nil
}
