package fiscal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidYear is matched by every *InvalidYearError.
	ErrInvalidYear = errors.New("invalid year")
	// ErrInvalidQuarter is matched by every *InvalidQuarterError.
	ErrInvalidQuarter = errors.New("invalid quarter")
)

// InvalidYearError reports a year string that is malformed or out of range.
type InvalidYearError struct {
	Input    string
	BaseYear int
	MaxYear  int
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("invalid year %q: must be a 4-digit year between %d and %d", e.Input, e.BaseYear, e.MaxYear)
}

func (e *InvalidYearError) Is(target error) bool { return target == ErrInvalidYear }

// InvalidQuarterError reports a quarter string that is not one of 0..4.
type InvalidQuarterError struct {
	Input string
}

func (e *InvalidQuarterError) Error() string {
	return fmt.Sprintf("invalid quarter %q: must be a single digit %d..%d", e.Input, AllQuarters, YearQuarters)
}

func (e *InvalidQuarterError) Is(target error) bool { return target == ErrInvalidQuarter }
