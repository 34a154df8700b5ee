package hijri

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange reports a date component outside the supported range.
	ErrInvalidRange = errors.New("hijri: date out of supported range")

	// ErrClockRead reports that the current date could not be obtained.
	ErrClockRead = errors.New("hijri: cannot read current date")

	// ErrSyntax reports a malformed textual date.
	ErrSyntax = errors.New("hijri: invalid date syntax")
)

// RangeError describes which component of a date was rejected.
// It matches ErrInvalidRange under errors.Is.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("hijri: %s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

func checkRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &RangeError{Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}
