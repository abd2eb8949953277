package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Error is a user-facing rejection of a single form field.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// OptionalNumber is either absent or a finite number. The zero value is absent.
type OptionalNumber struct {
	value   float64
	present bool
}

func Number(v float64) OptionalNumber { return OptionalNumber{value: v, present: true} }

// Get returns the number and whether one was supplied.
func (n OptionalNumber) Get() (float64, bool) { return n.value, n.present }

// Float64Ptr returns nil when absent.
func (n OptionalNumber) Float64Ptr() *float64 {
	if !n.present {
		return nil
	}
	v := n.value
	return &v
}

// IntPtr returns nil when absent. Callers must have checked the value is integral.
func (n OptionalNumber) IntPtr() *int {
	if !n.present {
		return nil
	}
	v := int(n.value)
	return &v
}

// ParseOptionalNumber coerces a raw form value. A nil or blank value is
// absent, not an error.
func ParseOptionalNumber(raw *string, label string) (OptionalNumber, error) {
	if raw == nil {
		return OptionalNumber{}, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return OptionalNumber{}, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return OptionalNumber{}, Errorf("%s must be a number.", label)
	}
	return Number(v), nil
}

// ValidateStarRating accepts an absent value or an integer from 1 to 5.
func ValidateStarRating(n OptionalNumber, label string) error {
	v, ok := n.Get()
	if !ok {
		return nil
	}
	if v != math.Trunc(v) || v < 1 || v > 5 {
		return Errorf("%s must be an integer between 1 and 5.", label)
	}
	return nil
}

// NullableString trims raw and maps nil or blank to nil.
func NullableString(raw *string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Checkbox follows HTML form semantics: a checked box posts "on", an
// unchecked one posts nothing.
func Checkbox(raw *string) bool {
	return raw != nil && *raw == "on"
}
