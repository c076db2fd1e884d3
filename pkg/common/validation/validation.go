// Package validation provides argument validation helpers for streamkit.
package validation

import (
	skerrors "github.com/streamkit-go/streamkit/pkg/common/errors"
)

// NotNil validates that an interface value is not nil.
// Returns a KindValidation error if the value is nil.
func NotNil(module, field string, value interface{}) error {
	if value == nil {
		return skerrors.Newf(skerrors.KindValidation, "%s: invalid %s=<nil> (cannot be nil)", module, field)
	}
	return nil
}

// NotEmpty validates that a string value is not empty.
// Returns a KindValidation error if the string is empty.
func NotEmpty(module, field, value string) error {
	if value == "" {
		return skerrors.Newf(skerrors.KindValidation, "%s: invalid %s= (cannot be empty)", module, field)
	}
	return nil
}

// Positive validates that an integer value is positive (> 0).
// Returns a KindValidation error if the value is not positive.
func Positive(module, field string, value int) error {
	if value <= 0 {
		return skerrors.Newf(skerrors.KindValidation, "%s: invalid %s=%d (must be positive)", module, field, value)
	}
	return nil
}

// NonNegative validates that an integer value is non-negative (>= 0).
// Returns a KindValidation error if the value is negative.
func NonNegative(module, field string, value int) error {
	if value < 0 {
		return skerrors.Newf(skerrors.KindValidation, "%s: invalid %s=%d (cannot be negative)", module, field, value)
	}
	return nil
}
