package validator

import (
	"errors"
	"fmt"
)

// Common validation errors that can be checked with errors.Is.
var (
	// ErrMalformed is returned when a value breaks a structural rule (length, charset, prefix).
	ErrMalformed = errors.New("validator: malformed value")

	// ErrReserved is returned when a well-formed value collides with a reserved word.
	ErrReserved = errors.New("validator: reserved value")

	// ErrUnknownChatType is returned when a chat/account type tag is outside the closed set.
	ErrUnknownChatType = errors.New("validator: unknown chat type")

	// ErrUnknownField is returned when a rule set has no rule for the requested field.
	ErrUnknownField = errors.New("validator: unknown field")
)

// ValidationError reports user input that violates a platform rule.
// Value always holds the raw input, before any normalization.
type ValidationError struct {
	// Platform is the rule set that rejected the value (e.g., "telegram", "youtube").
	Platform string

	// Field is the kind of value that was checked (e.g., "id", "username").
	Field string

	// Reason is a human-readable description of the violated rule.
	Reason string

	// Value is the offending input.
	Value string

	// Err is the underlying sentinel (ErrMalformed or ErrReserved).
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %q: %s", e.Platform, e.Field, e.Value, e.Reason)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ConfigError reports a caller defect, such as an out-of-range control value.
// It is never produced for bad user input and retrying with the same arguments will not help.
type ConfigError struct {
	Platform string
	Field    string
	Value    string
	Err      error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Platform == "" {
		return fmt.Sprintf("%s: %v: %q", e.Field, e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %s: %v: %q", e.Platform, e.Field, e.Err, e.Value)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewMalformedError creates a ValidationError for a structurally invalid value.
func NewMalformedError(platform, field, reason, value string) error {
	return &ValidationError{
		Platform: platform,
		Field:    field,
		Reason:   reason,
		Value:    value,
		Err:      ErrMalformed,
	}
}

// NewReservedError creates a ValidationError for a reserved value.
func NewReservedError(platform, field, reason, value string) error {
	return &ValidationError{
		Platform: platform,
		Field:    field,
		Reason:   reason,
		Value:    value,
		Err:      ErrReserved,
	}
}

// NewUnknownChatTypeError creates a ConfigError for a chat type outside the closed set.
func NewUnknownChatTypeError(platform, field, chatType string) error {
	return &ConfigError{
		Platform: platform,
		Field:    field,
		Value:    chatType,
		Err:      ErrUnknownChatType,
	}
}

// NewUnknownFieldError creates a ConfigError for a field a rule set does not handle.
func NewUnknownFieldError(platform, field string) error {
	return &ConfigError{
		Platform: platform,
		Field:    field,
		Value:    field,
		Err:      ErrUnknownField,
	}
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConfigError reports whether err is (or wraps) a *ConfigError.
func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}
