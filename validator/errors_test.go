package validator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorMessage(t *testing.T) {
	err := NewMalformedError("telegram", "id", "too short", "abc")
	assert.Equal(t, `telegram: id "abc": too short`, err.Error())
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.False(t, errors.Is(err, ErrReserved))
}

func TestReservedErrorKeepsRawValue(t *testing.T) {
	err := NewReservedError("youtube", "username", "reserved", "YouTube")

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "YouTube", verr.Value)
	assert.True(t, errors.Is(err, ErrReserved))
}

func TestConfigErrorIsDistinct(t *testing.T) {
	err := NewUnknownChatTypeError("telegram", "description", "supergroup")

	assert.True(t, IsConfigError(err))
	assert.False(t, IsValidationError(err))
	assert.True(t, errors.Is(err, ErrUnknownChatType))
	assert.Contains(t, err.Error(), "supergroup")

	err = NewUnknownFieldError("youtube", "bio")
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.False(t, IsValidationError(err))
}

func TestConfigErrorWithoutPlatform(t *testing.T) {
	err := &ConfigError{Field: "plugins", Value: "", Err: errors.New("no platform enabled")}
	assert.Equal(t, `plugins: no platform enabled: ""`, err.Error())
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("batch item 3: %w", NewMalformedError("telegram", "command", "bad", "/start"))
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsConfigError(wrapped))
	assert.False(t, IsValidationError(nil))
	assert.False(t, IsConfigError(errors.New("plain")))
}
