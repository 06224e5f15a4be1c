package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("theme.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "theme.yaml")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("theme.yaml", 0, fmt.Errorf("not found"))
	require.NotContains(t, err.Error(), ":0:")
}

func TestValidationErrorReportsField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("colors.primary.base", "must be a hex colour", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "colors.primary.base", validationErr.Field)
	require.Contains(t, validationErr.Message, "must be a hex colour")
}

func TestValidationErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("bad value")
	err := NewValidationError("spacing.padding", "out of range", underlying)
	require.True(t, stdErrors.Is(err, underlying))
}
