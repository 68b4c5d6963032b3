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
	require.Contains(t, err.Error(), "theme.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("theme.yaml", 0, stdErrors.New("no such file"))
	require.Contains(t, err.Error(), "theme.yaml: no such file")
	require.NotContains(t, err.Error(), ":0:")
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("palette.primary", "invalid hex color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "palette.primary", validationErr.Field)
	require.Contains(t, validationErr.Message, "invalid hex color")
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("", "theme is nil", nil)
	require.Equal(t, "validation error: theme is nil", err.Error())
}
