package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("fruit.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "fruit.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: fruit.yaml:7: did not find expected key", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: missing.yaml: no such file", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("options[2].value", "duplicate option value \"c\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "options[2].value", validationErr.Field)
	require.Contains(t, err.Error(), "duplicate option value")
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("", "definition is nil", nil)
	require.Equal(t, "validation error: definition is nil", err.Error())
}

func TestSourceErrorIncludesSourceName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("repository does not exist")
	err := NewSourceError("git:/tmp/nowhere", underlying)

	var sourceErr *SourceError
	require.ErrorAs(t, err, &sourceErr)
	require.Equal(t, "git:/tmp/nowhere", sourceErr.Source)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "git:/tmp/nowhere")
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var sourceErr *SourceError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, sourceErr.Error())
	require.Nil(t, sourceErr.Unwrap())
}
