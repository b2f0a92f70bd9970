package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_InvalidPatternReturnsSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Compile([]string{"valid", "[unclosed"}, false)
	require.Error(t, err)

	var synErr *SyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Equal(t, "[unclosed", synErr.Pattern)
	assert.Contains(t, err.Error(), "[unclosed")
	assert.Error(t, synErr.Unwrap())
}

func TestCompile_EmptyInput(t *testing.T) {
	t.Parallel()

	set, err := Compile(nil, false)
	require.NoError(t, err)

	assert.True(t, set.Empty())
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Match("anything"))
}

func TestMatch_CaseSensitiveByDefault(t *testing.T) {
	t.Parallel()

	set, err := Compile([]string{"Game"}, false)
	require.NoError(t, err)

	assert.True(t, set.Match("My Game Window"))
	assert.False(t, set.Match("my game window"))
}

func TestMatch_CaseInsensitive(t *testing.T) {
	t.Parallel()

	set, err := Compile([]string{"Game"}, true)
	require.NoError(t, err)

	assert.True(t, set.Match("my game window"))
	assert.True(t, set.Match("MY GAME WINDOW"))
	assert.True(t, set.CaseInsensitive())
}

func TestMatch_AnyPatternSuffices(t *testing.T) {
	t.Parallel()

	set, err := Compile([]string{"Notepad", "Calculator"}, false)
	require.NoError(t, err)

	assert.True(t, set.Match("Untitled - Notepad"))
	assert.True(t, set.Match("Calculator"))
	assert.False(t, set.Match("Paint"))
}

func TestMatch_UnanchoredSearch(t *testing.T) {
	t.Parallel()

	set, err := Compile([]string{"^Exact$"}, false)
	require.NoError(t, err)

	assert.True(t, set.Match("Exact"))
	assert.False(t, set.Match("Not Exact Here"))

	substr, err := Compile([]string{"part"}, false)
	require.NoError(t, err)
	assert.True(t, substr.Match("counterparty"))
}
