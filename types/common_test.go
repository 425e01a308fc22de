package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionType_RoundTrip(t *testing.T) {
	for _, ot := range []OptionType{MultipleValue, SingleValue, SingleOrNoValue, NoValue} {
		parsed, ok := ParseOptionType(ot.String())
		assert.True(t, ok, ot.String())
		assert.Equal(t, ot, parsed)
	}

	_, ok := ParseOptionType("many")
	assert.False(t, ok)
	assert.True(t, SingleValue.RequiresValue())
	assert.True(t, MultipleValue.RequiresValue())
	assert.False(t, SingleOrNoValue.RequiresValue())
	assert.False(t, NoValue.RequiresValue())
}

func TestResponseFileHandling_RoundTrip(t *testing.T) {
	for _, h := range []ResponseFileHandling{ResponseFileDisabled, ResponseFileSpaceSeparated, ResponseFileLineSeparated} {
		parsed, ok := ParseResponseFileHandling(h.String())
		assert.True(t, ok)
		assert.Equal(t, h, parsed)
	}

	_, ok := ParseResponseFileHandling("tabs")
	assert.False(t, ok)
}

func TestStringComparison_Equal(t *testing.T) {
	assert.True(t, Ordinal.Equal("name", "name"))
	assert.False(t, Ordinal.Equal("name", "Name"))
	assert.True(t, OrdinalIgnoreCase.Equal("name", "NAME"))

	c, ok := ParseStringComparison("ignore-case")
	assert.True(t, ok)
	assert.Equal(t, OrdinalIgnoreCase, c)
	_, ok = ParseStringComparison("fuzzy")
	assert.False(t, ok)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "help", StoppedForHelp.String())
	assert.Equal(t, "version", StoppedForVersion.String())
}
