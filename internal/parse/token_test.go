package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Token
	}{
		{name: "empty", raw: "", want: Token{Kind: Positional, Raw: ""}},
		{name: "dash alone", raw: "-", want: Token{Kind: Positional, Raw: "-"}},
		{name: "plain", raw: "build", want: Token{Kind: Positional, Raw: "build"}},
		{name: "separator", raw: "--", want: Token{Kind: Separator, Raw: "--"}},
		{name: "long", raw: "--verbose", want: Token{Kind: LongOption, Raw: "--verbose", Name: "verbose"}},
		{name: "long equals", raw: "--name=value", want: Token{Kind: LongOption, Raw: "--name=value", Name: "name", Value: "value", HasValue: true}},
		{name: "long colon", raw: "--name:a=b", want: Token{Kind: LongOption, Raw: "--name:a=b", Name: "name", Value: "a=b", HasValue: true}},
		{name: "long empty value", raw: "--name=", want: Token{Kind: LongOption, Raw: "--name=", Name: "name", Value: "", HasValue: true}},
		{name: "long space", raw: "--name value", want: Token{Kind: LongOption, Raw: "--name value", Name: "name", Value: "value", HasValue: true}},
		{name: "short", raw: "-v", want: Token{Kind: ShortOption, Raw: "-v", Name: "v"}},
		{name: "short cluster", raw: "-abc", want: Token{Kind: ShortOption, Raw: "-abc", Name: "abc"}},
		{name: "short value", raw: "-n=5", want: Token{Kind: ShortOption, Raw: "-n=5", Name: "n", Value: "5", HasValue: true}},
		{name: "symbol", raw: "-?", want: Token{Kind: ShortOption, Raw: "-?", Name: "?"}},
		{name: "negative number", raw: "-1", want: Token{Kind: ShortOption, Raw: "-1", Name: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw, DefaultSeparators))
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	for _, raw := range []string{"--a=b", "-xyz", "--", "pos", "-"} {
		first := Classify(raw, DefaultSeparators)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Classify(raw, DefaultSeparators))
		}
	}
}

func TestClassify_CustomSeparators(t *testing.T) {
	tok := Classify("--name:value", []rune{'='})
	assert.Equal(t, "name:value", tok.Name)
	assert.False(t, tok.HasValue)

	tok = Classify("--name=value", []rune{'='})
	assert.Equal(t, "name", tok.Name)
	assert.Equal(t, "value", tok.Value)
}

func TestSpaceSeparated(t *testing.T) {
	assert.True(t, SpaceSeparated(DefaultSeparators))
	assert.False(t, SpaceSeparated([]rune{':', '='}))
	assert.False(t, SpaceSeparated(nil))
}
