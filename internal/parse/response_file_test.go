package parse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/napalu/cmdline/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitResponseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "plain", line: "--count 3", want: []string{"--count", "3"}},
		{name: "double quotes", line: `foo "bar baz"`, want: []string{"foo", "bar baz"}},
		{name: "single quotes", line: `'a b' c`, want: []string{"a b", "c"}},
		{name: "inline comment", line: `foo "bar baz" #comment`, want: []string{"foo", "bar baz"}},
		{name: "hash inside token", line: `a#b`, want: []string{"a#b"}},
		{name: "escaped quote", line: `say \"hi\"`, want: []string{"say", `"hi"`}},
		{name: "backslash kept", line: `C:\temp\x`, want: []string{`C:\temp\x`}},
		{name: "mixed quotes", line: `"it's" 'say "x"'`, want: []string{"it's", `say "x"`}},
		{name: "empty quoted", line: `a "" b`, want: []string{"a", "", "b"}},
		{name: "adjacent quoted", line: `pre"fix suf"fix`, want: []string{"prefix suffix"}},
		{name: "tabs", line: "a\tb", want: []string{"a", "b"}},
		{name: "only comment", line: "# nothing", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitResponseLine(tt.line))
		})
	}
}

func TestParseResponseFile(t *testing.T) {
	t.Run("space separated", func(t *testing.T) {
		got, err := ParseResponseFile("# header\n\n--count 3\r\n  \"two words\" x\n", types.ResponseFileSpaceSeparated)
		require.NoError(t, err)
		assert.Equal(t, []string{"--count", "3", "two words", "x"}, got)
	})

	t.Run("line separated", func(t *testing.T) {
		got, err := ParseResponseFile("foo\nbar\n", types.ResponseFileLineSeparated)
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "bar"}, got)
	})

	t.Run("line separated keeps spaces", func(t *testing.T) {
		got, err := ParseResponseFile("a b  c\r\n#skip\n\n  \n--x=1 2", types.ResponseFileLineSeparated)
		require.NoError(t, err)
		assert.Equal(t, []string{"a b  c", "--x=1 2"}, got)
	})

	t.Run("disabled", func(t *testing.T) {
		_, err := ParseResponseFile("x", types.ResponseFileDisabled)
		assert.Error(t, err)
	})
}

func TestExpandResponseFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "args.rsp"), []byte("--count 3\n"), 0o600))

	got, err := ExpandResponseFile(dir, "args.rsp", types.ResponseFileSpaceSeparated)
	require.NoError(t, err)
	assert.Equal(t, []string{"--count", "3"}, got)

	got, err = ExpandResponseFile("/does/not/matter", filepath.Join(dir, "args.rsp"), types.ResponseFileSpaceSeparated)
	require.NoError(t, err)
	assert.Equal(t, []string{"--count", "3"}, got)

	_, err = ExpandResponseFile(dir, "missing.rsp", types.ResponseFileSpaceSeparated)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
