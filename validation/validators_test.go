package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/napalu/cmdline/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	tests := []struct {
		name    string
		v       ValidatorFunc
		value   string
		wantErr error
	}{
		{"not empty ok", NotEmpty(), "x", nil},
		{"not empty fail", NotEmpty(), "", errs.ErrNotEmpty},
		{"min length ok", MinLength(2), "ab", nil},
		{"min length counts runes", MinLength(4), "café", nil},
		{"min length fail", MinLength(3), "ab", errs.ErrMinLength},
		{"max length fail", MaxLength(2), "abc", errs.ErrMaxLength},
		{"integer ok", Integer(), "-42", nil},
		{"integer fail", Integer(), "4.2", errs.ErrInteger},
		{"float ok", Float(), "4.2", nil},
		{"float fail", Float(), "x", errs.ErrFloat},
		{"range ok", Range(1, 10), "10", nil},
		{"range fail", Range(1, 10), "11", errs.ErrRange},
		{"range not a number", Range(1, 10), "ten", errs.ErrFloat},
		{"one of ok", OneOf("a", "b"), "b", nil},
		{"one of fail", OneOf("a", "b"), "c", errs.ErrOneOf},
		{"regex ok", Regex(`^v\d+$`), "v12", nil},
		{"regex fail", Regex(`^v\d+$`), "12", errs.ErrRegex},
		{"email ok", Email(), "dev@example.com", nil},
		{"email fail", Email(), "nope", errs.ErrEmail},
		{"url ok", URL(), "https://example.com/x", nil},
		{"url scheme ok", URL("http", "https"), "HTTPS://example.com", nil},
		{"url scheme fail", URL("https"), "ftp://example.com", errs.ErrURL},
		{"url no host", URL(), "example", errs.ErrURL},
		{"file exists ok", FileExists(), file, nil},
		{"file exists dir", FileExists(), dir, errs.ErrFileExists},
		{"dir exists ok", DirExists(), dir, nil},
		{"dir exists file", DirExists(), file, errs.ErrDirExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v(tt.value)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestComposition(t *testing.T) {
	all := All(NotEmpty(), Integer(), Range(0, 5))
	assert.NoError(t, all("3"))
	assert.ErrorIs(t, all(""), errs.ErrNotEmpty)
	assert.ErrorIs(t, all("9"), errs.ErrRange)

	anyOf := Any(OneOf("auto"), Integer())
	assert.NoError(t, anyOf("auto"))
	assert.NoError(t, anyOf("7"))
	err := anyOf("x")
	assert.ErrorIs(t, err, errs.ErrAnyFailed)
	assert.ErrorIs(t, err, errs.ErrInteger)
}

func TestFieldValidators(t *testing.T) {
	assert.NoError(t, Each(Integer())("count", nil))
	assert.NoError(t, Each(Integer())("count", []string{"1", "2"}))
	assert.ErrorIs(t, Each(Integer())("count", []string{"1", "x"}), errs.ErrInteger)

	assert.NoError(t, Required()("--name", []string{""}))
	err := Required()("--name", nil)
	assert.ErrorIs(t, err, errs.ErrRequired)
	assert.Equal(t, "The --name field is required.", err.Error())

	assert.NoError(t, MaxCount(2)("x", []string{"a", "b"}))
	assert.ErrorIs(t, MaxCount(1)("x", []string{"a", "b"}), errs.ErrMaxCount)
}
