package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "simple command", input: "build -v", want: []string{"build", "-v"}},
		{name: "quoted arguments", input: `--name "hello world"`, want: []string{"--name", "hello world"}},
		{name: "single quotes", input: `'a b' c`, want: []string{"a b", "c"}},
		{name: "multiple spaces", input: "a   b", want: []string{"a", "b"}},
		{name: "empty string", input: "", want: []string{}},
		{name: "unterminated quote", input: `"abc`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
