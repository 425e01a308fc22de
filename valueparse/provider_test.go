package valueparse

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/napalu/cmdline/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Scalars(t *testing.T) {
	p := NewProvider()

	i, err := As[int](p, []string{"42"})
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	hex, err := As[uint16](p, []string{"0x10"})
	require.NoError(t, err)
	assert.Equal(t, uint16(16), hex)

	f, err := As[float64](p, []string{"1.5"})
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	d, err := As[time.Duration](p, []string{"1m30s"})
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	ts, err := As[time.Time](p, []string{"2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.March, ts.Month())

	u, err := As[*url.URL](p, []string{"https://example.com/x"})
	require.NoError(t, err)
	assert.Equal(t, "example.com", u.Host)

	last, err := As[string](p, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", last)
}

func TestProvider_Bool(t *testing.T) {
	p := NewProvider()
	for raw, want := range map[string]bool{"on": true, "true": true, "1": true, "yes": true, "off": false, "false": false, "N": false} {
		got, err := As[bool](p, []string{raw})
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	_, err := As[bool](p, []string{"maybe"})
	assert.ErrorIs(t, err, errs.ErrParseValue)
}

func TestProvider_Slices(t *testing.T) {
	p := NewProvider()

	ints, err := As[[]int](p, []string{"1", "2", "3"})
	require.NoError(t, err)
	if diff := cmp.Diff([]int{1, 2, 3}, ints); diff != "" {
		t.Errorf("ints mismatch (-want +got):\n%s", diff)
	}

	_, err = As[[]int](p, []string{"1", "x"})
	assert.ErrorIs(t, err, errs.ErrParseValue)
}

func TestProvider_Errors(t *testing.T) {
	p := NewProvider()

	_, err := As[complex64](p, []string{"1"})
	assert.ErrorIs(t, err, errs.ErrUnsupportedType)

	assert.ErrorIs(t, p.Into([]string{"1"}, nil), errs.ErrBindNil)
	var i int
	assert.ErrorIs(t, p.Into([]string{"1"}, i), errs.ErrBindNil)

	i = 7
	require.NoError(t, p.Into(nil, &i))
	assert.Equal(t, 7, i)

	_, err = As[int8](p, []string{"300"})
	assert.ErrorIs(t, err, errs.ErrParseValue)
}

func TestProvider_Register(t *testing.T) {
	type level int
	p := NewProvider()
	assert.False(t, p.Supports(reflect.TypeFor[level]()))

	Register(p, func(s string) (level, error) {
		if s == "high" {
			return 2, nil
		}
		return 0, nil
	})
	assert.True(t, p.Supports(reflect.TypeFor[level]()))
	assert.True(t, p.Supports(reflect.TypeFor[[]level]()))

	l, err := As[level](p, []string{"high"})
	require.NoError(t, err)
	assert.Equal(t, level(2), l)
}
