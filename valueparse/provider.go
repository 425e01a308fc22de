// Package valueparse converts raw command-line strings into typed values.
package valueparse

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/cmdline/errs"
)

// Func parses raw into a value of the type it was registered for
type Func func(raw string) (any, error)

// Provider maps types to parse functions
type Provider struct {
	mu      sync.RWMutex
	parsers map[reflect.Type]Func
}

// NewProvider creates a Provider with parsers for strings, booleans, numbers,
// durations, times and URLs
func NewProvider() *Provider {
	p := &Provider{parsers: map[reflect.Type]Func{}}

	Register(p, func(s string) (string, error) { return s, nil })
	Register(p, ParseBool)
	Register(p, func(s string) (int, error) { v, err := strconv.ParseInt(s, 0, strconv.IntSize); return int(v), err })
	Register(p, func(s string) (int8, error) { v, err := strconv.ParseInt(s, 0, 8); return int8(v), err })
	Register(p, func(s string) (int16, error) { v, err := strconv.ParseInt(s, 0, 16); return int16(v), err })
	Register(p, func(s string) (int32, error) { v, err := strconv.ParseInt(s, 0, 32); return int32(v), err })
	Register(p, func(s string) (int64, error) { return strconv.ParseInt(s, 0, 64) })
	Register(p, func(s string) (uint, error) { v, err := strconv.ParseUint(s, 0, strconv.IntSize); return uint(v), err })
	Register(p, func(s string) (uint8, error) { v, err := strconv.ParseUint(s, 0, 8); return uint8(v), err })
	Register(p, func(s string) (uint16, error) { v, err := strconv.ParseUint(s, 0, 16); return uint16(v), err })
	Register(p, func(s string) (uint32, error) { v, err := strconv.ParseUint(s, 0, 32); return uint32(v), err })
	Register(p, func(s string) (uint64, error) { return strconv.ParseUint(s, 0, 64) })
	Register(p, func(s string) (float32, error) { v, err := strconv.ParseFloat(s, 32); return float32(v), err })
	Register(p, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	Register(p, time.ParseDuration)
	Register(p, func(s string) (time.Time, error) { return dateparse.ParseAny(s) })
	Register(p, url.Parse)

	return p
}

// ParseBool accepts the strconv.ParseBool forms plus on/off and yes/no
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes", "y":
		return true, nil
	case "off", "no", "n":
		return false, nil
	}
	return strconv.ParseBool(s)
}

// Register adds or replaces the parser for T
func Register[T any](p *Provider, fn func(string) (T, error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.parsers[reflect.TypeFor[T]()] = func(raw string) (any, error) {
		return fn(raw)
	}
}

// Lookup returns the parser registered for t
func (p *Provider) Lookup(t reflect.Type) (Func, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	fn, ok := p.parsers[t]
	return fn, ok
}

// Supports reports whether values of t, or slices of a supported type, can be parsed
func (p *Provider) Supports(t reflect.Type) bool {
	if _, ok := p.Lookup(t); ok {
		return true
	}
	if t.Kind() == reflect.Slice {
		_, ok := p.Lookup(t.Elem())
		return ok
	}
	return false
}

// Parse converts raw into a value of type t
func (p *Provider) Parse(t reflect.Type, raw string) (any, error) {
	fn, ok := p.Lookup(t)
	if !ok {
		return nil, errs.ErrUnsupportedType.WithArgs(t.String())
	}
	v, err := fn(raw)
	if err != nil {
		return nil, errs.ErrParseValue.WithArgs(raw, t.String()).Wrap(err)
	}
	return v, nil
}

// Into stores values into target, which must be a non-nil pointer. Slice targets receive
// one element per value; scalar targets receive the last value. Without values target is untouched.
func (p *Provider) Into(values []string, target any) error {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errs.ErrBindNil
	}
	if len(values) == 0 {
		return nil
	}
	dst := rv.Elem()

	if _, direct := p.Lookup(dst.Type()); !direct && dst.Kind() == reflect.Slice {
		out := reflect.MakeSlice(dst.Type(), 0, len(values))
		for _, raw := range values {
			v, err := p.Parse(dst.Type().Elem(), raw)
			if err != nil {
				return err
			}
			out = reflect.Append(out, reflect.ValueOf(v))
		}
		dst.Set(out)
		return nil
	}

	v, err := p.Parse(dst.Type(), values[len(values)-1])
	if err != nil {
		return err
	}
	dst.Set(reflect.ValueOf(v))
	return nil
}

// As converts values into a T
func As[T any](p *Provider, values []string) (T, error) {
	var out T
	err := p.Into(values, &out)
	return out, err
}
