// Package env abstracts access to environment variables so option fallbacks can be tested.
package env

import "os"

// Resolver defines an interface for environment resolution.
type Resolver interface {
	// Lookup returns the value of the variable named by key and whether it is present.
	Lookup(key string) (string, bool)

	// Environ returns the environment as "key=value" pairs, like os.Environ.
	Environ() []string
}

// DefaultEnvResolver reads the process environment
type DefaultEnvResolver struct{}

// Lookup returns the value of the environment variable associated with the given key.
func (r *DefaultEnvResolver) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Environ returns a copy of strings representing the environment, as "key=value" pairs.
func (r *DefaultEnvResolver) Environ() []string {
	return os.Environ()
}

// MapResolver resolves variables from a fixed map
type MapResolver map[string]string

// Lookup returns the mapped value for key
func (m MapResolver) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Environ returns the map contents as "key=value" pairs in no particular order
func (m MapResolver) Environ() []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}
