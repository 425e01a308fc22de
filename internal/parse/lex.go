package parse

import (
	"fmt"

	"github.com/google/shlex"
)

// Split splits a command line into arguments using POSIX shell quoting rules
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("split %q: %w", s, err)
	}
	if args == nil {
		args = []string{}
	}

	return args, nil
}
