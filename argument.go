package cmdline

import "github.com/napalu/cmdline/internal/util"

// NewArgument creates a positional argument
func NewArgument(name string, multipleValues bool, configs ...ConfigureArgumentFunc) (*Argument, error) {
	arg := &Argument{Name: name, MultipleValues: multipleValues}

	var err error
	for _, config := range configs {
		config(arg, &err)
		if err != nil {
			return nil, err
		}
	}

	return arg, nil
}

// Values returns a copy of the accumulated values in command-line order
func (a *Argument) Values() []string {
	return util.CloneSlice(a.values)
}

// Value returns the first value or the empty string
func (a *Argument) Value() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

// HasValue reports whether the argument received a value
func (a *Argument) HasValue() bool {
	return len(a.values) > 0
}

// Reset clears accumulated values
func (a *Argument) Reset() {
	a.values = nil
}

// Command returns the command the argument was added to
func (a *Argument) Command() *Command {
	return a.owner
}

// accept records value and reports whether the argument can take further values
func (a *Argument) accept(value string) bool {
	a.values = append(a.values, value)
	return a.MultipleValues
}
