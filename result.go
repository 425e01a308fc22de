package cmdline

import (
	"github.com/google/uuid"
	"github.com/napalu/cmdline/internal/util"
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/valueparse"
)

// ParseResult is an immutable record of one parse. The values it reports are copies taken
// when the parse finished and do not change when the tree is parsed again.
type ParseResult struct {
	// ID correlates the debug log lines of the parse
	ID              uuid.UUID
	SelectedCommand *Command
	Outcome         types.Outcome
	// ValidationError is nil when validation passed or was skipped
	ValidationError *ValidationError

	options   map[*Option][]string
	arguments map[*Argument][]string
	remaining map[*Command][]string
	provider  *valueparse.Provider
}

func (r *ParseResult) snapshot(root *Command) {
	r.options = map[*Option][]string{}
	r.arguments = map[*Argument][]string{}
	r.remaining = map[*Command][]string{}

	root.walk(func(c *Command) {
		for _, o := range c.options {
			if len(o.values) > 0 {
				r.options[o] = util.CloneSlice(o.values)
			}
		}
		for _, a := range c.arguments {
			if len(a.values) > 0 {
				r.arguments[a] = util.CloneSlice(a.values)
			}
		}
		if len(c.remaining) > 0 {
			r.remaining[c] = util.CloneSlice(c.remaining)
		}
	})
}

// OptionValues returns the values opt received
func (r *ParseResult) OptionValues(opt *Option) []string {
	return util.CloneSlice(r.options[opt])
}

// HasOption reports whether opt occurred or was set from the environment
func (r *ParseResult) HasOption(opt *Option) bool {
	return len(r.options[opt]) > 0
}

// ArgumentValues returns the values arg received
func (r *ParseResult) ArgumentValues(arg *Argument) []string {
	return util.CloneSlice(r.arguments[arg])
}

// RemainingArguments returns the uninterpreted tokens of the selected command
func (r *ParseResult) RemainingArguments() []string {
	return util.CloneSlice(r.remaining[r.SelectedCommand])
}

// RemainingArgumentsOf returns the uninterpreted tokens collected on cmd
func (r *ParseResult) RemainingArgumentsOf(cmd *Command) []string {
	return util.CloneSlice(r.remaining[cmd])
}

// Valid reports whether the parse completed and validation passed
func (r *ParseResult) Valid() bool {
	return r.Outcome == types.Completed && r.ValidationError == nil
}

// OptionAs converts the values of opt to T using the parser's value parsers
func OptionAs[T any](r *ParseResult, opt *Option) (T, error) {
	return valueparse.As[T](r.provider, r.options[opt])
}

// ArgumentAs converts the values of arg to T using the parser's value parsers
func ArgumentAs[T any](r *ParseResult, arg *Argument) (T, error) {
	return valueparse.As[T](r.provider, r.arguments[arg])
}
