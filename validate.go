package cmdline

import (
	"log/slog"

	"github.com/napalu/cmdline/console"
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/valueparse"
)

// Validate runs the validators of cmd: its positional arguments in declaration order, then
// its own and inherited options, then the command validators. The first failure is returned.
func Validate(cmd *Command) *ValidationError {
	for _, a := range cmd.arguments {
		for _, v := range a.Validators {
			if err := v(a.Name, a.values); err != nil {
				return &ValidationError{Command: cmd, Field: a.Name, Err: err}
			}
		}
	}

	for _, o := range cmd.GetOptions() {
		for _, v := range o.Validators {
			if err := v(o.DisplayName(), o.values); err != nil {
				return &ValidationError{Command: cmd, Field: o.DisplayName(), Err: err}
			}
		}
	}

	for _, v := range cmd.validators {
		if err := v(cmd); err != nil {
			return &ValidationError{Command: cmd, Err: err}
		}
	}

	return nil
}

// applyEnvironment fills options which did not occur on the command line from their
// environment variable, for every command from the root down to selected
func (p *Parser) applyEnvironment(log *slog.Logger, selected *Command) {
	for n := selected; n != nil; n = n.parent {
		for _, o := range n.options {
			if o.EnvVar == "" || o.HasValue() {
				continue
			}
			raw, ok := p.envResolver.Lookup(o.EnvVar)
			if !ok {
				continue
			}
			if o.OptionType == types.NoValue {
				if on, err := valueparse.ParseBool(raw); err != nil || !on {
					continue
				}
				o.TryParse("", false)
			} else {
				o.TryParse(raw, true)
			}
			log.Debug("option set from environment", "event", "env", "option", o.DisplayName(), "env", o.EnvVar)
		}
	}
}

// defaultValidationErrorHandler prints the error and the help hint and returns 1
func defaultValidationErrorHandler(out console.Console, cmd *Command, err *ValidationError) int {
	console.WriteError(out, err.Error(), helpHint(cmd))
	return 1
}
