package cmdline

import (
	"context"

	"github.com/napalu/cmdline/types"
)

// WithThrowOnUnexpectedArgument controls whether unrecognized tokens fail the parse or are
// collected in RemainingArguments. Descendants inherit the setting unless they set their own.
func WithThrowOnUnexpectedArgument(throw bool) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.throwOnUnexpected = &throw
	}
}

// WithAllowArgumentSeparator enables '--'. Everything after it lands in RemainingArguments.
func WithAllowArgumentSeparator(allow bool) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.AllowArgumentSeparator = allow
	}
}

// WithClusterOptions explicitly enables or disables POSIX style clustering such as -abc.
// Enabling it while a visible option has a multi-character short name fails at parse time.
func WithClusterOptions(cluster bool) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.clusterOptions = &cluster
	}
}

// WithResponseFileHandling sets how @file tokens are expanded
func WithResponseFileHandling(handling types.ResponseFileHandling) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.responseFileHandling = &handling
	}
}

// WithOptionsComparison sets how option names are matched
func WithOptionsComparison(comparison types.StringComparison) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.optionsComparison = &comparison
	}
}

// WithHandler sets the function invoked when the command is selected
func WithHandler(handler CommandFunc) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.Handler = handler
	}
}

// WithAction sets a handler without an exit code; success maps to exit code 0
func WithAction(action func(ctx context.Context, cmd *Command) error) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.Handler = func(ctx context.Context, cmd *Command) (int, error) {
			if e := action(ctx, cmd); e != nil {
				return 1, e
			}
			return 0, nil
		}
	}
}

// WithAliases sets alternative names matched like the command name
func WithAliases(aliases ...string) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.Aliases = append(cmd.Aliases, aliases...)
	}
}

// WithCommandDescription sets the description shown in help output
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.Description = description
	}
}

// SetCommandHidden hides the command from help output and suggestions
func SetCommandHidden(hidden bool) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.Hidden = hidden
	}
}

// WithValidationErrorHandler replaces the default validation error handler for the command and its descendants
func WithValidationErrorHandler(handler ValidationErrorHandlerFunc) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.validationHandler = handler
	}
}

// WithCommandValidator adds a validator which runs after all argument and option validators passed
func WithCommandValidator(validator CommandValidatorFunc) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.validators = append(cmd.validators, validator)
	}
}
