package cmdline

import (
	"errors"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/i18n"
)

// ParseErrorKind distinguishes the ways a command line can be rejected
type ParseErrorKind int

const (
	UnrecognizedArgument ParseErrorKind = iota
	MissingValue
	UnexpectedValue
	ClusterOrder
	ResponseFile
)

// String returns the string representation of a ParseErrorKind
func (k ParseErrorKind) String() string {
	switch k {
	case MissingValue:
		return "missing value"
	case UnexpectedValue:
		return "unexpected value"
	case ClusterOrder:
		return "cluster order"
	case ResponseFile:
		return "response file"
	}
	return "unrecognized argument"
}

// ParseError reports input which the command tree cannot accept
type ParseError struct {
	Kind ParseErrorKind
	// Command is the command being parsed when the error occurred
	Command *Command
	// Token is the offending raw token
	Token string
	// Option is the option involved, if any
	Option *Option
	// OptionToken is true when Token was classified as an option
	OptionToken bool
	// Suggestions holds close matches for unrecognized tokens, best first
	Suggestions []string
	Err         error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Category names the kind of token: "option" or "command or argument"
func (e *ParseError) Category() string {
	if e.OptionToken {
		return i18n.Default().T(errs.MsgCategoryOption)
	}
	return i18n.Default().T(errs.MsgCategoryArg)
}

// ConfigError reports a mistake in the command tree definition
type ConfigError struct {
	Command *Command
	Err     error
}

func (e *ConfigError) Error() string {
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ValidationError reports a validator failure after a syntactically valid parse
type ValidationError struct {
	Command *Command
	// Field is the display name of the failing option or argument; empty for command validators
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// errorCommand returns the command an error is scoped to, if any
func errorCommand(err error) *Command {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Command
	}
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Command
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Command
	}
	return nil
}

func configError(cmd *Command, err error) *ConfigError {
	return &ConfigError{Command: cmd, Err: err}
}
