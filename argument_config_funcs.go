package cmdline

import "github.com/napalu/cmdline/validation"

// WithArgumentDescription sets the description shown in help output
func WithArgumentDescription(description string) ConfigureArgumentFunc {
	return func(arg *Argument, err *error) {
		arg.Description = description
	}
}

// WithArgumentValidators attaches field validators to the argument
func WithArgumentValidators(validators ...validation.Validator) ConfigureArgumentFunc {
	return func(arg *Argument, err *error) {
		arg.Validators = append(arg.Validators, validators...)
	}
}

// WithArgumentValueValidators attaches per-value validators to the argument
func WithArgumentValueValidators(validators ...validation.ValidatorFunc) ConfigureArgumentFunc {
	return WithArgumentValidators(validation.Each(validators...))
}

// SetArgumentRequired makes validation fail when the argument received no value
func SetArgumentRequired(required bool) ConfigureArgumentFunc {
	return func(arg *Argument, err *error) {
		if required {
			arg.Validators = append([]validation.Validator{validation.Required()}, arg.Validators...)
		}
	}
}
