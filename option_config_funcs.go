package cmdline

import "github.com/napalu/cmdline/validation"

// SetInherited makes the option resolvable on descendant commands
func SetInherited(inherited bool) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Inherited = inherited
	}
}

// SetHidden hides the option from help output and suggestions
func SetHidden(hidden bool) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Hidden = hidden
	}
}

// WithDescription sets the description shown in help output
func WithDescription(description string) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Description = description
	}
}

// WithEnvVar names an environment variable read when the option does not occur on the command line
func WithEnvVar(name string) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.EnvVar = name
	}
}

// WithValidators attaches field validators to the option
func WithValidators(validators ...validation.Validator) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Validators = append(opt.Validators, validators...)
	}
}

// WithValueValidators attaches per-value validators to the option
func WithValueValidators(validators ...validation.ValidatorFunc) ConfigureOptionFunc {
	return WithValidators(validation.Each(validators...))
}

// SetRequired makes validation fail when the option did not occur
func SetRequired(required bool) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		if required {
			opt.Validators = append([]validation.Validator{validation.Required()}, opt.Validators...)
		}
	}
}
