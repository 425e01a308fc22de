package validation

import "github.com/napalu/cmdline/errs"

// Validator checks every value accumulated by an option or argument.
// The name is used in messages and is the display name of the field.
type Validator func(name string, values []string) error

// Each applies validators to every value in turn and stops at the first failure.
// A field without values passes.
func Each(validators ...ValidatorFunc) Validator {
	check := All(validators...)
	return func(name string, values []string) error {
		for _, v := range values {
			if err := check(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Required fails when the field received no value at all. A switch given once counts as set.
func Required() Validator {
	return func(name string, values []string) error {
		if len(values) == 0 {
			return errs.ErrRequired.WithArgs(name)
		}
		return nil
	}
}

// MaxCount fails when the field received more than n values
func MaxCount(n int) Validator {
	return func(name string, values []string) error {
		if len(values) > n {
			return errs.ErrMaxCount.WithArgs(n)
		}
		return nil
	}
}
