package validation

import (
	"net/mail"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/napalu/cmdline/errs"
)

// ValidatorFunc validates a single raw value and returns an error if invalid
type ValidatorFunc func(value string) error

// All combines multiple validators - all must pass
func All(validators ...ValidatorFunc) ValidatorFunc {
	return func(value string) error {
		for _, validator := range validators {
			if err := validator(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// Any combines multiple validators - at least one must pass
func Any(validators ...ValidatorFunc) ValidatorFunc {
	return func(value string) error {
		var last error
		for _, validator := range validators {
			if last = validator(value); last == nil {
				return nil
			}
		}
		return errs.ErrAnyFailed.Wrap(last)
	}
}

// NotEmpty rejects the empty string
func NotEmpty() ValidatorFunc {
	return func(value string) error {
		if value == "" {
			return errs.ErrNotEmpty
		}
		return nil
	}
}

// MinLength validates minimum string length in Unicode characters
func MinLength(min int) ValidatorFunc {
	return func(value string) error {
		if utf8.RuneCountInString(value) < min {
			return errs.ErrMinLength.WithArgs(min)
		}
		return nil
	}
}

// MaxLength validates maximum string length in Unicode characters
func MaxLength(max int) ValidatorFunc {
	return func(value string) error {
		if utf8.RuneCountInString(value) > max {
			return errs.ErrMaxLength.WithArgs(max)
		}
		return nil
	}
}

// Integer validates that the value is a base 10 integer
func Integer() ValidatorFunc {
	return func(value string) error {
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return errs.ErrInteger.WithArgs(value)
		}
		return nil
	}
}

// Float validates that the value is a number
func Float() ValidatorFunc {
	return func(value string) error {
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return errs.ErrFloat.WithArgs(value)
		}
		return nil
	}
}

// Range validates that the value is a number between min and max inclusive
func Range(min, max float64) ValidatorFunc {
	return func(value string) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errs.ErrFloat.WithArgs(value)
		}
		if f < min || f > max {
			return errs.ErrRange.WithArgs(value, min, max)
		}
		return nil
	}
}

// OneOf validates that the value is one of allowed
func OneOf(allowed ...string) ValidatorFunc {
	return func(value string) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return errs.ErrOneOf.WithArgs(value, strings.Join(allowed, ", "))
	}
}

// Regex validates that the value matches pattern. An invalid pattern panics when the validator is created.
func Regex(pattern string) ValidatorFunc {
	re := regexp.MustCompile(pattern)
	return func(value string) error {
		if !re.MatchString(value) {
			return errs.ErrRegex.WithArgs(value, pattern)
		}
		return nil
	}
}

// Email validates email format
func Email() ValidatorFunc {
	return func(value string) error {
		if _, err := mail.ParseAddress(value); err != nil {
			return errs.ErrEmail.WithArgs(value).Wrap(err)
		}
		return nil
	}
}

// URL validates that the value is an absolute URL, optionally restricted to schemes
func URL(schemes ...string) ValidatorFunc {
	return func(value string) error {
		u, err := url.Parse(value)
		if err != nil {
			return errs.ErrURL.WithArgs(value).Wrap(err)
		}
		if u.Scheme == "" || u.Host == "" {
			return errs.ErrURL.WithArgs(value)
		}
		if len(schemes) == 0 {
			return nil
		}
		for _, s := range schemes {
			if strings.EqualFold(u.Scheme, s) {
				return nil
			}
		}
		return errs.ErrURL.WithArgs(value)
	}
}

// FileExists validates that the value names an existing regular file
func FileExists() ValidatorFunc {
	return func(value string) error {
		fi, err := os.Stat(value)
		if err != nil || fi.IsDir() {
			return errs.ErrFileExists.WithArgs(value)
		}
		return nil
	}
}

// DirExists validates that the value names an existing directory
func DirExists() ValidatorFunc {
	return func(value string) error {
		fi, err := os.Stat(value)
		if err != nil || !fi.IsDir() {
			return errs.ErrDirExists.WithArgs(value)
		}
		return nil
	}
}
