package cmdline

import (
	"reflect"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/types"
)

// BindOption stores the values of opt into target after each successful parse. Options
// which did not occur leave target untouched. A NoValue option can only be bound to a bool
// (set to true) or an int (set to the occurrence count).
func BindOption[T any](p *Parser, opt *Option, target *T) error {
	if target == nil {
		return configError(opt.owner, errs.ErrBindNil)
	}
	typ := reflect.TypeFor[T]()

	if opt.OptionType == types.NoValue {
		switch typ.Kind() {
		case reflect.Bool:
		case reflect.Int:
			p.bindings = append(p.bindings, binding{
				field:  opt.DisplayName(),
				values: func() []string { return opt.values },
				apply: func(values []string) error {
					reflect.ValueOf(target).Elem().SetInt(int64(len(values)))
					return nil
				},
			})
			return nil
		default:
			return configError(opt.owner, errs.ErrNoValueNonBool.WithArgs(opt.DisplayName(), typ.String()))
		}
	}

	if !p.valueParsers.Supports(typ) {
		return configError(opt.owner, errs.ErrUnsupportedType.WithArgs(typ.String()))
	}
	p.bindings = append(p.bindings, binding{
		field:  opt.DisplayName(),
		values: func() []string { return opt.values },
		apply: func(values []string) error {
			return p.valueParsers.Into(values, target)
		},
	})

	return nil
}

// BindArgument stores the values of arg into target after each successful parse
func BindArgument[T any](p *Parser, arg *Argument, target *T) error {
	if target == nil {
		return configError(arg.owner, errs.ErrBindNil)
	}
	typ := reflect.TypeFor[T]()
	if !p.valueParsers.Supports(typ) {
		return configError(arg.owner, errs.ErrUnsupportedType.WithArgs(typ.String()))
	}
	p.bindings = append(p.bindings, binding{
		field:  arg.Name,
		values: func() []string { return arg.values },
		apply: func(values []string) error {
			return p.valueParsers.Into(values, target)
		},
	})

	return nil
}

// applyBindings converts bound values. A conversion failure is reported as a validation error
// of selected.
func (p *Parser) applyBindings(selected *Command) *ValidationError {
	for _, b := range p.bindings {
		values := b.values()
		if len(values) == 0 {
			continue
		}
		if err := b.apply(values); err != nil {
			return &ValidationError{Command: selected, Field: b.field, Err: err}
		}
	}
	return nil
}
