package cmdline

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/internal/util"
	"github.com/napalu/cmdline/types"
)

// noValueMarker is recorded for every occurrence of a NoValue option
const noValueMarker = "on"

// NewOption creates an option from a template such as "-v|--verbose <LEVEL>".
// Parts are separated by spaces or '|': "--x" sets the long name, "-x" the short name (or the
// symbol name when x is a single character which is not a letter) and "<X>" the value name.
func NewOption(template string, optionType types.OptionType, configs ...ConfigureOptionFunc) (*Option, error) {
	opt := &Option{OptionType: optionType}
	if err := opt.parseTemplate(template); err != nil {
		return nil, err
	}

	var err error
	for _, config := range configs {
		config(opt, &err)
		if err != nil {
			return nil, err
		}
	}

	return opt, nil
}

func (o *Option) parseTemplate(template string) error {
	parts := strings.FieldsFunc(template, func(r rune) bool {
		return r == ' ' || r == '|'
	})
	for _, part := range parts {
		switch {
		case part == "-" || part == "--":
			return errs.ErrInvalidTemplate.WithArgs(template)
		case strings.HasPrefix(part, "--"):
			o.LongName = part[2:]
		case strings.HasPrefix(part, "-"):
			name := part[1:]
			if r, size := utf8.DecodeRuneInString(name); size == len(name) && !isASCIILetter(r) {
				o.SymbolName = name
			} else {
				o.ShortName = name
			}
		case strings.HasPrefix(part, "<") && strings.HasSuffix(part, ">") && len(part) > 1:
			o.ValueName = part[1 : len(part)-1]
		default:
			return errs.ErrInvalidTemplate.WithArgs(template)
		}
	}

	if o.LongName == "" && o.ShortName == "" && o.SymbolName == "" {
		return errs.ErrTemplateNoName.WithArgs(template)
	}

	return nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// TryParse records one occurrence of the option. It returns false when the option
// cannot accept the occurrence: a NoValue option given a value, or a single-value
// option which already holds one.
func (o *Option) TryParse(value string, hasValue bool) bool {
	switch o.OptionType {
	case types.MultipleValue:
		o.values = append(o.values, value)
	case types.SingleValue:
		if len(o.values) > 0 {
			return false
		}
		o.values = append(o.values, value)
	case types.SingleOrNoValue:
		if len(o.values) > 0 {
			return false
		}
		if !hasValue {
			value = ""
		}
		o.values = append(o.values, value)
	case types.NoValue:
		if hasValue {
			return false
		}
		o.values = append(o.values, noValueMarker)
	default:
		return false
	}

	return true
}

// Values returns a copy of the accumulated values in command-line order
func (o *Option) Values() []string {
	return util.CloneSlice(o.values)
}

// Value returns the first value or the empty string
func (o *Option) Value() string {
	if len(o.values) == 0 {
		return ""
	}
	return o.values[0]
}

// HasValue reports whether the option occurred at least once
func (o *Option) HasValue() bool {
	return len(o.values) > 0
}

// Count returns how many times the option occurred
func (o *Option) Count() int {
	return len(o.values)
}

// Reset clears accumulated values
func (o *Option) Reset() {
	o.values = nil
}

// Command returns the command the option was added to
func (o *Option) Command() *Command {
	return o.owner
}

// Name returns the name of the option for the given selector
func (o *Option) Name(sel types.NameSelector) string {
	switch sel {
	case types.ByShortName:
		return o.ShortName
	case types.BySymbolName:
		return o.SymbolName
	}
	return o.LongName
}

// DisplayName returns the preferred spelling of the option: --long, -short or -symbol
func (o *Option) DisplayName() string {
	switch {
	case o.LongName != "":
		return "--" + o.LongName
	case o.ShortName != "":
		return "-" + o.ShortName
	}
	return "-" + o.SymbolName
}

// Template renders the option back into template form
func (o *Option) Template() string {
	var parts []string
	if o.SymbolName != "" {
		parts = append(parts, "-"+o.SymbolName)
	}
	if o.ShortName != "" {
		parts = append(parts, "-"+o.ShortName)
	}
	if o.LongName != "" {
		parts = append(parts, "--"+o.LongName)
	}
	t := strings.Join(parts, "|")
	if o.ValueName != "" {
		t += " <" + o.ValueName + ">"
	}
	return t
}
