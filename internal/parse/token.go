package parse

import (
	"strings"
	"unicode/utf8"
)

// Kind is the category of a raw command-line token
type Kind int

const (
	Positional  Kind = iota // Positional is a subcommand name or positional value
	ShortOption             // ShortOption is -n[=value]
	LongOption              // LongOption is --name[=value]
	Separator               // Separator is the literal --
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case ShortOption:
		return "short option"
	case LongOption:
		return "long option"
	case Separator:
		return "argument separator"
	}
	return "command or argument"
}

// DefaultSeparators are the characters splitting an option name from its value
var DefaultSeparators = []rune{' ', ':', '='}

// Token is the classification of one raw argument. Name and Value are only set for options.
type Token struct {
	Kind     Kind
	Raw      string
	Name     string
	Value    string
	HasValue bool
}

// IsOption reports whether t is a short or long option
func (t Token) IsOption() bool {
	return t.Kind == ShortOption || t.Kind == LongOption
}

// Classify categorizes raw. The result depends only on raw and separators.
func Classify(raw string, separators []rune) Token {
	switch {
	case raw == "--":
		return Token{Kind: Separator, Raw: raw}
	case strings.HasPrefix(raw, "--"):
		t := Token{Kind: LongOption, Raw: raw}
		t.Name, t.Value, t.HasValue = splitNameValue(raw[2:], separators)
		return t
	case len(raw) > 1 && raw[0] == '-':
		t := Token{Kind: ShortOption, Raw: raw}
		t.Name, t.Value, t.HasValue = splitNameValue(raw[1:], separators)
		return t
	}

	return Token{Kind: Positional, Raw: raw}
}

// SpaceSeparated reports whether option values may arrive in the following token
func SpaceSeparated(separators []rune) bool {
	for _, r := range separators {
		if r == ' ' {
			return true
		}
	}
	return false
}

func splitNameValue(s string, separators []rune) (string, string, bool) {
	idx := strings.IndexFunc(s, func(r rune) bool {
		for _, sep := range separators {
			if r == sep {
				return true
			}
		}
		return false
	})
	if idx < 0 {
		return s, "", false
	}
	_, width := utf8.DecodeRuneInString(s[idx:])
	return s[:idx], s[idx+width:], true
}

