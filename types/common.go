package types

import "strings"

// OptionType defines how many values an option accepts and how they are supplied
type OptionType int

const (
	MultipleValue   OptionType = iota // MultipleValue accepts any number of values, one per occurrence
	SingleValue                       // SingleValue accepts exactly one value; a repeat is a parse error
	SingleOrNoValue                   // SingleOrNoValue accepts an optional value which must be attached with '=' or ':'
	NoValue                           // NoValue denotes a switch which never accepts a value
)

// String returns the string representation of an OptionType
func (o OptionType) String() string {
	switch o {
	case MultipleValue:
		return "multiple"
	case SingleValue:
		return "single"
	case SingleOrNoValue:
		return "single-or-none"
	case NoValue:
		return "none"
	}
	return "unknown"
}

// RequiresValue reports whether a bare occurrence of the option needs a value token
func (o OptionType) RequiresValue() bool {
	return o == MultipleValue || o == SingleValue
}

// ParseOptionType accepts the names returned by OptionType.String
func ParseOptionType(s string) (OptionType, bool) {
	switch s {
	case "multiple", "multiple-value":
		return MultipleValue, true
	case "single", "single-value", "":
		return SingleValue, true
	case "single-or-none", "single-or-no-value":
		return SingleOrNoValue, true
	case "none", "no-value", "switch":
		return NoValue, true
	}
	return SingleValue, false
}

// ResponseFileHandling defines whether and how @file tokens are expanded
type ResponseFileHandling int

const (
	ResponseFileDisabled       ResponseFileHandling = iota // ResponseFileDisabled leaves @tokens untouched
	ResponseFileSpaceSeparated                             // ResponseFileSpaceSeparated splits file contents on whitespace honoring quotes
	ResponseFileLineSeparated                              // ResponseFileLineSeparated yields one token per line
)

// String returns the string representation of a ResponseFileHandling
func (r ResponseFileHandling) String() string {
	switch r {
	case ResponseFileSpaceSeparated:
		return "space"
	case ResponseFileLineSeparated:
		return "line"
	}
	return "disabled"
}

// ParseResponseFileHandling accepts the names returned by ResponseFileHandling.String
func ParseResponseFileHandling(s string) (ResponseFileHandling, bool) {
	switch s {
	case "", "disabled", "off":
		return ResponseFileDisabled, true
	case "space", "space-separated":
		return ResponseFileSpaceSeparated, true
	case "line", "line-separated":
		return ResponseFileLineSeparated, true
	}
	return ResponseFileDisabled, false
}

// StringComparison selects how option names are compared
type StringComparison int

const (
	Ordinal           StringComparison = iota // Ordinal compares names byte for byte
	OrdinalIgnoreCase                         // OrdinalIgnoreCase compares names using Unicode case folding
)

// String returns the string representation of a StringComparison
func (c StringComparison) String() string {
	if c == OrdinalIgnoreCase {
		return "ignore-case"
	}
	return "ordinal"
}

// ParseStringComparison parses the String form of a StringComparison
func ParseStringComparison(s string) (StringComparison, bool) {
	switch s {
	case "", "ordinal", "case-sensitive":
		return Ordinal, true
	case "ignore-case", "case-insensitive":
		return OrdinalIgnoreCase, true
	}
	return Ordinal, false
}

// Equal compares a and b according to c
func (c StringComparison) Equal(a, b string) bool {
	if c == OrdinalIgnoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// NameSelector picks which name of an option a token is matched against
type NameSelector int

const (
	ByLongName NameSelector = iota
	ByShortName
	BySymbolName
)

// String returns the string representation of a NameSelector
func (s NameSelector) String() string {
	switch s {
	case ByShortName:
		return "short"
	case BySymbolName:
		return "symbol"
	}
	return "long"
}

// Outcome describes how a parse pass terminated
type Outcome int

const (
	Completed Outcome = iota
	StoppedForHelp
	StoppedForVersion
)

// String returns the string representation of an Outcome
func (o Outcome) String() string {
	switch o {
	case StoppedForHelp:
		return "help"
	case StoppedForVersion:
		return "version"
	}
	return "completed"
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
