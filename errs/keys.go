// Package errs defines the translatable errors returned by cmdline.
// This file contains the translation keys; the messages live in i18n/locales.
package errs

const (
	prefixKey = "cmdline"
)

// Key prefixes
const (
	ErrorPrefixKey      = prefixKey + ".error"
	ParseErrorPrefixKey = ErrorPrefixKey + ".parse"
	ConfigPrefixKey     = ErrorPrefixKey + ".config"
	ValidationPrefixKey = ErrorPrefixKey + ".validation"
	MessagePrefixKey    = prefixKey + ".msg"
)

// Parse errors
const (
	ErrUnrecognizedOptionKey   = ParseErrorPrefixKey + ".unrecognized_option"
	ErrUnrecognizedArgumentKey = ParseErrorPrefixKey + ".unrecognized_argument"
	ErrMissingValueKey         = ParseErrorPrefixKey + ".missing_value"
	ErrUnexpectedValueKey      = ParseErrorPrefixKey + ".unexpected_value"
	ErrClusterOrderKey         = ParseErrorPrefixKey + ".cluster_order"
	ErrResponseFileKey         = ParseErrorPrefixKey + ".response_file"
	ErrSplitCommandLineKey     = ParseErrorPrefixKey + ".split_command_line"
)

// Configuration errors
const (
	ErrAmbiguousOptionKey         = ConfigPrefixKey + ".ambiguous_option"
	ErrShortNameTooLongKey        = ConfigPrefixKey + ".short_name_too_long"
	ErrMultiValueArgumentLastKey  = ConfigPrefixKey + ".multi_value_argument_last"
	ErrDuplicateArgumentKey       = ConfigPrefixKey + ".duplicate_argument"
	ErrDuplicateCommandKey        = ConfigPrefixKey + ".duplicate_command"
	ErrInvalidTemplateKey         = ConfigPrefixKey + ".invalid_template"
	ErrTemplateNoNameKey          = ConfigPrefixKey + ".template_no_name"
	ErrEmptyNameKey               = ConfigPrefixKey + ".empty_name"
	ErrNoValueNonBoolKey          = ConfigPrefixKey + ".no_value_non_bool"
	ErrNilCommandKey              = ConfigPrefixKey + ".nil_command"
	ErrBindNilKey                 = ConfigPrefixKey + ".bind_nil"
	ErrUnsupportedTypeKey         = ConfigPrefixKey + ".unsupported_type"
	ErrInvalidVersionKey          = ConfigPrefixKey + ".invalid_version"
	ErrInvalidOptionTypeKey       = ConfigPrefixKey + ".invalid_option_type"
	ErrInvalidResponseHandlingKey = ConfigPrefixKey + ".invalid_response_file_handling"
	ErrInvalidComparisonKey       = ConfigPrefixKey + ".invalid_comparison"
	ErrUnknownFileFormatKey       = ConfigPrefixKey + ".unknown_file_format"
	ErrLanguageUnavailableKey     = ConfigPrefixKey + ".language_unavailable"
	ErrConfiguringParserKey       = ConfigPrefixKey + ".configuring_parser"
	ErrNoSeparatorsKey            = ConfigPrefixKey + ".no_separators"
)

// Validation errors
const (
	ErrValidationFailedKey = ValidationPrefixKey + ".failed"
	ErrRequiredKey         = ValidationPrefixKey + ".required"
	ErrParseValueKey       = ValidationPrefixKey + ".parse_value"
	ErrMinLengthKey        = ValidationPrefixKey + ".min_length"
	ErrMaxLengthKey        = ValidationPrefixKey + ".max_length"
	ErrNotEmptyKey         = ValidationPrefixKey + ".not_empty"
	ErrIntegerKey          = ValidationPrefixKey + ".integer"
	ErrFloatKey            = ValidationPrefixKey + ".float"
	ErrRangeKey            = ValidationPrefixKey + ".range"
	ErrOneOfKey            = ValidationPrefixKey + ".one_of"
	ErrRegexKey            = ValidationPrefixKey + ".regex"
	ErrEmailKey            = ValidationPrefixKey + ".email"
	ErrURLKey              = ValidationPrefixKey + ".url"
	ErrFileExistsKey       = ValidationPrefixKey + ".file_exists"
	ErrDirExistsKey        = ValidationPrefixKey + ".dir_exists"
	ErrAnyFailedKey        = ValidationPrefixKey + ".any_failed"
	ErrMaxCountKey         = ValidationPrefixKey + ".max_count"
)

// Messages
const (
	MsgHelpHintKey    = MessagePrefixKey + ".help_hint"
	MsgDidYouMeanKey  = MessagePrefixKey + ".did_you_mean"
	MsgUsageKey       = MessagePrefixKey + ".usage"
	MsgOptionsKey     = MessagePrefixKey + ".options"
	MsgCommandsKey    = MessagePrefixKey + ".commands"
	MsgArgumentsKey   = MessagePrefixKey + ".arguments"
	MsgCategoryOption = MessagePrefixKey + ".category_option"
	MsgCategoryArg    = MessagePrefixKey + ".category_argument"
)
