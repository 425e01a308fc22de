package errs

import "github.com/napalu/cmdline/i18n"

// Parse errors
var (
	ErrUnrecognizedOption   = i18n.NewError(ErrUnrecognizedOptionKey)
	ErrUnrecognizedArgument = i18n.NewError(ErrUnrecognizedArgumentKey)
	ErrMissingValue         = i18n.NewError(ErrMissingValueKey)
	ErrUnexpectedValue      = i18n.NewError(ErrUnexpectedValueKey)
	ErrClusterOrder         = i18n.NewError(ErrClusterOrderKey)
	ErrResponseFile         = i18n.NewError(ErrResponseFileKey)
	ErrSplitCommandLine     = i18n.NewError(ErrSplitCommandLineKey)
)

// Configuration errors
var (
	ErrAmbiguousOption         = i18n.NewError(ErrAmbiguousOptionKey)
	ErrShortNameTooLong        = i18n.NewError(ErrShortNameTooLongKey)
	ErrMultiValueArgumentLast  = i18n.NewError(ErrMultiValueArgumentLastKey)
	ErrDuplicateArgument       = i18n.NewError(ErrDuplicateArgumentKey)
	ErrDuplicateCommand        = i18n.NewError(ErrDuplicateCommandKey)
	ErrInvalidTemplate         = i18n.NewError(ErrInvalidTemplateKey)
	ErrTemplateNoName          = i18n.NewError(ErrTemplateNoNameKey)
	ErrEmptyName               = i18n.NewError(ErrEmptyNameKey)
	ErrNoValueNonBool          = i18n.NewError(ErrNoValueNonBoolKey)
	ErrNilCommand              = i18n.NewError(ErrNilCommandKey)
	ErrBindNil                 = i18n.NewError(ErrBindNilKey)
	ErrUnsupportedType         = i18n.NewError(ErrUnsupportedTypeKey)
	ErrInvalidVersion          = i18n.NewError(ErrInvalidVersionKey)
	ErrInvalidOptionType       = i18n.NewError(ErrInvalidOptionTypeKey)
	ErrInvalidResponseHandling = i18n.NewError(ErrInvalidResponseHandlingKey)
	ErrInvalidComparison       = i18n.NewError(ErrInvalidComparisonKey)
	ErrUnknownFileFormat       = i18n.NewError(ErrUnknownFileFormatKey)
	ErrLanguageUnavailable     = i18n.NewError(ErrLanguageUnavailableKey)
	ErrConfiguringParser       = i18n.NewError(ErrConfiguringParserKey)
	ErrNoSeparators            = i18n.NewError(ErrNoSeparatorsKey)
)

// Validation errors
var (
	ErrValidationFailed = i18n.NewError(ErrValidationFailedKey)
	ErrRequired         = i18n.NewError(ErrRequiredKey)
	ErrParseValue       = i18n.NewError(ErrParseValueKey)
	ErrMinLength        = i18n.NewError(ErrMinLengthKey)
	ErrMaxLength        = i18n.NewError(ErrMaxLengthKey)
	ErrNotEmpty         = i18n.NewError(ErrNotEmptyKey)
	ErrInteger          = i18n.NewError(ErrIntegerKey)
	ErrFloat            = i18n.NewError(ErrFloatKey)
	ErrRange            = i18n.NewError(ErrRangeKey)
	ErrOneOf            = i18n.NewError(ErrOneOfKey)
	ErrRegex            = i18n.NewError(ErrRegexKey)
	ErrEmail            = i18n.NewError(ErrEmailKey)
	ErrURL              = i18n.NewError(ErrURLKey)
	ErrFileExists       = i18n.NewError(ErrFileExistsKey)
	ErrDirExists        = i18n.NewError(ErrDirExistsKey)
	ErrAnyFailed        = i18n.NewError(ErrAnyFailedKey)
	ErrMaxCount         = i18n.NewError(ErrMaxCountKey)
)
