package cmdline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/napalu/cmdline/console"
	"github.com/napalu/cmdline/env"
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/types/orderedmap"
	"github.com/napalu/cmdline/validation"
	"github.com/napalu/cmdline/valueparse"
)

// CommandFunc is invoked for the selected command once parsing and validation succeed.
// The returned int is the process exit code.
type CommandFunc func(ctx context.Context, cmd *Command) (int, error)

// ValidationErrorHandlerFunc is invoked instead of the command handler when validation fails.
// The returned int is the process exit code.
type ValidationErrorHandlerFunc func(out console.Console, cmd *Command, err *ValidationError) int

// CommandValidatorFunc validates a command as a whole after its arguments and options passed
type CommandValidatorFunc func(cmd *Command) error

// VersionFunc returns the text printed by the version option
type VersionFunc func() string

// ConfigureParserFunc is used when creating a Parser
type ConfigureParserFunc func(p *Parser, err *error)

// ConfigureCommandFunc is used when defining commands
type ConfigureCommandFunc func(cmd *Command, err *error)

// ConfigureOptionFunc is used when defining options
type ConfigureOptionFunc func(opt *Option, err *error)

// ConfigureArgumentFunc is used when defining positional arguments
type ConfigureArgumentFunc func(arg *Argument, err *error)

// Option is a named command-line input introduced by '-' or '--'
type Option struct {
	ShortName   string
	LongName    string
	SymbolName  string
	ValueName   string
	Description string
	OptionType  types.OptionType
	// Inherited options are resolvable on every descendant command
	Inherited bool
	Hidden    bool
	// EnvVar names an environment variable supplying the value when the option is absent
	EnvVar     string
	Validators []validation.Validator
	values     []string
	owner      *Command
}

// Argument is a positional command-line input
type Argument struct {
	Name        string
	Description string
	// MultipleValues arguments absorb every remaining positional token of their command
	MultipleValues bool
	Validators     []validation.Validator
	values         []string
	owner          *Command
}

// Command is a node of the command tree
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Hidden      bool
	// AllowArgumentSeparator enables '--'; it is not inherited
	AllowArgumentSeparator bool
	Handler                CommandFunc

	parent               *Command
	options              []*Option
	arguments            []*Argument
	commands             *orderedmap.OrderedMap[string, *Command]
	aliases              map[string]*Command
	throwOnUnexpected    *bool
	clusterOptions       *bool
	responseFileHandling *types.ResponseFileHandling
	optionsComparison    *types.StringComparison
	validationHandler    ValidationErrorHandlerFunc
	validators           []CommandValidatorFunc
	helpOption           *Option
	versionOption        *Option
	versionFunc          VersionFunc
	remaining            []string
	showingInformation   bool
}

// Parser runs the parse, validate and invoke pipeline over a command tree. Calls on one
// Parser are serialized because parsing accumulates values on the tree.
type Parser struct {
	mu                sync.Mutex
	root              *Command
	separators        []rune
	workingDir        string
	logger            *slog.Logger
	console           console.Console
	renderer          Renderer
	continueAfterHelp bool
	envResolver       env.Resolver
	valueParsers      *valueparse.Provider
	bindings          []binding
}

type binding struct {
	field  string
	values func() []string
	apply  func(values []string) error
}
