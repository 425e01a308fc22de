package cmdline

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/internal/util"
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/types/orderedmap"
)

// NewCommand creates a root command
func NewCommand(name string, configs ...ConfigureCommandFunc) (*Command, error) {
	cmd := newCommand(name, nil)
	if err := cmd.Set(configs...); err != nil {
		return nil, err
	}

	return cmd, nil
}

func newCommand(name string, parent *Command) *Command {
	return &Command{
		Name:     name,
		parent:   parent,
		commands: orderedmap.New[string, *Command](),
		aliases:  map[string]*Command{},
	}
}

// Set applies configs to the command and returns the first error
func (c *Command) Set(configs ...ConfigureCommandFunc) error {
	var err error
	for _, config := range configs {
		config(c, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// AddOption adds an option described by template (see NewOption)
func (c *Command) AddOption(template string, optionType types.OptionType, configs ...ConfigureOptionFunc) (*Option, error) {
	opt, err := NewOption(template, optionType, configs...)
	if err != nil {
		return nil, configError(c, err)
	}
	opt.owner = c
	c.options = append(c.options, opt)

	return opt, nil
}

// AddArgument adds a positional argument. Only the last argument may accept multiple values.
func (c *Command) AddArgument(name string, multipleValues bool, configs ...ConfigureArgumentFunc) (*Argument, error) {
	if name == "" {
		return nil, configError(c, errs.ErrEmptyName)
	}
	for _, existing := range c.arguments {
		if existing.Name == name {
			return nil, configError(c, errs.ErrDuplicateArgument.WithArgs(name))
		}
	}
	if n := len(c.arguments); n > 0 && c.arguments[n-1].MultipleValues {
		return nil, configError(c, errs.ErrMultiValueArgumentLast.WithArgs(name, c.arguments[n-1].Name))
	}

	arg, err := NewArgument(name, multipleValues, configs...)
	if err != nil {
		return nil, configError(c, err)
	}
	arg.owner = c
	c.arguments = append(c.arguments, arg)

	return arg, nil
}

// AddSubcommand adds a child command. configure, when not nil, runs before the child's
// name and aliases are registered so it may add aliases.
func (c *Command) AddSubcommand(name string, configure func(cmd *Command) error) (*Command, error) {
	if name == "" {
		return nil, configError(c, errs.ErrEmptyName)
	}

	child := newCommand(name, c)
	if configure != nil {
		if err := configure(child); err != nil {
			return nil, err
		}
	}

	keys := append([]string{child.Name}, child.Aliases...)
	for _, k := range keys {
		if c.FindCommand(k) != nil {
			return nil, configError(c, errs.ErrDuplicateCommand.WithArgs(k))
		}
	}
	c.commands.Set(strings.ToLower(child.Name), child)
	for _, alias := range child.Aliases {
		c.aliases[strings.ToLower(alias)] = child
	}

	return child, nil
}

// SetHelpOption designates a NoValue option which renders help and stops parsing.
// The option is inherited unless configs say otherwise.
func (c *Command) SetHelpOption(template string, configs ...ConfigureOptionFunc) (*Option, error) {
	opt, err := c.AddOption(template, types.NoValue, append([]ConfigureOptionFunc{SetInherited(true)}, configs...)...)
	if err != nil {
		return nil, err
	}
	c.helpOption = opt

	return opt, nil
}

// SetVersionOption designates a NoValue option which prints the result of version and stops parsing.
// The option is inherited unless configs say otherwise.
func (c *Command) SetVersionOption(template string, version VersionFunc, configs ...ConfigureOptionFunc) (*Option, error) {
	opt, err := c.AddOption(template, types.NoValue, append([]ConfigureOptionFunc{SetInherited(true)}, configs...)...)
	if err != nil {
		return nil, err
	}
	c.versionOption = opt
	c.versionFunc = version

	return opt, nil
}

// Parent returns the parent command or nil for the root
func (c *Command) Parent() *Command {
	return c.parent
}

// Root returns the top of the tree
func (c *Command) Root() *Command {
	n := c
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Path returns the names from the root down to c separated by spaces
func (c *Command) Path() string {
	var names []string
	for n := c; n != nil; n = n.parent {
		names = append(names, n.Name)
	}
	util.Reverse(names)
	return strings.Join(names, " ")
}

// Options returns the options declared on c
func (c *Command) Options() []*Option {
	return util.CloneSlice(c.options)
}

// Arguments returns the positional arguments declared on c
func (c *Command) Arguments() []*Argument {
	return util.CloneSlice(c.arguments)
}

// Commands returns the direct subcommands in declaration order
func (c *Command) Commands() []*Command {
	return c.commands.Values()
}

// FindCommand returns the direct subcommand whose name or alias matches name ignoring case
func (c *Command) FindCommand(name string) *Command {
	key := strings.ToLower(name)
	if sub, ok := c.commands.Get(key); ok {
		return sub
	}
	return c.aliases[key]
}

// GetOptions returns the options resolvable on c: its own followed by the inherited
// options of each ancestor, nearest first
func (c *Command) GetOptions() []*Option {
	out := util.CloneSlice(c.options)
	for n := c.parent; n != nil; n = n.parent {
		for _, o := range n.options {
			if o.Inherited {
				out = append(out, o)
			}
		}
	}
	return out
}

// findOption resolves name against the options visible on c. More than one match is a
// configuration error unless the designated help option is among them.
func (c *Command) findOption(name string, sel types.NameSelector) (*Option, error) {
	cmp := c.OptionsComparison()

	var matches []*Option
	for _, o := range c.GetOptions() {
		if n := o.Name(sel); n != "" && cmp.Equal(n, name) {
			matches = append(matches, o)
		}
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	}

	if help := c.HelpOption(); help != nil {
		for _, m := range matches {
			if m == help {
				return m, nil
			}
		}
	}

	return nil, configError(c, errs.ErrAmbiguousOption.WithArgs(name, c.Name))
}

// HelpOption returns the help option of c or the nearest inherited one
func (c *Command) HelpOption() *Option {
	for n := c; n != nil; n = n.parent {
		if n.helpOption != nil && (n == c || n.helpOption.Inherited) {
			return n.helpOption
		}
	}
	return nil
}

// VersionOption returns the version option of c or the nearest inherited one
func (c *Command) VersionOption() *Option {
	for n := c; n != nil; n = n.parent {
		if n.versionOption != nil && (n == c || n.versionOption.Inherited) {
			return n.versionOption
		}
	}
	return nil
}

// VersionText returns the text of the version option visible on c
func (c *Command) VersionText() string {
	opt := c.VersionOption()
	if opt == nil || opt.owner == nil || opt.owner.versionFunc == nil {
		return ""
	}
	return opt.owner.versionFunc()
}

// ThrowOnUnexpectedArgument reports whether unrecognized tokens fail the parse. Inherited, defaults to true.
func (c *Command) ThrowOnUnexpectedArgument() bool {
	for n := c; n != nil; n = n.parent {
		if n.throwOnUnexpected != nil {
			return *n.throwOnUnexpected
		}
	}
	return true
}

// ClusterOptions reports whether short options may be clustered. Inherited, defaults to true.
func (c *Command) ClusterOptions() bool {
	for n := c; n != nil; n = n.parent {
		if n.clusterOptions != nil {
			return *n.clusterOptions
		}
	}
	return true
}

// ClusterOptionsWasSetExplicitly reports whether ClusterOptions was configured on c itself
func (c *Command) ClusterOptionsWasSetExplicitly() bool {
	return c.clusterOptions != nil
}

// ResponseFileHandling returns how @file tokens are treated. Inherited, defaults to disabled.
func (c *Command) ResponseFileHandling() types.ResponseFileHandling {
	for n := c; n != nil; n = n.parent {
		if n.responseFileHandling != nil {
			return *n.responseFileHandling
		}
	}
	return types.ResponseFileDisabled
}

// OptionsComparison returns how option names are compared. Inherited, defaults to ordinal.
func (c *Command) OptionsComparison() types.StringComparison {
	for n := c; n != nil; n = n.parent {
		if n.optionsComparison != nil {
			return *n.optionsComparison
		}
	}
	return types.Ordinal
}

// ValidationErrorHandler returns the handler of c or its nearest ancestor; nil means the default handler
func (c *Command) ValidationErrorHandler() ValidationErrorHandlerFunc {
	for n := c; n != nil; n = n.parent {
		if n.validationHandler != nil {
			return n.validationHandler
		}
	}
	return nil
}

// effectiveClustering decides whether short options are clustered while parsing c. Unless
// configured on c, clustering is off as soon as a visible short name has more than one character.
func (c *Command) effectiveClustering() (bool, error) {
	if c.ClusterOptionsWasSetExplicitly() {
		if *c.clusterOptions {
			for _, o := range c.GetOptions() {
				if utf8.RuneCountInString(o.ShortName) > 1 {
					return false, configError(c, errs.ErrShortNameTooLong.WithArgs(o.DisplayName()))
				}
			}
		}
		return *c.clusterOptions, nil
	}

	for _, o := range c.GetOptions() {
		if utf8.RuneCountInString(o.ShortName) > 1 {
			return false, nil
		}
	}
	return c.ClusterOptions(), nil
}

// RemainingArguments returns the tokens which were not interpreted
func (c *Command) RemainingArguments() []string {
	return util.CloneSlice(c.remaining)
}

// IsShowingInformation reports whether help or version output was produced for c or a descendant
func (c *Command) IsShowingInformation() bool {
	return c.showingInformation
}

// Reset clears values, remaining arguments and the information flag on c and all descendants
func (c *Command) Reset() {
	for _, o := range c.options {
		o.Reset()
	}
	for _, a := range c.arguments {
		a.Reset()
	}
	c.remaining = nil
	c.showingInformation = false
	for _, sub := range c.commands.All() {
		sub.Reset()
	}
}

// walk visits c and its descendants depth first
func (c *Command) walk(fn func(*Command)) {
	fn(c)
	for _, sub := range c.commands.All() {
		sub.walk(fn)
	}
}
