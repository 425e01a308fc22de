// Package declare loads command trees from YAML, TOML or HCL definition files.
//
// A definition names the root command and nests options, positional arguments and
// subcommands:
//
//	name    = "tool"
//	version = "1.4.0"
//	help    = "-h|--help"
//
//	option "verbose" {
//	  template  = "-v|--verbose"
//	  type      = "none"
//	  inherited = true
//	}
//
//	command "build" {
//	  argument "target" {
//	    required = true
//	  }
//	}
package declare

// Definition is the root of a declared command tree
type Definition struct {
	Name    string `yaml:"name" toml:"name" hcl:"name"`
	Version string `yaml:"version,omitempty" toml:"version,omitempty" hcl:"version,optional"`
	// Help is the template of the help option, e.g. "-h|--help"
	Help string `yaml:"help,omitempty" toml:"help,omitempty" hcl:"help,optional"`
	// VersionOption is the template of the version option; defaults to "--version" when Version is set
	VersionOption string `yaml:"version_option,omitempty" toml:"version_option,omitempty" hcl:"version_option,optional"`

	Description       string         `yaml:"description,omitempty" toml:"description,omitempty" hcl:"description,optional"`
	ThrowOnUnexpected *bool          `yaml:"throw_on_unexpected,omitempty" toml:"throw_on_unexpected,omitempty" hcl:"throw_on_unexpected,optional"`
	AllowSeparator    bool           `yaml:"allow_separator,omitempty" toml:"allow_separator,omitempty" hcl:"allow_separator,optional"`
	ClusterOptions    *bool          `yaml:"cluster_options,omitempty" toml:"cluster_options,omitempty" hcl:"cluster_options,optional"`
	ResponseFiles     string         `yaml:"response_files,omitempty" toml:"response_files,omitempty" hcl:"response_files,optional"`
	Comparison        string         `yaml:"comparison,omitempty" toml:"comparison,omitempty" hcl:"comparison,optional"`
	Options           []OptionDefinition   `yaml:"options,omitempty" toml:"options,omitempty" hcl:"option,block"`
	Arguments         []ArgumentDefinition `yaml:"arguments,omitempty" toml:"arguments,omitempty" hcl:"argument,block"`
	Commands          []CommandDefinition  `yaml:"commands,omitempty" toml:"commands,omitempty" hcl:"command,block"`
}

// CommandDefinition declares a subcommand
type CommandDefinition struct {
	Name              string         `yaml:"name" toml:"name" hcl:"name,label"`
	Aliases           []string       `yaml:"aliases,omitempty" toml:"aliases,omitempty" hcl:"aliases,optional"`
	Description       string         `yaml:"description,omitempty" toml:"description,omitempty" hcl:"description,optional"`
	Hidden            bool           `yaml:"hidden,omitempty" toml:"hidden,omitempty" hcl:"hidden,optional"`
	ThrowOnUnexpected *bool          `yaml:"throw_on_unexpected,omitempty" toml:"throw_on_unexpected,omitempty" hcl:"throw_on_unexpected,optional"`
	AllowSeparator    bool           `yaml:"allow_separator,omitempty" toml:"allow_separator,omitempty" hcl:"allow_separator,optional"`
	ClusterOptions    *bool          `yaml:"cluster_options,omitempty" toml:"cluster_options,omitempty" hcl:"cluster_options,optional"`
	ResponseFiles     string         `yaml:"response_files,omitempty" toml:"response_files,omitempty" hcl:"response_files,optional"`
	Comparison        string         `yaml:"comparison,omitempty" toml:"comparison,omitempty" hcl:"comparison,optional"`
	Options           []OptionDefinition   `yaml:"options,omitempty" toml:"options,omitempty" hcl:"option,block"`
	Arguments         []ArgumentDefinition `yaml:"arguments,omitempty" toml:"arguments,omitempty" hcl:"argument,block"`
	Commands          []CommandDefinition  `yaml:"commands,omitempty" toml:"commands,omitempty" hcl:"command,block"`
}

// OptionDefinition declares an option. Without a template the option is "--<name>" with the name
// converted to kebab case.
type OptionDefinition struct {
	Name        string   `yaml:"name" toml:"name" hcl:"name,label"`
	Template    string   `yaml:"template,omitempty" toml:"template,omitempty" hcl:"template,optional"`
	Type        string   `yaml:"type,omitempty" toml:"type,omitempty" hcl:"type,optional"`
	Description string   `yaml:"description,omitempty" toml:"description,omitempty" hcl:"description,optional"`
	Inherited   bool     `yaml:"inherited,omitempty" toml:"inherited,omitempty" hcl:"inherited,optional"`
	Hidden      bool     `yaml:"hidden,omitempty" toml:"hidden,omitempty" hcl:"hidden,optional"`
	Required    bool     `yaml:"required,omitempty" toml:"required,omitempty" hcl:"required,optional"`
	Env         string   `yaml:"env,omitempty" toml:"env,omitempty" hcl:"env,optional"`
	OneOf       []string `yaml:"one_of,omitempty" toml:"one_of,omitempty" hcl:"one_of,optional"`
	Pattern     string   `yaml:"pattern,omitempty" toml:"pattern,omitempty" hcl:"pattern,optional"`
}

// ArgumentDefinition declares a positional argument
type ArgumentDefinition struct {
	Name        string   `yaml:"name" toml:"name" hcl:"name,label"`
	Description string   `yaml:"description,omitempty" toml:"description,omitempty" hcl:"description,optional"`
	Multiple    bool     `yaml:"multiple,omitempty" toml:"multiple,omitempty" hcl:"multiple,optional"`
	Required    bool     `yaml:"required,omitempty" toml:"required,omitempty" hcl:"required,optional"`
	OneOf       []string `yaml:"one_of,omitempty" toml:"one_of,omitempty" hcl:"one_of,optional"`
	Pattern     string   `yaml:"pattern,omitempty" toml:"pattern,omitempty" hcl:"pattern,optional"`
}

// command returns the root command part of the document
func (s *Definition) command() CommandDefinition {
	return CommandDefinition{
		Name:              s.Name,
		Description:       s.Description,
		ThrowOnUnexpected: s.ThrowOnUnexpected,
		AllowSeparator:    s.AllowSeparator,
		ClusterOptions:    s.ClusterOptions,
		ResponseFiles:     s.ResponseFiles,
		Comparison:        s.Comparison,
		Options:           s.Options,
		Arguments:         s.Arguments,
		Commands:          s.Commands,
	}
}
