package declare

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/iancoleman/strcase"
	"github.com/napalu/cmdline"
	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/validation"
)

// DefaultVersionTemplate is used when a version is declared without a version option template
const DefaultVersionTemplate = "--version"

// Build creates the command tree declared by def
func Build(def *Definition) (*cmdline.Command, error) {
	rootDef := def.command()
	configs, err := commandConfigs(rootDef)
	if err != nil {
		return nil, err
	}
	root, err := cmdline.NewCommand(def.Name, configs...)
	if err != nil {
		return nil, err
	}

	if def.Help != "" {
		if _, err := root.SetHelpOption(def.Help, cmdline.WithDescription("Show help")); err != nil {
			return nil, err
		}
	}

	if def.Version != "" {
		v, err := semver.NewVersion(def.Version)
		if err != nil {
			return nil, errs.ErrInvalidVersion.WithArgs(def.Version).Wrap(err)
		}
		template := def.VersionOption
		if template == "" {
			template = DefaultVersionTemplate
		}
		text := v.String()
		if _, err := root.SetVersionOption(template, func() string { return text }, cmdline.WithDescription("Show version")); err != nil {
			return nil, err
		}
	}

	if err := populate(root, rootDef); err != nil {
		return nil, err
	}

	return root, nil
}

func populate(cmd *cmdline.Command, cs CommandDefinition) error {
	for _, o := range cs.Options {
		if err := addOption(cmd, o); err != nil {
			return err
		}
	}

	for _, a := range cs.Arguments {
		configs := []cmdline.ConfigureArgumentFunc{
			cmdline.WithArgumentDescription(a.Description),
			cmdline.SetArgumentRequired(a.Required),
		}
		checks, err := valueValidators(a.OneOf, a.Pattern)
		if err != nil {
			return fmt.Errorf("argument %s: %w", a.Name, err)
		}
		if len(checks) > 0 {
			configs = append(configs, cmdline.WithArgumentValueValidators(checks...))
		}
		if _, err := cmd.AddArgument(a.Name, a.Multiple, configs...); err != nil {
			return err
		}
	}

	for _, sub := range cs.Commands {
		configs, err := commandConfigs(sub)
		if err != nil {
			return err
		}
		_, err = cmd.AddSubcommand(sub.Name, func(child *cmdline.Command) error {
			if err := child.Set(configs...); err != nil {
				return err
			}
			return populate(child, sub)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func addOption(cmd *cmdline.Command, o OptionDefinition) error {
	template := o.Template
	if template == "" {
		template = "--" + strcase.ToKebab(o.Name)
	}
	optionType, ok := types.ParseOptionType(o.Type)
	if !ok {
		return errs.ErrInvalidOptionType.WithArgs(o.Type)
	}

	configs := []cmdline.ConfigureOptionFunc{
		cmdline.WithDescription(o.Description),
		cmdline.SetInherited(o.Inherited),
		cmdline.SetHidden(o.Hidden),
		cmdline.SetRequired(o.Required),
	}
	if o.Env != "" {
		configs = append(configs, cmdline.WithEnvVar(o.Env))
	}
	checks, err := valueValidators(o.OneOf, o.Pattern)
	if err != nil {
		return fmt.Errorf("option %s: %w", o.Name, err)
	}
	if len(checks) > 0 {
		configs = append(configs, cmdline.WithValueValidators(checks...))
	}

	_, err = cmd.AddOption(template, optionType, configs...)
	return err
}

func valueValidators(oneOf []string, pattern string) ([]validation.ValidatorFunc, error) {
	var checks []validation.ValidatorFunc
	if len(oneOf) > 0 {
		checks = append(checks, validation.OneOf(oneOf...))
	}
	if pattern != "" {
		if _, err := regexp.Compile(pattern); err != nil {
			return nil, err
		}
		checks = append(checks, validation.Regex(pattern))
	}
	return checks, nil
}

func commandConfigs(cs CommandDefinition) ([]cmdline.ConfigureCommandFunc, error) {
	configs := []cmdline.ConfigureCommandFunc{
		cmdline.WithCommandDescription(cs.Description),
		cmdline.SetCommandHidden(cs.Hidden),
		cmdline.WithAllowArgumentSeparator(cs.AllowSeparator),
	}
	if len(cs.Aliases) > 0 {
		configs = append(configs, cmdline.WithAliases(cs.Aliases...))
	}
	if cs.ThrowOnUnexpected != nil {
		configs = append(configs, cmdline.WithThrowOnUnexpectedArgument(*cs.ThrowOnUnexpected))
	}
	if cs.ClusterOptions != nil {
		configs = append(configs, cmdline.WithClusterOptions(*cs.ClusterOptions))
	}
	if cs.ResponseFiles != "" {
		handling, ok := types.ParseResponseFileHandling(cs.ResponseFiles)
		if !ok {
			return nil, errs.ErrInvalidResponseHandling.WithArgs(cs.ResponseFiles)
		}
		configs = append(configs, cmdline.WithResponseFileHandling(handling))
	}
	if cs.Comparison != "" {
		comparison, ok := types.ParseStringComparison(cs.Comparison)
		if !ok {
			return nil, errs.ErrInvalidComparison.WithArgs(cs.Comparison)
		}
		configs = append(configs, cmdline.WithOptionsComparison(comparison))
	}

	return configs, nil
}
