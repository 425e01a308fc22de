package cmdline

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/i18n"
)

// Renderer produces help and version output
type Renderer interface {
	RenderHelp(w io.Writer, cmd *Command) error
	RenderVersion(w io.Writer, cmd *Command) error
}

// DefaultRenderer prints a plain usage summary of a command
type DefaultRenderer struct {
	bundle *i18n.Bundle
}

// NewRenderer creates a DefaultRenderer using the default message bundle
func NewRenderer() *DefaultRenderer {
	return &DefaultRenderer{bundle: i18n.Default()}
}

// OptionUsage returns the option names and value placeholder, e.g. "-n|--name <NAME>"
func (r *DefaultRenderer) OptionUsage(o *Option) string {
	return o.Template()
}

// CommandUsage returns the usage line of cmd
func (r *DefaultRenderer) CommandUsage(cmd *Command) string {
	var sb strings.Builder
	sb.WriteString(r.bundle.T(errs.MsgUsageKey))
	sb.WriteString(": ")
	sb.WriteString(cmd.Path())
	if len(visibleOptions(cmd)) > 0 {
		sb.WriteString(" [options]")
	}
	for _, a := range cmd.arguments {
		sb.WriteString(" <" + a.Name + ">")
		if a.MultipleValues {
			sb.WriteString("...")
		}
	}
	if len(visibleCommands(cmd)) > 0 {
		sb.WriteString(" [command]")
	}
	return sb.String()
}

// RenderHelp writes the usage, arguments, options and subcommands of cmd
func (r *DefaultRenderer) RenderHelp(w io.Writer, cmd *Command) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, r.CommandUsage(cmd))
	if cmd.Description != "" {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, cmd.Description)
	}

	if len(cmd.arguments) > 0 {
		fmt.Fprintf(tw, "\n%s:\n", r.bundle.T(errs.MsgArgumentsKey))
		for _, a := range cmd.arguments {
			fmt.Fprintf(tw, "  %s\t%s\n", a.Name, a.Description)
		}
	}

	if opts := visibleOptions(cmd); len(opts) > 0 {
		fmt.Fprintf(tw, "\n%s:\n", r.bundle.T(errs.MsgOptionsKey))
		for _, o := range opts {
			fmt.Fprintf(tw, "  %s\t%s\n", r.OptionUsage(o), o.Description)
		}
	}

	if cmds := visibleCommands(cmd); len(cmds) > 0 {
		fmt.Fprintf(tw, "\n%s:\n", r.bundle.T(errs.MsgCommandsKey))
		for _, c := range cmds {
			fmt.Fprintf(tw, "  %s\t%s\n", c.Name, c.Description)
		}
	}

	return tw.Flush()
}

// RenderVersion writes the version text visible on cmd
func (r *DefaultRenderer) RenderVersion(w io.Writer, cmd *Command) error {
	_, err := fmt.Fprintln(w, cmd.VersionText())
	return err
}

func visibleOptions(cmd *Command) []*Option {
	var out []*Option
	for _, o := range cmd.GetOptions() {
		if !o.Hidden {
			out = append(out, o)
		}
	}
	return out
}

func visibleCommands(cmd *Command) []*Command {
	var out []*Command
	for _, c := range cmd.commands.All() {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}
