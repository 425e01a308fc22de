// Command cmdline-check parses arguments against a command tree declared in a YAML, TOML or
// HCL file and prints what the parser made of them.
//
//	cmdline-check [-d] <definition> [--] args...
//	cmdline-check --completion bash|zsh|fish <definition>
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/napalu/cmdline"
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/validation"
)

func main() {
	p, err := newCheckParser(os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(p.Execute(context.Background(), os.Args[1:]))
}

func newCheckParser(stdout, stderr io.Writer) (*cmdline.Parser, error) {
	c := &checker{out: stdout, errOut: stderr}

	root, err := cmdline.NewCommand("cmdline-check",
		cmdline.WithCommandDescription("Parse arguments against a declared command tree and print the result as YAML"),
		cmdline.WithAllowArgumentSeparator(true),
		cmdline.WithThrowOnUnexpectedArgument(false),
		cmdline.WithHandler(c.run))
	if err != nil {
		return nil, err
	}
	if _, err := root.SetHelpOption("-h|--help", cmdline.WithDescription("Show help")); err != nil {
		return nil, err
	}
	if c.debug, err = root.AddOption("-d|--debug", types.NoValue,
		cmdline.WithDescription("Log every parsing step to stderr")); err != nil {
		return nil, err
	}
	if c.completion, err = root.AddOption("--completion <SHELL>", types.SingleValue,
		cmdline.WithDescription("Print a completion script for the declared tree instead of parsing"),
		cmdline.WithValueValidators(validation.OneOf("bash", "zsh", "fish"))); err != nil {
		return nil, err
	}
	if c.definition, err = root.AddArgument("definition", false,
		cmdline.WithArgumentDescription("Definition file (.yaml, .yml, .toml or .hcl)"),
		cmdline.SetArgumentRequired(true),
		cmdline.WithArgumentValueValidators(validation.FileExists())); err != nil {
		return nil, err
	}

	return cmdline.NewParser(root, cmdline.WithConsole(&streams{out: stdout, err: stderr}))
}
