// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package cmdline parses command lines against a tree of commands, options and positional
// arguments.
//
// Options are written --long[=value|:value| value], -s[=value] or as a symbol such as -?.
// Single character short options can be clustered (-abc), '--' ends option processing when
// allowed, and @file tokens splice the contents of response files into the arguments.
//
// A parse selects the deepest matching command, validates it and invokes its handler:
//
//	root, _ := cmdline.NewCommand("tool")
//	verbose, _ := root.AddOption("-v|--verbose", types.NoValue, cmdline.SetInherited(true))
//	_, _ = root.AddSubcommand("build", func(cmd *cmdline.Command) error {
//		target, err := cmd.AddArgument("target", false)
//		if err != nil {
//			return err
//		}
//		return cmd.Set(cmdline.WithAction(func(ctx context.Context, cmd *cmdline.Command) error {
//			fmt.Println("building", target.Value(), verbose.HasValue())
//			return nil
//		}))
//	})
//	p, _ := cmdline.NewParser(root)
//	os.Exit(p.Execute(context.Background(), os.Args[1:]))
package cmdline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/napalu/cmdline/console"
	"github.com/napalu/cmdline/env"
	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/i18n"
	"github.com/napalu/cmdline/internal/parse"
	"github.com/napalu/cmdline/internal/util"
	"github.com/napalu/cmdline/types"
	"github.com/napalu/cmdline/valueparse"
)

// NewParser creates a Parser for the tree rooted at root. The caller should always test for
// error on return because Parser will be nil when an error occurs during initialization.
func NewParser(root *Command, configs ...ConfigureParserFunc) (*Parser, error) {
	if root == nil {
		return nil, errs.ErrNilCommand
	}

	wd, _ := os.Getwd()
	p := &Parser{
		root:         root,
		separators:   util.CloneSlice(parse.DefaultSeparators),
		workingDir:   wd,
		logger:       slog.New(slog.DiscardHandler),
		console:      console.Physical(),
		renderer:     NewRenderer(),
		envResolver:  &env.DefaultEnvResolver{},
		valueParsers: valueparse.NewProvider(),
	}

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Root returns the root command
func (p *Parser) Root() *Command {
	return p.root
}

// ValueParsers returns the provider used for bindings and typed lookups
func (p *Parser) ValueParsers() *valueparse.Provider {
	return p.valueParsers
}

// Parse resets the tree and parses args. Parse and configuration errors are returned as
// *ParseError and *ConfigError; a validation failure is reported in the result.
func (p *Parser) Parse(args []string) (*ParseResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.parse(args)
}

// ParseString splits s using shell quoting rules and parses the resulting arguments
func (p *Parser) ParseString(s string) (*ParseResult, error) {
	args, err := parse.Split(s)
	if err != nil {
		return nil, errs.ErrSplitCommandLine.Wrap(err)
	}

	return p.Parse(args)
}

func (p *Parser) parse(args []string) (*ParseResult, error) {
	p.root.Reset()

	id := uuid.New()
	log := p.logger.With("parse_id", id.String())
	log.Debug("parse started", "event", "start", "command", p.root.Name, "args", len(args))

	pr := newProcessor(p, log, args)
	if err := pr.run(); err != nil {
		return nil, err
	}

	result := &ParseResult{
		ID:              id,
		SelectedCommand: pr.current,
		Outcome:         pr.outcome,
		provider:        p.valueParsers,
	}

	if pr.outcome == types.Completed {
		p.applyEnvironment(log, pr.current)
		if verr := Validate(pr.current); verr != nil {
			log.Debug("validation failed", "event", "validation", "command", pr.current.Name, "field", verr.Field, "error", verr)
			result.ValidationError = verr
		}
	}

	result.snapshot(p.root)
	log.Debug("parse finished", "event", "finish", "command", pr.current.Name, "outcome", pr.outcome.String())

	return result, nil
}

// Run parses args and invokes the handler of the selected command. Parse, configuration and
// handler errors are returned to the caller. Help and version output yield exit code 0, a
// validation failure yields the result of the validation error handler.
func (p *Parser) Run(ctx context.Context, args []string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	result, err := p.parse(args)
	if err != nil {
		return 1, err
	}
	if result.Outcome != types.Completed {
		return 0, nil
	}

	cmd := result.SelectedCommand
	verr := result.ValidationError
	if verr == nil {
		verr = p.applyBindings(cmd)
	}
	if verr != nil {
		handler := cmd.ValidationErrorHandler()
		if handler == nil {
			handler = defaultValidationErrorHandler
		}
		return handler(p.console, cmd, verr), nil
	}

	if cmd.Handler == nil {
		return 0, nil
	}
	p.logger.Debug("invoking handler", "parse_id", result.ID.String(), "event", "invoke", "command", cmd.Name)

	return cmd.Handler(ctx, cmd)
}

// Execute is Run for main functions: errors are printed to the error stream, followed by a
// hint naming the help option of the command where they occurred, and mapped to exit code 1.
func (p *Parser) Execute(ctx context.Context, args []string) int {
	code, err := p.Run(ctx, args)
	if err == nil {
		return code
	}

	hint := ""
	if cmd := errorCommand(err); cmd != nil {
		hint = helpHint(cmd)
	}
	console.WriteError(p.console, errorMessage(err), hint)
	if code == 0 {
		code = 1
	}

	return code
}

// errorMessage appends the suggestions of an unrecognized token to the error text
func errorMessage(err error) string {
	var pe *ParseError
	if !errors.As(err, &pe) || len(pe.Suggestions) == 0 {
		return err.Error()
	}

	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n\n")
	sb.WriteString(i18n.Default().T(errs.MsgDidYouMeanKey))
	for _, s := range pe.Suggestions {
		sb.WriteString("\n    ")
		sb.WriteString(s)
	}
	return sb.String()
}

// helpHint returns the "Specify --help ..." line for cmd or "" when it has no help option
func helpHint(cmd *Command) string {
	opt := cmd.HelpOption()
	if opt == nil {
		return ""
	}
	return i18n.Default().T(errs.MsgHelpHintKey, opt.DisplayName())
}

// IsParseError reports whether err is a *ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsConfigError reports whether err is a *ConfigError
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
