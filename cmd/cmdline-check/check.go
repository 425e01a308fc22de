package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/napalu/cmdline"
	"github.com/napalu/cmdline/completion"
	"github.com/napalu/cmdline/console"
	"github.com/napalu/cmdline/declare"
	"gopkg.in/yaml.v3"
)

type checker struct {
	out        io.Writer
	errOut     io.Writer
	debug      *cmdline.Option
	completion *cmdline.Option
	definition *cmdline.Argument
}

// report is the YAML document printed for a successful parse
type report struct {
	ParseID         string              `yaml:"parse_id"`
	Command         string              `yaml:"command"`
	Outcome         string              `yaml:"outcome"`
	Options         map[string][]string `yaml:"options,omitempty"`
	Arguments       map[string][]string `yaml:"arguments,omitempty"`
	Remaining       []string            `yaml:"remaining,omitempty"`
	ValidationError string              `yaml:"validation_error,omitempty"`
}

// run parses the remaining arguments of cmd against the declared tree
func (c *checker) run(ctx context.Context, cmd *cmdline.Command) (int, error) {
	def, err := declare.LoadFile(c.definition.Value())
	if err != nil {
		return 1, err
	}
	tree, err := declare.Build(def)
	if err != nil {
		return 1, err
	}

	if c.completion.HasValue() {
		script := completion.GetGenerator(c.completion.Value()).Generate(completion.FromCommand(tree))
		_, err := io.WriteString(c.out, script)
		return 0, err
	}

	level := slog.LevelWarn
	if c.debug.HasValue() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(c.errOut, &slog.HandlerOptions{Level: level}))

	out := &streams{out: c.out, err: c.errOut}
	p, err := cmdline.NewParser(tree, cmdline.WithLogger(logger), cmdline.WithConsole(out))
	if err != nil {
		return 1, err
	}

	result, err := p.Parse(cmd.RemainingArguments())
	if err != nil {
		return 1, err
	}

	enc := yaml.NewEncoder(c.out)
	enc.SetIndent(2)
	if err := enc.Encode(newReport(result)); err != nil {
		return 1, err
	}
	if err := enc.Close(); err != nil {
		return 1, err
	}

	if result.ValidationError != nil {
		return 1, nil
	}
	return 0, nil
}

func newReport(result *cmdline.ParseResult) report {
	r := report{
		ParseID:   result.ID.String(),
		Command:   result.SelectedCommand.Path(),
		Outcome:   result.Outcome.String(),
		Options:   map[string][]string{},
		Arguments: map[string][]string{},
		Remaining: result.RemainingArguments(),
	}

	for _, o := range result.SelectedCommand.GetOptions() {
		if result.HasOption(o) {
			r.Options[o.DisplayName()] = result.OptionValues(o)
		}
	}
	for _, a := range result.SelectedCommand.Arguments() {
		if values := result.ArgumentValues(a); len(values) > 0 {
			r.Arguments[a.Name] = values
		}
	}
	if result.ValidationError != nil {
		r.ValidationError = result.ValidationError.Error()
	}

	return r
}

// streams is a console over explicit writers; the checked tree never reads input
type streams struct {
	out io.Writer
	err io.Writer
}

var _ console.Console = (*streams)(nil)

func (s *streams) Out() io.Writer           { return s.out }
func (s *streams) Err() io.Writer           { return s.err }
func (s *streams) In() io.Reader            { return eofReader{} }
func (s *streams) IsOutputRedirected() bool { return true }
func (s *streams) IsErrorRedirected() bool  { return true }
func (s *streams) Width() int               { return console.DefaultWidth }

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
