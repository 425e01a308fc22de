package cmdline

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/internal/parse"
	"github.com/napalu/cmdline/internal/util"
	"github.com/napalu/cmdline/types"
)

// processor walks the argument stream once, left to right, against the command tree
type processor struct {
	parser  *Parser
	log     *slog.Logger
	stream  *parse.Stream
	current *Command
	// argIndex is the next positional argument of current to fill
	argIndex       int
	clustering     bool
	spaceSeparated bool
	outcome        types.Outcome
}

func newProcessor(p *Parser, log *slog.Logger, args []string) *processor {
	return &processor{
		parser:         p,
		log:            log,
		stream:         parse.NewStream(args),
		spaceSeparated: parse.SpaceSeparated(p.separators),
		outcome:        types.Completed,
	}
}

func (pr *processor) run() error {
	if err := pr.enter(pr.parser.root); err != nil {
		return err
	}

	for {
		item, ok := pr.stream.Next()
		if !ok {
			return nil
		}
		done, err := pr.next(item)
		if err != nil {
			pr.log.Debug("parse failed", "command", pr.current.Name, "token", item.Raw, "error", err)
			return err
		}
		if done {
			return nil
		}
	}
}

// next processes one token and reports whether scanning is over
func (pr *processor) next(item parse.Item) (bool, error) {
	if strings.HasPrefix(item.Raw, "@") && !item.FromResponseFile {
		if handling := pr.current.ResponseFileHandling(); handling != types.ResponseFileDisabled {
			return false, pr.expandResponseFile(item.Raw, handling)
		}
	}

	tok := parse.Classify(item.Raw, pr.parser.separators)
	switch tok.Kind {
	case parse.Separator:
		if !pr.current.AllowArgumentSeparator {
			return pr.unrecognized(tok)
		}
		rest := pr.stream.Drain()
		pr.current.remaining = append(pr.current.remaining, rest...)
		pr.log.Debug("argument separator", "event", "separator", "command", pr.current.Name, "remaining", len(rest))
		return true, nil
	case parse.ShortOption:
		if pr.clustering {
			return pr.processCluster(tok)
		}
		return pr.processOption(tok)
	case parse.LongOption:
		return pr.processOption(tok)
	}

	return pr.processPositional(tok)
}

func (pr *processor) expandResponseFile(raw string, handling types.ResponseFileHandling) error {
	tokens, err := parse.ExpandResponseFile(pr.parser.workingDir, raw[1:], handling)
	if err != nil {
		return &ParseError{
			Kind:    ResponseFile,
			Command: pr.current,
			Token:   raw,
			Err:     errs.ErrResponseFile.WithArgs(raw[1:]).Wrap(err),
		}
	}
	pr.log.Debug("response file expanded", "event", "response_file", "token", raw, "tokens", len(tokens))
	pr.stream.InsertNext(tokens, true)

	return nil
}

// enter makes cmd the current command and resets the positional cursor
func (pr *processor) enter(cmd *Command) error {
	clustering, err := cmd.effectiveClustering()
	if err != nil {
		return err
	}
	pr.current = cmd
	pr.argIndex = 0
	pr.clustering = clustering
	pr.log.Debug("command selected", "event", "enter", "command", cmd.Name, "cluster_options", clustering)

	return nil
}

func (pr *processor) resolve(tok parse.Token) (*Option, error) {
	if tok.Kind == parse.LongOption {
		return pr.current.findOption(tok.Name, types.ByLongName)
	}
	opt, err := pr.current.findOption(tok.Name, types.ByShortName)
	if opt != nil || err != nil {
		return opt, err
	}
	return pr.current.findOption(tok.Name, types.BySymbolName)
}

func (pr *processor) processOption(tok parse.Token) (bool, error) {
	opt, err := pr.resolve(tok)
	if err != nil {
		return false, err
	}
	if opt == nil {
		return pr.unrecognized(tok)
	}
	if stop, handled := pr.information(opt); handled {
		return stop, nil
	}

	return false, pr.consumeValue(opt, tok.Name, tok.Value, tok.HasValue)
}

// processCluster expands -abc into -a -b -c. The first option needing a value which is not
// the last character takes the rest of the token as its value.
func (pr *processor) processCluster(tok parse.Token) (bool, error) {
	runes := []rune(tok.Name)
	if len(runes) == 0 {
		return pr.unrecognized(tok)
	}
	for i, r := range runes {
		name := string(r)
		opt, err := pr.current.findOption(name, types.ByShortName)
		if err == nil && opt == nil {
			opt, err = pr.current.findOption(name, types.BySymbolName)
		}
		if err != nil {
			return false, err
		}
		if opt == nil {
			return pr.unrecognized(tok)
		}
		if stop, handled := pr.information(opt); handled {
			return stop, nil
		}

		last := i == len(runes)-1
		switch {
		case last:
			return false, pr.consumeValue(opt, name, tok.Value, tok.HasValue)
		case opt.OptionType.RequiresValue():
			if tok.HasValue {
				return false, &ParseError{
					Kind:        ClusterOrder,
					Command:     pr.current,
					Token:       tok.Raw,
					Option:      opt,
					OptionToken: true,
					Err:         errs.ErrClusterOrder.WithArgs(name),
				}
			}
			return false, pr.consumeValue(opt, name, string(runes[i+1:]), true)
		default:
			if err := pr.consumeValue(opt, name, "", false); err != nil {
				return false, err
			}
		}
	}

	return false, nil
}

// consumeValue records one occurrence of opt. Without an inline value, options needing
// one take the next token verbatim when values may be space separated.
func (pr *processor) consumeValue(opt *Option, name, value string, hasValue bool) error {
	if !hasValue && opt.OptionType.RequiresValue() {
		if !pr.spaceSeparated {
			return pr.missingValue(opt, name)
		}
		item, ok := pr.stream.Next()
		if !ok {
			return pr.missingValue(opt, name)
		}
		value, hasValue = item.Raw, true
	}

	if !opt.TryParse(value, hasValue) {
		return &ParseError{
			Kind:        UnexpectedValue,
			Command:     pr.current,
			Token:       value,
			Option:      opt,
			OptionToken: true,
			Err:         errs.ErrUnexpectedValue.WithArgs(value, name),
		}
	}
	pr.log.Debug("option parsed", "event", "option", "command", pr.current.Name, "option", opt.DisplayName(), "has_value", hasValue)

	return nil
}

func (pr *processor) missingValue(opt *Option, name string) error {
	return &ParseError{
		Kind:        MissingValue,
		Command:     pr.current,
		Token:       name,
		Option:      opt,
		OptionToken: true,
		Err:         errs.ErrMissingValue.WithArgs(name),
	}
}

// information handles the help and version options. handled is false for any other option.
func (pr *processor) information(opt *Option) (stop bool, handled bool) {
	var outcome types.Outcome
	switch opt {
	case pr.current.HelpOption():
		outcome = types.StoppedForHelp
	case pr.current.VersionOption():
		outcome = types.StoppedForVersion
	default:
		return false, false
	}

	opt.TryParse("", false)
	for n := pr.current; n != nil; n = n.parent {
		n.showingInformation = true
	}
	pr.outcome = outcome

	out := pr.parser.console.Out()
	var err error
	if outcome == types.StoppedForHelp {
		err = pr.parser.renderer.RenderHelp(out, pr.current)
	} else {
		err = pr.parser.renderer.RenderVersion(out, pr.current)
	}
	if err != nil {
		pr.log.Warn("information output failed", "command", pr.current.Name, "error", err)
	}
	pr.log.Debug("information shown", "event", outcome.String(), "command", pr.current.Name)

	return !pr.parser.continueAfterHelp, true
}

func (pr *processor) processPositional(tok parse.Token) (bool, error) {
	if sub := pr.current.FindCommand(tok.Raw); sub != nil {
		return false, pr.enter(sub)
	}

	if pr.argIndex < len(pr.current.arguments) {
		arg := pr.current.arguments[pr.argIndex]
		if !arg.accept(tok.Raw) {
			pr.argIndex++
		}
		pr.log.Debug("argument parsed", "event", "argument", "command", pr.current.Name, "argument", arg.Name)
		return false, nil
	}

	return pr.unrecognized(tok)
}

// unrecognized fails the parse, or collects tok and everything after it when the current
// command does not throw on unexpected arguments
func (pr *processor) unrecognized(tok parse.Token) (bool, error) {
	if !pr.current.ThrowOnUnexpectedArgument() {
		rest := pr.stream.Drain()
		pr.current.remaining = append(pr.current.remaining, tok.Raw)
		pr.current.remaining = append(pr.current.remaining, rest...)
		pr.log.Debug("unrecognized token collected", "event", "remaining", "command", pr.current.Name, "token", tok.Raw)
		return true, nil
	}

	pe := &ParseError{
		Kind:        UnrecognizedArgument,
		Command:     pr.current,
		Token:       tok.Raw,
		OptionToken: tok.IsOption(),
	}
	if tok.IsOption() {
		pe.Err = errs.ErrUnrecognizedOption.WithArgs(tok.Raw)
		pe.Suggestions = suggestOptions(pr.current, tok)
	} else {
		pe.Err = errs.ErrUnrecognizedArgument.WithArgs(tok.Raw)
		pe.Suggestions = suggestCommands(pr.current, tok.Raw)
	}

	return false, pe
}

// suggestOptions proposes dashed option names close to tok. A multi-character short
// token is also compared with long names.
func suggestOptions(cmd *Command, tok parse.Token) []string {
	var short, long []string
	for _, o := range visibleOptions(cmd) {
		long = append(long, o.LongName)
		short = append(short, o.ShortName, o.SymbolName)
	}

	var out []string
	if tok.Kind == parse.ShortOption {
		for _, s := range util.Suggest(tok.Name, short) {
			out = append(out, "-"+s)
		}
	}
	if tok.Kind == parse.LongOption || utf8.RuneCountInString(tok.Name) > 1 {
		for _, s := range util.Suggest(tok.Name, long) {
			out = append(out, "--"+s)
		}
	}
	if len(out) > util.MaxSuggestions {
		out = out[:util.MaxSuggestions]
	}
	return out
}

func suggestCommands(cmd *Command, token string) []string {
	var candidates []string
	for _, c := range visibleCommands(cmd) {
		candidates = append(candidates, c.Name)
		candidates = append(candidates, c.Aliases...)
	}
	return util.Suggest(token, candidates)
}

