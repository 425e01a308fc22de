package cmdline

import (
	"log/slog"
	"path/filepath"

	"github.com/napalu/cmdline/console"
	"github.com/napalu/cmdline/env"
	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/i18n"
	"github.com/napalu/cmdline/internal/util"
	"github.com/napalu/cmdline/valueparse"
	"golang.org/x/text/language"
)

// WithOptionValueSeparators replaces the characters which split an option name from its
// value. A space means the value may also be given as the next token.
func WithOptionValueSeparators(separators ...rune) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if len(separators) == 0 {
			*err = errs.ErrNoSeparators
			return
		}
		p.separators = util.CloneSlice(separators)
	}
}

// WithWorkingDirectory sets the directory relative response file paths are resolved against
func WithWorkingDirectory(dir string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		abs, e := filepath.Abs(dir)
		if e != nil {
			*err = errs.ErrConfiguringParser.Wrap(e)
			return
		}
		p.workingDir = abs
	}
}

// WithLogger sets the logger receiving debug traces of every parse
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithConsole sets the streams used for help, version and error output
func WithConsole(c console.Console) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if c != nil {
			p.console = c
		}
	}
}

// WithRenderer replaces the help and version renderer
func WithRenderer(r Renderer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if r != nil {
			p.renderer = r
		}
	}
}

// WithContinueAfterHelp keeps parsing after help or version output. The handler and
// validation are still skipped.
func WithContinueAfterHelp(continueAfterHelp bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.continueAfterHelp = continueAfterHelp
	}
}

// WithEnvResolver sets the resolver used for option environment fallbacks
func WithEnvResolver(r env.Resolver) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if r != nil {
			p.envResolver = r
		}
	}
}

// WithValueParsers replaces the value parser provider used by Bind and ParseResult lookups
func WithValueParsers(provider *valueparse.Provider) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if provider != nil {
			p.valueParsers = provider
		}
	}
}

// WithLanguage selects the language of messages. This changes the default bundle and
// therefore affects every parser in the process.
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if e := i18n.Default().SetDefaultLanguage(lang); e != nil {
			*err = errs.ErrLanguageUnavailable.WithArgs(lang.String()).Wrap(e)
		}
	}
}
