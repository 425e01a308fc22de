// Package console wraps the streams a command line program writes to.
package console

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal
const DefaultWidth = 80

// Console is the set of streams used for help, version and error output
type Console interface {
	Out() io.Writer
	Err() io.Writer
	In() io.Reader
	IsOutputRedirected() bool
	IsErrorRedirected() bool
	// Width returns the terminal width in columns
	Width() int
}

// PhysicalConsole is the process console
type PhysicalConsole struct{}

// Physical returns the console backed by os.Stdout, os.Stderr and os.Stdin
func Physical() *PhysicalConsole {
	return &PhysicalConsole{}
}

func (c *PhysicalConsole) Out() io.Writer { return os.Stdout }
func (c *PhysicalConsole) Err() io.Writer { return os.Stderr }
func (c *PhysicalConsole) In() io.Reader  { return os.Stdin }

func (c *PhysicalConsole) IsOutputRedirected() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

func (c *PhysicalConsole) IsErrorRedirected() bool {
	return !term.IsTerminal(int(os.Stderr.Fd()))
}

func (c *PhysicalConsole) Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// TestConsole captures output in memory
type TestConsole struct {
	OutBuf bytes.Buffer
	ErrBuf bytes.Buffer
	InBuf  bytes.Buffer
}

// NewTest creates an empty TestConsole
func NewTest() *TestConsole {
	return &TestConsole{}
}

func (c *TestConsole) Out() io.Writer           { return &c.OutBuf }
func (c *TestConsole) Err() io.Writer           { return &c.ErrBuf }
func (c *TestConsole) In() io.Reader            { return &c.InBuf }
func (c *TestConsole) IsOutputRedirected() bool { return true }
func (c *TestConsole) IsErrorRedirected() bool  { return true }
func (c *TestConsole) Width() int               { return DefaultWidth }

// WriteError prints msg and an optional hint to the error stream. The message is
// red when the error stream is a terminal.
func WriteError(c Console, msg string, hint string) {
	red := color.New(color.FgRed)
	if c.IsErrorRedirected() {
		red.DisableColor()
	} else {
		red.EnableColor()
	}

	_, _ = red.Fprintln(c.Err(), strings.TrimRight(msg, "\n"))
	if hint != "" {
		_, _ = fmt.Fprintln(c.Err(), hint)
	}
}
