// Package completion generates shell completion scripts for a command tree.
package completion

import (
	"strings"

	"github.com/napalu/cmdline"
)

// Flag is an option as seen by a shell
type Flag struct {
	Short       string
	Long        string
	Symbol      string
	Description string
	// TakesValue is true when the option consumes the following word
	TakesValue bool
}

// Names returns the dashed spellings of the flag
func (f Flag) Names() []string {
	var names []string
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	if f.Symbol != "" {
		names = append(names, "-"+f.Symbol)
	}
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	return names
}

// Subcommand is a child command reachable by name or alias
type Subcommand struct {
	Name        string
	Aliases     []string
	Description string
}

// Node describes what can be completed once the words typed so far selected Path
type Node struct {
	// Path is the command path from the root, e.g. "tool remote add"
	Path        string
	Flags       []Flag
	Subcommands []Subcommand
}

// Data holds the completion nodes of a tree in depth first order
type Data struct {
	Program string
	Nodes   []Node
}

// FromCommand collects the visible options and subcommands of every command below root
func FromCommand(root *cmdline.Command) Data {
	data := Data{Program: root.Name}
	collect(root, &data)
	return data
}

func collect(cmd *cmdline.Command, data *Data) {
	node := Node{Path: cmd.Path()}
	for _, o := range cmd.GetOptions() {
		if o.Hidden {
			continue
		}
		node.Flags = append(node.Flags, Flag{
			Short:       o.ShortName,
			Long:        o.LongName,
			Symbol:      o.SymbolName,
			Description: o.Description,
			TakesValue:  o.OptionType.RequiresValue(),
		})
	}

	var children []*cmdline.Command
	for _, sub := range cmd.Commands() {
		if sub.Hidden {
			continue
		}
		children = append(children, sub)
		node.Subcommands = append(node.Subcommands, Subcommand{
			Name:        sub.Name,
			Aliases:     sub.Aliases,
			Description: sub.Description,
		})
	}
	data.Nodes = append(data.Nodes, node)

	for _, sub := range children {
		collect(sub, data)
	}
}

// funcName turns a program name into a shell identifier
func funcName(program string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, program)
}
