package completion

import (
	"fmt"
	"strings"
)

// Generator renders a completion script
type Generator interface {
	Generate(data Data) string
}

// GetGenerator returns the generator for shell, or nil when the shell is not supported
func GetGenerator(shell string) Generator {
	switch shell {
	case "bash":
		return &BashGenerator{}
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	}
	return nil
}

// transitions writes one case entry per subcommand name or alias, mapping
// "<path> <word>" to the path of the child
func transitions(data Data, entry func(from []string, to string)) {
	for _, n := range data.Nodes {
		for _, sub := range n.Subcommands {
			from := []string{n.Path + " " + sub.Name}
			for _, alias := range sub.Aliases {
				from = append(from, n.Path+" "+alias)
			}
			entry(from, n.Path+" "+sub.Name)
		}
	}
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, "|")
}

// BashGenerator produces a script for bash-completion
type BashGenerator struct{}

func (g *BashGenerator) Generate(data Data) string {
	var sb strings.Builder
	fn := "_" + funcName(data.Program)

	fmt.Fprintf(&sb, "# bash completion for %s\n\n", data.Program)
	fmt.Fprintf(&sb, "%s() {\n", fn)
	sb.WriteString("    local cur cmdpath w i\n")
	sb.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	fmt.Fprintf(&sb, "    cmdpath=%q\n", data.Program)
	sb.WriteString("    for ((i=1; i < COMP_CWORD; i++)); do\n")
	sb.WriteString("        w=\"${COMP_WORDS[i]}\"\n")
	sb.WriteString("        [[ \"$w\" == \"--\" ]] && return\n")
	sb.WriteString("        case \"${cmdpath} ${w}\" in\n")
	transitions(data, func(from []string, to string) {
		fmt.Fprintf(&sb, "            %s) cmdpath=%q ;;\n", quoteAll(from), to)
	})
	sb.WriteString("        esac\n")
	sb.WriteString("    done\n\n")

	sb.WriteString("    case \"$cmdpath\" in\n")
	for _, n := range data.Nodes {
		var flags, words []string
		for _, f := range n.Flags {
			flags = append(flags, f.Names()...)
		}
		for _, sub := range n.Subcommands {
			words = append(words, sub.Name)
			words = append(words, sub.Aliases...)
		}
		fmt.Fprintf(&sb, "        %q)\n", n.Path)
		sb.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&sb, "                COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(flags, " "))
		sb.WriteString("            else\n")
		fmt.Fprintf(&sb, "                COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(words, " "))
		sb.WriteString("            fi\n")
		sb.WriteString("            ;;\n")
	}
	sb.WriteString("    esac\n")
	sb.WriteString("}\n\n")
	fmt.Fprintf(&sb, "complete -o default -F %s %s\n", fn, data.Program)

	return sb.String()
}

// ZshGenerator produces a script for the zsh completion system
type ZshGenerator struct{}

func (g *ZshGenerator) Generate(data Data) string {
	var sb strings.Builder
	fn := "_" + funcName(data.Program)

	fmt.Fprintf(&sb, "#compdef %s\n\n", data.Program)
	fmt.Fprintf(&sb, "%s() {\n", fn)
	fmt.Fprintf(&sb, "    local cmdpath=%q w\n", data.Program)
	sb.WriteString("    local -a opts cmds\n")
	sb.WriteString("    for w in ${words[2,CURRENT-1]}; do\n")
	sb.WriteString("        [[ \"$w\" == \"--\" ]] && return\n")
	sb.WriteString("        case \"${cmdpath} ${w}\" in\n")
	transitions(data, func(from []string, to string) {
		fmt.Fprintf(&sb, "            %s) cmdpath=%q ;;\n", quoteAll(from), to)
	})
	sb.WriteString("        esac\n")
	sb.WriteString("    done\n\n")

	sb.WriteString("    case \"$cmdpath\" in\n")
	for _, n := range data.Nodes {
		fmt.Fprintf(&sb, "        %q)\n", n.Path)
		sb.WriteString("            opts=(")
		for _, f := range n.Flags {
			for _, name := range f.Names() {
				fmt.Fprintf(&sb, " '%s'", zshItem(name, f.Description))
			}
		}
		sb.WriteString(" )\n")
		sb.WriteString("            cmds=(")
		for _, sub := range n.Subcommands {
			fmt.Fprintf(&sb, " '%s'", zshItem(sub.Name, sub.Description))
			for _, alias := range sub.Aliases {
				fmt.Fprintf(&sb, " '%s'", zshItem(alias, sub.Description))
			}
		}
		sb.WriteString(" )\n")
		sb.WriteString("            ;;\n")
	}
	sb.WriteString("    esac\n\n")

	sb.WriteString("    if [[ \"$PREFIX\" == -* ]]; then\n")
	sb.WriteString("        _describe -t options option opts\n")
	sb.WriteString("    else\n")
	sb.WriteString("        _describe -t commands command cmds || _files\n")
	sb.WriteString("    fi\n")
	sb.WriteString("}\n\n")
	fmt.Fprintf(&sb, "%s \"$@\"\n", fn)

	return sb.String()
}

// zshItem renders a _describe entry; colons in the name must be escaped
func zshItem(name, desc string) string {
	item := strings.ReplaceAll(name, ":", `\:`)
	if desc != "" {
		item += ":" + desc
	}
	return escapeSingleQuoted(item)
}

// FishGenerator produces a script for fish
type FishGenerator struct{}

func (g *FishGenerator) Generate(data Data) string {
	var sb strings.Builder
	fn := "__" + funcName(data.Program) + "_path"

	fmt.Fprintf(&sb, "# fish completion for %s\n\n", data.Program)
	fmt.Fprintf(&sb, "function %s\n", fn)
	fmt.Fprintf(&sb, "    set -l cmdpath '%s'\n", escapeSingleQuoted(data.Program))
	sb.WriteString("    for w in (commandline -opc)[2..-1]\n")
	sb.WriteString("        switch \"$cmdpath $w\"\n")
	transitions(data, func(from []string, to string) {
		quoted := make([]string, len(from))
		for i, f := range from {
			quoted[i] = "'" + escapeSingleQuoted(f) + "'"
		}
		fmt.Fprintf(&sb, "            case %s\n", strings.Join(quoted, " "))
		fmt.Fprintf(&sb, "                set cmdpath '%s'\n", escapeSingleQuoted(to))
	})
	sb.WriteString("        end\n")
	sb.WriteString("    end\n")
	sb.WriteString("    echo $cmdpath\n")
	sb.WriteString("end\n\n")
	fmt.Fprintf(&sb, "complete -c %s -f\n", data.Program)

	for _, n := range data.Nodes {
		cond := fmt.Sprintf("-n 'test (%s) = \"%s\"'", fn, n.Path)
		for _, f := range n.Flags {
			line := fmt.Sprintf("complete -c %s %s", data.Program, cond)
			if f.Long != "" {
				line += " -l " + f.Long
			}
			for _, short := range []string{f.Short, f.Symbol} {
				switch {
				case short == "":
				case len([]rune(short)) == 1:
					line += " -s '" + escapeSingleQuoted(short) + "'"
				default:
					line += " -o " + short
				}
			}
			if f.TakesValue {
				line += " -r"
			}
			if f.Description != "" {
				line += " -d '" + escapeSingleQuoted(f.Description) + "'"
			}
			sb.WriteString(line + "\n")
		}
		for _, sub := range n.Subcommands {
			for _, name := range append([]string{sub.Name}, sub.Aliases...) {
				line := fmt.Sprintf("complete -c %s %s -a '%s'", data.Program, cond, escapeSingleQuoted(name))
				if sub.Description != "" {
					line += " -d '" + escapeSingleQuoted(sub.Description) + "'"
				}
				sb.WriteString(line + "\n")
			}
		}
	}

	return sb.String()
}

// escapeSingleQuoted prepares s for use inside single quotes
func escapeSingleQuoted(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}
