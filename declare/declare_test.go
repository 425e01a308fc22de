package declare

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/napalu/cmdline"
	"github.com/napalu/cmdline/console"
	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDefinition = `
name: tool
version: 1.4.0
help: -h|--help
options:
  - name: verbose
    template: -v|--verbose
    type: none
    inherited: true
  - name: logLevel
    one_of: [debug, info]
commands:
  - name: build
    aliases: [b]
    response_files: space
    arguments:
      - name: target
        required: true
    options:
      - name: outputDir
        env: TOOL_OUT
`

const tomlDefinition = `
name = "tool"
version = "1.4.0"
help = "-h|--help"

[[options]]
name = "verbose"
template = "-v|--verbose"
type = "none"
inherited = true

[[options]]
name = "logLevel"
one_of = ["debug", "info"]

[[commands]]
name = "build"
aliases = ["b"]
response_files = "space"

  [[commands.arguments]]
  name = "target"
  required = true

  [[commands.options]]
  name = "outputDir"
  env = "TOOL_OUT"
`

const hclDefinition = `
name    = "tool"
version = "1.4.0"
help    = "-h|--help"

option "verbose" {
  template  = "-v|--verbose"
  type      = "none"
  inherited = true
}

option "logLevel" {
  one_of = ["debug", "info"]
}

command "build" {
  aliases        = ["b"]
  response_files = "space"

  argument "target" {
    required = true
  }

  option "outputDir" {
    env = "TOOL_OUT"
  }
}
`

func expectedDefinition() *Definition {
	return &Definition{
		Name:    "tool",
		Version: "1.4.0",
		Help:    "-h|--help",
		Options: []OptionDefinition{
			{Name: "verbose", Template: "-v|--verbose", Type: "none", Inherited: true},
			{Name: "logLevel", OneOf: []string{"debug", "info"}},
		},
		Commands: []CommandDefinition{{
			Name:          "build",
			Aliases:       []string{"b"},
			ResponseFiles: "space",
			Arguments:     []ArgumentDefinition{{Name: "target", Required: true}},
			Options:       []OptionDefinition{{Name: "outputDir", Env: "TOOL_OUT"}},
		}},
	}
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name string
		load func() (*Definition, error)
	}{
		{"yaml", func() (*Definition, error) { return LoadYAML(strings.NewReader(yamlDefinition)) }},
		{"toml", func() (*Definition, error) { return LoadTOML(strings.NewReader(tomlDefinition)) }},
		{"hcl", func() (*Definition, error) { return LoadHCL([]byte(hclDefinition), "tool.hcl") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := tt.load()
			require.NoError(t, err)
			if diff := cmp.Diff(expectedDefinition(), def, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("definition mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_UnknownKeys(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("name: tool\ncolour: red\n"))
	assert.Error(t, err)

	_, err = LoadTOML(strings.NewReader("name = \"tool\"\ncolour = \"red\"\n"))
	assert.Error(t, err)

	_, err = LoadHCL([]byte("name = \"tool\"\ncolour = \"red\"\n"), "bad.hcl")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"tool.yml":  yamlDefinition,
		"tool.toml": tomlDefinition,
		"tool.hcl":  hclDefinition,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		def, err := LoadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, "tool", def.Name)
	}

	path := filepath.Join(dir, "tool.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
	_, err := LoadFile(path)
	assert.ErrorIs(t, err, errs.ErrUnknownFileFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild_Tree(t *testing.T) {
	root, err := Build(expectedDefinition())
	require.NoError(t, err)

	assert.Equal(t, "tool", root.Name)
	require.NotNil(t, root.HelpOption())
	require.NotNil(t, root.VersionOption())
	assert.Equal(t, "1.4.0", root.VersionText())

	var names []string
	for _, o := range root.Options() {
		names = append(names, o.DisplayName())
	}
	assert.Equal(t, []string{"--help", "--version", "--verbose", "--log-level"}, names)

	build := root.FindCommand("B")
	require.NotNil(t, build)
	assert.Equal(t, types.ResponseFileSpaceSeparated, build.ResponseFileHandling())
	require.Len(t, build.Arguments(), 1)
	assert.Equal(t, "--output-dir", build.Options()[0].DisplayName())
	assert.Equal(t, "TOOL_OUT", build.Options()[0].EnvVar)
}

func TestBuild_Parse(t *testing.T) {
	root, err := Build(expectedDefinition())
	require.NoError(t, err)

	c := console.NewTest()
	p, err := cmdline.NewParser(root, cmdline.WithConsole(c))
	require.NoError(t, err)

	result, err := p.Parse([]string{"-v", "b", "app", "--output-dir", "out"})
	require.NoError(t, err)
	assert.True(t, result.Valid())
	assert.Equal(t, "build", result.SelectedCommand.Name)
	assert.Equal(t, []string{"app"}, result.ArgumentValues(result.SelectedCommand.Arguments()[0]))

	result, err = p.Parse([]string{"--log-level=trace"})
	require.NoError(t, err)
	assert.ErrorIs(t, result.ValidationError, errs.ErrOneOf)

	result, err = p.Parse([]string{"build"})
	require.NoError(t, err)
	assert.ErrorIs(t, result.ValidationError, errs.ErrRequired)

	_, err = p.Parse([]string{"--version"})
	require.NoError(t, err)
	assert.Equal(t, "1.4.0\n", c.OutBuf.String())
}

func TestBuild_Errors(t *testing.T) {
	def := expectedDefinition()
	def.Version = "not-a-version"
	_, err := Build(def)
	assert.ErrorIs(t, err, errs.ErrInvalidVersion)

	def = expectedDefinition()
	def.Options[1].Type = "several"
	_, err = Build(def)
	assert.ErrorIs(t, err, errs.ErrInvalidOptionType)

	def = expectedDefinition()
	def.Commands[0].ResponseFiles = "tabs"
	_, err = Build(def)
	assert.ErrorIs(t, err, errs.ErrInvalidResponseHandling)

	def = expectedDefinition()
	def.Comparison = "fuzzy"
	_, err = Build(def)
	assert.ErrorIs(t, err, errs.ErrInvalidComparison)

	def = expectedDefinition()
	def.Options[0].Template = "verbose"
	_, err = Build(def)
	assert.ErrorIs(t, err, errs.ErrInvalidTemplate)

	def = expectedDefinition()
	def.Commands = append(def.Commands, CommandDefinition{Name: "BUILD"})
	_, err = Build(def)
	assert.ErrorIs(t, err, errs.ErrDuplicateCommand)

	def = expectedDefinition()
	def.Options[1].Pattern = "("
	_, err = Build(def)
	assert.Error(t, err)
}

func TestBuild_RendersHelp(t *testing.T) {
	root, err := Build(expectedDefinition())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cmdline.NewRenderer().RenderHelp(&buf, root))
	assert.Contains(t, buf.String(), "--log-level")
	assert.Contains(t, buf.String(), "build")
}
