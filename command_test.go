package cmdline

import (
	"bytes"
	"testing"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOption_Template(t *testing.T) {
	tests := []struct {
		template string
		short    string
		long     string
		symbol   string
		value    string
		display  string
	}{
		{"-v|--verbose", "v", "verbose", "", "", "--verbose"},
		{"--name <NAME>", "", "name", "", "NAME", "--name"},
		{"-?|-h", "h", "", "?", "", "-h"},
		{"-?", "", "", "?", "", "-?"},
		{"-ab", "ab", "", "", "", "-ab"},
		{"-x -y", "y", "", "", "", "-y"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			opt, err := NewOption(tt.template, types.SingleValue)
			require.NoError(t, err)
			assert.Equal(t, tt.short, opt.ShortName)
			assert.Equal(t, tt.long, opt.LongName)
			assert.Equal(t, tt.symbol, opt.SymbolName)
			assert.Equal(t, tt.value, opt.ValueName)
			assert.Equal(t, tt.display, opt.DisplayName())
		})
	}
}

func TestNewOption_InvalidTemplate(t *testing.T) {
	for _, template := range []string{"name", "-", "--", "-v|--", "--x <X"} {
		_, err := NewOption(template, types.NoValue)
		assert.ErrorIs(t, err, errs.ErrInvalidTemplate, template)
	}

	_, err := NewOption("<VALUE>", types.SingleValue)
	assert.ErrorIs(t, err, errs.ErrTemplateNoName)
	_, err = NewOption("", types.SingleValue)
	assert.ErrorIs(t, err, errs.ErrTemplateNoName)
}

func TestOption_TemplateRoundTrip(t *testing.T) {
	opt, err := NewOption("-?|-h|--help", types.NoValue)
	require.NoError(t, err)
	assert.Equal(t, "-?|-h|--help", opt.Template())

	opt, err = NewOption("--out|-o <FILE>", types.SingleValue)
	require.NoError(t, err)
	assert.Equal(t, "-o|--out <FILE>", opt.Template())
}

func TestOption_TryParse(t *testing.T) {
	single, _ := NewOption("--s", types.SingleValue)
	assert.True(t, single.TryParse("a", true))
	assert.False(t, single.TryParse("b", true))
	assert.Equal(t, []string{"a"}, single.Values())

	flag, _ := NewOption("--f", types.NoValue)
	assert.True(t, flag.TryParse("", false))
	assert.True(t, flag.TryParse("", false))
	assert.False(t, flag.TryParse("x", true))
	assert.Equal(t, 2, flag.Count())

	multi, _ := NewOption("--m", types.MultipleValue)
	assert.True(t, multi.TryParse("a", true))
	assert.True(t, multi.TryParse("b", true))
	assert.Equal(t, []string{"a", "b"}, multi.Values())

	optional, _ := NewOption("--o", types.SingleOrNoValue)
	assert.True(t, optional.TryParse("ignored", false))
	assert.Equal(t, []string{""}, optional.Values())

	values := multi.Values()
	values[0] = "changed"
	assert.Equal(t, "a", multi.Value())

	multi.Reset()
	assert.False(t, multi.HasValue())
	assert.Empty(t, multi.Value())
}

func TestCommand_AddArgumentErrors(t *testing.T) {
	cmd := mustCommand(t, "app")

	_, err := cmd.AddArgument("", false)
	assert.ErrorIs(t, err, errs.ErrEmptyName)

	mustArgument(t, cmd, "first", false)
	_, err = cmd.AddArgument("first", false)
	assert.ErrorIs(t, err, errs.ErrDuplicateArgument)

	mustArgument(t, cmd, "rest", true)
	_, err = cmd.AddArgument("after", false)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Same(t, cmd, ce.Command)
	assert.ErrorIs(t, err, errs.ErrMultiValueArgumentLast)
}

func TestCommand_AddSubcommandErrors(t *testing.T) {
	root := mustCommand(t, "app")
	_, err := root.AddSubcommand("", nil)
	assert.ErrorIs(t, err, errs.ErrEmptyName)

	_, err = root.AddSubcommand("build", func(cmd *Command) error {
		return cmd.Set(WithAliases("b"))
	})
	require.NoError(t, err)

	_, err = root.AddSubcommand("BUILD", nil)
	assert.ErrorIs(t, err, errs.ErrDuplicateCommand)

	_, err = root.AddSubcommand("bundle", func(cmd *Command) error {
		return cmd.Set(WithAliases("B"))
	})
	assert.ErrorIs(t, err, errs.ErrDuplicateCommand)
}

func TestCommand_Tree(t *testing.T) {
	root := mustCommand(t, "app")
	global := mustOption(t, root, "--global", types.NoValue, SetInherited(true))
	mustOption(t, root, "--local", types.NoValue)
	remote, err := root.AddSubcommand("remote", nil)
	require.NoError(t, err)
	add, err := remote.AddSubcommand("add", nil)
	require.NoError(t, err)
	own := mustOption(t, add, "--own", types.NoValue)
	_, err = root.AddSubcommand("status", nil)
	require.NoError(t, err)

	assert.Equal(t, "app remote add", add.Path())
	assert.Same(t, root, add.Root())
	assert.Same(t, remote, add.Parent())
	assert.Nil(t, root.Parent())
	assert.Equal(t, []*Option{own, global}, add.GetOptions())

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"remote", "status"}, names)
}

func TestCommand_InheritedSettings(t *testing.T) {
	root := mustCommand(t, "app",
		WithThrowOnUnexpectedArgument(false),
		WithResponseFileHandling(types.ResponseFileLineSeparated),
		WithOptionsComparison(types.OrdinalIgnoreCase))
	child, err := root.AddSubcommand("child", func(cmd *Command) error {
		return cmd.Set(WithThrowOnUnexpectedArgument(true))
	})
	require.NoError(t, err)
	grandchild, err := child.AddSubcommand("grandchild", nil)
	require.NoError(t, err)

	assert.False(t, root.ThrowOnUnexpectedArgument())
	assert.True(t, child.ThrowOnUnexpectedArgument())
	assert.True(t, grandchild.ThrowOnUnexpectedArgument())
	assert.Equal(t, types.ResponseFileLineSeparated, grandchild.ResponseFileHandling())
	assert.Equal(t, types.OrdinalIgnoreCase, grandchild.OptionsComparison())
	assert.True(t, grandchild.ClusterOptions())
	assert.False(t, grandchild.ClusterOptionsWasSetExplicitly())

	fresh := mustCommand(t, "other")
	assert.True(t, fresh.ThrowOnUnexpectedArgument())
	assert.Equal(t, types.ResponseFileDisabled, fresh.ResponseFileHandling())
	assert.Equal(t, types.Ordinal, fresh.OptionsComparison())
	assert.Nil(t, fresh.ValidationErrorHandler())
}

func TestCommand_NonInheritedHelp(t *testing.T) {
	root := mustCommand(t, "app")
	help, err := root.SetHelpOption("--help", SetInherited(false))
	require.NoError(t, err)
	child, err := root.AddSubcommand("child", nil)
	require.NoError(t, err)

	assert.Same(t, help, root.HelpOption())
	assert.Nil(t, child.HelpOption())
	assert.Empty(t, helpHint(child))
}

func TestRenderer_Help(t *testing.T) {
	root := mustCommand(t, "app", WithCommandDescription("An application"))
	_, err := root.SetHelpOption("-h|--help", WithDescription("Show help"))
	require.NoError(t, err)
	mustOption(t, root, "--secret", types.NoValue, SetHidden(true))
	mustArgument(t, root, "files", true, WithArgumentDescription("Input files"))
	_, err = root.AddSubcommand("run", func(cmd *Command) error {
		return cmd.Set(WithCommandDescription("Run it"))
	})
	require.NoError(t, err)
	_, err = root.AddSubcommand("internal", func(cmd *Command) error {
		return cmd.Set(SetCommandHidden(true))
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer().RenderHelp(&buf, root))
	out := buf.String()

	assert.Contains(t, out, "Usage: app [options] <files>... [command]")
	assert.Contains(t, out, "An application")
	assert.Contains(t, out, "-h|--help")
	assert.Contains(t, out, "Show help")
	assert.Contains(t, out, "Input files")
	assert.Contains(t, out, "Run it")
	assert.NotContains(t, out, "--secret")
	assert.NotContains(t, out, "internal")
}
