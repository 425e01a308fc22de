package completion

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the directories a shell loads user completion scripts from
type Paths struct {
	Primary  string
	Fallback string
	// Prefix and Extension complete the file name around the program name
	Prefix    string
	Extension string
}

// Manager generates and installs the completion script of one program for one shell
type Manager struct {
	Shell       string
	ProgramName string
	Paths       Paths
	generator   Generator
	script      string
}

// NewManager creates a Manager for shell using the current user's home directory
func NewManager(shell, programName string) (*Manager, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("couldn't get user home directory: %w", err)
	}
	paths, err := PathsFor(home, shell)
	if err != nil {
		return nil, err
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   GetGenerator(shell),
	}, nil
}

// Accept generates the script for data
func (m *Manager) Accept(data Data) {
	data.Program = m.ProgramName
	m.script = m.generator.Generate(data)
}

// Script returns the generated script
func (m *Manager) Script() string {
	return m.script
}

// Save writes the generated script into the primary directory, or the fallback when the
// primary cannot be created. It returns the path written.
func (m *Manager) Save() (string, error) {
	if m.script == "" {
		return "", fmt.Errorf("no completion script generated")
	}

	dir := m.Paths.Primary
	if err := os.MkdirAll(dir, 0o755); err != nil {
		if m.Paths.Fallback == "" {
			return "", fmt.Errorf("failed to create completion directory: %w", err)
		}
		dir = m.Paths.Fallback
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create fallback completion directory: %w", err)
		}
	}

	path := filepath.Join(dir, m.Paths.Prefix+m.ProgramName+m.Paths.Extension)
	if err := os.WriteFile(path, []byte(m.script), 0o644); err != nil {
		return "", fmt.Errorf("failed to write completion file: %w", err)
	}

	return path, nil
}

// PathsFor returns the user completion directories of shell below home
func PathsFor(home, shell string) (Paths, error) {
	switch shell {
	case "bash":
		return Paths{
			Primary:  filepath.Join(home, ".local", "share", "bash-completion", "completions"),
			Fallback: filepath.Join(home, ".bash_completion.d"),
		}, nil
	case "zsh":
		return Paths{
			Primary:  filepath.Join(home, ".zsh", "completion"),
			Fallback: filepath.Join(home, ".zfunc"),
			Prefix:   "_",
		}, nil
	case "fish":
		return Paths{
			Primary:   filepath.Join(home, ".config", "fish", "completions"),
			Fallback:  filepath.Join(home, ".local", "share", "fish", "completions"),
			Extension: ".fish",
		}, nil
	}

	return Paths{}, fmt.Errorf("unsupported shell: %s", shell)
}
