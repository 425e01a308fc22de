package declare

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/napalu/cmdline/errs"
	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a YAML definition. Unknown keys are rejected.
func LoadYAML(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML definition: %w", err)
	}

	return &def, nil
}

// LoadTOML decodes a TOML definition. Unknown keys are rejected.
func LoadTOML(r io.Reader) (*Definition, error) {
	var def Definition
	md, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML definition: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("failed to decode TOML definition: unknown keys %s", strings.Join(keys, ", "))
	}

	return &def, nil
}

// LoadHCL decodes an HCL definition. filename is only used in diagnostics.
func LoadHCL(src []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL definition %s: %w", filename, diags)
	}

	var def Definition
	diags = gohcl.DecodeBody(file.Body, nil, &def)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL definition %s: %w", filename, diags)
	}

	return &def, nil
}

// LoadFile reads a definition, choosing the format by file extension:
// .yaml or .yml, .toml and .hcl
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(bytes.NewReader(data))
	case ".toml":
		return LoadTOML(bytes.NewReader(data))
	case ".hcl":
		return LoadHCL(data, path)
	default:
		return nil, errs.ErrUnknownFileFormat.WithArgs(ext)
	}
}
