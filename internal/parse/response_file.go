package parse

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/cmdline/types"
)

// ExpandResponseFile reads path (resolved against baseDir when relative) and returns
// the tokens it contains according to handling
func ExpandResponseFile(baseDir, path string, handling types.ResponseFileHandling) ([]string, error) {
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseResponseFile(string(data), handling)
}

// ParseResponseFile tokenizes response file content
func ParseResponseFile(content string, handling types.ResponseFileHandling) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(strings.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		switch handling {
		case types.ResponseFileLineSeparated:
			tokens = append(tokens, line)
		case types.ResponseFileSpaceSeparated:
			tokens = append(tokens, SplitResponseLine(line)...)
		default:
			return nil, fmt.Errorf("response file handling %s does not expand files", handling)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

// SplitResponseLine splits one line on whitespace. Single and double quotes group text,
// a backslash escapes a following quote and is kept literally otherwise, and an unquoted
// '#' at the start of a token comments out the rest of the line.
func SplitResponseLine(line string) []string {
	var (
		tokens  []string
		sb      strings.Builder
		inToken bool
		quote   rune
	)
	runes := []rune(line)

	flush := func() {
		if inToken {
			tokens = append(tokens, sb.String())
		}
		sb.Reset()
		inToken = false
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\''):
			sb.WriteRune(runes[i+1])
			inToken = true
			i++
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				sb.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			flush()
		case r == '#' && !inToken:
			flush()
			return tokens
		default:
			sb.WriteRune(r)
			inToken = true
		}
	}
	flush()

	return tokens
}
