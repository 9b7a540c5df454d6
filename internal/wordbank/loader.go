package wordbank

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed words/english.txt
var defaultWordsTxt string

// Pack is a named word list loaded from a YAML file.
type Pack struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

// DefaultWords returns the embedded English word list.
func DefaultWords() []string {
	return parseLines(strings.NewReader(defaultWordsTxt))
}

// LoadFile loads a word list from a file. Plain text files hold one word
// per line (blank lines and #-comments skipped); .yaml/.yml files hold a
// Pack. The returned words are raw - callers apply Filter before use.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordbank: cannot read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var pack Pack
		if err := yaml.Unmarshal(data, &pack); err != nil {
			return nil, fmt.Errorf("wordbank: cannot parse pack %s: %w", path, err)
		}
		if len(pack.Words) == 0 {
			return nil, fmt.Errorf("wordbank: pack %s has no words", path)
		}
		return pack.Words, nil
	default:
		words := parseLines(strings.NewReader(string(data)))
		if len(words) == 0 {
			return nil, fmt.Errorf("wordbank: %s has no words", path)
		}
		return words, nil
	}
}

func parseLines(r *strings.Reader) []string {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}
