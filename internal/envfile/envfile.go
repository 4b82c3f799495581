// Package envfile loads MICROLOG_* settings from dotenv files so a journal
// directory can pin its own time zone or data location. Real environment
// variables always win over file contents.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load applies the KEY=VALUE pairs from one dotenv file. A missing file is
// not an error; only read failures are reported.
func Load(path string) error {
	pairs, err := parseFile(path)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if os.Getenv(p.key) == "" {
			_ = os.Setenv(p.key, p.value)
		}
	}
	return nil
}

type pair struct {
	key   string
	value string
}

func parseFile(path string) ([]pair, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only handle

	var pairs []pair
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if p, ok := parseLine(scanner.Text()); ok {
			pairs = append(pairs, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return pairs, nil
}

// parseLine extracts one KEY=VALUE assignment. Blank lines, comments, and
// malformed lines are skipped. An "export " prefix and matching single or
// double quotes around the value are tolerated.
func parseLine(line string) (pair, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return pair{}, false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return pair{}, false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	if key == "" {
		return pair{}, false
	}

	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return pair{key: key, value: value}, true
}
