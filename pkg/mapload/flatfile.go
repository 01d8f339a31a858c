// Package mapload loads a sequence of mapping.Entry values from the
// storage backends a mapping table's shorthand can live in: a flat
// properties-style file, or a SQLite table.
package mapload

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/focuswithjustin/versemap/pkg/mapping"
)

// FromFlatFile reads a properties-style "key = value" file into an
// ordered sequence of mapping.Entry values. Blank lines and lines
// beginning with "#" are skipped; a flag line ("!name") has no "="
// and is passed through with an empty value.
func FromFlatFile(path string) ([]mapping.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mapping file: %w", err)
	}
	defer f.Close()

	var entries []mapping.Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "!") && !strings.Contains(line, "=") {
			entries = append(entries, mapping.Entry{Left: line})
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("mapload: malformed line %q", line)
		}
		entries = append(entries, mapping.Entry{
			Left:  strings.TrimSpace(parts[0]),
			Right: strings.TrimSpace(parts[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mapping file: %w", err)
	}
	return entries, nil
}
