package command

import (
	"bufio"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultDescription is returned when a template has no usable first line
// or cannot be read at all.
const DefaultDescription = "No description available"

// Describe returns a short summary of a template: its first non-empty line
// with up to six leading markdown header markers stripped. Any failure
// (unreadable file, empty file, header that strips down to nothing)
// degrades to [DefaultDescription]; this function never returns an error.
func Describe(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return DefaultDescription
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !utf8.ValidString(line) {
			return DefaultDescription
		}
		if desc := stripHeader(line); desc != "" {
			return desc
		}
		return DefaultDescription
	}
	// Scanner error or all-whitespace file: same fallback either way.
	return DefaultDescription
}

// stripHeader removes up to six leading '#' characters and exactly one
// following space, then trims. A seventh '#' onwards is kept as content.
func stripHeader(line string) string {
	if !strings.HasPrefix(line, "#") {
		return line
	}
	i := 0
	for i < len(line) && i < 6 && line[i] == '#' {
		i++
	}
	rest := strings.TrimPrefix(line[i:], " ")
	return strings.TrimSpace(rest)
}
