// Package diff computes and formats the difference between the two tiers
// of a shadowed template: the global version and the project-local override
// that wins resolution.
package diff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jpl-au/promptcraft/internal/command"
)

// contextLines is the number of unchanged lines shown before/after changes.
// When equal sections exceed 2*contextLines, they're collapsed with "...".
const contextLines = 3

// ErrNotShadowed is returned when a template exists in fewer than two tiers,
// leaving nothing to compare.
var ErrNotShadowed = errors.New("template is not shadowed")

// Result holds diff output.
type Result struct {
	Old  string // global tier label
	New  string // project tier label
	Diff string // plain diff text
}

// Tiers diffs the global version of a named template against its
// project-local override. Both tiers must contain the template.
func Tiers(p command.Paths, name string) (Result, error) {
	var paths [2]string
	var content [2]string
	for i, root := range []string{p.GlobalRoot, p.ProjectRoot} {
		// A single-root Paths reuses the resolver's name validation and
		// regular-file checks for one tier at a time.
		single := command.Paths{ProjectRoot: root}
		path, err := single.Find(name)
		if err != nil {
			return Result{}, fmt.Errorf("%w: '%s' only exists in one tier (searched %s)", ErrNotShadowed, name, root)
		}
		text, err := command.Read(path)
		if err != nil {
			return Result{}, err
		}
		paths[i] = path
		content[i] = text
	}

	return Compute(content[0], content[1], paths[0], paths[1]), nil
}

// Compute returns a diff between old and new content.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(oldContent, newContent, false)
	d = dmp.DiffCleanupSemantic(d)

	return Result{
		Old:  oldLabel,
		New:  newLabel,
		Diff: format(d),
	}
}

// format converts diffs to unified-style text.
func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		// Trim trailing newline to avoid artefact empty string from Split
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				b.WriteString("- " + l + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				b.WriteString("+ " + l + "\n")
			}
		case diffmatchpatch.DiffEqual:
			if len(lines) > 2*contextLines {
				for i := range contextLines {
					b.WriteString("  " + lines[i] + "\n")
				}
				b.WriteString("  ...\n")
				for i := len(lines) - contextLines; i < len(lines); i++ {
					b.WriteString("  " + lines[i] + "\n")
				}
			} else {
				for _, l := range lines {
					b.WriteString("  " + l + "\n")
				}
			}
		}
	}
	return b.String()
}

// Colourise adds ANSI colours to diff output.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the full diff with header.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
