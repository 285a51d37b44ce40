// Package command implements the template discovery and prompt generation
// pipeline: locating a named template across the project-local and global
// search tiers, reading it, and substituting user arguments.
//
// The two search roots are passed in explicitly via [Paths] rather than read
// from ambient process state, so tests point the pipeline at temp directories
// instead of patching the working directory or HOME.
package command

import (
	"os"
	"path/filepath"
)

// Placeholder is the literal token replaced with the joined arguments.
// Case-sensitive, no alternate syntax.
const Placeholder = "$ARGUMENTS"

// Extension is the template file extension. Files without it are ignored
// by discovery and resolution.
const Extension = ".md"

// Dir is the hidden directory holding promptcraft state in either tier.
const Dir = ".promptcraft"

// commandsDir is the subdirectory of Dir that holds templates.
const commandsDir = "commands"

// Source identifies which search tier a template was found in.
type Source string

const (
	// SourceProject is the tier under the current working directory.
	SourceProject Source = "Project"
	// SourceGlobal is the tier under the user's home directory.
	SourceGlobal Source = "Global"
)

// Info describes a discovered template. Records are built fresh on every
// discovery call and never mutated.
type Info struct {
	Name        string `json:"name"`        // filename without the .md extension
	Path        string `json:"path"`        // full path to the template file
	Source      Source `json:"source"`      // which tier it was found in
	Description string `json:"description"` // first line of the template, or a fallback
}

// Paths holds the two template search roots in resolution priority order.
// The zero value is not useful; construct with [NewPaths] or [DefaultPaths].
type Paths struct {
	ProjectRoot string // {cwd}/.promptcraft/commands
	GlobalRoot  string // {home}/.promptcraft/commands
}

// NewPaths builds search roots under the given project and home directories.
func NewPaths(projectDir, homeDir string) Paths {
	return Paths{
		ProjectRoot: filepath.Join(projectDir, Dir, commandsDir),
		GlobalRoot:  filepath.Join(homeDir, Dir, commandsDir),
	}
}

// DefaultPaths derives the search roots from the current working directory
// and the user's home directory. A root whose base directory cannot be
// determined is left empty and contributes nothing to lookups.
func DefaultPaths() Paths {
	var p Paths
	if wd, err := os.Getwd(); err == nil {
		p.ProjectRoot = filepath.Join(wd, Dir, commandsDir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		p.GlobalRoot = filepath.Join(home, Dir, commandsDir)
	}
	return p
}

// tier pairs a search root with its source label.
type tier struct {
	dir    string
	source Source
}

// roots returns the search roots in priority order with their tier labels,
// skipping any root that could not be determined.
func (p Paths) roots() []tier {
	all := []tier{
		{p.ProjectRoot, SourceProject},
		{p.GlobalRoot, SourceGlobal},
	}
	out := all[:0]
	for _, r := range all {
		if r.dir != "" {
			out = append(out, r)
		}
	}
	return out
}
