// Package scaffold creates the .promptcraft directory structure and seeds
// it with example templates so a fresh install has something to run.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpl-au/promptcraft/internal/command"
)

// Result reports what Init created and what it left alone.
type Result struct {
	Dir     string   // the commands directory
	Created []string // template files written
	Skipped []string // template files that already existed
}

// Init creates {baseDir}/.promptcraft/commands/ and writes the example
// templates into it. Existing files are never overwritten: re-running init
// is safe and reports the collisions instead.
func Init(baseDir string) (Result, error) {
	dir := filepath.Join(baseDir, command.Dir, "commands")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating commands directory: %w", err)
	}

	res := Result{Dir: dir}
	for _, ex := range Examples {
		path := filepath.Join(dir, ex.Name+command.Extension)
		if _, err := os.Stat(path); err == nil {
			res.Skipped = append(res.Skipped, ex.Name)
			continue
		}
		if err := os.WriteFile(path, []byte(ex.Content), 0644); err != nil {
			return res, fmt.Errorf("writing example template %s: %w", ex.Name, err)
		}
		res.Created = append(res.Created, ex.Name)
	}
	return res, nil
}
