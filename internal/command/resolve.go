package command

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Find resolves a command name to a template file path, checking the
// project tier first and the global tier second. The first root containing
// a regular file named {name}.md wins; symlinks are followed.
//
// Names containing path separators or ".." segments are rejected outright
// rather than left to filesystem resolution, so a name can never escape
// the search roots.
func (p Paths) Find(name string) (string, error) {
	if name == "" {
		return "", &NotFoundError{
			Message: "Command name must be a non-empty string",
			Code:    CodeCommandNotFound,
		}
	}
	if !validName(name) {
		return "", &NotFoundError{
			Message: fmt.Sprintf("Command name %q must not contain path separators or '..' segments", name),
			Code:    CodeCommandNotFound,
		}
	}

	filename := name + Extension
	var searched []string
	for _, r := range p.roots() {
		candidate := filepath.Join(r.dir, filename)
		searched = append(searched, r.dir)
		// os.Stat follows symlinks, so a linked template resolves.
		if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
			return candidate, nil
		}
	}

	return "", &NotFoundError{
		Message: fmt.Sprintf("Command '%s' not found. Searched in: %s", name, strings.Join(searched, ", ")),
		Code:    CodeCommandNotFound,
	}
}

// validName reports whether a command name is safe to join onto a search
// root: no slashes, no backslashes, no ".." path segments.
func validName(name string) bool {
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return name != ".." && name != "."
}
