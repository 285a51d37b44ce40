package command

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover enumerates every template in both search tiers and returns
// metadata records sorted by name, case-insensitively. Enumeration is
// non-recursive: only immediate children of each root are considered.
//
// A root that is missing, unreadable, or not a directory contributes zero
// entries; discovery degrades per root and never returns an error. A name
// present in both tiers yields two records with different Source values.
// Resolution priority is [Paths.Find]'s concern, not discovery's.
func (p Paths) Discover() []Info {
	var infos []Info
	for _, r := range p.roots() {
		infos = append(infos, scanRoot(r.dir, r.source)...)
	}

	slices.SortStableFunc(infos, func(a, b Info) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return infos
}

// scanRoot lists one search root. Errors are swallowed: the caller gets
// whatever entries were readable, which may be none.
func scanRoot(dir string, source Source) []Info {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var infos []Info
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), Extension)
		if !ok || name == "" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		// Stat rather than e.Type() so symlinked templates count as
		// regular files, matching resolution behaviour.
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		infos = append(infos, Info{
			Name:        name,
			Path:        path,
			Source:      source,
			Description: Describe(path),
		})
	}
	return infos
}
