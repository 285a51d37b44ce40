// Package format provides output formatting utilities for CLI display.
//
// Centralises presentation concerns (column alignment, tier tagging) so
// that command implementations focus on discovery and generation logic.
package format

import (
	"fmt"
	"io"

	"github.com/jpl-au/promptcraft/internal/command"
)

// Commands prints discovered commands in aligned columns:
//
//	/code-review   [Project]  Review code for issues
//	/fix-bug       [Global]   Diagnose and fix a bug
func Commands(w io.Writer, infos []command.Info) {
	if len(infos) == 0 {
		fmt.Fprintln(w, "No commands found. Run 'promptcraft init' to create examples.")
		return
	}

	maxName := 0
	for _, info := range infos {
		if len(info.Name) > maxName {
			maxName = len(info.Name)
		}
	}

	for _, info := range infos {
		fmt.Fprintf(w, "/%-*s  [%-7s]  %s\n", maxName, info.Name, info.Source, info.Description)
	}
}
