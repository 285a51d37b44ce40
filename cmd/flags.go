/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// The out writer is a package variable so tests can capture output
// without redirecting the process's stdout.

package cmd

import (
	"io"
	"os"

	"github.com/jpl-au/promptcraft/internal/config"
)

var (
	stdoutFlag bool
	listFlag   bool
	initFlag   bool
)

// cfg is the loaded configuration; set by Execute before any command runs.
var cfg *config.Config

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// conf returns the loaded configuration, falling back to defaults when a
// command runs outside Execute (direct calls in tests).
func conf() *config.Config {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return cfg
}

// terminal reports whether out is the process's stdout and stdout is a
// terminal. Markdown rendering is only applied in that case; pipes and
// redirects get raw text.
func terminal() bool {
	return out == os.Stdout && isTerminal(os.Stdout)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&stdoutFlag, "stdout", false, "print the prompt instead of copying it to the clipboard")
	rootCmd.Flags().BoolVar(&listFlag, "list", false, "list available commands (alias for 'promptcraft list')")
	rootCmd.Flags().BoolVar(&initFlag, "init", false, "scaffold .promptcraft/commands/ (alias for 'promptcraft init')")
}
