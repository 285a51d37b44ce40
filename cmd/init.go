/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpl-au/promptcraft/internal/log"
	"github.com/jpl-au/promptcraft/internal/scaffold"
)

var initGlobal bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a .promptcraft/commands/ directory with example templates",
	Long: `Creates .promptcraft/commands/ under the current directory and seeds it
with example templates. Existing files are never overwritten, so re-running
init after editing the examples is safe.

Use --global to scaffold under your home directory instead, making the
templates available from every project.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	base := "."
	if initGlobal {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		base = home
	}

	res, err := scaffold.Init(base)
	log.Event("cli:init", "init").Detail("created", len(res.Created)).Write(err)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Initialised %s\n", res.Dir)
	for _, name := range res.Created {
		fmt.Fprintf(out, "  created /%s\n", name)
	}
	for _, name := range res.Skipped {
		fmt.Fprintf(out, "  kept    /%s (already exists)\n", name)
	}
	fmt.Fprintln(out, "\nTry: promptcraft list")
	return nil
}

func init() {
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "scaffold under the home directory instead of the current directory")
}
