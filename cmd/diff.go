/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpl-au/promptcraft/internal/command"
	"github.com/jpl-au/promptcraft/internal/diff"
	"github.com/jpl-au/promptcraft/internal/log"
)

var diffCmd = &cobra.Command{
	Use:   "diff <command>",
	Short: "Show what a project template changes relative to the shadowed global one",
	Long: `When a command exists in both tiers, the project-local template wins
resolution and the global one is shadowed. diff shows what the override
changes: the global template as old, the project template as new.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		name := strings.TrimPrefix(args[0], "/")

		l := log.Event("cli:diff", "diff").Command(name)
		r, err := diff.Tiers(command.DefaultPaths(), name)
		l.Write(err)
		if err != nil {
			return err
		}

		fmt.Fprint(out, r.Format(terminal()))
		return nil
	},
}
