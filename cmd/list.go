/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/promptcraft/internal/command"
	"github.com/jpl-au/promptcraft/internal/format"
	"github.com/jpl-au/promptcraft/internal/log"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available commands from both search tiers",
	Long: `Lists every command template found in .promptcraft/commands/ under the
current directory (Project tier) and your home directory (Global tier).

A name present in both tiers is listed twice; resolution prefers the
Project entry.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	infos := command.DefaultPaths().Discover()
	log.Event("cli:list", "list").Detail("count", len(infos)).Write(nil)

	format.Commands(out, infos)
	return nil
}
