/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/promptcraft/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show detailed build information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Fprint(out, version.Get().String())
	},
}
