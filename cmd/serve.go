/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/promptcraft/internal/command"
	"github.com/jpl-au/promptcraft/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio) exposing templates to LLM clients",
	Long: `Starts a Model Context Protocol server over stdio. LLM clients get a
promptcraft_list tool for discovery, a promptcraft_prompt tool for
generation, and raw template content as promptcraft://commands/{name}
resources.

Add to an MCP client configuration as: promptcraft serve`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.Serve(command.DefaultPaths())
	},
}
