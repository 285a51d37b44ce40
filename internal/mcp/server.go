// Package mcp implements the Model Context Protocol server, exposing
// prompt templates to LLM clients. This lets AI assistants discover a
// user's slash commands and generate prompts through a standardised
// protocol instead of shelling out to the CLI.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jpl-au/promptcraft/internal/command"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio. Uses stdio transport for
// compatibility with Claude Desktop and other MCP clients.
//
// The server starts successfully even when no template directory exists:
// discovery simply returns nothing, and the list tool's output tells the
// client how to scaffold one.
func Serve(paths command.Paths) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{paths: paths}

	s := server.NewMCPServer(
		"promptcraft",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)

	slog.Info("promptcraft MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the template
// search paths. Every call re-reads the filesystem, matching CLI
// behaviour: there is no template cache to go stale.
type handlers struct {
	paths command.Paths
}

// registerResources adds URI-based access to raw template content.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"promptcraft://commands/{name}",
			"Prompt template",
			mcp.WithTemplateDescription("Raw template content by command name, before argument substitution"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readTemplate,
	)
}

// registerTools exposes discovery and prompt generation as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("promptcraft_list",
			mcp.WithDescription("List all available prompt commands with their source tier and description"),
		),
		h.listCommands,
	)

	s.AddTool(
		mcp.NewTool("promptcraft_prompt",
			mcp.WithDescription("Generate a prompt from a named template, substituting $ARGUMENTS"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Command name (template filename without .md)")),
			mcp.WithString("arguments", mcp.Description("Text substituted for the $ARGUMENTS placeholder (default: empty)")),
		),
		h.generatePrompt,
	)
}
