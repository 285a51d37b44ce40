// tools.go implements the MCP tool handlers.
//
// Errors return MCP tool error results rather than Go errors, so the LLM
// receives actionable feedback it can parse and retry on, instead of the
// whole call failing at the protocol level.

package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/promptcraft/internal/log"
)

// listCommands handles promptcraft_list tool calls.
//
// Delegates to the same discovery the CLI uses so both surfaces agree on
// ordering and duplicate handling. An empty result is not an error; the
// message tells the client how to scaffold a template directory.
func (h *handlers) listCommands(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := h.paths.Discover()
	log.Event("mcp:list", "list").Detail("count", len(infos)).Write(nil)

	if len(infos) == 0 {
		return mcp.NewToolResultText("No prompt commands found. Create templates under .promptcraft/commands/ or run 'promptcraft init'."), nil
	}
	return jsonResult(infos)
}

// generatePrompt handles promptcraft_prompt tool calls.
//
// The arguments parameter is a single string: the CLI joins its argument
// list with spaces before substitution, so accepting pre-joined text keeps
// the two surfaces equivalent.
func (h *handlers) generatePrompt(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}

	var args []string
	if s := getString(req, "arguments", ""); s != "" {
		args = []string{s}
	}

	l := log.Event("mcp:prompt", "generate").Command(name)
	prompt, err := h.paths.Process(name, args)
	l.Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(prompt), nil
}

// getString extracts a string parameter from the MCP request, returning
// the provided default if the parameter is missing. Optional parameters
// should never cause tool failures.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// jsonResult serialises a value as indented JSON wrapped in an MCP text
// result. LLMs parse structured output more reliably when it is formatted
// for readability.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
