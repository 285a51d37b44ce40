// resources.go implements MCP resource handlers for raw template access.
//
// Resources give LLM clients read-only access to template content via URI,
// which is useful for context loading: the client can inspect what a
// command will ask for without generating a prompt.
//
// Design: Resource URIs follow the pattern promptcraft://commands/{name}.
// Content is returned before argument substitution, mirroring the CLI's
// "show" command.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/promptcraft/internal/command"
)

var (
	// ErrInvalidURI indicates a malformed resource URI, helping clients
	// debug URI construction issues.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyName indicates a missing command name in a resource URI.
	ErrEmptyName = errors.New("empty command name")
)

// readTemplate handles promptcraft://commands/{name} resource requests.
func (h *handlers) readTemplate(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI

	name, err := parseCommandURI(uri)
	if err != nil {
		return nil, err
	}

	path, err := h.paths.Find(name)
	if err != nil {
		return nil, err
	}
	content, err := command.Read(path)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseCommandURI extracts the command name from a resource URI.
func parseCommandURI(uri string) (string, error) {
	const prefix = "promptcraft://commands/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	name := strings.TrimPrefix(uri, prefix)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}
