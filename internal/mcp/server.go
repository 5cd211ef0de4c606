// Package mcp provides a Model Context Protocol server for issueposts.
// It exposes post preview and generation as MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/issueposts/internal/pipeline"
)

// GeneratorFunc builds a generator for one tool call. It is called per
// request so template edits are picked up without restarting the server.
type GeneratorFunc func() (*pipeline.Generator, error)

// NewServer creates an MCP server with all issueposts tools registered.
func NewServer(version string, newGenerator GeneratorFunc) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "issueposts",
		Version: version,
	}, nil)
	registerTools(server, newGenerator)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for tools that only read the
// issue tracker.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(true),
	}
}

// writeAnnotations returns annotations for tools that replace post files.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all issueposts tools to the server.
func registerTools(server *mcp.Server, newGenerator GeneratorFunc) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview_posts",
		Description: "Fetch the labeled issues and render their posts without writing files. Returns path and content per post, oldest issue first.",
		Annotations: readOnlyAnnotations(),
	}, handlePreview(newGenerator))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_posts",
		Description: "Fetch the labeled issues and write one markdown post per issue into the output directory, replacing existing files with the same name.",
		Annotations: writeAnnotations(),
	}, handleGenerate(newGenerator))
}
