package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/issueposts/internal/config"
	issuepostsmcp "github.com/gorewood/issueposts/internal/mcp"
	"github.com/gorewood/issueposts/internal/pipeline"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run issueposts as a Model Context Protocol (MCP) server over stdio.

The config is read once at startup; the template is re-read on every call.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "issueposts": {
        "command": "issueposts",
        "args": ["serve", "--config", "/path/to/issueposts.yaml"]
      }
    }
  }

Available tools: preview_posts, generate_posts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load(cmd.Flags())
			if err != nil {
				return err
			}
			server := issuepostsmcp.NewServer(buildVersion(), generatorFor(cfg))
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

// generatorFor returns a factory building generators from cfg.
func generatorFor(cfg *config.Config) issuepostsmcp.GeneratorFunc {
	return func() (*pipeline.Generator, error) {
		return pipeline.New(cfg, buildVersion())
	}
}
