package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/issueposts/internal/posts"
)

// PostSummary describes one rendered or written post.
type PostSummary struct {
	Number  int64  `json:"number,omitempty"  jsonschema:"issue number"`
	Title   string `json:"title"             jsonschema:"issue title"`
	Path    string `json:"path"              jsonschema:"post file path"`
	Content string `json:"content,omitempty" jsonschema:"rendered post text"`
}

func toSummaries(list []posts.Post) []PostSummary {
	result := make([]PostSummary, 0, len(list))
	for _, post := range list {
		result = append(result, PostSummary(post))
	}
	return result
}

// --- Preview tool ---

// PreviewInput is the input for the preview_posts tool.
type PreviewInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"render at most this many posts, oldest issue first (0 renders all)"`
}

// PreviewOutput is the output for the preview_posts tool.
type PreviewOutput struct {
	Count      int           `json:"count"                jsonschema:"number of posts rendered"`
	Posts      []PostSummary `json:"posts"                jsonschema:"rendered posts in processing order"`
	Unresolved []string      `json:"unresolved,omitempty" jsonschema:"template placeholders with no value on some issue"`
}

func handlePreview(newGenerator GeneratorFunc) mcp.ToolHandlerFor[PreviewInput, PreviewOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PreviewInput) (*mcp.CallToolResult, PreviewOutput, error) {
		if input.Limit < 0 {
			return nil, PreviewOutput{}, fmt.Errorf("limit must not be negative, got %d", input.Limit)
		}

		gen, err := newGenerator()
		if err != nil {
			return nil, PreviewOutput{}, err
		}

		result, err := gen.Preview(ctx, input.Limit)
		if err != nil {
			return nil, PreviewOutput{}, fmt.Errorf("previewing posts: %w", err)
		}

		return nil, PreviewOutput{
			Count:      len(result.Posts),
			Posts:      toSummaries(result.Posts),
			Unresolved: result.Unresolved,
		}, nil
	}
}

// --- Generate tool ---

// GenerateInput is the input for the generate_posts tool (no parameters needed).
type GenerateInput struct{}

// GenerateOutput is the output for the generate_posts tool.
type GenerateOutput struct {
	Count      int           `json:"count"                jsonschema:"number of posts written"`
	OutputDir  string        `json:"output_dir"           jsonschema:"directory the posts were written to"`
	Posts      []PostSummary `json:"posts"                jsonschema:"written posts in processing order"`
	Unresolved []string      `json:"unresolved,omitempty" jsonschema:"template placeholders with no value on some issue"`
}

func handleGenerate(newGenerator GeneratorFunc) mcp.ToolHandlerFor[GenerateInput, GenerateOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GenerateInput) (*mcp.CallToolResult, GenerateOutput, error) {
		gen, err := newGenerator()
		if err != nil {
			return nil, GenerateOutput{}, err
		}

		result, err := gen.Run(ctx)
		if err != nil {
			return nil, GenerateOutput{}, fmt.Errorf("generating posts (%d written before failure): %w", len(result.Posts), err)
		}

		return nil, GenerateOutput{
			Count:      len(result.Posts),
			OutputDir:  gen.OutputDir,
			Posts:      toSummaries(result.Posts),
			Unresolved: result.Unresolved,
		}, nil
	}
}
