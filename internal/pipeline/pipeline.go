// Package pipeline drives issues from the tracker to post files.
//
// A run fetches the issue list once, reverses it, and then for each issue in
// turn renders the template, strips checkboxes, optionally links issue
// references, and writes the post. The first failure stops the run; posts
// already written stay on disk.
package pipeline

import (
	"context"

	"github.com/gorewood/issueposts/internal/issues"
	"github.com/gorewood/issueposts/internal/output"
	"github.com/gorewood/issueposts/internal/posts"
	"github.com/gorewood/issueposts/internal/render"
	"github.com/gorewood/issueposts/internal/transform"
)

// Fetcher supplies the issue list.
type Fetcher interface {
	Fetch(ctx context.Context) ([]issues.Issue, error)
}

// Generator turns fetched issues into posts.
type Generator struct {
	Source    Fetcher
	Template  *render.Template
	Options   transform.Options
	OutputDir string

	// OnPost, if set, is called after each post is written (Run) or
	// rendered (Preview).
	OnPost func(posts.Post)
}

// Result describes the posts a run produced.
type Result struct {
	Posts []posts.Post `json:"posts"`
	// Unresolved lists template placeholders that had no value on at least
	// one issue, in order of first appearance.
	Unresolved []string `json:"unresolved,omitempty"`
}

// Run fetches the issues and writes one post per issue, oldest first.
// On error the returned Result holds the posts written before the failure.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	list, err := g.Source.Fetch(ctx)
	if err != nil {
		return &Result{Posts: []posts.Post{}}, err
	}

	result := &Result{Posts: make([]posts.Post, 0, len(list))}
	seen := make(map[string]bool)

	for _, issue := range issues.Reverse(list) {
		post, err := g.RenderIssue(issue)
		if err != nil {
			return result, err
		}
		result.addUnresolved(seen, render.Unresolved(g.Template, issue))

		if err := posts.EnsureDir(g.OutputDir); err != nil {
			return result, err
		}
		if err := posts.Write(post.Path, post.Content); err != nil {
			return result, err
		}

		post.Content = ""
		result.Posts = append(result.Posts, post)
		if g.OnPost != nil {
			g.OnPost(post)
		}
	}

	return result, nil
}

// Preview renders posts without writing them. limit <= 0 renders every issue.
func (g *Generator) Preview(ctx context.Context, limit int) (*Result, error) {
	list, err := g.Source.Fetch(ctx)
	if err != nil {
		return &Result{Posts: []posts.Post{}}, err
	}

	ordered := issues.Reverse(list)
	if limit > 0 && limit < len(ordered) {
		ordered = ordered[:limit]
	}

	result := &Result{Posts: make([]posts.Post, 0, len(ordered))}
	seen := make(map[string]bool)

	for _, issue := range ordered {
		post, err := g.RenderIssue(issue)
		if err != nil {
			return result, err
		}
		result.addUnresolved(seen, render.Unresolved(g.Template, issue))
		result.Posts = append(result.Posts, post)
		if g.OnPost != nil {
			g.OnPost(post)
		}
	}

	return result, nil
}

// RenderIssue renders and transforms a single issue. The post is not written.
func (g *Generator) RenderIssue(issue issues.Issue) (posts.Post, error) {
	if err := issue.Check(); err != nil {
		return posts.Post{}, output.NewParseError("invalid issue", err)
	}

	content := transform.Apply(render.Render(g.Template, issue), g.Options)

	return posts.Post{
		Number:  issue.Number(),
		Title:   issue.Title(),
		Path:    posts.Path(g.OutputDir, issue),
		Content: content,
	}, nil
}

func (r *Result) addUnresolved(seen map[string]bool, names []string) {
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			r.Unresolved = append(r.Unresolved, name)
		}
	}
}
