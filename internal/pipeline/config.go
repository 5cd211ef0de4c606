package pipeline

import (
	"github.com/gorewood/issueposts/internal/config"
	"github.com/gorewood/issueposts/internal/issues"
	"github.com/gorewood/issueposts/internal/render"
	"github.com/gorewood/issueposts/internal/transform"
)

// New builds a generator from a validated config. The template is read
// immediately; version goes into the client's User-Agent.
func New(cfg *config.Config, version string) (*Generator, error) {
	tmpl, err := render.Load(cfg.TemplateLocation)
	if err != nil {
		return nil, err
	}

	client := issues.NewClient(issues.Query{
		APIURL:     cfg.APIURL,
		Repository: cfg.Repository,
		Label:      cfg.Label,
		State:      cfg.State,
	}, version)

	return &Generator{
		Source:   client,
		Template: tmpl,
		Options: transform.Options{
			LinkIssues: cfg.ShouldParseIssues,
			LinkBase:   cfg.LinkBase(),
		},
		OutputDir: cfg.OutputDir,
	}, nil
}
