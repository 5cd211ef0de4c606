package main

import (
	"github.com/spf13/pflag"

	"github.com/gorewood/issueposts/internal/config"
)

// configFlags are the config overrides shared by every command that runs
// the pipeline.
type configFlags struct {
	configPath string
	template   string
	linkIssues bool
	outputDir  string
	repository string
	label      string
}

// register adds the config flags to fs.
func (f *configFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configPath, "config", "c", "", "Config file (default: ./issueposts.yaml, then the user config dir)")
	fs.StringVarP(&f.template, "template", "t", "", "Post template file (overrides template_location)")
	fs.BoolVar(&f.linkIssues, "link-issues", false, "Turn #123 references into links (overrides should_parse_issues)")
	fs.StringVarP(&f.outputDir, "out", "o", "", "Output directory (overrides output_dir)")
	fs.StringVar(&f.repository, "repo", "", "Repository as owner/name (overrides repository)")
	fs.StringVar(&f.label, "label", "", "Issue label to select (overrides label)")
}

// load reads the config file, applies flags that were set on fs, and
// validates the result.
func (f *configFlags) load(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	if fs.Changed("template") {
		cfg.TemplateLocation = f.template
	}
	if fs.Changed("link-issues") {
		cfg.ShouldParseIssues = f.linkIssues
	}
	if fs.Changed("out") {
		cfg.OutputDir = f.outputDir
	}
	if fs.Changed("repo") {
		cfg.Repository = f.repository
	}
	if fs.Changed("label") {
		cfg.Label = f.label
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
