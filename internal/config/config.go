package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/issueposts/internal/output"
)

// Defaults for options not set in the config file.
const (
	DefaultRepository = "MahApps/MahApps.Metro"
	DefaultLabel      = "Release Notes"
	DefaultState      = "closed"
	DefaultAPIURL     = "https://api.github.com"
	DefaultOutputDir  = "_posts"
)

// Config holds the options for one generation run.
type Config struct {
	TemplateLocation  string `yaml:"template_location"   json:"template_location"`
	ShouldParseIssues bool   `yaml:"should_parse_issues" json:"should_parse_issues"`
	Repository        string `yaml:"repository"          json:"repository"`
	Label             string `yaml:"label"               json:"label"`
	State             string `yaml:"state"               json:"state"`
	APIURL            string `yaml:"api_url"             json:"api_url"`
	LinkBaseURL       string `yaml:"link_base_url"       json:"link_base_url"`
	OutputDir         string `yaml:"output_dir"          json:"output_dir"`

	// Source is the file the config was read from, empty for built-in defaults.
	Source string `yaml:"-" json:"-"`
}

// Default returns a config with every option at its default.
// TemplateLocation has no default and must be supplied.
func Default() *Config {
	return &Config{
		Repository: DefaultRepository,
		Label:      DefaultLabel,
		State:      DefaultState,
		APIURL:     DefaultAPIURL,
		OutputDir:  DefaultOutputDir,
	}
}

// LinkBase returns the base URL issue references link to.
// Defaults to the repository's page on github.com.
func (c *Config) LinkBase() string {
	base := c.LinkBaseURL
	if base == "" {
		base = "https://github.com/" + c.Repository
	}
	return strings.TrimRight(base, "/")
}

// candidateNames are checked in order in the working directory.
var candidateNames = []string{"issueposts.yaml", "issueposts.yml", "issueposts.json"}

// Discover returns the first config file found in dir, then in the global
// config directory. Returns "" when none exists.
func Discover(dir string) string {
	for _, name := range candidateNames {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}

	if global := Dir(); global != "" {
		path := filepath.Join(global, "config.yaml")
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// Load reads the config at path. An empty path means discovery from the
// working directory; if nothing is found the defaults are returned.
// An explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, output.NewConfigError("resolving working directory", err)
		}
		path = Discover(cwd)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, output.NewConfigError("reading config "+path, err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, output.NewConfigError("parsing config "+path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes config data on top of the defaults. Extensions .json and
// .jsonc are read as JSON with comments; anything else as YAML.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("invalid JSONC: %w", err)
		}
		if err := json.Unmarshal(standardized, cfg); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks that the config can drive a run.
func (c *Config) Validate() error {
	var problems []error

	if c.TemplateLocation == "" {
		problems = append(problems, errors.New("template_location is required (set it in the config file or pass --template)"))
	}

	owner, name, ok := strings.Cut(c.Repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		problems = append(problems, fmt.Errorf("repository must be owner/name, got %q", c.Repository))
	}

	if c.OutputDir == "" {
		problems = append(problems, errors.New("output_dir must not be empty"))
	}

	if err := checkHTTPURL("api_url", c.APIURL); err != nil {
		problems = append(problems, err)
	}
	if c.LinkBaseURL != "" {
		if err := checkHTTPURL("link_base_url", c.LinkBaseURL); err != nil {
			problems = append(problems, err)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return output.NewConfigError("invalid configuration", errors.Join(problems...))
}

func checkHTTPURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid url: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: scheme must be http or https, got %q", field, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s: missing host in %q", field, raw)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
