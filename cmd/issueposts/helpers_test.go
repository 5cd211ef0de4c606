package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleIssuesJSON = `[
	{"number": 12, "title": "Second release", "updated_at": "2021-05-03T10:00:00Z", "body": "- [x] Fixes #7"},
	{"number": 7, "title": "First release", "updated_at": "2021-05-01T10:00:00Z", "body": "- [ ] Initial"}
]`

// testEnv is a working directory with a template, a config file pointing at
// a fake issues API, and an output directory path.
type testEnv struct {
	dir        string
	configPath string
	outputDir  string
	requests   int
	lastQuery  url.Values
}

func newTestEnv(t *testing.T, status int, body string, extraConfig string) *testEnv {
	t.Helper()
	env := &testEnv{dir: t.TempDir()}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.requests++
		env.lastQuery = r.URL.Query()
		if r.URL.Path != "/repos/MahApps/MahApps.Metro/issues" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	tmplPath := filepath.Join(env.dir, "post.md")
	writeFile(t, tmplPath, "## {{title}}\n{{body}}")

	env.outputDir = filepath.Join(env.dir, "_posts")
	env.configPath = filepath.Join(env.dir, "issueposts.yaml")
	writeFile(t, env.configPath, strings.Join([]string{
		"template_location: " + tmplPath,
		"api_url: " + server.URL,
		"output_dir: " + env.outputDir,
		extraConfig,
	}, "\n"))

	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ISSUEPOSTS_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
