package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	err := printer.Success(map[string]any{
		"written": 2,
		"dir":     "_posts",
	})
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["dir"] != "_posts" {
		t.Errorf("dir = %v, want %q", result["dir"], "_posts")
	}
	if result["written"] != float64(2) {
		t.Errorf("written = %v, want 2", result["written"])
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewUserError("--template is required"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["error"] != "--template is required" {
		t.Errorf("error = %v, want %q", result["error"], "--template is required")
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
}

func TestPrinter_Human_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	if err := printer.Success(map[string]any{"message": "Wrote 3 posts"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Wrote 3 posts") {
		t.Errorf("output = %q, want to contain 'Wrote 3 posts'", buf.String())
	}
}

func TestPrinter_Human_ErrorIncludesCause(t *testing.T) {
	var stdout, stderr bytes.Buffer
	printer := NewPrinter(&stdout, false, false).WithStderr(&stderr)

	printer.Error(NewNetworkError("fetching issues", errors.New("connection refused")))

	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	got := stderr.String()
	for _, want := range []string{"Error", "fetching issues", "network error", "connection refused"} {
		if !strings.Contains(got, want) {
			t.Errorf("stderr = %q, want to contain %q", got, want)
		}
	}
}

func TestPrinter_Human_PlainError(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Error(errors.New("boom"))

	if buf.String() != "Error: boom\n" {
		t.Errorf("output = %q, want %q", buf.String(), "Error: boom\n")
	}
}

func TestPrinter_StderrSilentInJSONMode(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Stderr("Wrote %s\n", "x.md")

	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty in JSON mode", buf.String())
	}
}

func TestPrinter_Warn(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Warn("no config file found, using %s", "defaults")

	if buf.String() != "Warning: no config file found, using defaults\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table([]string{"FILE", "CHARS"}, [][]string{
		{"_posts/2021-05-03-Fixed a bug.md", "42"},
		{"_posts/x.md", "7"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	// Second column starts after the widest first-column cell plus two spaces.
	wantCol := len("_posts/2021-05-03-Fixed a bug.md") + 2
	if got := strings.Index(lines[0], "CHARS"); got != wantCol {
		t.Errorf("CHARS header at column %d, want %d: %q", got, wantCol, lines[0])
	}
	if got := strings.Index(lines[2], "7"); got != wantCol {
		t.Errorf("short row cell at column %d, want %d: %q", got, wantCol, lines[2])
	}
}

func TestPrinter_Section(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Section("Fixé")

	if buf.String() != "\nFixé\n────\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrinter_JSON_ErrorWith(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	err := NewFilesystemError("writing post _posts/b.md", errors.New("permission denied"))
	printer.ErrorWith(err, map[string]any{"posts": []string{"_posts/a.md"}, "code": 99})

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitSystemError {
		t.Errorf("code = %v, want %d", result["code"], ExitSystemError)
	}
	if msg, _ := result["error"].(string); !strings.Contains(msg, "permission denied") {
		t.Errorf("error = %q, want cause included", msg)
	}
	if posts, ok := result["posts"].([]any); !ok || len(posts) != 1 {
		t.Errorf("posts = %v, want the extra field kept", result["posts"])
	}
}

func TestPrinter_Human_ErrorWithIgnoresFields(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.ErrorWith(NewUserError("bad flag"), map[string]any{"posts": 3})

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if errOut.String() != "Error: bad flag\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestPrinter_KeyValueAndPrint(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.KeyValue("Issue", "#7")
	printer.Print("%s\n", "## First")

	if buf.String() != "Issue: #7\n## First\n" {
		t.Errorf("output = %q", buf.String())
	}
}
