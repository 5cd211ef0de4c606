// Package render fills post templates with issue fields.
//
// Placeholders use mustache-style braces: {{title}}, {{ user.login }} or
// {{{body}}}. Values are substituted raw; nothing is HTML-escaped. Unknown
// names render as the empty string.
package render

import (
	"os"

	"github.com/gorewood/issueposts/internal/output"
)

// Template is a post template loaded once per run.
type Template struct {
	Content string
	Source  string // path the template was read from
}

// Load reads the template file at path.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, output.NewConfigError("reading template "+path, err)
	}
	return &Template{Content: string(data), Source: path}, nil
}
