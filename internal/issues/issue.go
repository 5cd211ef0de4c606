// Package issues fetches labeled issues from a GitHub-style REST API.
package issues

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Issue is one record returned by the tracker. Every field of the JSON object
// is kept so templates can reference anything the API returns. Numbers are
// held as json.Number.
type Issue map[string]any

// Title returns the issue title, or "" when absent or not a string.
func (i Issue) Title() string {
	s, _ := i["title"].(string)
	return s
}

// UpdatedAt returns the raw updated_at timestamp string.
func (i Issue) UpdatedAt() string {
	s, _ := i["updated_at"].(string)
	return s
}

// Number returns the issue number, or 0 when absent.
func (i Issue) Number() int64 {
	n, ok := i["number"].(json.Number)
	if !ok {
		return 0
	}
	v, err := n.Int64()
	if err != nil {
		return 0
	}
	return v
}

// Check reports whether the fields needed to name an output file are present.
func (i Issue) Check() error {
	for _, field := range []string{"title", "updated_at"} {
		if _, ok := i[field].(string); !ok {
			return fmt.Errorf("%s: missing string field %q", i.label(), field)
		}
	}
	return nil
}

// label names the issue in error messages.
func (i Issue) label() string {
	if n := i.Number(); n != 0 {
		return "issue #" + strconv.FormatInt(n, 10)
	}
	return "issue"
}

// Reverse returns the issues in reverse order. The input slice is not modified.
func Reverse(list []Issue) []Issue {
	out := make([]Issue, len(list))
	for idx, issue := range list {
		out[len(list)-1-idx] = issue
	}
	return out
}
