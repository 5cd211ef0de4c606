package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gorewood/issueposts/internal/issues"
)

// placeholderPattern matches {{{name}}} or {{name}}, with optional inner spaces.
var placeholderPattern = regexp.MustCompile(`\{\{\{\s*([\w.-]+)\s*\}\}\}|\{\{\s*([\w.-]+)\s*\}\}`)

// Render substitutes issue fields into the template content.
func Render(tmpl *Template, issue issues.Issue) string {
	return placeholderPattern.ReplaceAllStringFunc(tmpl.Content, func(match string) string {
		groups := placeholderPattern.FindStringSubmatch(match)
		name := groups[1]
		if name == "" {
			name = groups[2]
		}
		value, ok := lookup(map[string]any(issue), name)
		if !ok {
			return ""
		}
		return stringify(value)
	})
}

// Unresolved returns the distinct placeholder names in the template that the
// issue has no value for, in order of first appearance. These render as "".
func Unresolved(tmpl *Template, issue issues.Issue) []string {
	seen := make(map[string]bool)
	var names []string
	for _, groups := range placeholderPattern.FindAllStringSubmatch(tmpl.Content, -1) {
		name := groups[1]
		if name == "" {
			name = groups[2]
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := lookup(map[string]any(issue), name); !ok {
			names = append(names, name)
		}
	}
	return names
}

// lookup walks a dotted path through nested objects and arrays.
func lookup(root map[string]any, path string) (any, bool) {
	var current any = root
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[part]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]any, []any:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return ""
		}
		return strings.TrimSuffix(buf.String(), "\n")
	default:
		return fmt.Sprint(v)
	}
}
