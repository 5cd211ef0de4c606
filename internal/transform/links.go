package transform

import (
	"regexp"
	"strconv"
	"strings"
)

// issueTokenPattern matches a hash followed by digits.
var issueTokenPattern = regexp.MustCompile(`#(\d+)`)

// Counter hands out footnote indices 0, 1, 2, ...
// The zero value is ready to use.
type Counter struct {
	next int
}

// Next returns the current index and advances.
func (c *Counter) Next() int {
	n := c.next
	c.next++
	return n
}

// Reference is one entry of the link table.
type Reference struct {
	Index  int
	Number string // digits as written, leading zeros kept
}

// Definition formats the reference as a markdown link definition.
func (r Reference) Definition(base string) string {
	return "[" + strconv.Itoa(r.Index) + "]: " + base + "/pull/" + r.Number
}

// FindReferences returns one Reference per issue token in text, in
// left-to-right order, duplicates included.
func FindReferences(text string) []Reference {
	var counter Counter
	matches := issueTokenPattern.FindAllStringSubmatch(text, -1)
	refs := make([]Reference, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, Reference{Index: counter.Next(), Number: m[1]})
	}
	return refs
}

// LinkReferences rewrites issue tokens as reference-style links pointing at
// base/pull/<number>. When enabled is false the text is returned unchanged.
func LinkReferences(text string, enabled bool, base string) string {
	if !enabled {
		return text
	}

	refs := FindReferences(text)
	if len(refs) == 0 {
		return text
	}

	var counter Counter
	rewritten := issueTokenPattern.ReplaceAllStringFunc(text, func(token string) string {
		return "[" + token[1:] + "][" + strconv.Itoa(counter.Next()) + "]"
	})

	var b strings.Builder
	b.WriteString(rewritten)
	for _, ref := range refs {
		b.WriteString("\n")
		b.WriteString(ref.Definition(base))
	}
	return b.String()
}
