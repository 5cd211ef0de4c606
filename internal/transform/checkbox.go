package transform

import "regexp"

// checkboxPattern matches a list dash followed by one or more task
// checkboxes. Consuming the whole run keeps StripCheckboxes idempotent.
var checkboxPattern = regexp.MustCompile(`- (?:\[.\] )+`)

// StripCheckboxes removes task checkboxes from list items, keeping the dash.
func StripCheckboxes(text string) string {
	return checkboxPattern.ReplaceAllLiteralString(text, "- ")
}
