package transform

// Options controls Apply.
type Options struct {
	LinkIssues bool
	LinkBase   string
}

// Apply runs StripCheckboxes and then LinkReferences.
func Apply(text string, opts Options) string {
	return LinkReferences(StripCheckboxes(text), opts.LinkIssues, opts.LinkBase)
}
