package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/issueposts/internal/output"
	"github.com/gorewood/issueposts/internal/pipeline"
	"github.com/gorewood/issueposts/internal/posts"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write one post per labeled issue",
		Long: `Fetch the labeled issues and write one markdown post per issue.

Issues are processed oldest first. Each post is written to
<output_dir>/<updated_at date>-<title>.md, replacing any existing file with
that name. The first failure stops the run; posts already written are kept.

Examples:
  issueposts generate                              # Use ./issueposts.yaml
  issueposts generate --template post.md --link-issues
  issueposts generate --repo owner/name --label "Release Notes" --out _posts
  issueposts generate --json                       # List written posts as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &flags)
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, flags *configFlags) error {
	printer := newCmdPrinter(cmd)

	cfg, err := flags.load(cmd.Flags())
	if err != nil {
		printer.Error(err)
		return err
	}

	gen, err := pipeline.New(cfg, buildVersion())
	if err != nil {
		printer.Error(err)
		return err
	}
	gen.OnPost = func(post posts.Post) {
		printer.Stderr("Wrote %s\n", post.Path)
	}

	result, err := gen.Run(cmd.Context())
	if err != nil {
		// Posts written before the failure stay on disk.
		printer.ErrorWith(err, map[string]any{"posts": result.Posts})
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	warnUnresolved(printer, result.Unresolved)
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Generated %d %s in %s", len(result.Posts), plural(len(result.Posts), "post"), cfg.OutputDir),
	})
}

// warnUnresolved reports template placeholders that rendered empty.
func warnUnresolved(printer *output.Printer, names []string) {
	for _, name := range names {
		printer.Warn("placeholder {{%s}} has no value on some issues; rendered empty", name)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
