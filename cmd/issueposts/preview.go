package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/issueposts/internal/output"
	"github.com/gorewood/issueposts/internal/pipeline"
)

// newPreviewCmd creates the preview command.
func newPreviewCmd() *cobra.Command {
	var flags configFlags
	var limitFlag int
	var listFlag bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render posts to stdout without writing files",
		Long: `Fetch the labeled issues and print the posts generate would write.

Nothing is written to disk. Posts are printed oldest first, each under its
target path.

Examples:
  issueposts preview --limit 1            # Render only the oldest issue
  issueposts preview --list               # Table of target paths and titles
  issueposts preview --json               # Paths and contents as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, &flags, limitFlag, listFlag)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "Render at most N posts (0 renders all)")
	cmd.Flags().BoolVar(&listFlag, "list", false, "List target paths instead of rendering contents")

	return cmd
}

// runPreview executes the preview command.
func runPreview(cmd *cobra.Command, flags *configFlags, limit int, list bool) error {
	printer := newCmdPrinter(cmd)

	if limit < 0 {
		err := output.NewUserError("--limit must not be negative")
		printer.Error(err)
		return err
	}

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

	result, err := gen.Preview(cmd.Context(), limit)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	if list {
		printPreviewTable(printer, result)
	} else {
		for _, post := range result.Posts {
			printer.Section(post.Path)
			if post.Number != 0 {
				printer.KeyValue("Issue", issueRef(post.Number))
			}
			printer.Print("%s\n", post.Content)
		}
	}

	warnUnresolved(printer, result.Unresolved)
	return nil
}

// printPreviewTable renders one row per post.
func printPreviewTable(printer *output.Printer, result *pipeline.Result) {
	rows := make([][]string, 0, len(result.Posts))
	for _, post := range result.Posts {
		number := ""
		if post.Number != 0 {
			number = issueRef(post.Number)
		}
		rows = append(rows, []string{number, post.Path, post.Title})
	}
	printer.Table([]string{"ISSUE", "PATH", "TITLE"}, rows)
}

func issueRef(number int64) string {
	return "#" + strconv.FormatInt(number, 10)
}
