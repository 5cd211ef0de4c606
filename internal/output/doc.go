// Package output provides structured output and error handling for the issueposts CLI.
//
// # Printer
//
// Every command writes through a Printer, which switches between styled
// human output and JSON based on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Wrote 3 posts"})
//	printer.Error(err)
//
// Human output is styled with lipgloss and falls back to plain text when the
// writer is not a terminal.
//
// # Errors
//
// Failures carry an exit code and one of four kinds:
//
//	output.ErrConfig     // template or config missing/unreadable (exit 1)
//	output.ErrNetwork    // request failed or non-2xx response (exit 2)
//	output.ErrParse      // response body is not the expected JSON (exit 2)
//	output.ErrFilesystem // output directory or file could not be written (exit 2)
//
// Match kinds with errors.Is; the exit code comes from GetExitCode.
package output
