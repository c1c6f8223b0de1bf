// Package output provides terminal output and exit codes for the welcome CLI.
//
// # Printer
//
// The Printer writes lines exactly as given; nothing is added or styled:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), false)
//	err := printer.Line("Welcome")
//
// Errors are reported with Printer.Error as "Error: <message>". The "Error"
// label is rendered with lipgloss when the printer was created for a TTY.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Untyped error
//	output.ExitSystemError // 2: System error (I/O error)
//
// Errors built with NewSystemErrorWithCause carry their exit code through to
// GetExitCode, which main uses for the process status.
package output
