// Package main provides the entry point for the welcome CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/gorewood/welcome/internal/banner"
	"github.com/gorewood/welcome/internal/greeter"
	"github.com/gorewood/welcome/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run(context.Background(), os.Stdout, os.Stderr)
	os.Exit(code)
}

// run executes the root command and returns the process exit code.
// The command never sees os.Args: its argument list is always empty.
func run(ctx context.Context, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := fang.Execute(ctx, cmd,
		fang.WithVersion(buildVersion()),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
		fang.WithErrorHandler(errorHandler(output.IsTTY(stderr))),
	)
	return output.GetExitCode(err)
}

// errorHandler reports command errors through the output printer.
func errorHandler(isTTY bool) func(io.Writer, fang.Styles, error) {
	return func(w io.Writer, _ fang.Styles, err error) {
		output.NewPrinter(w, isTTY).Error(err)
	}
}

// newRootCmd creates the root command for the welcome CLI.
// Flag parsing is off: every argument, --help and --version included, is ignored.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "welcome",
		Short: "Print the Rust and Nix development environment welcome",
		Long: `Welcome prints a short greeting for the Rust and Nix development
environment, followed by the cargo commands available in it.

It takes no arguments and reads no configuration.`,
		Version:            buildVersion(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWelcome(cmd)
		},
	}
}

// runWelcome prints the built-in banner to the command's stdout.
func runWelcome(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), false)
	return greeter.New(printer, banner.Default()).Greet()
}
