package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes plain lines to a writer and styled errors to an error writer.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	styles *Styles
}

// Styles holds lipgloss styles for error output.
type Styles struct {
	Error lipgloss.Style
}

// NewPrinter creates a new Printer.
// If isTTY is true, error output is colored. Lines are never styled.
func NewPrinter(writer io.Writer, isTTY bool) *Printer {
	styles := &Styles{
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
	}

	// Disable colors if not a TTY
	if !isTTY {
		styles.Error = lipgloss.NewStyle()
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		styles: styles,
	}
}

// Line writes text followed by a newline, byte for byte.
func (p *Printer) Line(text string) error {
	if _, err := io.WriteString(p.w, text+"\n"); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// Error writes "Error: <message>" to the error writer.
// For an ExitError with a cause, the cause is appended.
// Failures to write the error itself are ignored.
func (p *Printer) Error(err error) {
	msg := err.Error()
	exitErr := &ExitError{}
	if errors.As(err, &exitErr) && exitErr.Cause != nil {
		msg = exitErr.Message + ": " + exitErr.Cause.Error()
	}
	_, _ = fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), msg)
}
