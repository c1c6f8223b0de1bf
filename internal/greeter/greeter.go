// Package greeter prints the welcome banner.
package greeter

import (
	"github.com/gorewood/welcome/internal/banner"
	"github.com/gorewood/welcome/internal/output"
)

// Greeter writes a banner, line by line, through a printer.
type Greeter struct {
	printer *output.Printer
	banner  banner.Banner
}

// New creates a Greeter for the given printer and banner.
func New(printer *output.Printer, b banner.Banner) *Greeter {
	return &Greeter{printer: printer, banner: b}
}

// Greet writes every banner line in order.
// It stops at the first failed write and returns a system error.
func (g *Greeter) Greet() error {
	for _, line := range g.banner.Lines {
		if err := g.printer.Line(line); err != nil {
			return output.NewSystemErrorWithCause("writing welcome text", err)
		}
	}
	return nil
}
