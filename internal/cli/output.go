// Package cli provides CLI output formatting utilities.
package cli

import (
	"fmt"
	"io"
	"iter"
	"os"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

var nameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9d7aff"))

// Printer writes command results, highlighting preset names when the
// destination is a terminal.
type Printer struct {
	w     io.Writer
	isTTY bool
}

// NewPrinter returns a Printer for w. Styling is enabled only when w is a
// terminal file.
func NewPrinter(w io.Writer) *Printer {
	isTTY := false
	if f, ok := w.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{w: w, isTTY: isTTY}
}

// Done prints a confirmation. format holds a single %s for the preset name.
func (p *Printer) Done(format, name string) {
	if p.isTTY {
		name = nameStyle.Render(name)
	}
	fmt.Fprintf(p.w, format+"\n", name)
}

// Names prints one preset name per line, unstyled so the output stays
// pipeable.
func (p *Printer) Names(names iter.Seq[string]) {
	for n := range names {
		fmt.Fprintln(p.w, n)
	}
}
