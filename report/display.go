package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	warnColorFG  = pterm.FgYellow
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG = pterm.FgRed
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	noteColorFG  = pterm.FgCyan
)

// consoleSink renders diagnostics to the terminal.
type consoleSink struct{}

func (cs *consoleSink) Emit(d *Diagnostic) {
	if d.Severity == SevError {
		errorStyleBG.Print("Error")
		errorColorFG.Println(" " + spanPrefix(d.Span) + d.Message)
	} else {
		warnStyleBG.Print("Warning")
		warnColorFG.Println(" " + spanPrefix(d.Span) + d.Message)
	}

	for _, note := range d.Notes {
		noteColorFG.Println("  note: " + spanPrefix(note.Span) + note.Message)
	}
}

// spanPrefix renders the position prefix for a span, empty if the span is nil.
func spanPrefix(span *TextSpan) string {
	if span == nil {
		return ""
	}

	return fmt.Sprintf("(%d, %d) ", span.StartLine+1, span.StartCol+1)
}

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	errorStyleBG.Print("ICE")
	errorColorFG.Println(" " + message)
	fmt.Println("This error was not supposed to happen: please open an issue")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	errorStyleBG.Print("Fatal")
	errorColorFG.Println(" " + message)
}

// -----------------------------------------------------------------------------

// Collector is a sink that records diagnostics instead of rendering them.
// It is used by tests and by embedders that render diagnostics themselves.
type Collector struct {
	Diags []*Diagnostic
}

func (c *Collector) Emit(d *Diagnostic) {
	c.Diags = append(c.Diags, d)
}

// Violations returns the recorded diagnostics carrying the given violation
// kind.
func (c *Collector) Violations(kind RestrictKind) []*Diagnostic {
	var diags []*Diagnostic
	for _, d := range c.Diags {
		if d.Violation == kind {
			diags = append(diags, d)
		}
	}

	return diags
}
