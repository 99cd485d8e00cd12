package cliout

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// EnvNoColor disables color when set to any non-empty value.
const EnvNoColor = "NO_COLOR"

// ItemIndent prefixes every item line.
const ItemIndent = "  "

// DetectColor reports whether w should receive colored output.
func DetectColor(w io.Writer) bool {
	if os.Getenv(EnvNoColor) != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Printer writes styled lines to an io.Writer.
type Printer struct {
	w io.Writer

	bold    *color.Color
	dim     *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
}

// New creates a Printer. When useColor is false all output is plain text.
func New(w io.Writer, useColor bool) *Printer {
	p := &Printer{
		w:       w,
		bold:    color.New(color.Bold),
		dim:     color.New(color.Faint),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.bold, p.dim, p.success, p.warn, p.fail} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Newline prints a blank line.
func (p *Printer) Newline() {
	fmt.Fprintln(p.w)
}

// Plain prints unstyled text.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Header prints a bold line.
func (p *Printer) Header(format string, args ...any) {
	fmt.Fprintln(p.w, p.bold.Sprintf(format, args...))
}

// Item prints an indented line.
func (p *Printer) Item(format string, args ...any) {
	fmt.Fprintln(p.w, ItemIndent+fmt.Sprintf(format, args...))
}

// Muted prints a dim line.
func (p *Printer) Muted(format string, args ...any) {
	fmt.Fprintln(p.w, p.dim.Sprintf(format, args...))
}

// Success prints a green line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.success.Sprintf(format, args...))
}

// Warning prints a yellow line.
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintln(p.w, p.warn.Sprintf(format, args...))
}

// Error prints a red line.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.w, p.fail.Sprintf(format, args...))
}

// Count returns n in bold.
func (p *Printer) Count(n int) string {
	return p.bold.Sprintf("%d", n)
}
