package ui

import (
	"fmt"
	"io"
)

// Reporter prints leveled, colored status lines to the terminal.
type Reporter struct {
	out   io.Writer
	debug bool
}

// NewReporter creates a Reporter writing to out. Debug lines are printed
// only when debug is true.
func NewReporter(out io.Writer, debug bool) *Reporter {
	return &Reporter{out: out, debug: debug}
}

// Ok prints a success line in green.
func (r *Reporter) Ok(format string, args ...any) {
	fmt.Fprintln(r.out, okStyle.Render(fmt.Sprintf(format, args...)))
}

// Info prints a plain informational line.
func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Warn prints a warning line in yellow.
func (r *Reporter) Warn(format string, args ...any) {
	fmt.Fprintln(r.out, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error line in red.
func (r *Reporter) Error(format string, args ...any) {
	fmt.Fprintln(r.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Debug prints a dim line when debug output is enabled.
func (r *Reporter) Debug(format string, args ...any) {
	if !r.debug {
		return
	}
	fmt.Fprintln(r.out, debugStyle.Render(fmt.Sprintf(format, args...)))
}

// Field prints an aligned "name: value" line, with the name highlighted.
func (r *Reporter) Field(name string, value any) {
	fmt.Fprintf(r.out, "%s %v\n", fieldStyle.Render(name+":"), value)
}

// Blank prints an empty line between poll cycles.
func (r *Reporter) Blank() {
	fmt.Fprintln(r.out)
}
