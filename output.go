package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// printer writes result lines, colored only when the destination is a
// terminal so that CI logs and tests see plain text.
type printer struct {
	out     io.Writer
	errOut  io.Writer
	success *lipgloss.Style
	failure *lipgloss.Style
}

func newPrinter(out, errOut io.Writer) *printer {
	p := &printer{out: out, errOut: errOut}
	if isTTY(out) {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
		p.success = &style
	}
	if isTTY(errOut) {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true) // red
		p.failure = &style
	}
	return p
}

// Success prints a confirmation line to the output writer.
func (p *printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, render(p.success, fmt.Sprintf(format, args...)))
}

// Error prints err to the error writer, styling each line separately.
func (p *printer) Error(err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintln(p.errOut, render(p.failure, line))
	}
}

// render leaves text untouched when there is no style, so piped output is
// byte-for-byte the message.
func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

// isTTY reports whether w is a character device.
func isTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
