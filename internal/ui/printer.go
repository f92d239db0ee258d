// Package ui formats the CLI's human-facing output.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes status lines such as "created src/lib/models/PostModel.js".
type Printer struct {
	w       io.Writer
	created *color.Color
	skipped *color.Color
	failed  *color.Color
	header  *color.Color
	info    *color.Color
}

func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:       w,
		created: color.New(color.FgGreen),
		skipped: color.New(color.FgYellow),
		failed:  color.New(color.FgRed, color.Bold),
		header:  color.New(color.FgCyan, color.Bold),
		info:    color.New(color.FgHiBlack),
	}
	if noColor {
		for _, c := range []*color.Color{p.created, p.skipped, p.failed, p.header, p.info} {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) Created(path string) {
	p.created.Fprintf(p.w, "%10s", "created")
	fmt.Fprintf(p.w, "  %s\n", path)
}

func (p *Printer) Updated(path string) {
	p.created.Fprintf(p.w, "%10s", "updated")
	fmt.Fprintf(p.w, "  %s\n", path)
}

func (p *Printer) Skipped(path, reason string) {
	p.skipped.Fprintf(p.w, "%10s", "skipped")
	fmt.Fprintf(p.w, "  %s (%s)\n", path, reason)
}

func (p *Printer) Failed(subject string, err error) {
	p.failed.Fprintf(p.w, "%10s", "failed")
	fmt.Fprintf(p.w, "  %s: %v\n", subject, err)
}

func (p *Printer) Section(format string, args ...any) {
	p.header.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Info(format string, args ...any) {
	p.info.Fprintf(p.w, format+"\n", args...)
}
