package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/shapestone/shape-rowscan/pkg/rowscan"
)

// useColor decides whether output to w is colored.
func (cfg *Config) useColor(w io.Writer) bool {
	if cfg.NoColor {
		return false
	}
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// printer writes one line per record.
type printer struct {
	w      io.Writer
	prefix bool

	kinds map[rowscan.NewlineKind]*color.Color
	line  *color.Color
	name  *color.Color
}

func newPrinter(w io.Writer, colored, prefix bool) *printer {
	p := &printer{
		w:      w,
		prefix: prefix,
		kinds: map[rowscan.NewlineKind]*color.Color{
			rowscan.LF:      color.New(color.FgGreen),
			rowscan.CRLF:    color.New(color.FgCyan),
			rowscan.CR:      color.RGB(196, 96, 16),
			rowscan.Unknown: color.RGB(96, 96, 96),
		},
		line: color.New(color.FgYellow),
		name: color.New(color.FgMagenta),
	}
	all := []*color.Color{p.line, p.name}
	for _, c := range p.kinds {
		all = append(all, c)
	}
	for _, c := range all {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) start(name string) string {
	if !p.prefix {
		return ""
	}
	return p.name.Sprint(name) + ":"
}

// span prints "begin end kind".
func (p *printer) span(name string, sp rowscan.Span) error {
	_, err := fmt.Fprintf(p.w, "%s%d\t%d\t%s\n", p.start(name), sp.Begin, sp.End, p.kinds[sp.Kind].Sprint(sp.Kind.String()))
	return err
}

// fields prints the line number followed by the quoted fields.
func (p *printer) fields(name string, line int, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = strconv.Quote(f)
	}
	_, err := fmt.Fprintf(p.w, "%s%s\t%s\n", p.start(name), p.line.Sprint(line), strings.Join(quoted, "\t"))
	return err
}
