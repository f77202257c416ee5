// Package console turns duel events into terminal text.
package console

import (
	"fmt"
	"io"

	term "github.com/buger/goterm"
	"github.com/lpbeast/mageduel/notify"
)

type Style int

const (
	Plain Style = iota
	Narration
	Victory
	Warning
)

var styleColors = map[Style]int{
	Narration: term.YELLOW,
	Victory:   term.GREEN,
	Warning:   term.RED,
}

// Format returns msg wrapped in the escape codes for its style. With color
// off, or for Plain, the message comes back untouched.
func Format(msg string, s Style, color bool) string {
	c, ok := styleColors[s]
	if !color || !ok {
		return msg
	}
	return term.Color(msg, c)
}

type Printer struct {
	Out   io.Writer
	Color bool
}

func NewPrinter(out io.Writer, color bool) *Printer {
	if out == nil {
		out = io.Discard
	}
	return &Printer{Out: out, Color: color}
}

func (p *Printer) Println(s Style, msg string) {
	fmt.Fprintln(p.Out, Format(msg, s, p.Color))
}

func (p *Printer) Printf(s Style, format string, args ...any) {
	p.Println(s, fmt.Sprintf(format, args...))
}

// Observer prints every event it receives in the given style.
func (p *Printer) Observer(s Style) notify.Observer {
	return func(e notify.Event) {
		p.Println(s, e.Message)
	}
}
