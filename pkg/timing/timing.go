// Package timing renders the per-phase breakdown of a request as a
// multi-row diagram:
//
//	DNS Lookup   TCP Connection   SSL Handshake   Server Processing   Content Transfer
//	[   1ms   |       1ms      |     48ms      |       30ms        |       20ms       ]
//	          |                |               |                   |                  |
//	    namelookup:1ms         |               |                   |                  |
//	                        connect:2ms        |                   |                  |
//	                                    pretransfer:50ms           |                  |
//	                                                      starttransfer:80ms          |
//	                                                                              total:100ms
//
// Column positions derive from the phase titles; nothing is hand-aligned.
package timing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hbagdi/httpstat/pkg/model"
	"github.com/hbagdi/httpstat/pkg/palette"
)

const (
	// valueWidth is the field every duration is padded to.
	valueWidth = 7
	// titleGap separates adjacent titles; the bar sits in its first column.
	titleGap = 3
	margin = 12
)

type phase struct {
	title string
	label string
	// offset is the distance from the phase's bar to the value of its
	// label. The closing label has no bar to its right and sits closer.
	offset int
}

var phases = [model.PhaseCount]phase{
	{title: "DNS Lookup", label: "namelookup", offset: 5},
	{title: "TCP Connection", label: "connect", offset: 5},
	{title: "SSL Handshake", label: "pretransfer", offset: 5},
	{title: "Server Processing", label: "starttransfer", offset: 5},
	{title: "Content Transfer", label: "total", offset: 2},
}

// bars returns the column of the boundary closing each phase.
func bars() [model.PhaseCount]int {
	var res [model.PhaseCount]int
	for i, ph := range phases {
		if i == 0 {
			res[i] = len(ph.title)
			continue
		}
		res[i] = res[i-1] + titleGap + len(ph.title)
	}
	return res
}

// Render lays out the breakdown of c. The result starts with an empty line
// and every row, including the last, ends with a newline.
func Render(c model.Cumulative, p palette.Painter) string {
	b := bars()
	durations := c.Phases().Values()
	labels := c.Labels().Values()

	rows := []string{
		titleRow(b),
		bracketRow(b, durations, p),
		barRow(b, 0),
	}
	for i, v := range labels {
		rows = append(rows, labelRow(b, i, v, p))
	}

	indent := strings.Repeat(" ", margin)
	var sb strings.Builder
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(indent)
		sb.WriteString(row)
		sb.WriteString("\n")
	}
	return sb.String()
}

func titleRow(b [model.PhaseCount]int) string {
	var l line
	for i, ph := range phases {
		l.pad(b[i] - len(ph.title))
		l.text(ph.title)
	}
	return l.String()
}

func bracketRow(b [model.PhaseCount]int, durations [model.PhaseCount]float64, p palette.Painter) string {
	var l line
	l.text("[")
	left := 0
	for i, d := range durations {
		width := b[i] - left - 1
		l.pad(left + 1 + halfUp(width-valueWidth))
		l.paint(p, palette.Cyan, Bracket(d))
		closing := "|"
		if i == len(durations)-1 {
			closing = "]"
		}
		l.boundary(b[i], closing)
		left = b[i]
	}
	return l.String()
}

// barRow draws the boundaries of phases from the given index onwards.
func barRow(b [model.PhaseCount]int, from int) string {
	var l line
	l.bars(b, from)
	return l.String()
}

func labelRow(b [model.PhaseCount]int, i int, v float64, p palette.Painter) string {
	var l line
	name := phases[i].label + ":"
	l.pad(b[i] + phases[i].offset - len(name))
	l.text(name)
	l.paint(p, palette.Cyan, Label(v))
	l.bars(b, i+1)
	return l.String()
}

// Millis formats v as a whole number of milliseconds.
func Millis(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64) + "ms"
}

// Bracket formats v centered in a fixed-width field.
func Bracket(v float64) string {
	return center(Millis(v), valueWidth)
}

// Label formats v left-justified in a fixed-width field.
func Label(v float64) string {
	return fmt.Sprintf("%-*s", valueWidth, Millis(v))
}

// center pads s to width, putting the odd space on the right.
func center(s string, width int) string {
	n := width - len(s)
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-left)
}

func halfUp(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 1) / 2
}

// line accumulates a row while tracking the visible column, which escape
// sequences do not advance.
type line struct {
	sb  strings.Builder
	col int
}

func (l *line) text(s string) {
	l.sb.WriteString(s)
	l.col += len(s)
}

func (l *line) paint(p palette.Painter, c palette.Color, s string) {
	l.sb.WriteString(p.Paint(c, s))
	l.col += len(s)
}

func (l *line) pad(col int) {
	if col > l.col {
		l.text(strings.Repeat(" ", col-l.col))
	}
}

// boundary writes s at col, or one column past the current content when
// the content already reaches beyond col.
func (l *line) boundary(col int, s string) {
	if l.col > col {
		col = l.col + 1
	}
	l.pad(col)
	l.text(s)
}

func (l *line) bars(b [model.PhaseCount]int, from int) {
	for j := from; j < len(b); j++ {
		l.boundary(b[j], "|")
	}
}

func (l *line) String() string {
	return l.sb.String()
}
