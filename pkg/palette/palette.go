// Package palette applies the small set of ANSI colors used across httpstat
// output.
package palette

import (
	"fmt"

	"github.com/fatih/color"
)

type Color int

const (
	Reset Color = iota
	Green
	Cyan
)

func (c Color) attribute() color.Attribute {
	switch c {
	case Green:
		return color.FgGreen
	case Cyan:
		return color.FgCyan
	default:
		return color.Reset
	}
}

// Code returns the escape sequence that switches the terminal to c.
func (c Color) Code() string {
	return fmt.Sprintf("\x1b[%dm", c.attribute())
}

func (c Color) String() string {
	switch c {
	case Reset:
		return "reset"
	case Green:
		return "green"
	case Cyan:
		return "cyan"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

type Mode int

const (
	// ModeAuto colors output only when stdout is a terminal and NO_COLOR
	// is unset.
	ModeAuto Mode = iota
	ModeAlways
	ModeNever
)

type Painter struct {
	mode Mode
}

func NewPainter(mode Mode) Painter {
	return Painter{mode: mode}
}

func (p Painter) Enabled() bool {
	switch p.mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return !color.NoColor
	}
}

// Paint wraps s in the escape sequence for c followed by a reset.
// A disabled painter returns s unchanged.
func (p Painter) Paint(c Color, s string) string {
	if !p.Enabled() {
		return s
	}
	fc := color.New(c.attribute())
	fc.EnableColor()
	return fc.Sprint(s)
}
