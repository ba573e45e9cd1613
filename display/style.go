package display

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Color is a symbolic terminal colour. Reset means the terminal default.
type Color int

const (
	Reset Color = iota
	Red
	Blue
	Cyan
	White
	Yellow
)

const (
	escReverse = "\033[;7m"
	escReset   = "\033[0m"
)

var colorCodes = map[Color]string{
	Reset:  escReset,
	Red:    "\033[1;31m",
	Blue:   "\033[1;34m",
	Cyan:   "\033[1;36m",
	White:  "\033[1;37m",
	Yellow: "\033[33m",
}

// Styler produces the control sequences placed around styled spans.
type Styler interface {
	Reverse() string
	Color(c Color) string
	Reset() string
}

// ANSI emits VT100 escape sequences.
type ANSI struct{}

func (ANSI) Reverse() string { return escReverse }

func (ANSI) Color(c Color) string {
	if code, ok := colorCodes[c]; ok {
		return code
	}
	return escReset
}

func (ANSI) Reset() string { return escReset }

// Plain emits nothing, for pipes and NO_COLOR.
type Plain struct{}

func (Plain) Reverse() string { return "" }

func (Plain) Color(Color) string { return "" }

func (Plain) Reset() string { return "" }

// StylerFor picks ANSI when w is a terminal and colour is not disabled.
func StylerFor(w io.Writer, noColor bool) Styler {
	if noColor {
		return Plain{}
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Plain{}
	}
	return ANSI{}
}
