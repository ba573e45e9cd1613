package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/carlosfiori/weathercli/weatherapi"
)

const DefaultPadding = 20

type Formatter struct {
	Styler  Styler
	Padding int
}

func NewFormatter(styler Styler) *Formatter {
	return &Formatter{Styler: styler, Padding: DefaultPadding}
}

// Render writes the one-line summary for c:
//
//	<reverse>City (Region)<reset>\t<color>Glyph  Condition  <reset>(22°C)
func (f *Formatter) Render(w io.Writer, c *weatherapi.Current) error {
	glyph, color := Classify(c.Code)

	_, err := fmt.Fprintf(w, "%s%s (%s)%s\t%s%s %s %s(%s°C)\n",
		f.Styler.Reverse(), c.City, Region(c), f.Styler.Reset(),
		f.Styler.Color(color), glyph, Center(Capitalize(c.Condition), f.Padding),
		f.Styler.Reset(), FormatTemp(c.TempC),
	)
	return err
}

// Region is the administrative area when the provider has one, else the city.
func Region(c *weatherapi.Current) string {
	if strings.TrimSpace(c.Region) != "" {
		return c.Region
	}
	return c.City
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// Center pads s with spaces to width runes; an odd remainder goes right.
func Center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	pad := width - n
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// FormatTemp prints the shortest decimal that round-trips: 22, 22.5, -3.1.
func FormatTemp(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}
