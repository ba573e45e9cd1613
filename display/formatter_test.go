package display

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosfiori/weathercli/weatherapi"
)

// markerStyler makes style changes visible in the rendered text.
type markerStyler struct{}

func (markerStyler) Reverse() string { return "<rev>" }

func (markerStyler) Color(c Color) string { return fmt.Sprintf("<color:%d>", c) }

func (markerStyler) Reset() string { return "<reset>" }

func paris() *weatherapi.Current {
	return &weatherapi.Current{City: "Paris", Condition: "Clear", Code: 1000, TempC: 22}
}

func TestRenderStructure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(markerStyler{}).Render(&buf, paris()))

	want := fmt.Sprintf("<rev>Paris (Paris)<reset>\t<color:%d>🔆 %s <reset>(22°C)\n", Yellow, Center("Clear", DefaultPadding))
	assert.Equal(t, want, buf.String())
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(Plain{}).Render(&buf, paris()))

	out := buf.String()
	assert.Contains(t, out, "Paris")
	assert.Contains(t, out, "🔆")
	assert.Contains(t, out, "Clear")
	assert.Contains(t, out, "22°C")
	assert.NotContains(t, out, "\033")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestRenderANSI(t *testing.T) {
	var buf bytes.Buffer
	c := &weatherapi.Current{City: "Oslo", Region: "Oslo County", Condition: "light SNOW", Code: 1213, TempC: -3.5}
	require.NoError(t, NewFormatter(ANSI{}).Render(&buf, c))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, escReverse+"Oslo (Oslo County)"+escReset+"\t"))
	assert.Contains(t, out, colorCodes[White]+"⛄️ ")
	assert.Contains(t, out, "Light snow")
	assert.True(t, strings.HasSuffix(out, escReset+"(-3.5°C)\n"))
}

func TestRegionFallsBackToCity(t *testing.T) {
	assert.Equal(t, "Paris", Region(&weatherapi.Current{City: "Paris"}))
	assert.Equal(t, "Paris", Region(&weatherapi.Current{City: "Paris", Region: "  "}))
	assert.Equal(t, "Ile-de-France", Region(&weatherapi.Current{City: "Paris", Region: "Ile-de-France"}))
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"clear":         "Clear",
		"PARTLY CLOUDY": "Partly cloudy",
		"éclaircies":    "Éclaircies",
	}
	for in, want := range tests {
		assert.Equal(t, want, Capitalize(in), in)
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab   ", Center("ab", 7))
	assert.Equal(t, " abc ", Center("abc", 5))
	assert.Equal(t, "toolong", Center("toolong", 3))
	assert.Equal(t, " ñé ", Center("ñé", 4))
}

func TestFormatTemp(t *testing.T) {
	assert.Equal(t, "22", FormatTemp(22))
	assert.Equal(t, "22.5", FormatTemp(22.5))
	assert.Equal(t, "-0.4", FormatTemp(-0.4))
}

func TestStylerFor(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, Plain{}, StylerFor(&buf, false))
	assert.Equal(t, Plain{}, StylerFor(&buf, true))
}
