package cli

import (
	"errors"
	"flag"
	"io"
	"strings"
)

const usage = `usage: weather [-h] city [city ...]

gets weather and temperature information for a city

positional arguments:
  city        enter the city name

options:
  -h, --help  show this help message and exit
`

// ErrHelp is returned when -h or --help is given.
var ErrHelp = errors.New("help requested")

// UsageError is a bad command line.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string { return "weather: error: " + e.Reason }

// ParseArgs joins the positional tokens into one city name.
func ParseArgs(args []string) (string, error) {
	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return "", ErrHelp
		}
		return "", &UsageError{Reason: err.Error()}
	}

	tokens := make([]string, 0, fs.NArg())
	for _, arg := range fs.Args() {
		tokens = append(tokens, strings.Fields(arg)...)
	}
	if len(tokens) == 0 {
		return "", &UsageError{Reason: "the following arguments are required: city"}
	}

	return strings.Join(tokens, " "), nil
}
