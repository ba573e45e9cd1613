// Package cli wires argument parsing, configuration, the weatherapi.com
// client and the terminal formatter into one run of the weather command.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/carlosfiori/weathercli/config"
	"github.com/carlosfiori/weathercli/display"
	"github.com/carlosfiori/weathercli/weatherapi"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Deps are the process resources a run touches.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string

	// HTTPClient and BaseURL default to the instrumented client and the
	// public endpoint when empty.
	HTTPClient weatherapi.HTTPClient
	BaseURL    string

	// Styler defaults to display.Plain.
	Styler display.Styler
}

// Run executes one lookup and returns the process exit status. Output is
// either the full summary line on Stdout or one message on Stderr.
func Run(ctx context.Context, args []string, deps Deps) int {
	city, err := ParseArgs(args)
	if errors.Is(err, ErrHelp) {
		fmt.Fprint(deps.Stdout, usage)
		return ExitOK
	}
	if err != nil {
		fmt.Fprint(deps.Stderr, usage)
		fmt.Fprintln(deps.Stderr, err)
		return ExitUsage
	}

	apiKey, err := config.Resolve(deps.Getenv)
	if err != nil {
		log.Printf("Error loading API key: %v", err)
		fmt.Fprintln(deps.Stderr, configMessage(err))
		return ExitError
	}

	client := weatherapi.NewClient(apiKey, deps.HTTPClient)
	if deps.BaseURL != "" {
		client.BaseURL = deps.BaseURL
	}

	current, err := client.Current(ctx, city)
	if err != nil {
		log.Printf("Error fetching weather for %s: %v", city, err)
		fmt.Fprintln(deps.Stderr, weatherapi.UserMessage(err))
		return ExitError
	}

	styler := deps.Styler
	if styler == nil {
		styler = display.Plain{}
	}

	var line bytes.Buffer
	if err := display.NewFormatter(styler).Render(&line, current); err != nil {
		fmt.Fprintln(deps.Stderr, err)
		return ExitError
	}
	if _, err := line.WriteTo(deps.Stdout); err != nil {
		log.Printf("Error writing output: %v", err)
		return ExitError
	}

	log.Printf("Rendered %s: code=%d, tempC=%.1f", current.City, current.Code, current.TempC)
	return ExitOK
}

func configMessage(err error) string {
	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		return fmt.Sprintf("Configuration error: %v", err)
	}
	msg := fmt.Sprintf("Configuration error in %s: %v.", cfgErr.Path, cfgErr.Err)
	if errors.Is(err, config.ErrFileNotFound) || errors.Is(err, config.ErrSectionMissing) || errors.Is(err, config.ErrKeyMissing) {
		msg += fmt.Sprintf(" Expected [%s] with api_key=<YOUR-WEATHERAPI-KEY>, or set %s.", config.Section, config.EnvAPIKey)
	}
	return msg
}
