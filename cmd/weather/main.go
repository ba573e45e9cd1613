package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/carlosfiori/weathercli/cli"
	"github.com/carlosfiori/weathercli/display"
	"github.com/carlosfiori/weathercli/utils"
)

const (
	envVerbose = "WEATHER_VERBOSE"
	envNoColor = "NO_COLOR"
)

func main() {
	os.Exit(run())
}

func run() int {
	log.SetOutput(io.Discard)
	if os.Getenv(envVerbose) != "" {
		log.SetOutput(os.Stderr)
	}

	ctx := context.Background()

	shutdown, err := utils.InitTracer(ctx, "weather-cli", os.Getenv(utils.EnvOTLPEndpoint))
	if err != nil {
		log.Printf("Tracing disabled: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error during tracer shutdown: %v", err)
			}
		}()
	}

	return cli.Run(ctx, os.Args[1:], cli.Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		Styler: display.StylerFor(os.Stdout, os.Getenv(envNoColor) != ""),
	})
}
