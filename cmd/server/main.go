package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/carlosfiori/weathercli/api"
	"github.com/carlosfiori/weathercli/config"
	"github.com/carlosfiori/weathercli/utils"
	"github.com/carlosfiori/weathercli/weatherapi"
)

const (
	defaultPort        = "8081"
	shutdownTimeout    = 10 * time.Second
	serverReadTimeout  = 10 * time.Second
	serverWriteTimeout = 10 * time.Second
	serverIdleTimeout  = 60 * time.Second
	upstreamTimeout    = 5 * time.Second
)

func main() {
	weatherAPIKey, err := config.Resolve(os.Getenv)
	if err != nil {
		log.Panicf("Failed to load WeatherAPI key: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	shutdownTracer, err := utils.InitTracer(context.Background(), "weather-server", os.Getenv(utils.EnvOTLPEndpoint))
	if err != nil {
		log.Fatalf("Failed to init tracer: %v", err)
	}

	httpClient := &http.Client{
		Timeout:   upstreamTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	handler := api.NewHandler(weatherapi.NewClient(weatherAPIKey, httpClient))
	router := api.SetupRouter(handler)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Weather server starting on port %s", port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Error starting server: %v", err)
	case sig := <-shutdown:
		log.Printf("Received signal %v, shutting down gracefully...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Error during shutdown: %v", err)
			server.Close()
		}
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Error during tracer shutdown: %v", err)
		}

		log.Println("Weather server stopped")
	}
}
