package api

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/carlosfiori/weathercli/display"
	"github.com/carlosfiori/weathercli/weatherapi"
)

const (
	fahrenheitMultiplier = 1.8
	fahrenheitBase       = 32
	kelvinBase           = 273.15
)

type Handler struct {
	Weather WeatherFetcher
}

func NewHandler(weather WeatherFetcher) *Handler {
	return &Handler{Weather: weather}
}

func (h *Handler) WeatherHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("weather-server").Start(r.Context(), "weather-server: handle-weather")
	defer span.End()

	city := strings.Join(strings.Fields(r.URL.Query().Get("city")), " ")
	log.Printf("Request received: city=%s, remote=%s", city, r.RemoteAddr)
	span.SetAttributes(attribute.String("city", city))

	if city == "" {
		span.SetStatus(codes.Error, "city is required")
		WriteError(w, "city is required", http.StatusUnprocessableEntity)
		return
	}

	current, err := h.Weather.Current(ctx, city)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, weatherapi.ErrNotFound):
			log.Printf("Error: city not found: %s", city)
			span.SetStatus(codes.Error, "city not found")
			WriteError(w, "can not find city", http.StatusNotFound)
		case errors.Is(err, weatherapi.ErrUnauthorized):
			log.Printf("Error: WeatherAPI rejected the api key: %v", err)
			span.SetStatus(codes.Error, "upstream rejected api key")
			WriteError(w, "upstream rejected api key", http.StatusBadGateway)
		default:
			log.Printf("Error querying WeatherAPI for city %s: %v", city, err)
			span.SetStatus(codes.Error, "failed to get weather data")
			WriteError(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	resp := NewWeatherResponse(current)

	log.Printf("Response: city=%s, code=%d, tempC=%.2f", resp.City, resp.Code, resp.TempC)
	span.SetStatus(codes.Ok, "")
	WriteJSON(w, resp, http.StatusOK)
}

// NewWeatherResponse classifies c and adds the derived temperature scales.
func NewWeatherResponse(c *weatherapi.Current) WeatherResponse {
	category := display.Categorize(c.Code)
	return WeatherResponse{
		City:      c.City,
		Region:    display.Region(c),
		Country:   c.Country,
		Condition: display.Capitalize(c.Condition),
		Code:      c.Code,
		Category:  category.String(),
		Glyph:     display.AppearanceOf(category).Glyph,
		TempC:     c.TempC,
		TempF:     c.TempC*fahrenheitMultiplier + fahrenheitBase,
		TempK:     c.TempC + kelvinBase,
	}
}

func SetupRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/weather", h.WeatherHandler)

	return otelhttp.NewHandler(r, "weather-server")
}
