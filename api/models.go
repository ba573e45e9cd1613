package api

import (
	"context"

	"github.com/carlosfiori/weathercli/weatherapi"
)

// WeatherFetcher is the upstream lookup the handler depends on.
type WeatherFetcher interface {
	Current(ctx context.Context, city string) (*weatherapi.Current, error)
}

type WeatherResponse struct {
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Condition string  `json:"condition"`
	Code      int     `json:"code"`
	Category  string  `json:"category"`
	Glyph     string  `json:"glyph"`
	TempC     float64 `json:"temp_C"`
	TempF     float64 `json:"temp_F"`
	TempK     float64 `json:"temp_K"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
