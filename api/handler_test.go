package api

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosfiori/weathercli/weatherapi"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type fakeFetcher struct {
	current *weatherapi.Current
	err     error
	cities  []string
}

func (f *fakeFetcher) Current(ctx context.Context, city string) (*weatherapi.Current, error) {
	f.cities = append(f.cities, city)
	return f.current, f.err
}

func get(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestWeatherHandlerSuccess(t *testing.T) {
	fetcher := &fakeFetcher{current: &weatherapi.Current{
		City: "Paris", Region: "Ile-de-France", Country: "France",
		Condition: "clear", Code: 1000, TempC: 20,
	}}
	router := SetupRouter(NewHandler(fetcher))

	rec, body := get(t, router, "/weather?city=paris")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, []string{"paris"}, fetcher.cities)
	assert.Equal(t, "Paris", body["city"])
	assert.Equal(t, "Ile-de-France", body["region"])
	assert.Equal(t, "Clear", body["condition"])
	assert.Equal(t, "sunny", body["category"])
	assert.Equal(t, "🔆", body["glyph"])
	assert.InDelta(t, 20.0, body["temp_C"], 0.001)
	assert.InDelta(t, 68.0, body["temp_F"], 0.001)
	assert.InDelta(t, 293.15, body["temp_K"], 0.001)
}

func TestWeatherHandlerErrors(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		err     error
		status  int
		message string
	}{
		{"missing city", "/weather", nil, http.StatusUnprocessableEntity, "city is required"},
		{"blank city", "/weather?city=%20%20", nil, http.StatusUnprocessableEntity, "city is required"},
		{"not found", "/weather?city=atlantis", &weatherapi.StatusError{Code: http.StatusNotFound}, http.StatusNotFound, "can not find city"},
		{"bad key", "/weather?city=paris", &weatherapi.StatusError{Code: http.StatusUnauthorized}, http.StatusBadGateway, "upstream rejected api key"},
		{"network", "/weather?city=paris", &weatherapi.NetworkError{Err: io.ErrUnexpectedEOF}, http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupRouter(NewHandler(&fakeFetcher{err: tt.err}))

			rec, body := get(t, router, tt.target)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, body["message"])
			assert.EqualValues(t, tt.status, body["status"])
		})
	}
}

func TestWeatherHandlerAgainstUpstream(t *testing.T) {
	upstream := chi.NewRouter()
	upstream.Get("/v1/current.json", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "new york", r.URL.Query().Get("q"))
		io.WriteString(w, `{"location":{"name":"New York","region":"New York"},"current":{"condition":{"text":"Light rain","code":1183},"temp_c":11.5}}`)
	})
	srv := httptest.NewServer(upstream)
	defer srv.Close()

	client := weatherapi.NewClient("test-key", srv.Client())
	client.BaseURL = srv.URL + "/v1/current.json"

	rec, body := get(t, SetupRouter(NewHandler(client)), "/weather?city=new+york")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rain", body["category"])
	assert.Equal(t, "💦", body["glyph"])
	assert.InDelta(t, 11.5, body["temp_C"], 0.001)
}
