package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "weatherapi"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient HTTPClient
}

// NewClient returns a Client for the public endpoint. A nil httpClient gets
// an instrumented client that keeps the platform's default timeouts.
func NewClient(apiKey string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	return &Client{
		BaseURL:    DefaultBaseURL,
		APIKey:     apiKey,
		HTTPClient: httpClient,
	}
}

// Current fetches current conditions for city with a single GET.
func (c *Client) Current(ctx context.Context, city string) (*Current, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "weatherapi: current",
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(attribute.String("city", city))

	current, err := c.current(ctx, city, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return current, nil
}

func (c *Client) current(ctx context.Context, city string, span trace.Span) (*Current, error) {
	requestURL, err := Query{City: city, APIKey: c.APIKey}.URL(c.BaseURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	log.Printf("Calling weatherapi for city: %s", city)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to read weatherapi response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Message: errorMessage(body)}
	}

	return decodeCurrent(body)
}

func decodeCurrent(body []byte) (*Current, error) {
	var payload CurrentResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{Err: err}
	}

	switch {
	case payload.Location.Name == nil:
		return nil, &DecodeError{Err: errors.New("missing location.name")}
	case payload.Current.Condition.Text == nil:
		return nil, &DecodeError{Err: errors.New("missing current.condition.text")}
	case payload.Current.Condition.Code == nil:
		return nil, &DecodeError{Err: errors.New("missing current.condition.code")}
	case payload.Current.TempC == nil:
		return nil, &DecodeError{Err: errors.New("missing current.temp_c")}
	}

	return &Current{
		City:      *payload.Location.Name,
		Region:    payload.Location.Region,
		Country:   payload.Location.Country,
		Condition: *payload.Current.Condition.Text,
		Code:      *payload.Current.Condition.Code,
		TempC:     *payload.Current.TempC,
	}, nil
}

// errorMessage pulls the provider's message out of an error body, if any.
func errorMessage(body []byte) string {
	var apiErr ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return ""
	}
	return apiErr.Error.Message
}
