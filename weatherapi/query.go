package weatherapi

import (
	"fmt"
	"net/url"
)

const DefaultBaseURL = "http://api.weatherapi.com/v1/current.json"

// Query identifies one current-conditions lookup.
type Query struct {
	City   string
	APIKey string
}

// URL renders q against baseURL.
func (q Query) URL(baseURL string) (string, error) {
	return BuildQuery(baseURL, q.APIKey, q.City)
}

// BuildQuery returns the GET URL for city with key and q percent-encoded.
func BuildQuery(baseURL, apiKey, city string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	values := u.Query()
	values.Set("key", apiKey)
	values.Set("q", city)
	u.RawQuery = values.Encode()

	return u.String(), nil
}
