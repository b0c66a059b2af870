package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"weatherserve/internal/weather"
)

// OpenWeatherProvider implements the weather.Provider interface for the
// OpenWeatherMap forecast API. Location and credential are fixed at
// construction; the instance is read-only afterwards and safe for concurrent
// use.
type OpenWeatherProvider struct {
	apiKey   string
	location string
	baseURL  string
	client   *http.Client
	circuit  *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey, location string) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		apiKey:   apiKey,
		location: location,
		baseURL:  "https://api.openweathermap.org/data/2.5/forecast",
		client:   client,
		circuit:  cb,
	}
}

// Fetch issues one GET against the forecast endpoint and decodes the body as
// an ordered sequence of records, returned unmodified.
func (p *OpenWeatherProvider) Fetch(ctx context.Context) ([]weather.Record, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("zip", p.location)
	values.Set("appid", p.apiKey)

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := doRequest(ctx, p.client, p.circuit, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var records []weather.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}

	return records, nil
}
