package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"weatherserve/internal/weather"
)

func TestFetchParsesOrderedRecords(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"description":"Clear","temperature":295.2},
			{"id":2,"description":"Clouds","temperature":291.7},
			{"id":3,"description":"Rain","temperature":288.1}
		]`))
	}))
	defer srv.Close()

	p := NewOpenWeatherProvider(srv.Client(), "test-key", "94040,us")
	p.baseURL = srv.URL

	records, err := p.Fetch(context.Background())

	require.NoError(t, err)
	require.Equal(t, []weather.Record{
		{ID: 1, Description: "Clear", Temperature: 295.2},
		{ID: 2, Description: "Clouds", Temperature: 291.7},
		{ID: 3, Description: "Rain", Temperature: 288.1},
	}, records)

	require.Equal(t, []string{"94040,us"}, gotQuery["zip"])
	require.Equal(t, []string{"test-key"}, gotQuery["appid"])
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewOpenWeatherProvider(srv.Client(), "test-key", "94040,us")
	p.baseURL = srv.URL

	_, err := p.Fetch(context.Background())

	require.ErrorIs(t, err, errUnexpected)
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()

	p := NewOpenWeatherProvider(srv.Client(), "test-key", "94040,us")
	p.baseURL = srv.URL

	_, err := p.Fetch(context.Background())

	require.Error(t, err)
}

func TestFetchMissingAPIKey(t *testing.T) {
	p := NewOpenWeatherProvider(http.DefaultClient, "", "94040,us")

	_, err := p.Fetch(context.Background())

	require.Error(t, err)
}

// TestFetchTransportErrorOmitsCredential points the provider at a dead
// listener and checks the resulting error does not echo the appid query
// parameter.
func TestFetchTransportErrorOmitsCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := srv.URL
	srv.Close()

	p := NewOpenWeatherProvider(&http.Client{}, "super-secret-key", "94040,us")
	p.baseURL = deadURL

	_, err := p.Fetch(context.Background())

	require.Error(t, err)
	require.NotContains(t, err.Error(), "super-secret-key")
}
