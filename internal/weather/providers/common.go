package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"
)

var (
	errUnexpected   = errors.New("unexpected status code")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// doRequest executes a single HTTP request through the circuit breaker and
// returns the response on a 2xx status. There is deliberately no retry loop:
// each inbound request gets exactly one best-effort upstream attempt.
func doRequest(ctx context.Context, client *http.Client, cb *gobreaker.CircuitBreaker, req *http.Request) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	// Ensure the request obeys context cancellation.
	req = req.WithContext(ctx)

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, redactRequestError(execErr)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
		}

		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		return nil, err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return resp, nil
}

// redactRequestError strips the query string from transport errors.
// url.Error echoes the full request URL, which carries the API credential as
// a query parameter.
func redactRequestError(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}

	u, parseErr := url.Parse(uerr.URL)
	if parseErr != nil {
		return fmt.Errorf("%s request failed: %w", uerr.Op, uerr.Err)
	}
	u.RawQuery = ""
	u.Fragment = ""

	return fmt.Errorf("%s %q: %w", uerr.Op, u.String(), uerr.Err)
}
