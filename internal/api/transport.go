package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// loggingTransport logs every outbound request with timing information.
type loggingTransport struct {
	next   http.RoundTripper
	logger zerolog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger zerolog.Logger) http.RoundTripper {
	return &loggingTransport{
		next:   next,
		logger: logger.With().Str("component", "http").Logger(),
	}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		t.logger.Warn().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Dur("duration", duration).
			Err(err).
			Msg("http request failed")
		return nil, err
	}

	t.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Msg("http request")

	return resp, nil
}
