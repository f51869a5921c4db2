package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// debugTransport logs full request/response dumps for troubleshooting API
// communication (unexpected content types, auth failures, rejected payloads).
//
// Enable with WithDebugLogging(true), or set MITE_DEBUG=true or DEBUG=true.
// Dumps contain the X-MiteApiKey header and full bodies; only enable where
// log output is secured.
//
// Every round trip carries a request_id so the request line and the matching
// response line can be paired in interleaved output.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := uuid.NewString()
	start := time.Now()

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Dur("elapsed", time.Since(start)).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Dur("elapsed", time.Since(start)).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled
// through the environment: MITE_DEBUG=true or DEBUG=true (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("MITE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
