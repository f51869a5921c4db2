package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mite-eleven/mite-go/client/internal/wire"
)

// recorded is one request seen by the stub backend.
type recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
}

type stubBackend struct {
	mu       sync.Mutex
	requests []recorded
}

func (s *stubBackend) seen() []recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recorded(nil), s.requests...)
}

// newStub starts a backend answering every request through h and returns an
// adapter pointed at it.
func newStub(t *testing.T, h func(w http.ResponseWriter, r *http.Request)) (*wire.Adapter, *stubBackend) {
	t.Helper()
	sb := &stubBackend{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		sb.mu.Lock()
		sb.requests = append(sb.requests, recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(body)})
		sb.mu.Unlock()
		if h != nil {
			h(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return wire.New(wire.Config{BaseURL: srv.URL, APIKey: "k"}, srv.Client(), zerolog.Nop()), sb
}

// jsonReply answers with status and a JSON body.
func jsonReply(status int, body string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}
