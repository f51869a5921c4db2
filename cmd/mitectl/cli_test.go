package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	body   string
	apiKey string
}

type stubBackend struct {
	mu    sync.Mutex
	calls []recorded
}

func (b *stubBackend) snapshot() []recorded {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]recorded(nil), b.calls...)
}

func (b *stubBackend) last() recorded {
	c := b.snapshot()
	return c[len(c)-1]
}

func stubMite(t *testing.T) (*httptest.Server, *stubBackend) {
	t.Helper()
	backend := &stubBackend{}
	mux := http.NewServeMux()
	record := func(r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		backend.mu.Lock()
		defer backend.mu.Unlock()
		backend.calls = append(backend.calls, recorded{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   string(b),
			apiKey: r.Header.Get("X-MiteApiKey"),
		})
	}
	reply := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("/customers.json", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		switch r.Method {
		case http.MethodGet:
			reply(w, http.StatusOK, []map[string]any{
				{"customer": map[string]any{"id": 1, "name": "Acme"}},
			})
		case http.MethodPost:
			reply(w, http.StatusCreated, map[string]any{
				"customer": map[string]any{"id": 9, "name": "Globex"},
			})
		}
	})
	mux.HandleFunc("/customers/404.json", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		reply(w, http.StatusNotFound, map[string]any{"error": "Record not found"})
	})
	mux.HandleFunc("/time_entries/5.json", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		switch r.Method {
		case http.MethodGet:
			reply(w, http.StatusOK, map[string]any{
				"time_entry": map[string]any{"id": 5, "minutes": 90, "date_at": "2024-03-15"},
			})
		case http.MethodPut, http.MethodDelete:
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
		}
	})
	mux.HandleFunc("/time_entries.json", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		reply(w, http.StatusOK, []map[string]any{
			{"time_entry": map[string]any{"id": 5, "minutes": 90}},
		})
	})
	mux.HandleFunc("/myself.json", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		reply(w, http.StatusOK, map[string]any{"user": map[string]any{"id": 3, "name": "Jo"}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, backend
}

func execute(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MITE_URL", "")
	t.Setenv("MITE_API_KEY", "")
	base := []string{
		"--url", srv.URL,
		"--api-key", "secret",
		"--config", filepath.Join(t.TempDir(), "none.toml"),
	}
	out := &strings.Builder{}
	root := NewRootCmd()
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, base...))
	err := root.Execute()
	return out.String(), err
}

func TestCLI_CustomersListAndCreate(t *testing.T) {
	srv, backend := stubMite(t)

	out, err := execute(t, srv, "customers", "list", "--name", "Ac", "--limit", "10")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Acme"`)
	calls := backend.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, "secret", calls[0].apiKey)
	assert.Contains(t, calls[0].query, "name=Ac")
	assert.Contains(t, calls[0].query, "limit=10")

	out, err = execute(t, srv, "customers", "create", "Globex", "--set", "note=big=client")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": 9`)
	last := backend.last()
	assert.Equal(t, http.MethodPost, last.method)
	assert.Contains(t, last.body, `"name":"Globex"`)
	assert.Contains(t, last.body, `"note":"big=client"`)
}

func TestCLI_EntriesGetUpdateDelete(t *testing.T) {
	srv, backend := stubMite(t)

	out, err := execute(t, srv, "entries", "get", "5")
	require.NoError(t, err)
	assert.Contains(t, out, `"minutes": 90`)

	out, err = execute(t, srv, "entries", "update", "5", "--set", "note=review", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, `"ok": true`)
	upd := backend.last()
	assert.Equal(t, http.MethodPut, upd.method)
	assert.Contains(t, upd.body, `"force":"true"`)

	_, err = execute(t, srv, "entries", "delete", "5")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, backend.last().method)
}

func TestCLI_EntriesListFilters(t *testing.T) {
	srv, backend := stubMite(t)

	out, err := execute(t, srv, "entries", "list", "--filter", "customer_id=1,2", "--filter", "bogus=1")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": 5`)
	calls := backend.snapshot()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].query, "customer_id=1%2C2")
	assert.NotContains(t, calls[0].query, "bogus")
}

func TestCLI_EntriesListStrictRejects(t *testing.T) {
	srv, backend := stubMite(t)

	_, err := execute(t, srv, "entries", "list", "--strict", "--filter", "bogus=1")
	require.Error(t, err)
	assert.Empty(t, backend.snapshot())
}

func TestCLI_NotFoundFails(t *testing.T) {
	srv, _ := stubMite(t)

	_, err := execute(t, srv, "customers", "get", "404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot find entry: 404")
}

func TestCLI_Myself(t *testing.T) {
	srv, _ := stubMite(t)

	out, err := execute(t, srv, "myself")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Jo"`)
}

func TestCLI_BadArguments(t *testing.T) {
	srv, backend := stubMite(t)

	_, err := execute(t, srv, "entries", "get", "abc")
	assert.Error(t, err)

	_, err = execute(t, srv, "customers", "create", "X", "--set", "novalue")
	assert.Error(t, err)
	assert.Empty(t, backend.snapshot())
}

func TestParsePairs(t *testing.T) {
	got, err := parsePairs([]string{"a=1", "b=x=y"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "1", "b": "x=y"}, got)

	_, err = parsePairs([]string{"=1"})
	assert.Error(t, err)
}
