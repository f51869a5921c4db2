package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("MITE_DEBUG", "true")
	c, err := New(Config{URL: "http://example.com"})
	require.NoError(t, err)
	assert.True(t, c.debug)
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	dt := &debugTransport{base: rt}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	_, err := dt.RoundTrip(req)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MITE_URL", "https://acme.mite.yo.lk")
	t.Setenv("MITE_API_KEY", "abc")
	t.Setenv("MITE_TIMEOUT", "5s")
	t.Setenv("MITE_USER_AGENT", "")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://acme.mite.yo.lk", cfg.URL)
	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.UserAgent)
	assert.Equal(t, "application/json", cfg.ExpectedContentType)
	assert.False(t, cfg.InsecureSkipVerify)

	c, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, c.cfg.UserAgent)
}

func TestConfigFromEnv_BadValue(t *testing.T) {
	t.Setenv("MITE_TIMEOUT", "soon")
	_, err := ConfigFromEnv()
	assert.Error(t, err)
}
