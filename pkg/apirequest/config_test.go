package apirequest_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uikit/pkg/apirequest"
	"github.com/dmitrymomot/uikit/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults match DefaultConfig", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		cfg, err := apirequest.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, apirequest.DefaultConfig(), cfg)
	})

	t.Run("reads environment", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		t.Setenv("APIREQUEST_TIMEOUT", "5s")
		t.Setenv("APIREQUEST_MAX_RESPONSE_SIZE", "1024")
		t.Setenv("APIREQUEST_USER_AGENT", "test-agent/0.1")

		cfg, err := apirequest.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, int64(1024), cfg.MaxResponseSize)
		assert.Equal(t, "test-agent/0.1", cfg.UserAgent)
		assert.Equal(t, 100, cfg.MaxIdleConns)
	})

	t.Run("invalid value", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		t.Setenv("APIREQUEST_TIMEOUT", "soon")

		_, err := apirequest.LoadConfig()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestNewHTTPClient(t *testing.T) {
	cfg := apirequest.DefaultConfig()
	cfg.Timeout = 3 * time.Second
	cfg.MaxIdleConnsPerHost = 4

	client := apirequest.NewHTTPClient(cfg)
	assert.Equal(t, 3*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 4, transport.MaxIdleConnsPerHost)
	assert.Equal(t, 100, transport.MaxIdleConns)
}

func TestWithConfig(t *testing.T) {
	t.Parallel()

	headers := make(chan http.Header, 1)
	srv := newServer(t, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			headers <- r.Header.Clone()
			writeJSON(w, http.StatusOK, user{ID: 1, Name: "long enough to overflow"})
		})
	})

	cfg := apirequest.DefaultConfig()
	cfg.UserAgent = "from-config/1.0"
	cfg.MaxResponseSize = 4

	tracker := apirequest.New[user](apirequest.Params{URL: srv.URL}, apirequest.WithConfig(cfg))
	_, err := tracker.Do(context.Background())
	assert.ErrorIs(t, err, apirequest.ErrResponseTooLarge)
	assert.Equal(t, "from-config/1.0", (<-headers).Get("User-Agent"))
}
