package apirequest

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/uikit/pkg/config"
)

// Config holds the network-layer settings used to build a tracker's HTTP client.
type Config struct {
	Timeout             time.Duration `env:"APIREQUEST_TIMEOUT" envDefault:"30s"`
	MaxIdleConns        int           `env:"APIREQUEST_MAX_IDLE_CONNS" envDefault:"100"`
	MaxIdleConnsPerHost int           `env:"APIREQUEST_MAX_IDLE_CONNS_PER_HOST" envDefault:"10"`
	IdleConnTimeout     time.Duration `env:"APIREQUEST_IDLE_CONN_TIMEOUT" envDefault:"90s"`
	MaxResponseSize     int64         `env:"APIREQUEST_MAX_RESPONSE_SIZE" envDefault:"10485760"`
	UserAgent           string        `env:"APIREQUEST_USER_AGENT" envDefault:"uikit-apirequest/1.0"`
}

// DefaultConfig mirrors the envDefault values of Config.
func DefaultConfig() Config {
	return Config{
		Timeout:             30 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		MaxResponseSize:     10 << 20,
		UserAgent:           "uikit-apirequest/1.0",
	}
}

// LoadConfig reads Config from the environment (and .env, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewHTTPClient builds the client trackers use when none is supplied.
// Its Timeout is the only deadline a tracked request gets.
func NewHTTPClient(cfg Config) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        cfg.MaxIdleConns,
			MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
			IdleConnTimeout:     cfg.IdleConnTimeout,
		},
	}
}
