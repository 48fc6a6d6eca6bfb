package apirequest

import (
	"log/slog"
	"net/http"
)

type trackerOptions struct {
	client          *http.Client
	logger          *slog.Logger
	maxResponseSize int64
	userAgent       string
}

// TrackerOption configures a Tracker at construction time.
type TrackerOption func(*trackerOptions)

// WithConfig applies network settings: a client built by NewHTTPClient,
// the response size cap and the user agent.
func WithConfig(cfg Config) TrackerOption {
	return func(o *trackerOptions) {
		o.client = NewHTTPClient(cfg)
		if cfg.MaxResponseSize > 0 {
			o.maxResponseSize = cfg.MaxResponseSize
		}
		o.userAgent = cfg.UserAgent
	}
}

// WithHTTPClient sets the client used to perform requests.
// Useful for custom transports, proxies, or testing.
func WithHTTPClient(client *http.Client) TrackerOption {
	return func(o *trackerOptions) {
		if client != nil {
			o.client = client
		}
	}
}

// WithLogger sets the logger. Trackers are silent by default.
func WithLogger(l *slog.Logger) TrackerOption {
	return func(o *trackerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxResponseSize caps how many bytes of a response body are read.
func WithMaxResponseSize(n int64) TrackerOption {
	return func(o *trackerOptions) {
		if n > 0 {
			o.maxResponseSize = n
		}
	}
}

// WithUserAgent sets the User-Agent sent when the request headers have none.
// An empty value sends Go's default.
func WithUserAgent(ua string) TrackerOption {
	return func(o *trackerOptions) {
		o.userAgent = ua
	}
}
