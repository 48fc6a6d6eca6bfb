package apirequest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"
)

const defaultContentType = "application/json"

// Params describes one request: target, method, headers, query and body.
type Params struct {
	URL     string
	Method  string
	Headers map[string]string
	Query   url.Values
	// Body is JSON-encoded when non-nil.
	Body any
}

// Option overrides one field of the tracker's default Params for a single call.
type Option func(*Params)

// WithURL overrides the request target.
func WithURL(u string) Option {
	return func(p *Params) {
		p.URL = u
	}
}

// WithMethod overrides the HTTP method.
func WithMethod(method string) Option {
	return func(p *Params) {
		if method != "" {
			p.Method = strings.ToUpper(method)
		}
	}
}

// WithHeaders replaces the whole header set for the call.
func WithHeaders(headers map[string]string) Option {
	return func(p *Params) {
		p.Headers = maps.Clone(headers)
	}
}

// WithHeader sets a single header on top of the default ones.
func WithHeader(key, value string) Option {
	return func(p *Params) {
		if key == "" {
			return
		}
		if p.Headers == nil {
			p.Headers = make(map[string]string)
		}
		p.Headers[key] = value
	}
}

// WithQuery replaces the query parameters appended to the URL.
func WithQuery(query url.Values) Option {
	return func(p *Params) {
		p.Query = cloneValues(query)
	}
}

// WithBody overrides the request body.
func WithBody(body any) Option {
	return func(p *Params) {
		p.Body = body
	}
}

// withDefaults fills the method and headers the way a bare request expects:
// GET with a JSON content type. Caller-supplied headers replace the default
// set entirely.
func (p Params) withDefaults() Params {
	p = p.clone()
	if p.Method == "" {
		p.Method = http.MethodGet
	}
	p.Method = strings.ToUpper(p.Method)
	if p.Headers == nil {
		p.Headers = map[string]string{"Content-Type": defaultContentType}
	}
	return p
}

func (p Params) clone() Params {
	p.Headers = maps.Clone(p.Headers)
	p.Query = cloneValues(p.Query)
	return p
}

// merge applies call-time overrides to a copy of p.
func (p Params) merge(opts ...Option) Params {
	merged := p.clone()
	for _, opt := range opts {
		if opt != nil {
			opt(&merged)
		}
	}
	return merged
}

// target validates the URL and appends the query parameters.
func (p Params) target() (string, error) {
	if p.URL == "" {
		return "", fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}

	u, err := url.Parse(p.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: host is required", ErrInvalidURL)
	}

	if len(p.Query) > 0 {
		q := u.Query()
		for k, vs := range p.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

func (p Params) body() (io.Reader, error) {
	if p.Body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(p.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
	}
	return bytes.NewReader(payload), nil
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return nil
	}
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
