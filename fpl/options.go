package fpl

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public Fantasy Premier League API root.
const DefaultBaseURL = "https://fantasy.premierleague.com/api"

const defaultTimeout = 30 * time.Second

// Option is a functional option for configuring the client
type Option func(*clientOptions)

// clientOptions holds the configuration for the client
type clientOptions struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     zerolog.Logger
}

// defaultOptions returns the default client options
func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
		logger:  zerolog.Nop(),
	}
}

// WithBaseURL sets a custom API base URL
func WithBaseURL(baseURL string) Option {
	return func(opts *clientOptions) {
		opts.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client. When set, WithTimeout is
// ignored and the given client's timeout applies.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(opts *clientOptions) {
		opts.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(opts *clientOptions) {
		opts.timeout = timeout
	}
}

// WithUserAgent sets a custom user agent string
func WithUserAgent(userAgent string) Option {
	return func(opts *clientOptions) {
		opts.userAgent = userAgent
	}
}

// WithLogger sets the logger used for request-level debug logging
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *clientOptions) {
		opts.logger = logger
	}
}
