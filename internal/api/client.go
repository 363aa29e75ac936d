package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"time"

	"github.com/google/uuid"
)

//nolint:gochecknoglobals // default values are overwritten by client options.
var (
	defaultTimeout = 10 * time.Second
)

// ContactSubmitter is the transport the UI host uses for the contact form.
type ContactSubmitter interface {
	SubmitContact(ctx context.Context, req ContactRequest) error
}

// Client posts contact submissions to a fixed endpoint.
type Client struct {
	endpoint   *url.URL
	httpClient *http.Client
	userAgent  string
	newID      func() string
}

// ClientOption mutates Client configuration.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption { //nolint:ireturn
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption { //nolint:ireturn
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption { //nolint:ireturn
	return func(c *Client) {
		c.userAgent = ua
	}
}

// withRequestIDs swaps the request id generator; used by tests.
func withRequestIDs(fn func() string) ClientOption { //nolint:ireturn
	return func(c *Client) {
		c.newID = fn
	}
}

// NewClient constructs a Client for an absolute http(s) endpoint.
func NewClient(endpoint string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}
	c := &Client{
		endpoint:   u,
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  defaultUserAgent(),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string { return c.endpoint.String() }

func defaultUserAgent() string {
	return fmt.Sprintf("portfolio/%s (%s; %s)", BuildVersion, runtime.GOOS, runtime.GOARCH)
}

func (c *Client) newRequest(ctx context.Context, method string, body io.Reader) (*http.Request, string, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint.String(), body)
	if err != nil {
		return nil, "", err
	}
	id := c.newID()
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", id)
	return req, id, nil
}
