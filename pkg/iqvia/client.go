// Package iqvia is a client for the IQVIA pollen.com and asthmaforecast.com
// forecast APIs. Every endpoint is keyed by a US ZIP code and answers with a
// JSON document that is handed back to the caller untouched.
package iqvia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultPollenBaseURL = "https://www.pollen.com/api/forecast"
	DefaultAsthmaBaseURL = "https://www.asthmaforecast.com/api/forecast"

	// The service answers 403 to requests that do not look like a browser.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_13_6) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/65.0.3325.181 Safari/537.36"

	defaultTimeout = 10 * time.Second
)

var zipPattern = regexp.MustCompile(`^\d{5}$`)

type requestFunc func(ctx context.Context, method, endpoint string) (Payload, error)

// Client issues forecast requests for a single ZIP code. It is safe for
// concurrent use.
type Client struct {
	ZIPCode string

	Allergens *Allergens
	Asthma    *Asthma

	httpClient    *http.Client
	pollenBaseURL string
	asthmaBaseURL string
	userAgent     string
	logger        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient makes the client issue its requests through httpClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithPollenBaseURL points the allergen endpoints at baseURL.
func WithPollenBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.pollenBaseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithAsthmaBaseURL points the asthma endpoints at baseURL.
func WithAsthmaBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.asthmaBaseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithUserAgent replaces the browser User-Agent sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// IsValidZIP reports whether zipCode is a five digit US ZIP code.
func IsValidZIP(zipCode string) bool {
	return zipPattern.MatchString(zipCode)
}

// NewClient returns a client for zipCode. A ZIP code that is not five digits
// is rejected with an *InvalidZIPError before any request is made.
func NewClient(zipCode string, opts ...Option) (*Client, error) {
	if !IsValidZIP(zipCode) {
		return nil, &InvalidZIPError{ZIP: zipCode, Reason: "must be 5 digits"}
	}

	c := &Client{
		ZIPCode:       zipCode,
		httpClient:    &http.Client{Timeout: defaultTimeout},
		pollenBaseURL: DefaultPollenBaseURL,
		asthmaBaseURL: DefaultAsthmaBaseURL,
		userAgent:     DefaultUserAgent,
		logger:        zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	checked := raiseOnInvalidZIP(c.ZIPCode, c.request)

	c.Allergens = &Allergens{
		baseURL:         c.pollenBaseURL,
		request:         c.request,
		forecastRequest: checked,
	}
	c.Asthma = &Asthma{
		baseURL:         c.asthmaBaseURL,
		forecastRequest: checked,
	}

	return c, nil
}

// request performs method against endpoint/<zip> and decodes the JSON body.
func (c *Client) request(ctx context.Context, method, endpoint string) (Payload, error) {
	pieces, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	fullURL := endpoint + "/" + c.ZIPCode

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", fmt.Sprintf("%s://%s", pieces.Scheme, pieces.Host))
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("url", fullURL).
		Int("status", resp.StatusCode).
		Msg("forecast response received")

	if resp.StatusCode == http.StatusNotFound {
		return nil, &InvalidZIPError{ZIP: c.ZIPCode, Reason: "location not found"}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: endpoint}
	}

	var data Payload
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%s returned malformed JSON: %w", endpoint, err)
	}

	// a literal null body carries no forecast for the ZIP
	if data == nil {
		return nil, &InvalidZIPError{ZIP: c.ZIPCode, Reason: "no data returned for ZIP code"}
	}

	return data, nil
}
