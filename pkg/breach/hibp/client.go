// Package hibp provides a breach.Client backed by the Have I Been Pwned v3 API.
package hibp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"privacymon/pkg/breach"
	"privacymon/pkg/serrors"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public HIBP v3 endpoint.
	DefaultBaseURL = "https://haveibeenpwned.com/api/v3"
	// DefaultUserAgent identifies the service; HIBP rejects requests without one.
	DefaultUserAgent = "Privacy-Monitor"

	pwnedWebsitesURL = "https://haveibeenpwned.com/PwnedWebsites#"
)

// Options configures a Client.
type Options struct {
	// APIKey is sent as the hibp-api-key header. An empty key fails every lookup
	// with serrors.ErrUnauthorized without calling the API.
	APIKey    string
	BaseURL   string
	UserAgent string
	// RequestsPerMinute throttles lookups client side to stay within the
	// subscription's quota. Zero disables throttling.
	RequestsPerMinute int
}

// Client talks to the HIBP REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	options    Options
	limiter    *rate.Limiter
}

// SourceURL returns the public page describing the named breach.
func SourceURL(name string) string {
	return pwnedWebsitesURL + name
}

// Lookup returns every breach the email appeared in, with untruncated breach
// details. A 404 from HIBP means the account is clean and yields no breaches.
func (c *Client) Lookup(ctx context.Context, email string) ([]breach.Breach, error) {
	if c.options.APIKey == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "HIBP API key not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("could not wait for rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/breachedaccount/%s?truncateResponse=false",
		strings.TrimSuffix(c.options.BaseURL, "/"),
		url.PathEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("hibp-api-key", c.options.APIKey)
	req.Header.Set("user-agent", c.options.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return []breach.Breach{}, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid HIBP API key")
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited,
			"HIBP rate limit exceeded (retry after %q)", resp.Header.Get("Retry-After"))
	case resp.StatusCode != http.StatusOK:
		return nil, &breach.SourceError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	return decodeBreaches(b)
}

func optString(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}

	return d.Str()
}

func decodeBreach(d *jx.Decoder) (breach.Breach, error) {
	var (
		br  breach.Breach
		err error
	)
	err = d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "Name":
			br.Name, err = optString(d)
		case "Title":
			br.Title, err = optString(d)
		case "Domain":
			br.Domain, err = optString(d)
		case "BreachDate":
			br.BreachDate, err = optString(d)
		case "Description":
			br.Description, err = optString(d)
		case "DataClasses":
			if d.Next() == jx.Null {
				return d.Null()
			}
			err = d.Arr(func(d *jx.Decoder) error {
				class, err := d.Str()
				if err != nil {
					return err
				}
				br.DataClasses = append(br.DataClasses, class)

				return nil
			})
		default:
			return d.Skip()
		}

		return err
	})
	br.URL = SourceURL(br.Name)

	return br, err
}

func decodeBreaches(b []byte) ([]breach.Breach, error) {
	out := make([]breach.Breach, 0)
	if len(strings.TrimSpace(string(b))) == 0 {
		return out, nil
	}

	if err := jx.DecodeBytes(b).Arr(func(d *jx.Decoder) error {
		br, err := decodeBreach(d)
		if err != nil {
			return err
		}
		out = append(out, br)

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode breaches")
	}

	return out, nil
}

// Ensure Client conforms to the breach.Client interface at compile time.
var _ breach.Client = (*Client)(nil)

// New constructs a Client. Empty BaseURL and UserAgent fall back to the
// defaults.
func New(httpClient *http.Client, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}
	if options.UserAgent == "" {
		options.UserAgent = DefaultUserAgent
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if options.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(options.RequestsPerMinute)), 1)
	}

	return &Client{
		httpClient: httpClient,
		options:    options,
		limiter:    limiter,
	}
}
