// Package breach defines the breach-database lookup used by breach scans and
// the record type such databases return.
package breach

import (
	"context"
	"fmt"
	"strings"
)

// Breach is one known data breach an account appeared in.
type Breach struct {
	Name        string
	Title       string
	Domain      string
	BreachDate  string
	DataClasses []string
	Description string
	// URL is a public page describing the breach, when the source has one.
	URL string
}

// DisplayName returns the title, falling back to the name and then to a
// placeholder so a breach always has a label.
func (b Breach) DisplayName() string {
	switch {
	case b.Title != "":
		return b.Title
	case b.Name != "":
		return b.Name
	default:
		return "Unknown Breach"
	}
}

// ExposedData lists the compromised data classes, comma separated.
func (b Breach) ExposedData() string {
	if len(b.DataClasses) == 0 {
		return "Unknown data"
	}

	return strings.Join(b.DataClasses, ", ")
}

// SourceError is returned for unexpected upstream responses. It carries the
// HTTP status and the response body.
type SourceError struct {
	StatusCode int
	Body       string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("HIBP API error: %d - %s", e.StatusCode, e.Body)
}

// Client looks up the breaches an email address appeared in.
//
// Lookup returns an empty slice when the address is not part of any breach.
// Errors wrap serrors.ErrUnauthorized for missing or rejected credentials,
// serrors.ErrRateLimited when the upstream throttles, and *SourceError for any
// other unexpected response.
//
//go:generate mockgen -package mockbreach -source=interface.go -destination=mock/mockbreach.go *
type Client interface {
	Lookup(ctx context.Context, email string) ([]Breach, error)
}
