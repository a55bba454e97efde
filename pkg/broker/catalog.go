// Package broker generates people-search lookups for the known data-broker
// sites. No site is contacted: a candidate is the search URL a person would
// open to verify and request removal.
package broker

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/yosida95/uritemplate/v3"
	"sigs.k8s.io/yaml"
)

// Placeholders a search URL template may reference.
const (
	VarFirst = "first"
	VarLast  = "last"
	VarCity  = "city"
	VarState = "state"
)

const defaultDescription = "Name, address, phone (verify manually)"

// Site is one people-search site.
type Site struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
	// SearchURLTemplate is an RFC 6570 template over first, last, city and state.
	SearchURLTemplate string `json:"searchUrlTemplate"`
	OptOutURL         string `json:"optOutUrl,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// Description is the text recorded as the exposed data for hits on this site.
func (s Site) Description() string {
	desc := s.Notes
	if s.OptOutURL != "" {
		desc += " Opt-out: " + s.OptOutURL
	}
	if desc = strings.TrimSpace(desc); desc == "" {
		return defaultDescription
	}

	return desc
}

// Query is one name and location combination to search for.
type Query struct {
	First string
	Last  string
	City  string
	State string
}

// Candidate is a generated search URL for one site.
type Candidate struct {
	Site      Site
	SearchURL string
}

type compiledSite struct {
	site     Site
	template *uritemplate.Template
}

// Catalog is an ordered, validated list of sites. It is immutable and safe
// for concurrent use.
type Catalog struct {
	sites []compiledSite
}

// NewCatalog compiles the search templates of sites. Sites whose template does
// not parse or references an unknown placeholder are left out and reported in
// the returned error; the catalog is usable either way.
func NewCatalog(sites []Site) (*Catalog, error) {
	known := map[string]bool{VarFirst: true, VarLast: true, VarCity: true, VarState: true}

	c := &Catalog{sites: make([]compiledSite, 0, len(sites))}
	var errs []error
	for _, site := range sites {
		tmpl, err := uritemplate.New(site.SearchURLTemplate)
		if err != nil {
			errs = append(errs, fmt.Errorf("site %q: could not parse search template: %w", site.Name, err))

			continue
		}

		var unknown []string
		for _, name := range tmpl.Varnames() {
			if !known[name] {
				unknown = append(unknown, name)
			}
		}
		if len(unknown) > 0 {
			errs = append(errs, fmt.Errorf("site %q: unknown placeholders %v", site.Name, unknown))

			continue
		}

		c.sites = append(c.sites, compiledSite{site: site, template: tmpl})
	}

	return c, errors.Join(errs...)
}

// DefaultCatalog returns the catalog built from DefaultSites.
func DefaultCatalog() *Catalog {
	c, _ := NewCatalog(DefaultSites)

	return c
}

// LoadCatalog reads a YAML (or JSON) list of sites from path. Invalid sites
// are reported like in NewCatalog.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog: %w", err)
	}

	var sites []Site
	if err := yaml.Unmarshal(b, &sites); err != nil {
		return nil, fmt.Errorf("could not decode catalog: %w", err)
	}

	return NewCatalog(sites)
}

// Sites returns the sites in catalog order.
func (c *Catalog) Sites() []Site {
	out := make([]Site, len(c.sites))
	for i, s := range c.sites {
		out[i] = s.site
	}

	return out
}

// marker is what a placeholder expands to before the form-encoded value is
// substituted. It holds only unreserved characters, so expansion keeps it as is.
func marker(name string) string { return "__privacymon_" + name + "__" }

// SearchURLs returns one candidate per site for the query. Names and city are
// lower-cased, the state is upper-cased and cut to two characters. Values are
// form encoded, so spaces become "+". Missing location parts expand to empty
// strings.
func (c *Catalog) SearchURLs(q Query) []Candidate {
	state := strings.ToUpper(strings.TrimSpace(q.State))
	if len(state) > 2 {
		state = state[:2]
	}

	vars := uritemplate.Values{}
	for _, name := range []string{VarFirst, VarLast, VarCity, VarState} {
		vars.Set(name, uritemplate.String(marker(name)))
	}
	values := strings.NewReplacer(
		marker(VarFirst), url.QueryEscape(strings.ToLower(strings.TrimSpace(q.First))),
		marker(VarLast), url.QueryEscape(strings.ToLower(strings.TrimSpace(q.Last))),
		marker(VarCity), url.QueryEscape(strings.ToLower(strings.TrimSpace(q.City))),
		marker(VarState), url.QueryEscape(state),
	)

	out := make([]Candidate, 0, len(c.sites))
	for _, s := range c.sites {
		u, err := s.template.Expand(vars)
		if err != nil {
			continue
		}
		out = append(out, Candidate{Site: s.site, SearchURL: values.Replace(u)})
	}

	return out
}
