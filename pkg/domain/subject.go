package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubjectID uniquely identifies a monitored person.
type SubjectID uuid.UUID

func (id SubjectID) String() string { return uuid.UUID(id).String() }

// PersonName is the structured name of a subject. MiddleInitial is optional.
type PersonName struct {
	First         string `json:"first"`
	MiddleInitial string `json:"middleInitial,omitempty"`
	Last          string `json:"last"`
}

// Searchable reports whether the name carries both a first and a last name,
// which is what people-search sites need.
func (n PersonName) Searchable() bool {
	return n.First != "" && n.Last != ""
}

// String joins the present name parts with single spaces.
func (n PersonName) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.First, n.MiddleInitial, n.Last} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, " ")
}

// ParseLegacyName derives a structured name from a single free-form full name.
// The first token becomes the first name and the last token the last name.
// A single token yields a first name only, so the result is not searchable.
func ParseLegacyName(full string) PersonName {
	tokens := strings.Fields(full)
	switch len(tokens) {
	case 0:
		return PersonName{}
	case 1:
		return PersonName{First: tokens[0]}
	default:
		return PersonName{First: tokens[0], Last: tokens[len(tokens)-1]}
	}
}

// Subject is the canonical view of a monitored person. Contact lists are the
// de-duplicated union of every stored representation, in first-seen order.
type Subject struct {
	ID SubjectID `json:"id"`

	Name         PersonName `json:"name"`
	Emails       []string   `json:"emails"`
	PhoneNumbers []string   `json:"phoneNumbers"`
	Addresses    []string   `json:"addresses"`
	BirthDate    string     `json:"birthDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayName is the single human-readable label used in error messages and
// notifications.
func (s Subject) DisplayName() string {
	if name := s.Name.String(); name != "" {
		return name
	}
	if len(s.Emails) > 0 {
		return s.Emails[0]
	}

	return s.ID.String()
}

// MergeUnique concatenates the given lists, trimming whitespace and dropping
// empty values and duplicates while preserving first-seen order.
func MergeUnique(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, list := range lists {
		for _, v := range list {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
