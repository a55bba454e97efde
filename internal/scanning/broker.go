package scanning

import (
	"context"
	"privacymon/pkg/broker"
	"privacymon/pkg/domain"
	"privacymon/pkg/logger"

	"go.uber.org/zap"
)

type brokerSource struct {
	catalog *broker.Catalog
}

// NewBrokerRunner returns the runner that builds people-search URLs for
// every subject on every catalog site. Hits are not verified; each candidate
// is recorded for manual review.
func NewBrokerRunner(deps RunnerDeps, catalog *broker.Catalog) Runner {
	return newRunner(deps, brokerSource{catalog: catalog})
}

func (brokerSource) kind() domain.RunnerKind { return domain.RunnerKindDataBroker }

// queries returns the name variants crossed with the subject's locations.
func queries(subject domain.Subject) []broker.Query {
	name := subject.Name
	variants := [][2]string{{name.First, name.Last}}
	if name.MiddleInitial != "" {
		variants = append(variants, [2]string{name.First + " " + name.MiddleInitial, name.Last})
	}

	addresses := subject.Addresses
	if len(addresses) == 0 {
		addresses = []string{""}
	}

	out := make([]broker.Query, 0, len(variants)*len(addresses))
	for _, v := range variants {
		for _, address := range addresses {
			city, state := broker.ParseLocation(address)
			out = append(out, broker.Query{First: v[0], Last: v[1], City: city, State: state})
		}
	}

	return out
}

// scanSubject commits every candidate of the subject as one batch. The same
// site appears once per query; only the first is recorded.
func (s brokerSource) scanSubject(ctx context.Context, subject domain.Subject, commit commitFunc) ([]string, error) {
	if !subject.Name.Searchable() {
		logger.Debug(ctx, "subject skipped, name not searchable", zap.Stringer("subject_id", subject.ID))

		return nil, nil
	}

	var findings []domain.Finding
	for _, q := range queries(subject) {
		for _, c := range s.catalog.SearchURLs(q) {
			findings = append(findings, domain.Finding{
				Source:      domain.ExposureSourcePeopleSearch,
				SourceName:  c.Site.Name,
				SourceURL:   c.SearchURL,
				DataExposed: c.Site.Description(),
			})
		}
	}

	return nil, commit(ctx, findings)
}
