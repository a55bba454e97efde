package scanning

import (
	"context"
	"errors"
	"fmt"
	"privacymon/pkg/breach"
	"privacymon/pkg/domain"
	"privacymon/pkg/logger"
	"privacymon/pkg/serrors"

	"go.uber.org/zap"
)

type breachSource struct {
	client breach.Client
}

// NewBreachRunner returns the runner that looks up every subject email in a
// breach database.
func NewBreachRunner(deps RunnerDeps, client breach.Client) Runner {
	return newRunner(deps, breachSource{client: client})
}

func (breachSource) kind() domain.RunnerKind { return domain.RunnerKindBreach }

// scanSubject commits after every email so a later rate limit keeps what
// was already found.
func (s breachSource) scanSubject(ctx context.Context, subject domain.Subject, commit commitFunc) ([]string, error) {
	var errs []string
	for _, email := range subject.Emails {
		if err := ctx.Err(); err != nil {
			return errs, fmt.Errorf("scan interrupted: %w", err)
		}

		breaches, err := s.client.Lookup(ctx, email)
		switch {
		case errors.Is(err, serrors.ErrRateLimited), errors.Is(err, serrors.ErrUnauthorized):
			return errs, err
		case err != nil:
			logger.Warn(ctx, "breach lookup failed", zap.Stringer("subject_id", subject.ID), zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s: %s", subject.DisplayName(), err))

			continue
		}

		findings := make([]domain.Finding, 0, len(breaches))
		for _, b := range breaches {
			findings = append(findings, domain.Finding{
				Source:      domain.ExposureSourceBreach,
				SourceName:  b.DisplayName(),
				SourceURL:   b.URL,
				DataExposed: b.ExposedData(),
			})
		}
		if err := commit(ctx, findings); err != nil {
			return errs, err
		}
	}

	return errs, nil
}
