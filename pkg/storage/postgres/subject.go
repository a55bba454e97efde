package postgres

import (
	"context"
	"fmt"
	"privacymon/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	subjectsTable = "subjects"
)

func (p *PgSQL) StoreSubjects(ctx context.Context, subjects ...domain.Subject) ([]domain.Subject, error) {
	if len(subjects) == 0 {
		return nil, nil
	}

	rows := make([]PgSubject, len(subjects))
	for i := range subjects {
		if err := rows[i].FromDomain(subjects[i]); err != nil {
			return nil, err
		}
	}

	var result []PgSubject
	if err := p.Builder.Insert(subjectsTable).
		Rows(rows).
		Returning(&PgSubject{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store subjects into pg: %w", err)
	}

	return pgSubjectsToDomain(result)
}

// Subjects returns the requested subjects, or all of them when ids is empty,
// oldest first.
func (p *PgSQL) Subjects(ctx context.Context, ids []domain.SubjectID) ([]domain.Subject, error) {
	ds := p.Builder.From(subjectsTable).Order(goqu.I("created_at").Asc(), goqu.I("id").Asc())
	if len(ids) > 0 {
		raw := make([]uuid.UUID, len(ids))
		for i, id := range ids {
			raw[i] = uuid.UUID(id)
		}
		ds = ds.Where(goqu.I("id").In(raw))
	}

	var rows []PgSubject
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch subjects from pg: %w", err)
	}

	return pgSubjectsToDomain(rows)
}

func pgSubjectsToDomain(rows []PgSubject) ([]domain.Subject, error) {
	out := make([]domain.Subject, 0, len(rows))
	for _, row := range rows {
		s, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *s)
	}

	return out, nil
}
