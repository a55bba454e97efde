package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"privacymon/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgSubject struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name    string         `db:"name"`
	Email   sql.NullString `db:"email"`
	Phone   sql.NullString `db:"phone"`
	Address sql.NullString `db:"address"`

	FirstName     sql.NullString  `db:"first_name"`
	MiddleInitial sql.NullString  `db:"middle_initial"`
	LastName      sql.NullString  `db:"last_name"`
	Emails        json.RawMessage `db:"emails"`
	PhoneNumbers  json.RawMessage `db:"phone_numbers"`
	Addresses     json.RawMessage `db:"addresses"`
	DateOfBirth   sql.NullString  `db:"date_of_birth"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func decodeList(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("could not unmarshal list: %w", err)
	}

	return out, nil
}

func single(s sql.NullString) []string {
	if !s.Valid {
		return nil
	}

	return []string{s.String}
}

// ToDomain collapses the legacy single-value columns and the list columns into
// the canonical subject. The structured name columns are used only when both
// first and last name are set; otherwise the legacy full name is parsed.
func (p *PgSubject) ToDomain() (*domain.Subject, error) {
	emails, err := decodeList(p.Emails)
	if err != nil {
		return nil, err
	}
	phones, err := decodeList(p.PhoneNumbers)
	if err != nil {
		return nil, err
	}
	addresses, err := decodeList(p.Addresses)
	if err != nil {
		return nil, err
	}

	name := domain.PersonName{
		First:         p.FirstName.String,
		MiddleInitial: p.MiddleInitial.String,
		Last:          p.LastName.String,
	}
	if name.First == "" || name.Last == "" {
		if legacy := domain.ParseLegacyName(p.Name); legacy != (domain.PersonName{}) {
			name = legacy
		}
	}

	return &domain.Subject{
		ID:           domain.SubjectID(p.ID),
		Name:         name,
		Emails:       domain.MergeUnique(emails, single(p.Email)),
		PhoneNumbers: domain.MergeUnique(phones, single(p.Phone)),
		Addresses:    domain.MergeUnique(addresses, single(p.Address)),
		BirthDate:    p.DateOfBirth.String,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (p *PgSubject) FromDomain(subject domain.Subject) error {
	encode := func(list []string) (json.RawMessage, error) {
		if list == nil {
			list = []string{}
		}
		b, err := json.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("could not marshal list: %w", err)
		}

		return b, nil
	}
	emails, err := encode(subject.Emails)
	if err != nil {
		return err
	}
	phones, err := encode(subject.PhoneNumbers)
	if err != nil {
		return err
	}
	addresses, err := encode(subject.Addresses)
	if err != nil {
		return err
	}

	*p = PgSubject{
		ID:            uuid.UUID(subject.ID),
		Name:          subject.Name.String(),
		FirstName:     nullString(subject.Name.First),
		MiddleInitial: nullString(subject.Name.MiddleInitial),
		LastName:      nullString(subject.Name.Last),
		Emails:        emails,
		PhoneNumbers:  phones,
		Addresses:     addresses,
		DateOfBirth:   nullString(subject.BirthDate),
	}

	return nil
}

type PgExposure struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	SubjectID uuid.UUID `db:"subject_id"`

	Source      string         `db:"source"`
	SourceName  string         `db:"source_name"`
	SourceURL   sql.NullString `db:"source_url"`
	DataExposed sql.NullString `db:"data_exposed"`

	Status           string         `db:"status"`
	RemovalRequestID sql.NullString `db:"removal_request_id"`

	DetectedAt time.Time    `db:"detected_at" goqu:"skipinsert"`
	UpdatedAt  sql.NullTime `db:"updated_at"  goqu:"skipinsert"`
}

func (p *PgExposure) ToDomain() *domain.Exposure {
	return &domain.Exposure{
		ID:               domain.ExposureID(p.ID),
		SubjectID:        domain.SubjectID(p.SubjectID),
		Source:           domain.ExposureSource(p.Source),
		SourceName:       p.SourceName,
		SourceURL:        p.SourceURL.String,
		DataExposed:      p.DataExposed.String,
		Status:           domain.ExposureStatus(p.Status),
		RemovalRequestID: p.RemovalRequestID.String,
		DetectedAt:       p.DetectedAt,
		UpdatedAt:        p.UpdatedAt.Time,
	}
}

func (p *PgExposure) FromDomain(exposure domain.Exposure) {
	status := exposure.Status
	if status == "" {
		status = domain.ExposureStatusDetected
	}

	*p = PgExposure{
		ID:               uuid.UUID(exposure.ID),
		SubjectID:        uuid.UUID(exposure.SubjectID),
		Source:           string(exposure.Source),
		SourceName:       exposure.SourceName,
		SourceURL:        nullString(exposure.SourceURL),
		DataExposed:      nullString(exposure.DataExposed),
		Status:           string(status),
		RemovalRequestID: nullString(exposure.RemovalRequestID),
	}
}

type PgScan struct {
	ID     uuid.UUID `db:"id"     goqu:"skipinsert"`
	Kind   string    `db:"kind"`
	Status string    `db:"status"`

	ExposuresFound  int             `db:"exposures_found"  goqu:"skipinsert"`
	SubjectsScanned int             `db:"subjects_scanned" goqu:"skipinsert"`
	ErrorMessage    sql.NullString  `db:"error_message"    goqu:"skipinsert"`
	Errors          json.RawMessage `db:"errors"           goqu:"skipinsert"`
	Failed          bool            `db:"failed"           goqu:"skipinsert"`

	BreachPending     bool `db:"breach_pending"`
	DataBrokerPending bool `db:"data_broker_pending"`

	StartedAt   time.Time    `db:"started_at"   goqu:"skipinsert"`
	CompletedAt sql.NullTime `db:"completed_at" goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"   goqu:"skipinsert"`
}

// pendingColumns maps every runner to the column tracking whether it still
// has to report.
var pendingColumns = map[domain.RunnerKind]string{ //nolint: gochecknoglobals
	domain.RunnerKindBreach:     "breach_pending",
	domain.RunnerKindDataBroker: "data_broker_pending",
}

func (p *PgScan) ToDomain() (*domain.Scan, error) {
	errs, err := decodeList(p.Errors)
	if err != nil {
		return nil, err
	}

	var pending []domain.RunnerKind
	if p.BreachPending {
		pending = append(pending, domain.RunnerKindBreach)
	}
	if p.DataBrokerPending {
		pending = append(pending, domain.RunnerKindDataBroker)
	}

	return &domain.Scan{
		ID:              domain.ScanID(p.ID),
		Kind:            domain.ScanKind(p.Kind),
		Status:          domain.ScanStatus(p.Status),
		ExposuresFound:  p.ExposuresFound,
		SubjectsScanned: p.SubjectsScanned,
		ErrorMessage:    p.ErrorMessage.String,
		Errors:          errs,
		Failed:          p.Failed,
		PendingRunners:  pending,
		StartedAt:       p.StartedAt,
		CompletedAt:     p.CompletedAt.Time,
		UpdatedAt:       p.UpdatedAt.Time,
	}, nil
}

func (p *PgScan) FromDomain(scan domain.Scan) {
	*p = PgScan{
		ID:                uuid.UUID(scan.ID),
		Kind:              string(scan.Kind),
		Status:            string(scan.Status),
		BreachPending:     scan.RunnerPending(domain.RunnerKindBreach),
		DataBrokerPending: scan.RunnerPending(domain.RunnerKindDataBroker),
	}
}

func pgScansToDomain(scans []PgScan) ([]domain.Scan, error) {
	out := make([]domain.Scan, 0, len(scans))
	for _, scan := range scans {
		d, err := scan.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
