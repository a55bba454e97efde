package v1handler

import (
	"net/http"
	"privacymon/pkg/controller"
	"privacymon/pkg/domain"
	"privacymon/pkg/serrors"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	maxBodyBytes = 64 << 10
)

// CreateScanRequest is the body of POST /scans.
type CreateScanRequest struct {
	Kind       domain.ScanKind
	SubjectIDs []domain.SubjectID
}

// DecodeCreateScanRequest reads {"kind": "...", "subjectIds": ["..."]}.
// Unknown fields are ignored.
func DecodeCreateScanRequest(d *jx.Decoder) (CreateScanRequest, error) {
	var req CreateScanRequest
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "kind":
			kind, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "kind")
			}
			req.Kind = domain.ScanKind(kind)
		case "subjectIds":
			if d.Next() == jx.Null {
				return d.Null()
			}

			return d.Arr(func(d *jx.Decoder) error {
				s, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "subjectIds")
				}
				id, err := uuid.Parse(s)
				if err != nil {
					return errors.Wrapf(err, "subject id %q", s)
				}
				req.SubjectIDs = append(req.SubjectIDs, domain.SubjectID(id))

				return nil
			})
		default:
			return d.Skip()
		}

		return nil
	})

	return req, err
}

func encodeTime(e *jx.Encoder, name string, t time.Time) {
	if t.IsZero() {
		return
	}
	e.Field(name, func(e *jx.Encoder) { e.Str(t.UTC().Format(time.RFC3339Nano)) })
}

// EncodeScan writes the public view of a scan.
func EncodeScan(e *jx.Encoder, s *domain.Scan) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(s.ID.String()) })
		e.Field("kind", func(e *jx.Encoder) { e.Str(string(s.Kind)) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(s.Status)) })
		e.Field("exposuresFound", func(e *jx.Encoder) { e.Int(s.ExposuresFound) })
		e.Field("subjectsScanned", func(e *jx.Encoder) { e.Int(s.SubjectsScanned) })
		if s.ErrorMessage != "" {
			e.Field("errorMessage", func(e *jx.Encoder) { e.Str(s.ErrorMessage) })
		}
		encodeTime(e, "startedAt", s.StartedAt)
		encodeTime(e, "completedAt", s.CompletedAt)
	})
}

// CreateScan starts a scan and answers 202 with the pending scan.
func (h *Handler) CreateScan(w http.ResponseWriter, r *http.Request) {
	d := jx.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), 512)
	req, err := DecodeCreateScanRequest(d)
	if err != nil {
		controller.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body: %s", err))

		return
	}
	if req.Kind == "" {
		req.Kind = domain.ScanKindFull
	}

	scan, err := h.deps.Coordinator.StartScan(r.Context(), req.Kind, req.SubjectIDs)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusAccepted, func(e *jx.Encoder) { EncodeScan(e, scan) })
}

// GetScan returns one scan by ID.
func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		controller.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "invalid scan id"))

		return
	}

	scan, err := h.deps.Coordinator.Scan(r.Context(), domain.ScanID(id))
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) { EncodeScan(e, scan) })
}

// ListScans returns a page of scans, newest first.
func (h *Handler) ListScans(w http.ResponseWriter, r *http.Request) {
	limit := DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxLimit {
			controller.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit))

			return
		}
		limit = n
	}

	scans, nextCursor, err := h.deps.Coordinator.Scans(r.Context(), r.URL.Query().Get("cursor"), uint(limit)) //nolint: gosec
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for i := range scans {
						EncodeScan(e, &scans[i])
					}
				})
			})
			e.Field("nextCursor", func(e *jx.Encoder) {
				if nextCursor == "" {
					e.Null()

					return
				}
				e.Str(nextCursor)
			})
		})
	})
}
