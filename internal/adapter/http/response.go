package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	Details   any    `json:"details,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// unmatchedBreak is how a break without a price is reported.
type unmatchedBreak struct {
	BreakID      int64     `json:"break_id"`
	StationID    int64     `json:"station_id"`
	Time         time.Time `json:"break_datetime"`
	SpotDuration int       `json:"spot_duration"`
	SalesHouseID *int64    `json:"sales_house_id"`
	Reason       string    `json:"reason"`
}

// listResponse wraps paginated listings.
type listResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func newList[T any](items []T, p port.Page) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	p = p.Normalize()
	return listResponse[T]{Items: items, Limit: p.Limit, Offset: p.Offset}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string, details any) {
	h.writeJSON(w, status, errorResponse{
		Error:     msg,
		RequestID: middleware.GetReqID(r.Context()),
		Details:   details,
	})
}

// fail maps a use case error onto a response. Unknown errors are logged and
// reported as a bare 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var assignErr *domain.PriceAssignmentError
	switch {
	case errors.As(err, &assignErr):
		out := make([]unmatchedBreak, 0, len(assignErr.Unmatched))
		for _, u := range assignErr.Unmatched {
			out = append(out, unmatchedBreak{
				BreakID:      u.Break.ID,
				StationID:    u.Break.StationID,
				Time:         u.Break.Time,
				SpotDuration: u.Break.SpotDuration,
				SalesHouseID: u.Break.SalesHouseID,
				Reason:       string(u.Reason),
			})
		}
		msg := fmt.Sprintf("%d break(s) could not be priced; no break was updated", len(out))
		h.writeError(w, r, http.StatusUnprocessableEntity, msg, out)
	case errors.Is(err, port.ErrInvalidInput):
		h.writeError(w, r, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, port.ErrNotFound),
		errors.Is(err, port.ErrImportNotFound),
		errors.Is(err, port.ErrImportKindMismatch):
		h.writeError(w, r, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, port.ErrClientMismatch), errors.Is(err, port.ErrAlreadyExists):
		h.writeError(w, r, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, port.ErrImportInvalid):
		h.writeError(w, r, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		h.writeError(w, r, http.StatusInternalServerError, "internal error", nil)
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode reads a JSON body into dst and runs struct validation on it. It
// writes the 400 response itself and reports whether the handler may go on.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			h.fail(w, r, err)
			return false
		}
		details := make([]fieldError, 0, len(verrs))
		for _, e := range verrs {
			details = append(details, fieldError{Field: e.Field(), Message: validationMessage(e)})
		}
		h.writeError(w, r, http.StatusBadRequest, "validation failed", details)
		return false
	}
	return true
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "datetime":
		return "Must be a date formatted as " + e.Param()
	default:
		return "Invalid value"
	}
}

// paramID parses the {name} URL parameter as a positive id.
func paramID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", port.ErrInvalidInput, name, raw)
	}
	return id, nil
}

// paramDate parses the {date} URL parameter.
func paramDate(r *http.Request) (time.Time, error) {
	raw := chi.URLParam(r, "date")
	d, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", port.ErrInvalidInput, raw)
	}
	return d, nil
}

// query collects parse errors of optional query parameters so a handler can
// read all of them and check once.
type query struct {
	values map[string][]string
	err    error
}

func newQuery(r *http.Request) *query {
	return &query{values: r.URL.Query()}
}

func (q *query) get(name string) string {
	if v := q.values[name]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func (q *query) fail(name, raw string) {
	if q.err == nil {
		q.err = fmt.Errorf("%w: invalid %s %q", port.ErrInvalidInput, name, raw)
	}
}

func (q *query) int64(name string) *int64 {
	raw := q.get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		q.fail(name, raw)
		return nil
	}
	return &v
}

func (q *query) int(name string) int {
	raw := q.get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		q.fail(name, raw)
		return 0
	}
	return v
}

// time accepts a date or an RFC3339 timestamp.
func (q *query) time(name string) *time.Time {
	raw := q.get(name)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{domain.DateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	q.fail(name, raw)
	return nil
}

func (q *query) page() port.Page {
	return port.Page{Limit: q.int("limit"), Offset: q.int("offset")}
}
