package httpadapter

import (
	"net/http"
	"strings"
	"time"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

type clientRequest struct {
	Name                      string `json:"name" validate:"required,max=255"`
	DailyActivityStart        string `json:"daily_activity_start_time" validate:"required"`
	DailyActivityEnd          string `json:"daily_activity_end_time" validate:"required"`
	AttributionWindowDuration int    `json:"attribution_window_duration" validate:"gte=0"`
	GA4Filename               string `json:"ga4_filename" validate:"max=255"`
	StartDate                 string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

func (req clientRequest) toDomain(id int64) *domain.Client {
	start, _ := time.Parse(domain.DateLayout, req.StartDate)
	return &domain.Client{
		ID:                        id,
		Name:                      strings.TrimSpace(req.Name),
		DailyActivityStart:        req.DailyActivityStart,
		DailyActivityEnd:          req.DailyActivityEnd,
		AttributionWindowDuration: req.AttributionWindowDuration,
		GA4Filename:               req.GA4Filename,
		StartDate:                 start,
	}
}

// handleListClients lists clients. Supports `search` (name substring),
// `start_date` and the `limit`/`offset` pagination parameters.
func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := port.ClientFilter{
		Search:    q.get("search"),
		StartDate: q.time("start_date"),
		Page:      q.page(),
	}
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	clients, err := h.catalog.ListClients(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newList(clients, f.Page))
}

func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.catalog.GetClient(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !h.decode(w, r, &req) {
		return
	}
	c := req.toDomain(0)
	if err := h.catalog.CreateClient(r.Context(), c); err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req clientRequest
	if !h.decode(w, r, &req) {
		return
	}
	c := req.toDomain(id)
	if err = h.catalog.UpdateClient(r.Context(), c); err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleClientOptions returns the campaigns, products and pages of one
// client, for narrowing the choices of the mapping forms.
func (h *Handler) handleClientOptions(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	opts, err := h.catalog.ClientOptions(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, opts)
}
