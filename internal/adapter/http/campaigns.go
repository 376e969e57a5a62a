package httpadapter

import (
	"net/http"
	"strings"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

type campaignRequest struct {
	ClientID int64  `json:"client_id" validate:"gte=0"`
	Name     string `json:"name" validate:"required,max=255"`
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := port.CampaignFilter{
		Search:   q.get("search"),
		ClientID: q.int64("client_id"),
		Page:     q.page(),
	}
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	campaigns, err := h.catalog.ListCampaigns(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newList(campaigns, f.Page))
}

// handleGetCampaign returns the campaign with its mappings and commercials.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.catalog.GetCampaign(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleCreateCampaign creates a campaign. The client may be given in the
// body or prefilled through the `client_id` query parameter.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	prefill := q.int64("client_id")
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	var req campaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.ClientID == 0 && prefill != nil {
		req.ClientID = *prefill
	}
	if req.ClientID <= 0 {
		h.writeError(w, r, http.StatusBadRequest, "validation failed",
			[]fieldError{{Field: "client_id", Message: "This field is required"}})
		return
	}

	c := &domain.Campaign{ClientID: req.ClientID, Name: strings.TrimSpace(req.Name)}
	if err := h.catalog.CreateCampaign(r.Context(), c); err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req campaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.ClientID <= 0 {
		h.writeError(w, r, http.StatusBadRequest, "validation failed",
			[]fieldError{{Field: "client_id", Message: "This field is required"}})
		return
	}

	c := &domain.Campaign{ID: id, ClientID: req.ClientID, Name: strings.TrimSpace(req.Name)}
	if err = h.catalog.UpdateCampaign(r.Context(), c); err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
