package httpadapter

import (
	"net/http"

	"srportal/internal/core/port"
)

// linkCommercialRequest carries the only editable field of a commercial.
// A null campaign_id unlinks it.
type linkCommercialRequest struct {
	CampaignID *int64 `json:"campaign_id" validate:"omitnil,gt=0"`
}

func (h *Handler) handleListCommercials(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := port.CommercialFilter{
		Search:     q.get("search"),
		CampaignID: q.int64("campaign_id"),
		Page:       q.page(),
	}
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	commercials, err := h.catalog.ListCommercials(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newList(commercials, f.Page))
}

func (h *Handler) handleGetCommercial(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.catalog.GetCommercial(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleLinkCommercial(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req linkCommercialRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.catalog.LinkCommercial(r.Context(), id, req.CampaignID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
