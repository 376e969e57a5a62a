package httpadapter

import (
	"net/http"

	"srportal/internal/core/port"
)

type productMappingRequest struct {
	CampaignID int64 `json:"campaign_id" validate:"required,gt=0"`
	ProductID  int64 `json:"ga_product_id" validate:"required,gt=0"`
}

type pageMappingRequest struct {
	CampaignID int64 `json:"campaign_id" validate:"required,gt=0"`
	PageID     int64 `json:"ga_page_id" validate:"required,gt=0"`
}

func itemFilter(q *query) port.ItemFilter {
	return port.ItemFilter{
		Search:   q.get("search"),
		ClientID: q.int64("client_id"),
		Page:     q.page(),
	}
}

func mappingFilter(q *query) port.MappingFilter {
	return port.MappingFilter{
		CampaignID: q.int64("campaign_id"),
		Page:       q.page(),
	}
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := itemFilter(q)
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}
	products, err := h.catalog.ListProducts(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newList(products, f.Page))
}

func (h *Handler) handleListPages(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := itemFilter(q)
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}
	pages, err := h.catalog.ListPages(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newList(pages, f.Page))
}

func (h *Handler) handleListProductMappings(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := mappingFilter(q)
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}
	mappings, err := h.catalog.ListProductMappings(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newList(mappings, f.Page))
}

// handleCreateProductMapping links a product to a campaign. An existing link
// is answered with 200 and the stored mapping, a new one with 201.
func (h *Handler) handleCreateProductMapping(w http.ResponseWriter, r *http.Request) {
	var req productMappingRequest
	if !h.decode(w, r, &req) {
		return
	}
	m, created, err := h.catalog.MapProduct(r.Context(), req.CampaignID, req.ProductID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, createdStatus(created), m)
}

func (h *Handler) handleDeleteProductMapping(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err = h.catalog.UnmapProduct(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListPageMappings(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := mappingFilter(q)
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}
	mappings, err := h.catalog.ListPageMappings(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newList(mappings, f.Page))
}

func (h *Handler) handleCreatePageMapping(w http.ResponseWriter, r *http.Request) {
	var req pageMappingRequest
	if !h.decode(w, r, &req) {
		return
	}
	m, created, err := h.catalog.MapPage(r.Context(), req.CampaignID, req.PageID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, createdStatus(created), m)
}

func (h *Handler) handleDeletePageMapping(w http.ResponseWriter, r *http.Request) {
	id, err := paramID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err = h.catalog.UnmapPage(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func createdStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}
