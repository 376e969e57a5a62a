package httpadapter

import (
	"net/http"
	"strings"
	"time"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

type pricingSheetRequest struct {
	PriceDate string `json:"price_date" validate:"required,datetime=2006-01-02"`
	Note      string `json:"note" validate:"max=255"`
}

// handleListPricingSheets lists sheets, newest first. `search` matches the
// date text, so "2025-08" lists every sheet of August 2025.
func (h *Handler) handleListPricingSheets(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := port.PricingSheetFilter{Search: q.get("search"), Page: q.page()}
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}
	sheets, err := h.pricing.ListPricingSheets(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newList(sheets, f.Page))
}

func (h *Handler) handleGetPricingSheet(w http.ResponseWriter, r *http.Request) {
	date, err := paramDate(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := h.pricing.GetPricingSheet(r.Context(), date)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleCreatePricingSheet(w http.ResponseWriter, r *http.Request) {
	var req pricingSheetRequest
	if !h.decode(w, r, &req) {
		return
	}
	date, _ := time.Parse(domain.DateLayout, req.PriceDate)
	s := &domain.PricingSheet{Date: date, Note: strings.TrimSpace(req.Note)}
	if err := h.pricing.CreatePricingSheet(r.Context(), s); err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, s)
}

// handleAssignPrices resolves the price of every break in the window of the
// sheet. When any break cannot be priced nothing is written and the
// response is 422 listing every unmatched break with its reason.
func (h *Handler) handleAssignPrices(w http.ResponseWriter, r *http.Request) {
	date, err := paramDate(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := h.pricing.AssignPricesToBreaks(r.Context(), date)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleExportStationPrices returns the prices of one sheet in the upload
// column layout, so an extract can be edited and uploaded again.
func (h *Handler) handleExportStationPrices(w http.ResponseWriter, r *http.Request) {
	date, err := paramDate(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	prices, err := h.pricing.ExportStationPrices(r.Context(), date)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeTable(w, r, stationPriceTable(prices), func(ext string) string {
		return "station_prices_" + date.Format(domain.DateLayout) + "." + ext
	})
}

func (h *Handler) handleListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.pricing.ListStations(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(stations))
}

func (h *Handler) handleListSalesHouses(w http.ResponseWriter, r *http.Request) {
	houses, err := h.pricing.ListSalesHouses(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(houses))
}

func (h *Handler) handleListHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.pricing.ListHours(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(hours))
}

func (h *Handler) handleListDurations(w http.ResponseWriter, r *http.Request) {
	durations, err := h.pricing.ListDurations(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(durations))
}

func (h *Handler) handleListStationPrices(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := port.StationPriceFilter{
		PriceDate: q.time("price_date"),
		StationID: q.int64("station_id"),
		Page:      q.page(),
	}
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}
	prices, err := h.pricing.ListStationPrices(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newList(prices, f.Page))
}

// handleListBreaks lists breaks airing in [from, to). A date-only `to`
// includes that whole day.
func (h *Handler) handleListBreaks(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	f := port.BreakFilter{
		From:      q.time("from"),
		Before:    q.time("to"),
		StationID: q.int64("station_id"),
		Page:      q.page(),
	}
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}
	if f.Before != nil && len(q.get("to")) == len(domain.DateLayout) {
		end := f.Before.AddDate(0, 0, 1)
		f.Before = &end
	}

	breaks, err := h.pricing.ListBreaks(r.Context(), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newList(breaks, f.Page))
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
