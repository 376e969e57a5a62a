package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

// handleExportBaseline streams the baseline rows of one product or page
// ({kind} is "product" or "page") as CSV, or as XLSX with `format=xlsx`.
func (h *Handler) handleExportBaseline(w http.ResponseWriter, r *http.Request) {
	kind, ok := domain.BaselineKindByName(chi.URLParam(r, "kind"))
	if !ok {
		h.fail(w, r, fmt.Errorf("%w: unknown baseline kind %q", port.ErrNotFound, chi.URLParam(r, "kind")))
		return
	}
	id, err := paramID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	export, err := h.baselines.ExportBaseline(r.Context(), kind, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeTable(w, r, baselineTable(export), export.FileName)
}
