package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"srportal/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the use cases of the back office and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	catalog   port.CatalogUseCase
	baselines port.BaselineUseCase
	pricing   port.PricingUseCase
	imports   port.ImportUseCase
	metrics   *Metrics
	validate  *validator.Validate
	logger    *slog.Logger
	router    chi.Router

	// maxUpload bounds request bodies of upload routes.
	maxUpload int64
}

// Services bundles the use cases the handler dispatches to.
type Services struct {
	Catalog   port.CatalogUseCase
	Baselines port.BaselineUseCase
	Pricing   port.PricingUseCase
	Imports   port.ImportUseCase
}

// NewHandler creates a handler with all routes configured. maxUpload is the
// largest accepted upload body in bytes; multipart framing is allowed on
// top of it.
func NewHandler(svc Services, metrics *Metrics, maxUpload int64, logger *slog.Logger) *Handler {
	h := &Handler{
		catalog:   svc.Catalog,
		baselines: svc.Baselines,
		pricing:   svc.Pricing,
		imports:   svc.Imports,
		metrics:   metrics,
		validate:  newValidator(),
		logger:    logger,
		maxUpload: maxUpload,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.handleListClients)
			r.Post("/", h.handleCreateClient)
			r.Get("/{id}", h.handleGetClient)
			r.Put("/{id}", h.handleUpdateClient)
			r.Get("/{id}/options", h.handleClientOptions)
		})
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/{id}", h.handleGetCampaign)
			r.Put("/{id}", h.handleUpdateCampaign)
		})
		r.Get("/products", h.handleListProducts)
		r.Get("/pages", h.handleListPages)
		r.Route("/product-mappings", func(r chi.Router) {
			r.Get("/", h.handleListProductMappings)
			r.Post("/", h.handleCreateProductMapping)
			r.Delete("/{id}", h.handleDeleteProductMapping)
		})
		r.Route("/page-mappings", func(r chi.Router) {
			r.Get("/", h.handleListPageMappings)
			r.Post("/", h.handleCreatePageMapping)
			r.Delete("/{id}", h.handleDeletePageMapping)
		})
		r.Route("/commercials", func(r chi.Router) {
			r.Get("/", h.handleListCommercials)
			r.Get("/{id}", h.handleGetCommercial)
			r.Patch("/{id}", h.handleLinkCommercial)
		})

		r.Get("/baselines/{kind}/{id}/export", h.handleExportBaseline)

		r.Route("/pricing-sheets", func(r chi.Router) {
			r.Get("/", h.handleListPricingSheets)
			r.Post("/", h.handleCreatePricingSheet)
			r.Get("/{date}", h.handleGetPricingSheet)
			r.Get("/{date}/station-prices", h.handleExportStationPrices)
			r.Post("/{date}/assign-prices", h.handleAssignPrices)
		})
		r.Get("/stations", h.handleListStations)
		r.Get("/sales-houses", h.handleListSalesHouses)
		r.Get("/hours", h.handleListHours)
		r.Get("/durations", h.handleListDurations)
		r.Get("/station-prices", h.handleListStationPrices)
		r.Get("/breaks", h.handleListBreaks)

		r.Route("/imports/{kind}", func(r chi.Router) {
			r.Post("/", h.handleValidateImport)
			r.Get("/{token}", h.handleGetImport)
			r.Delete("/{token}", h.handleDiscardImport)
			r.Post("/{token}/commit", h.handleCommitImport)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
