package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"srportal/internal/core/domain"
)

// ClientRepository persists clients and their campaigns. Getters return
// (nil, nil) when the record does not exist.
type ClientRepository interface {
	ListClients(ctx context.Context, f ClientFilter) ([]domain.Client, error)
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
	CreateClient(ctx context.Context, c *domain.Client) error
	UpdateClient(ctx context.Context, c *domain.Client) error

	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
}

// AnalyticsRepository reads the analytics-owned products and pages and
// maintains their campaign mappings.
type AnalyticsRepository interface {
	ListProducts(ctx context.Context, f ItemFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListPages(ctx context.Context, f ItemFilter) ([]domain.Page, error)
	GetPage(ctx context.Context, id int64) (*domain.Page, error)

	ListProductMappings(ctx context.Context, f MappingFilter) ([]domain.ProductMapping, error)
	FindProductMapping(ctx context.Context, campaignID, productID int64) (*domain.ProductMapping, error)
	CreateProductMapping(ctx context.Context, m *domain.ProductMapping) error
	DeleteProductMapping(ctx context.Context, id int64) (bool, error)

	ListPageMappings(ctx context.Context, f MappingFilter) ([]domain.PageMapping, error)
	FindPageMapping(ctx context.Context, campaignID, pageID int64) (*domain.PageMapping, error)
	CreatePageMapping(ctx context.Context, m *domain.PageMapping) error
	DeletePageMapping(ctx context.Context, id int64) (bool, error)
}

// CommercialRepository reads commercials and maintains their campaign link.
type CommercialRepository interface {
	ListCommercials(ctx context.Context, f CommercialFilter) ([]domain.Commercial, error)
	GetCommercial(ctx context.Context, id int64) (*domain.Commercial, error)
	SetCommercialCampaign(ctx context.Context, id int64, campaignID *int64) error
}

// BaselineRepository reads and replaces baseline rows of either kind.
type BaselineRepository interface {
	GetEntity(ctx context.Context, kind domain.BaselineKind, id int64) (*domain.BaselineEntity, error)
	// ResolveEntities returns every entity whose id is in ids or whose name
	// is in names.
	ResolveEntities(ctx context.Context, kind domain.BaselineKind, ids []int64, names []string) ([]domain.BaselineEntity, error)
	ListBaselines(ctx context.Context, kind domain.BaselineKind, entityID int64) ([]domain.Baseline, error)
	// ReplaceBaselines writes rows in one transaction, replacing any rows
	// already stored for the same (entity, day, hour) slots.
	ReplaceBaselines(ctx context.Context, kind domain.BaselineKind, rows []domain.Baseline) (int64, error)
}

// PricingRepository persists pricing sheets, lookups, station prices and
// breaks.
type PricingRepository interface {
	ListPricingSheets(ctx context.Context, f PricingSheetFilter) ([]domain.PricingSheet, error)
	GetPricingSheet(ctx context.Context, date time.Time) (*domain.PricingSheet, error)
	// NextPricingDate returns the earliest sheet date after date, or nil.
	NextPricingDate(ctx context.Context, date time.Time) (*time.Time, error)
	CreatePricingSheet(ctx context.Context, s *domain.PricingSheet) error

	ListStations(ctx context.Context) ([]domain.Station, error)
	ListSalesHouses(ctx context.Context) ([]domain.SalesHouse, error)
	ListHours(ctx context.Context) ([]int, error)
	ListDurations(ctx context.Context) ([]int, error)

	ListStationPrices(ctx context.Context, f StationPriceFilter) ([]domain.StationPrice, error)
	// PricesForDate returns every price of a sheet, highest id first.
	PricesForDate(ctx context.Context, date time.Time) ([]domain.StationPrice, error)
	// InsertStationPrices creates missing sheets and copies rows in order,
	// all in one transaction.
	InsertStationPrices(ctx context.Context, rows []domain.StationPrice) (int64, error)

	ListBreaks(ctx context.Context, f BreakFilter) ([]domain.Break, error)
	BreaksInWindow(ctx context.Context, w domain.PricingWindow) ([]domain.Break, error)
	// AssignBreakPrices sets every break's price in one transaction.
	AssignBreakPrices(ctx context.Context, assignments []domain.PriceAssignment) error
}

// ImportStore keeps pending uploads between validation and commit. Get and
// Take return (nil, nil) for unknown or expired tokens. Take removes the
// session in the same step, so of two callers racing for one token only one
// receives it.
type ImportStore interface {
	Save(ctx context.Context, s *domain.ImportSession) error
	Get(ctx context.Context, token uuid.UUID) (*domain.ImportSession, error)
	Take(ctx context.Context, token uuid.UUID) (*domain.ImportSession, error)
	Delete(ctx context.Context, token uuid.UUID) error
}
