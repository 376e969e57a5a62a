package port

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"srportal/internal/core/domain"
)

// CatalogUseCase covers the record screens: clients, campaigns, analytics
// items, their mappings and commercials.
type CatalogUseCase interface {
	ListClients(ctx context.Context, f ClientFilter) ([]domain.Client, error)
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
	CreateClient(ctx context.Context, c *domain.Client) error
	UpdateClient(ctx context.Context, c *domain.Client) error
	// ClientOptions lists what may be linked to a campaign of the client.
	ClientOptions(ctx context.Context, clientID int64) (*ClientOptions, error)

	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*domain.CampaignDetail, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error

	ListProducts(ctx context.Context, f ItemFilter) ([]domain.Product, error)
	ListPages(ctx context.Context, f ItemFilter) ([]domain.Page, error)

	ListProductMappings(ctx context.Context, f MappingFilter) ([]domain.ProductMapping, error)
	// MapProduct links a product to a campaign. Mapping an already linked
	// pair returns the existing row and created=false.
	MapProduct(ctx context.Context, campaignID, productID int64) (*domain.ProductMapping, bool, error)
	UnmapProduct(ctx context.Context, mappingID int64) error

	ListPageMappings(ctx context.Context, f MappingFilter) ([]domain.PageMapping, error)
	MapPage(ctx context.Context, campaignID, pageID int64) (*domain.PageMapping, bool, error)
	UnmapPage(ctx context.Context, mappingID int64) error

	ListCommercials(ctx context.Context, f CommercialFilter) ([]domain.Commercial, error)
	GetCommercial(ctx context.Context, id int64) (*domain.Commercial, error)
	// LinkCommercial sets or clears (nil) the campaign of a commercial.
	LinkCommercial(ctx context.Context, id int64, campaignID *int64) (*domain.Commercial, error)
}

// ClientOptions feeds the client filter of the mapping screens.
type ClientOptions struct {
	Campaigns []domain.Campaign `json:"campaigns"`
	Products  []domain.Product  `json:"products"`
	Pages     []domain.Page     `json:"pages"`
}

// BaselineUseCase exports baseline extracts. Uploads go through
// ImportUseCase.
type BaselineUseCase interface {
	ExportBaseline(ctx context.Context, kind domain.BaselineKind, entityID int64) (*BaselineExport, error)
}

// BaselineExport is the content of one baseline extract.
type BaselineExport struct {
	Kind   domain.BaselineKind
	Entity domain.BaselineEntity
	Rows   []domain.Baseline
}

// FileName returns "<entity name>_baseline.<ext>" with characters that are
// unsafe in file names replaced.
func (e BaselineExport) FileName(ext string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '?', '*', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, e.Entity.Name)
	return name + "_baseline." + ext
}

// PricingUseCase covers pricing sheets, station prices, breaks and the
// assignment of prices to breaks.
type PricingUseCase interface {
	ListPricingSheets(ctx context.Context, f PricingSheetFilter) ([]domain.PricingSheet, error)
	GetPricingSheet(ctx context.Context, date time.Time) (*domain.PricingSheet, error)
	CreatePricingSheet(ctx context.Context, s *domain.PricingSheet) error

	ListStations(ctx context.Context) ([]domain.Station, error)
	ListSalesHouses(ctx context.Context) ([]domain.SalesHouse, error)
	ListHours(ctx context.Context) ([]int, error)
	ListDurations(ctx context.Context) ([]int, error)

	ListStationPrices(ctx context.Context, f StationPriceFilter) ([]domain.StationPrice, error)
	ExportStationPrices(ctx context.Context, date time.Time) ([]domain.StationPrice, error)
	ListBreaks(ctx context.Context, f BreakFilter) ([]domain.Break, error)

	// AssignPricesToBreaks resolves the price of every break in the
	// sheet's window. Either every break is updated or, when any break
	// cannot be priced, none is and a *domain.PriceAssignmentError is
	// returned.
	AssignPricesToBreaks(ctx context.Context, date time.Time) (*AssignResult, error)
}

// AssignResult summarises a successful price assignment.
type AssignResult struct {
	PriceDate   time.Time  `json:"price_date"`
	WindowStart time.Time  `json:"window_start"`
	WindowEnd   *time.Time `json:"window_end"`
	Breaks      int        `json:"breaks"`
	Prices      int        `json:"prices"`
}

// ImportUseCase drives the upload wizard: validate a CSV into a pending
// import, inspect it, then commit or discard it.
type ImportUseCase interface {
	Validate(ctx context.Context, kind domain.ImportKind, fileName string, r io.Reader) (*domain.ImportSession, error)
	// Get, Commit and Discard fail with ErrImportKindMismatch when the
	// token belongs to an upload of another kind.
	Get(ctx context.Context, kind domain.ImportKind, token uuid.UUID) (*domain.ImportSession, error)
	Commit(ctx context.Context, kind domain.ImportKind, token uuid.UUID) (*domain.ImportSession, error)
	Discard(ctx context.Context, kind domain.ImportKind, token uuid.UUID) error
}
