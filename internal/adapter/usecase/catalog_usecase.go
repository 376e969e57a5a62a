package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

// CatalogUseCase implements port.CatalogUseCase.
type CatalogUseCase struct {
	clients     port.ClientRepository
	analytics   port.AnalyticsRepository
	commercials port.CommercialRepository
}

var _ port.CatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(clients port.ClientRepository, analytics port.AnalyticsRepository, commercials port.CommercialRepository) *CatalogUseCase {
	return &CatalogUseCase{clients: clients, analytics: analytics, commercials: commercials}
}

// everything lists all rows of a client or campaign in one page.
var everything = port.Page{Limit: port.MaxPageSize}

func (u *CatalogUseCase) ListClients(ctx context.Context, f port.ClientFilter) ([]domain.Client, error) {
	return u.clients.ListClients(ctx, f)
}

func (u *CatalogUseCase) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := u.clients.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("client %d: %w", id, port.ErrNotFound)
	}
	return c, nil
}

func (u *CatalogUseCase) CreateClient(ctx context.Context, c *domain.Client) error {
	if err := normalizeClient(c); err != nil {
		return err
	}
	return u.clients.CreateClient(ctx, c)
}

func (u *CatalogUseCase) UpdateClient(ctx context.Context, c *domain.Client) error {
	if _, err := u.GetClient(ctx, c.ID); err != nil {
		return err
	}
	if err := normalizeClient(c); err != nil {
		return err
	}
	return u.clients.UpdateClient(ctx, c)
}

// normalizeClient validates c and rewrites its activity times as HH:MM:SS.
func normalizeClient(c *domain.Client) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: client name is required", port.ErrInvalidInput)
	}
	if c.AttributionWindowDuration < 0 {
		return fmt.Errorf("%w: attribution window must not be negative", port.ErrInvalidInput)
	}
	var err error
	if c.DailyActivityStart, err = normalizeTimeOfDay(c.DailyActivityStart); err != nil {
		return fmt.Errorf("%w: daily activity start: %v", port.ErrInvalidInput, err)
	}
	if c.DailyActivityEnd, err = normalizeTimeOfDay(c.DailyActivityEnd); err != nil {
		return fmt.Errorf("%w: daily activity end: %v", port.ErrInvalidInput, err)
	}
	if c.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", port.ErrInvalidInput)
	}
	return nil
}

func normalizeTimeOfDay(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("%q is not a time of day", s)
}

func (u *CatalogUseCase) ClientOptions(ctx context.Context, clientID int64) (*port.ClientOptions, error) {
	if _, err := u.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	campaigns, err := u.clients.ListCampaigns(ctx, port.CampaignFilter{ClientID: &clientID, Page: everything})
	if err != nil {
		return nil, err
	}
	products, err := u.analytics.ListProducts(ctx, port.ItemFilter{ClientID: &clientID, Page: everything})
	if err != nil {
		return nil, err
	}
	pages, err := u.analytics.ListPages(ctx, port.ItemFilter{ClientID: &clientID, Page: everything})
	if err != nil {
		return nil, err
	}
	return &port.ClientOptions{Campaigns: campaigns, Products: products, Pages: pages}, nil
}

func (u *CatalogUseCase) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	return u.clients.ListCampaigns(ctx, f)
}

func (u *CatalogUseCase) campaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.clients.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	return c, nil
}

// GetCampaign returns the campaign with its mappings and commercials.
func (u *CatalogUseCase) GetCampaign(ctx context.Context, id int64) (*domain.CampaignDetail, error) {
	c, err := u.campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &domain.CampaignDetail{Campaign: *c}
	if detail.ProductMappings, err = u.analytics.ListProductMappings(ctx, port.MappingFilter{CampaignID: &id, Page: everything}); err != nil {
		return nil, err
	}
	if detail.PageMappings, err = u.analytics.ListPageMappings(ctx, port.MappingFilter{CampaignID: &id, Page: everything}); err != nil {
		return nil, err
	}
	if detail.Commercials, err = u.commercials.ListCommercials(ctx, port.CommercialFilter{CampaignID: &id, Page: everything}); err != nil {
		return nil, err
	}
	return detail, nil
}

func (u *CatalogUseCase) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if err := u.validateCampaign(ctx, c); err != nil {
		return err
	}
	return u.clients.CreateCampaign(ctx, c)
}

func (u *CatalogUseCase) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	if _, err := u.campaign(ctx, c.ID); err != nil {
		return err
	}
	if err := u.validateCampaign(ctx, c); err != nil {
		return err
	}
	return u.clients.UpdateCampaign(ctx, c)
}

func (u *CatalogUseCase) validateCampaign(ctx context.Context, c *domain.Campaign) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: campaign name is required", port.ErrInvalidInput)
	}
	client, err := u.clients.GetClient(ctx, c.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("%w: client %d does not exist", port.ErrInvalidInput, c.ClientID)
	}
	return nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, f port.ItemFilter) ([]domain.Product, error) {
	return u.analytics.ListProducts(ctx, f)
}

func (u *CatalogUseCase) ListPages(ctx context.Context, f port.ItemFilter) ([]domain.Page, error) {
	return u.analytics.ListPages(ctx, f)
}

func (u *CatalogUseCase) ListProductMappings(ctx context.Context, f port.MappingFilter) ([]domain.ProductMapping, error) {
	return u.analytics.ListProductMappings(ctx, f)
}

// MapProduct links a product to a campaign of the same client. Mapping a
// pair twice returns the first mapping.
func (u *CatalogUseCase) MapProduct(ctx context.Context, campaignID, productID int64) (*domain.ProductMapping, bool, error) {
	campaign, err := u.campaign(ctx, campaignID)
	if err != nil {
		return nil, false, err
	}
	product, err := u.analytics.GetProduct(ctx, productID)
	if err != nil {
		return nil, false, err
	}
	if product == nil {
		return nil, false, fmt.Errorf("product %d: %w", productID, port.ErrNotFound)
	}
	if product.ClientID != campaign.ClientID {
		return nil, false, fmt.Errorf("product %d and campaign %d: %w", productID, campaignID, port.ErrClientMismatch)
	}

	existing, err := u.analytics.FindProductMapping(ctx, campaignID, productID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	m := &domain.ProductMapping{ProductID: productID, CampaignID: campaignID, ItemName: product.ItemName}
	if err = u.analytics.CreateProductMapping(ctx, m); err != nil {
		return nil, false, err
	}
	return m, true, nil
}

func (u *CatalogUseCase) UnmapProduct(ctx context.Context, mappingID int64) error {
	deleted, err := u.analytics.DeleteProductMapping(ctx, mappingID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("product mapping %d: %w", mappingID, port.ErrNotFound)
	}
	return nil
}

func (u *CatalogUseCase) ListPageMappings(ctx context.Context, f port.MappingFilter) ([]domain.PageMapping, error) {
	return u.analytics.ListPageMappings(ctx, f)
}

// MapPage links a page to a campaign of the same client. Mapping a pair
// twice returns the first mapping.
func (u *CatalogUseCase) MapPage(ctx context.Context, campaignID, pageID int64) (*domain.PageMapping, bool, error) {
	campaign, err := u.campaign(ctx, campaignID)
	if err != nil {
		return nil, false, err
	}
	page, err := u.analytics.GetPage(ctx, pageID)
	if err != nil {
		return nil, false, err
	}
	if page == nil {
		return nil, false, fmt.Errorf("page %d: %w", pageID, port.ErrNotFound)
	}
	if page.ClientID != campaign.ClientID {
		return nil, false, fmt.Errorf("page %d and campaign %d: %w", pageID, campaignID, port.ErrClientMismatch)
	}

	existing, err := u.analytics.FindPageMapping(ctx, campaignID, pageID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	m := &domain.PageMapping{PageID: pageID, CampaignID: campaignID, URL: page.URL}
	if err = u.analytics.CreatePageMapping(ctx, m); err != nil {
		return nil, false, err
	}
	return m, true, nil
}

func (u *CatalogUseCase) UnmapPage(ctx context.Context, mappingID int64) error {
	deleted, err := u.analytics.DeletePageMapping(ctx, mappingID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("page mapping %d: %w", mappingID, port.ErrNotFound)
	}
	return nil
}

func (u *CatalogUseCase) ListCommercials(ctx context.Context, f port.CommercialFilter) ([]domain.Commercial, error) {
	return u.commercials.ListCommercials(ctx, f)
}

func (u *CatalogUseCase) GetCommercial(ctx context.Context, id int64) (*domain.Commercial, error) {
	c, err := u.commercials.GetCommercial(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("commercial %d: %w", id, port.ErrNotFound)
	}
	return c, nil
}

// LinkCommercial is the only change allowed on a commercial.
func (u *CatalogUseCase) LinkCommercial(ctx context.Context, id int64, campaignID *int64) (*domain.Commercial, error) {
	c, err := u.GetCommercial(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaignID != nil {
		if _, err = u.campaign(ctx, *campaignID); err != nil {
			return nil, err
		}
	}
	if err = u.commercials.SetCommercialCampaign(ctx, id, campaignID); err != nil {
		return nil, err
	}
	c.CampaignID = campaignID
	return c, nil
}
