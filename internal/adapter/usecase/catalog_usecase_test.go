package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
	"srportal/internal/core/port/mocks"
)

type catalogMocks struct {
	clients     *mocks.MockClientRepository
	analytics   *mocks.MockAnalyticsRepository
	commercials *mocks.MockCommercialRepository
}

func newCatalog(t *testing.T) (*CatalogUseCase, catalogMocks) {
	m := catalogMocks{
		clients:     mocks.NewMockClientRepository(t),
		analytics:   mocks.NewMockAnalyticsRepository(t),
		commercials: mocks.NewMockCommercialRepository(t),
	}
	return NewCatalogUseCase(m.clients, m.analytics, m.commercials), m
}

func TestMapProductCreatesMapping(t *testing.T) {
	svc, m := newCatalog(t)
	ctx := context.Background()

	m.clients.EXPECT().GetCampaign(mock.Anything, int64(10)).Return(&domain.Campaign{ID: 10, ClientID: 1}, nil)
	m.analytics.EXPECT().GetProduct(mock.Anything, int64(20)).Return(&domain.Product{ID: 20, ClientID: 1, ItemName: "Sofa"}, nil)
	m.analytics.EXPECT().FindProductMapping(mock.Anything, int64(10), int64(20)).Return(nil, nil)
	m.analytics.EXPECT().
		CreateProductMapping(mock.Anything, mock.AnythingOfType("*domain.ProductMapping")).
		Run(func(_ context.Context, pm *domain.ProductMapping) { pm.ID = 99 }).
		Return(nil)

	mapping, created, err := svc.MapProduct(ctx, 10, 20)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, &domain.ProductMapping{ID: 99, ProductID: 20, CampaignID: 10, ItemName: "Sofa"}, mapping)
}

func TestMapProductIsIdempotent(t *testing.T) {
	svc, m := newCatalog(t)
	existing := &domain.ProductMapping{ID: 7, ProductID: 20, CampaignID: 10}

	m.clients.EXPECT().GetCampaign(mock.Anything, int64(10)).Return(&domain.Campaign{ID: 10, ClientID: 1}, nil)
	m.analytics.EXPECT().GetProduct(mock.Anything, int64(20)).Return(&domain.Product{ID: 20, ClientID: 1}, nil)
	m.analytics.EXPECT().FindProductMapping(mock.Anything, int64(10), int64(20)).Return(existing, nil)

	mapping, created, err := svc.MapProduct(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, existing, mapping)
}

func TestMapProductRejectsOtherClient(t *testing.T) {
	svc, m := newCatalog(t)

	m.clients.EXPECT().GetCampaign(mock.Anything, int64(10)).Return(&domain.Campaign{ID: 10, ClientID: 1}, nil)
	m.analytics.EXPECT().GetProduct(mock.Anything, int64(20)).Return(&domain.Product{ID: 20, ClientID: 2}, nil)

	_, _, err := svc.MapProduct(context.Background(), 10, 20)
	assert.ErrorIs(t, err, port.ErrClientMismatch)
}

func TestMapPageUnknownRecords(t *testing.T) {
	t.Run("campaign", func(t *testing.T) {
		svc, m := newCatalog(t)
		m.clients.EXPECT().GetCampaign(mock.Anything, int64(10)).Return(nil, nil)

		_, _, err := svc.MapPage(context.Background(), 10, 30)
		assert.ErrorIs(t, err, port.ErrNotFound)
	})
	t.Run("page", func(t *testing.T) {
		svc, m := newCatalog(t)
		m.clients.EXPECT().GetCampaign(mock.Anything, int64(10)).Return(&domain.Campaign{ID: 10, ClientID: 1}, nil)
		m.analytics.EXPECT().GetPage(mock.Anything, int64(30)).Return(nil, nil)

		_, _, err := svc.MapPage(context.Background(), 10, 30)
		assert.ErrorIs(t, err, port.ErrNotFound)
	})
}

func TestMapPageCreatesMapping(t *testing.T) {
	svc, m := newCatalog(t)

	m.clients.EXPECT().GetCampaign(mock.Anything, int64(10)).Return(&domain.Campaign{ID: 10, ClientID: 1}, nil)
	m.analytics.EXPECT().GetPage(mock.Anything, int64(30)).Return(&domain.Page{ID: 30, ClientID: 1, URL: "/offers"}, nil)
	m.analytics.EXPECT().FindPageMapping(mock.Anything, int64(10), int64(30)).Return(nil, nil)
	m.analytics.EXPECT().CreatePageMapping(mock.Anything, &domain.PageMapping{PageID: 30, CampaignID: 10, URL: "/offers"}).Return(nil)

	_, created, err := svc.MapPage(context.Background(), 10, 30)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestUnmapMissingMapping(t *testing.T) {
	svc, m := newCatalog(t)
	m.analytics.EXPECT().DeletePageMapping(mock.Anything, int64(5)).Return(false, nil)
	m.analytics.EXPECT().DeleteProductMapping(mock.Anything, int64(6)).Return(true, nil)

	assert.ErrorIs(t, svc.UnmapPage(context.Background(), 5), port.ErrNotFound)
	assert.NoError(t, svc.UnmapProduct(context.Background(), 6))
}

func TestLinkCommercial(t *testing.T) {
	campaignID := int64(10)

	t.Run("link", func(t *testing.T) {
		svc, m := newCatalog(t)
		m.commercials.EXPECT().GetCommercial(mock.Anything, int64(3)).Return(&domain.Commercial{ID: 3, Title: "Summer"}, nil)
		m.clients.EXPECT().GetCampaign(mock.Anything, campaignID).Return(&domain.Campaign{ID: campaignID}, nil)
		m.commercials.EXPECT().SetCommercialCampaign(mock.Anything, int64(3), &campaignID).Return(nil)

		c, err := svc.LinkCommercial(context.Background(), 3, &campaignID)
		require.NoError(t, err)
		assert.Equal(t, &campaignID, c.CampaignID)
	})
	t.Run("unlink", func(t *testing.T) {
		svc, m := newCatalog(t)
		m.commercials.EXPECT().GetCommercial(mock.Anything, int64(3)).Return(&domain.Commercial{ID: 3, CampaignID: &campaignID}, nil)
		m.commercials.EXPECT().SetCommercialCampaign(mock.Anything, int64(3), (*int64)(nil)).Return(nil)

		c, err := svc.LinkCommercial(context.Background(), 3, nil)
		require.NoError(t, err)
		assert.Nil(t, c.CampaignID)
	})
	t.Run("unknown campaign", func(t *testing.T) {
		svc, m := newCatalog(t)
		m.commercials.EXPECT().GetCommercial(mock.Anything, int64(3)).Return(&domain.Commercial{ID: 3}, nil)
		m.clients.EXPECT().GetCampaign(mock.Anything, campaignID).Return(nil, nil)

		_, err := svc.LinkCommercial(context.Background(), 3, &campaignID)
		assert.ErrorIs(t, err, port.ErrNotFound)
	})
}

func TestCreateClientNormalizesTimes(t *testing.T) {
	svc, m := newCatalog(t)
	c := &domain.Client{
		Name:               "  Acme ",
		DailyActivityStart: "09:30",
		DailyActivityEnd:   "21:00:00",
		StartDate:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	m.clients.EXPECT().CreateClient(mock.Anything, c).Return(nil)

	require.NoError(t, svc.CreateClient(context.Background(), c))
	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, "09:30:00", c.DailyActivityStart)
	assert.Equal(t, "21:00:00", c.DailyActivityEnd)
}

func TestCreateClientValidation(t *testing.T) {
	valid := func() domain.Client {
		return domain.Client{Name: "Acme", DailyActivityStart: "08:00", DailyActivityEnd: "20:00", StartDate: time.Now()}
	}
	tests := []struct {
		name   string
		mutate func(*domain.Client)
	}{
		{"blank name", func(c *domain.Client) { c.Name = " " }},
		{"bad start", func(c *domain.Client) { c.DailyActivityStart = "25:00" }},
		{"bad end", func(c *domain.Client) { c.DailyActivityEnd = "noon" }},
		{"negative window", func(c *domain.Client) { c.AttributionWindowDuration = -1 }},
		{"no start date", func(c *domain.Client) { c.StartDate = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newCatalog(t)
			c := valid()
			tt.mutate(&c)
			assert.ErrorIs(t, svc.CreateClient(context.Background(), &c), port.ErrInvalidInput)
		})
	}
}

func TestCreateCampaignRequiresClient(t *testing.T) {
	svc, m := newCatalog(t)
	m.clients.EXPECT().GetClient(mock.Anything, int64(4)).Return(nil, nil)

	err := svc.CreateCampaign(context.Background(), &domain.Campaign{ClientID: 4, Name: "Autumn"})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestGetCampaignDetail(t *testing.T) {
	svc, m := newCatalog(t)
	id := int64(10)

	m.clients.EXPECT().GetCampaign(mock.Anything, id).Return(&domain.Campaign{ID: id, ClientID: 1, Name: "Spring"}, nil)
	m.analytics.EXPECT().ListProductMappings(mock.Anything, port.MappingFilter{CampaignID: &id, Page: everything}).
		Return([]domain.ProductMapping{{ID: 1, ProductID: 2, CampaignID: id}}, nil)
	m.analytics.EXPECT().ListPageMappings(mock.Anything, port.MappingFilter{CampaignID: &id, Page: everything}).
		Return(nil, nil)
	m.commercials.EXPECT().ListCommercials(mock.Anything, port.CommercialFilter{CampaignID: &id, Page: everything}).
		Return([]domain.Commercial{{ID: 5, CampaignID: &id}}, nil)

	detail, err := svc.GetCampaign(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Spring", detail.Name)
	assert.Len(t, detail.ProductMappings, 1)
	assert.Empty(t, detail.PageMappings)
	assert.Len(t, detail.Commercials, 1)
}

func TestClientOptions(t *testing.T) {
	svc, m := newCatalog(t)
	id := int64(1)

	m.clients.EXPECT().GetClient(mock.Anything, id).Return(&domain.Client{ID: id}, nil)
	m.clients.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{ClientID: &id, Page: everything}).
		Return([]domain.Campaign{{ID: 10, ClientID: id}}, nil)
	m.analytics.EXPECT().ListProducts(mock.Anything, port.ItemFilter{ClientID: &id, Page: everything}).
		Return([]domain.Product{{ID: 20, ClientID: id}}, nil)
	m.analytics.EXPECT().ListPages(mock.Anything, port.ItemFilter{ClientID: &id, Page: everything}).
		Return([]domain.Page{{ID: 30, ClientID: id}}, nil)

	opts, err := svc.ClientOptions(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, opts.Campaigns, 1)
	assert.Len(t, opts.Products, 1)
	assert.Len(t, opts.Pages, 1)
}
