package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

func TestListClientsPassesFilter(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f.catalog.EXPECT().ListClients(mock.Anything, port.ClientFilter{
		Search:    "acme",
		StartDate: &start,
		Page:      port.Page{Limit: 10, Offset: 20},
	}).Return([]domain.Client{{ID: 1, Name: "Acme"}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/clients?search=acme&start_date=2025-01-01&limit=10&offset=20", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var out listResponse[domain.Client]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 10, out.Limit)
	assert.Equal(t, 20, out.Offset)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Acme", out.Items[0].Name)
}

func TestListClientsRejectsBadPaging(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/clients?limit=ten", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, "limit")
}

func TestListEmptyIsArray(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().ListProducts(mock.Anything, port.ItemFilter{}).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/v1/products", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"limit":50,"offset":0}`, rec.Body.String())
}

func TestCreateClient(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().CreateClient(mock.Anything, mock.AnythingOfType("*domain.Client")).
		RunAndReturn(func(_ context.Context, c *domain.Client) error {
			assert.Equal(t, "Acme", c.Name)
			assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), c.StartDate)
			c.ID = 5
			return nil
		})

	rec := f.do(http.MethodPost, "/api/v1/clients", map[string]any{
		"name":                        " Acme ",
		"daily_activity_start_time":   "06:00",
		"daily_activity_end_time":     "23:00",
		"attribution_window_duration": 10,
		"start_date":                  "2025-03-01",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var out domain.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(5), out.ID)
}

func TestCreateClientValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/clients", map[string]any{
		"daily_activity_start_time":   "06:00",
		"daily_activity_end_time":     "23:00",
		"attribution_window_duration": -1,
		"start_date":                  "01/03/2025",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var out struct {
		Error   string       `json:"error"`
		Details []fieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "validation failed", out.Error)
	fields := make([]string, 0, len(out.Details))
	for _, d := range out.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"name", "attribution_window_duration", "start_date"}, fields)
}

func TestCreateClientRejectsUnknownFields(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/clients", `{"name":"x","colour":"red"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decodeError(t, rec).Error)
}

func TestCreateCampaignClientFromQuery(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().CreateCampaign(mock.Anything, &domain.Campaign{ClientID: 4, Name: "Summer"}).
		RunAndReturn(func(_ context.Context, c *domain.Campaign) error {
			c.ID = 12
			return nil
		})

	rec := f.do(http.MethodPost, "/api/v1/campaigns?client_id=4", map[string]any{"name": "Summer"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"campaign_id":12,"client_id":4,"name":"Summer"}`, rec.Body.String())
}

func TestCreateCampaignRequiresClient(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/campaigns", map[string]any{"name": "Summer"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductMapping(t *testing.T) {
	mapping := &domain.ProductMapping{ID: 9, ProductID: 2, CampaignID: 1}

	tests := []struct {
		name    string
		created bool
		err     error
		status  int
	}{
		{"new link", true, nil, http.StatusCreated},
		{"existing link", false, nil, http.StatusOK},
		{"other client", false, port.ErrClientMismatch, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ret := mapping
			if tt.err != nil {
				ret = nil
			}
			f.catalog.EXPECT().MapProduct(mock.Anything, int64(1), int64(2)).Return(ret, tt.created, tt.err)

			rec := f.do(http.MethodPost, "/api/v1/product-mappings", map[string]any{
				"campaign_id":   1,
				"ga_product_id": 2,
			})

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestDeletePageMapping(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().UnmapPage(mock.Anything, int64(8)).Return(nil)

	rec := f.do(http.MethodDelete, "/api/v1/page-mappings/8", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestLinkCommercial(t *testing.T) {
	t.Run("link", func(t *testing.T) {
		f := newFixture(t)
		campaign := int64(6)
		f.catalog.EXPECT().LinkCommercial(mock.Anything, int64(3), &campaign).
			Return(&domain.Commercial{ID: 3, CampaignID: &campaign}, nil)

		rec := f.do(http.MethodPatch, "/api/v1/commercials/3", map[string]any{"campaign_id": 6})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unlink", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.EXPECT().LinkCommercial(mock.Anything, int64(3), (*int64)(nil)).
			Return(&domain.Commercial{ID: 3}, nil)

		rec := f.do(http.MethodPatch, "/api/v1/commercials/3", `{"campaign_id":null}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("read only fields", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPatch, "/api/v1/commercials/3", `{"clearcast_commercial_title":"x"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestClientOptions(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().ClientOptions(mock.Anything, int64(2)).Return(&port.ClientOptions{
		Campaigns: []domain.Campaign{{ID: 1, ClientID: 2, Name: "Spring"}},
		Products:  []domain.Product{},
		Pages:     []domain.Page{},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/clients/2/options", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"campaigns":[{"campaign_id":1,"client_id":2,"name":"Spring"}],"products":[],"pages":[]}`, rec.Body.String())
}
