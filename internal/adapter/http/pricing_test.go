package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAssignPrices(t *testing.T) {
	f := newFixture(t)
	end := date(2025, 8, 7)
	f.pricing.EXPECT().AssignPricesToBreaks(mock.Anything, date(2025, 8, 1)).Return(&port.AssignResult{
		PriceDate:   date(2025, 8, 1),
		WindowStart: date(2025, 8, 1),
		WindowEnd:   &end,
		Breaks:      2,
		Prices:      3,
	}, nil)

	rec := f.do(http.MethodPost, "/api/v1/pricing-sheets/2025-08-01/assign-prices", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var out port.AssignResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 2, out.Breaks)
	require.NotNil(t, out.WindowEnd)
	assert.True(t, out.WindowEnd.Equal(end))
}

func TestAssignPricesReportsUnmatchedBreaks(t *testing.T) {
	f := newFixture(t)
	house := int64(4)
	f.pricing.EXPECT().AssignPricesToBreaks(mock.Anything, date(2025, 8, 1)).Return(nil, &domain.PriceAssignmentError{
		PriceDate: date(2025, 8, 1),
		Unmatched: []domain.UnmatchedBreak{
			{Break: domain.Break{ID: 10, StationID: 1, SpotDuration: 30}, Reason: domain.FailNoStationPrices},
			{Break: domain.Break{ID: 11, StationID: 2, SpotDuration: 60, SalesHouseID: &house}, Reason: domain.FailHourMismatch},
		},
	})

	rec := f.do(http.MethodPost, "/api/v1/pricing-sheets/2025-08-01/assign-prices", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var out struct {
		Error   string           `json:"error"`
		Details []unmatchedBreak `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Contains(t, out.Error, "no break was updated")
	require.Len(t, out.Details, 2)
	assert.Equal(t, int64(10), out.Details[0].BreakID)
	assert.Equal(t, "No station pricing rows", out.Details[0].Reason)
	assert.Equal(t, "Hour mismatch", out.Details[1].Reason)
	assert.Equal(t, &house, out.Details[1].SalesHouseID)
}

func TestAssignPricesUnknownSheet(t *testing.T) {
	f := newFixture(t)
	f.pricing.EXPECT().AssignPricesToBreaks(mock.Anything, date(2025, 9, 1)).
		Return(nil, errors.Join(errors.New("pricing sheet 2025-09-01"), port.ErrNotFound))

	rec := f.do(http.MethodPost, "/api/v1/pricing-sheets/2025-09-01/assign-prices", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssignPricesBadDate(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/pricing-sheets/01-08-2025/assign-prices", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePricingSheetConflict(t *testing.T) {
	f := newFixture(t)
	f.pricing.EXPECT().CreatePricingSheet(mock.Anything, &domain.PricingSheet{Date: date(2025, 8, 1), Note: "August"}).
		Return(port.ErrAlreadyExists)

	rec := f.do(http.MethodPost, "/api/v1/pricing-sheets", map[string]any{"price_date": "2025-08-01", "note": "August"})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestExportStationPricesCSV(t *testing.T) {
	f := newFixture(t)
	sky := "Sky"
	six, nine, thirty := 6, 9, 30
	f.pricing.EXPECT().ExportStationPrices(mock.Anything, date(2025, 8, 1)).Return([]domain.StationPrice{
		{ID: 1, PriceDate: date(2025, 8, 1), StationName: "ITV1", CostType: "CPT", Cost: decimal.NewFromInt(12)},
		{ID: 2, PriceDate: date(2025, 8, 1), StationName: "ITV1", StartHour: &six, EndHour: &nine, Duration: &thirty,
			SalesHouseName: &sky, CostType: "CPT", Cost: decimal.RequireFromString("7.25")},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/pricing-sheets/2025-08-01/station-prices", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="station_prices_2025-08-01.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t,
		"price_date,station_name,start_hour,end_hour,duration,sales_house_name,cost_type,cost\n"+
			"2025-08-01,ITV1,,,,,CPT,12\n"+
			"2025-08-01,ITV1,6,9,30,Sky,CPT,7.25\n",
		rec.Body.String())
}

func TestExportBaseline(t *testing.T) {
	export := &port.BaselineExport{
		Kind:   domain.ProductBaselines,
		Entity: domain.BaselineEntity{ID: 3, Name: "Blue/Shoe"},
		Rows: []domain.Baseline{
			{EntityID: 3, DayOfWeek: "Mon", HourOfDay: 0, Session: 1.5, Sales: 2},
			{EntityID: 3, DayOfWeek: "Tue", HourOfDay: 13, Session: 0, Sales: 0.25},
		},
	}

	t.Run("csv", func(t *testing.T) {
		f := newFixture(t)
		f.baselines.EXPECT().ExportBaseline(mock.Anything, domain.ProductBaselines, int64(3)).Return(export, nil)

		rec := f.do(http.MethodGet, "/api/v1/baselines/product/3/export", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename="Blue_Shoe_baseline.csv"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t,
			"ga_product_id,day_of_week,hour_of_day,baseline_session,baseline_sales\n"+
				"3,Mon,0,1.5,2\n"+
				"3,Tue,13,0,0.25\n",
			rec.Body.String())
	})

	t.Run("xlsx", func(t *testing.T) {
		f := newFixture(t)
		f.baselines.EXPECT().ExportBaseline(mock.Anything, domain.ProductBaselines, int64(3)).Return(export, nil)

		rec := f.do(http.MethodGet, "/api/v1/baselines/product/3/export?format=xlsx", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Blue_Shoe_baseline.xlsx"`, rec.Header().Get("Content-Disposition"))

		xl, err := excelize.OpenReader(rec.Body)
		require.NoError(t, err)
		defer func() { _ = xl.Close() }()
		rows, err := xl.GetRows("baseline")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, domain.ProductBaselines.ExportColumns(), rows[0])
		assert.Equal(t, "Tue", rows[2][1])
		assert.Equal(t, "13", rows[2][2])
	})

	t.Run("unknown format", func(t *testing.T) {
		f := newFixture(t)
		f.baselines.EXPECT().ExportBaseline(mock.Anything, domain.ProductBaselines, int64(3)).Return(export, nil)

		rec := f.do(http.MethodGet, "/api/v1/baselines/product/3/export?format=pdf", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExportBaselineUnknownKind(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/baselines/store/3/export", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBreaksDateOnlyEndIsInclusive(t *testing.T) {
	f := newFixture(t)
	from, before := date(2025, 8, 1), date(2025, 8, 8)
	station := int64(2)
	f.pricing.EXPECT().ListBreaks(mock.Anything, port.BreakFilter{
		From:      &from,
		Before:    &before,
		StationID: &station,
	}).Return([]domain.Break{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/breaks?from=2025-08-01&to=2025-08-07&station_id=2", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLookups(t *testing.T) {
	f := newFixture(t)
	f.pricing.EXPECT().ListHours(mock.Anything).Return([]int{0, 1, 2}, nil)
	f.pricing.EXPECT().ListSalesHouses(mock.Anything).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/v1/hours", nil)
	assert.JSONEq(t, `[0,1,2]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/sales-houses", nil)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
