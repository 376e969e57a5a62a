package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
	"srportal/internal/core/port/mocks"
)

type recorder struct{ results []string }

func (r *recorder) RecordAssignment(result string) { r.results = append(r.results, result) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func i64(v int64) *int64 { return &v }
func ip(v int) *int      { return &v }

func TestAssignPricesToBreaksAppliesEveryMatch(t *testing.T) {
	repo := mocks.NewMockPricingRepository(t)
	rec := &recorder{}
	svc := NewPricingUseCase(repo, discardLogger(), rec)

	date, next := day(2025, 8, 1), day(2025, 8, 8)
	window := domain.NewPricingWindow(date, &next)
	breaks := []domain.Break{
		{ID: 100, StationID: 7, Time: time.Date(2025, 8, 1, 7, 0, 0, 0, time.UTC), SpotDuration: 30, SalesHouseID: i64(3)},
		{ID: 101, StationID: 7, Time: time.Date(2025, 8, 7, 23, 30, 0, 0, time.UTC), SpotDuration: 60},
	}
	prices := []domain.StationPrice{
		{ID: 2, StationID: 7},
		{ID: 1, StationID: 7, StartHour: ip(6), EndHour: ip(12), Duration: ip(30)},
	}

	repo.EXPECT().GetPricingSheet(mock.Anything, date).Return(&domain.PricingSheet{Date: date}, nil)
	repo.EXPECT().NextPricingDate(mock.Anything, date).Return(&next, nil)
	repo.EXPECT().BreaksInWindow(mock.Anything, window).Return(breaks, nil)
	repo.EXPECT().PricesForDate(mock.Anything, date).Return(prices, nil)
	repo.EXPECT().AssignBreakPrices(mock.Anything, []domain.PriceAssignment{
		{BreakID: 100, PriceID: 2},
		{BreakID: 101, PriceID: 2},
	}).Return(nil)

	res, err := svc.AssignPricesToBreaks(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Breaks)
	assert.Equal(t, date, res.WindowStart)
	require.NotNil(t, res.WindowEnd)
	assert.Equal(t, day(2025, 8, 7), *res.WindowEnd)
	assert.Equal(t, []string{AssignmentApplied}, rec.results)
}

func TestAssignPricesToBreaksWritesNothingOnUnmatched(t *testing.T) {
	repo := mocks.NewMockPricingRepository(t)
	rec := &recorder{}
	svc := NewPricingUseCase(repo, discardLogger(), rec)

	date := day(2025, 8, 1)
	breaks := []domain.Break{
		{ID: 1, StationID: 7, Time: time.Date(2025, 8, 2, 9, 0, 0, 0, time.UTC), SpotDuration: 30},
		{ID: 2, StationID: 8, Time: time.Date(2025, 8, 2, 9, 0, 0, 0, time.UTC), SpotDuration: 30},
		{ID: 3, StationID: 7, Time: time.Date(2025, 8, 2, 9, 0, 0, 0, time.UTC), SpotDuration: 60},
	}
	prices := []domain.StationPrice{{ID: 1, StationID: 7, Duration: ip(30)}}

	repo.EXPECT().GetPricingSheet(mock.Anything, date).Return(&domain.PricingSheet{Date: date}, nil)
	repo.EXPECT().NextPricingDate(mock.Anything, date).Return(nil, nil)
	repo.EXPECT().BreaksInWindow(mock.Anything, domain.NewPricingWindow(date, nil)).Return(breaks, nil)
	repo.EXPECT().PricesForDate(mock.Anything, date).Return(prices, nil)

	res, err := svc.AssignPricesToBreaks(context.Background(), date)
	assert.Nil(t, res)

	var assignErr *domain.PriceAssignmentError
	require.True(t, errors.As(err, &assignErr))
	require.Len(t, assignErr.Unmatched, 2)
	assert.Equal(t, int64(2), assignErr.Unmatched[0].Break.ID)
	assert.Equal(t, domain.FailNoStationPrices, assignErr.Unmatched[0].Reason)
	assert.Equal(t, int64(3), assignErr.Unmatched[1].Break.ID)
	assert.Equal(t, domain.FailDurationMismatch, assignErr.Unmatched[1].Reason)
	assert.Equal(t, []string{AssignmentUnmatched}, rec.results)
}

func TestAssignPricesToBreaksOpenEndedWindow(t *testing.T) {
	repo := mocks.NewMockPricingRepository(t)
	svc := NewPricingUseCase(repo, discardLogger(), nil)
	date := day(2025, 9, 1)

	repo.EXPECT().GetPricingSheet(mock.Anything, date).Return(&domain.PricingSheet{Date: date}, nil)
	repo.EXPECT().NextPricingDate(mock.Anything, date).Return(nil, nil)
	repo.EXPECT().BreaksInWindow(mock.Anything, domain.PricingWindow{Start: date}).Return(nil, nil)
	repo.EXPECT().PricesForDate(mock.Anything, date).Return(nil, nil)
	repo.EXPECT().AssignBreakPrices(mock.Anything, []domain.PriceAssignment{}).Return(nil)

	res, err := svc.AssignPricesToBreaks(context.Background(), date)
	require.NoError(t, err)
	assert.Nil(t, res.WindowEnd)
	assert.Zero(t, res.Breaks)
}

func TestAssignPricesToBreaksSkipsBreaksOutsideWindow(t *testing.T) {
	repo := mocks.NewMockPricingRepository(t)
	svc := NewPricingUseCase(repo, discardLogger(), nil)

	date, next := day(2025, 8, 1), day(2025, 8, 8)
	window := domain.NewPricingWindow(date, &next)
	breaks := []domain.Break{
		{ID: 1, StationID: 99, Time: time.Date(2025, 7, 31, 23, 59, 0, 0, time.UTC), SpotDuration: 30},
		{ID: 2, StationID: 7, Time: date, SpotDuration: 30},
		{ID: 3, StationID: 7, Time: time.Date(2025, 8, 7, 23, 59, 59, 0, time.UTC), SpotDuration: 30},
		{ID: 4, StationID: 99, Time: next, SpotDuration: 30},
	}

	repo.EXPECT().GetPricingSheet(mock.Anything, date).Return(&domain.PricingSheet{Date: date}, nil)
	repo.EXPECT().NextPricingDate(mock.Anything, date).Return(&next, nil)
	repo.EXPECT().BreaksInWindow(mock.Anything, window).Return(breaks, nil)
	repo.EXPECT().PricesForDate(mock.Anything, date).Return([]domain.StationPrice{{ID: 5, StationID: 7}}, nil)
	repo.EXPECT().AssignBreakPrices(mock.Anything, []domain.PriceAssignment{
		{BreakID: 2, PriceID: 5},
		{BreakID: 3, PriceID: 5},
	}).Return(nil)

	res, err := svc.AssignPricesToBreaks(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Breaks)
}

func TestAssignPricesToBreaksUnknownSheet(t *testing.T) {
	repo := mocks.NewMockPricingRepository(t)
	rec := &recorder{}
	svc := NewPricingUseCase(repo, discardLogger(), rec)
	date := day(2025, 9, 1)

	repo.EXPECT().GetPricingSheet(mock.Anything, date).Return(nil, nil)

	_, err := svc.AssignPricesToBreaks(context.Background(), date)
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.Equal(t, []string{AssignmentFailed}, rec.results)
}

func TestAssignPricesToBreaksPersistFailure(t *testing.T) {
	repo := mocks.NewMockPricingRepository(t)
	svc := NewPricingUseCase(repo, discardLogger(), nil)
	date := day(2025, 9, 1)
	boom := errors.New("connection reset")

	repo.EXPECT().GetPricingSheet(mock.Anything, date).Return(&domain.PricingSheet{Date: date}, nil)
	repo.EXPECT().NextPricingDate(mock.Anything, date).Return(nil, nil)
	repo.EXPECT().BreaksInWindow(mock.Anything, mock.Anything).
		Return([]domain.Break{{ID: 1, StationID: 1, Time: date}}, nil)
	repo.EXPECT().PricesForDate(mock.Anything, date).Return([]domain.StationPrice{{ID: 1, StationID: 1}}, nil)
	repo.EXPECT().AssignBreakPrices(mock.Anything, mock.Anything).Return(boom)

	_, err := svc.AssignPricesToBreaks(context.Background(), date)
	assert.ErrorIs(t, err, boom)
}

func TestExportStationPricesPages(t *testing.T) {
	repo := mocks.NewMockPricingRepository(t)
	svc := NewPricingUseCase(repo, discardLogger(), nil)
	date := day(2025, 8, 1)

	full := make([]domain.StationPrice, port.MaxPageSize)
	repo.EXPECT().GetPricingSheet(mock.Anything, date).Return(&domain.PricingSheet{Date: date}, nil)
	repo.EXPECT().ListStationPrices(mock.Anything, port.StationPriceFilter{PriceDate: &date, Page: port.Page{Limit: port.MaxPageSize}}).
		Return(full, nil)
	repo.EXPECT().ListStationPrices(mock.Anything, port.StationPriceFilter{PriceDate: &date, Page: port.Page{Limit: port.MaxPageSize, Offset: port.MaxPageSize}}).
		Return(make([]domain.StationPrice, 3), nil)

	rows, err := svc.ExportStationPrices(context.Background(), date)
	require.NoError(t, err)
	assert.Len(t, rows, port.MaxPageSize+3)
}

func TestCreatePricingSheetDuplicate(t *testing.T) {
	repo := mocks.NewMockPricingRepository(t)
	svc := NewPricingUseCase(repo, discardLogger(), nil)
	s := &domain.PricingSheet{Date: day(2025, 8, 1)}

	repo.EXPECT().CreatePricingSheet(mock.Anything, s).Return(port.ErrAlreadyExists)

	assert.ErrorIs(t, svc.CreatePricingSheet(context.Background(), s), port.ErrAlreadyExists)
	assert.ErrorIs(t, svc.CreatePricingSheet(context.Background(), &domain.PricingSheet{}), port.ErrInvalidInput)
}
