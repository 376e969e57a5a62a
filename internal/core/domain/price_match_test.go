package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func airing(id, station int64, hour, duration int, salesHouse *int64) Break {
	return Break{
		ID:           id,
		StationID:    station,
		Time:         time.Date(2025, 8, 3, hour, 15, 0, 0, time.UTC),
		SpotDuration: duration,
		SalesHouseID: salesHouse,
	}
}

func TestResolvePricesHighestIDWins(t *testing.T) {
	prices := []StationPrice{
		{ID: 1, StationID: 7, StartHour: intPtr(6), EndHour: intPtr(12), Duration: intPtr(30), Cost: decimal.NewFromInt(10)},
		{ID: 2, StationID: 7, Cost: decimal.NewFromInt(5)},
	}
	b := airing(100, 7, 7, 30, int64Ptr(3))
	b.Time = time.Date(2025, 8, 1, 7, 0, 0, 0, time.UTC)

	matched, unmatched := ResolvePrices([]Break{b}, prices)

	require.Empty(t, unmatched)
	assert.Equal(t, []PriceAssignment{{BreakID: 100, PriceID: 2}}, matched)
}

func TestResolvePricesIgnoresInputOrder(t *testing.T) {
	prices := []StationPrice{
		{ID: 9, StationID: 1},
		{ID: 4, StationID: 1},
		{ID: 12, StationID: 1},
	}

	matched, unmatched := ResolvePrices([]Break{airing(1, 1, 10, 30, nil)}, prices)

	require.Empty(t, unmatched)
	assert.Equal(t, int64(12), matched[0].PriceID)
}

func TestResolvePricesWildcards(t *testing.T) {
	wildcard := []StationPrice{{ID: 1, StationID: 5}}

	tests := []struct {
		name string
		brk  Break
	}{
		{"any sales house", airing(1, 5, 3, 30, int64Ptr(44))},
		{"missing sales house", airing(2, 5, 3, 30, nil)},
		{"any duration", airing(3, 5, 3, 90, nil)},
		{"any hour", airing(4, 5, 23, 10, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, unmatched := ResolvePrices([]Break{tt.brk}, wildcard)
			require.Empty(t, unmatched)
			assert.Equal(t, int64(1), matched[0].PriceID)
		})
	}
}

func TestResolvePricesFailureStages(t *testing.T) {
	prices := []StationPrice{
		{ID: 1, StationID: 1, SalesHouseID: int64Ptr(10), Duration: intPtr(30), StartHour: intPtr(6), EndHour: intPtr(9)},
	}

	tests := []struct {
		name string
		brk  Break
		want MatchFailure
	}{
		{"other station", airing(1, 2, 7, 30, int64Ptr(10)), FailNoStationPrices},
		{"sales house differs", airing(2, 1, 7, 30, int64Ptr(11)), FailSalesHouseMismatch},
		{"break without sales house", airing(3, 1, 7, 30, nil), FailSalesHouseMismatch},
		{"duration differs", airing(4, 1, 7, 60, int64Ptr(10)), FailDurationMismatch},
		{"hour before range", airing(5, 1, 5, 30, int64Ptr(10)), FailHourMismatch},
		{"hour at exclusive end", airing(6, 1, 9, 30, int64Ptr(10)), FailHourMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, unmatched := ResolvePrices([]Break{tt.brk}, prices)
			assert.Empty(t, matched)
			require.Len(t, unmatched, 1)
			assert.Equal(t, tt.want, unmatched[0].Reason)
			assert.Equal(t, tt.brk.ID, unmatched[0].Break.ID)
		})
	}
}

func TestResolvePricesHourRangeIsHalfOpen(t *testing.T) {
	prices := []StationPrice{{ID: 1, StationID: 1, StartHour: intPtr(6), EndHour: intPtr(12)}}

	matched, unmatched := ResolvePrices([]Break{
		airing(1, 1, 6, 30, nil),
		airing(2, 1, 11, 30, nil),
		airing(3, 1, 12, 30, nil),
	}, prices)

	assert.Equal(t, []PriceAssignment{{BreakID: 1, PriceID: 1}, {BreakID: 2, PriceID: 1}}, matched)
	require.Len(t, unmatched, 1)
	assert.Equal(t, int64(3), unmatched[0].Break.ID)
	assert.Equal(t, FailHourMismatch, unmatched[0].Reason)
}

func TestResolvePricesFallsBackPastSpecificMismatch(t *testing.T) {
	prices := []StationPrice{
		{ID: 1, StationID: 1},
		{ID: 2, StationID: 1, StartHour: intPtr(18), EndHour: intPtr(23)},
		{ID: 3, StationID: 1, SalesHouseID: int64Ptr(8)},
	}

	matched, unmatched := ResolvePrices([]Break{airing(1, 1, 9, 30, int64Ptr(2))}, prices)

	require.Empty(t, unmatched)
	assert.Equal(t, int64(1), matched[0].PriceID)
}

func TestCoversHourWithSingleBound(t *testing.T) {
	assert.False(t, StationPrice{StartHour: intPtr(6)}.CoversHour(7))
	assert.False(t, StationPrice{EndHour: intPtr(9)}.CoversHour(7))
	assert.True(t, StationPrice{}.CoversHour(0))
}

func TestPriceAssignmentErrorMessage(t *testing.T) {
	err := &PriceAssignmentError{
		PriceDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Unmatched: []UnmatchedBreak{{Break: airing(42, 1, 7, 30, nil), Reason: FailDurationMismatch}},
	}

	assert.Contains(t, err.Error(), "1 break(s) without a price for sheet 2025-08-01")
	assert.Contains(t, err.Error(), "break 42 at 2025-08-03 07:15: Duration mismatch")
}
