package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPricingWindowOpenEnded(t *testing.T) {
	w := NewPricingWindow(day(2025, 8, 1), nil)

	assert.Nil(t, w.LastDay())
	assert.False(t, w.Contains(day(2025, 7, 31).Add(23*time.Hour)))
	assert.True(t, w.Contains(day(2025, 8, 1)))
	assert.True(t, w.Contains(day(2030, 1, 1)))
}

func TestPricingWindowEndsDayBeforeNextSheet(t *testing.T) {
	next := day(2025, 9, 1)
	w := NewPricingWindow(day(2025, 8, 1), &next)

	require.NotNil(t, w.LastDay())
	assert.Equal(t, day(2025, 8, 31), *w.LastDay())
	assert.True(t, w.Contains(time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(next))
}

func TestPricingWindowTruncatesToDay(t *testing.T) {
	next := time.Date(2025, 9, 1, 13, 0, 0, 0, time.UTC)
	w := NewPricingWindow(time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC), &next)

	assert.Equal(t, day(2025, 8, 1), w.Start)
	assert.Equal(t, day(2025, 9, 1), *w.Next)
	assert.True(t, w.Contains(time.Date(2025, 8, 1, 0, 5, 0, 0, time.UTC)))
}
