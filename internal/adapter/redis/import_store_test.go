package redisadapter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srportal/internal/core/domain"
)

func newStore(t *testing.T) (*ImportStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewImportStore(client), mr
}

func TestImportStoreRoundTrip(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	session := domain.NewImportSession(domain.ImportStationPrices, "prices.csv", 120, time.Now(), 30*time.Minute)
	session.State = domain.ImportValidated
	session.Prices = []domain.StationPrice{{
		PriceDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		StationID: 3,
		CostType:  "SPT",
		Cost:      decimal.RequireFromString("12.75"),
	}}

	require.NoError(t, store.Save(ctx, session))
	assert.True(t, mr.Exists(KeyPrefix+session.Token.String()))
	assert.InDelta(t, (30 * time.Minute).Seconds(), mr.TTL(KeyPrefix+session.Token.String()).Seconds(), 2)

	got, err := store.Get(ctx, session.Token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ImportValidated, got.State)
	require.Len(t, got.Prices, 1)
	assert.True(t, got.Prices[0].Cost.Equal(decimal.RequireFromString("12.75")))

	require.NoError(t, store.Delete(ctx, session.Token))
	got, err = store.Get(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestImportStoreExpiry(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	session := domain.NewImportSession(domain.ImportPageBaselines, "pages.csv", 10, time.Now(), time.Minute)
	require.NoError(t, store.Save(ctx, session))

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestImportStoreSkipsExpiredSessions(t *testing.T) {
	store, mr := newStore(t)

	session := domain.NewImportSession(domain.ImportPageBaselines, "pages.csv", 10, time.Now().Add(-time.Hour), time.Minute)
	require.NoError(t, store.Save(context.Background(), session))

	assert.False(t, mr.Exists(KeyPrefix+session.Token.String()))
}

func TestImportStoreTakeRemovesKey(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	session := domain.NewImportSession(domain.ImportStationPrices, "prices.csv", 10, time.Now(), time.Hour)
	session.State = domain.ImportValidated
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Take(ctx, session.Token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.Token, got.Token)
	assert.False(t, mr.Exists(KeyPrefix+session.Token.String()))

	got, err = store.Take(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, got)
}
