package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srportal/internal/core/domain"
)

func TestImportStoreSaveGetDelete(t *testing.T) {
	store := NewImportStore(0)
	defer store.Close()
	ctx := context.Background()

	session := domain.NewImportSession(domain.ImportProductBaselines, "p.csv", 42, time.Now(), time.Hour)
	require.NoError(t, store.Save(ctx, session))

	session.State = domain.ImportCompleted
	got, err := store.Get(ctx, session.Token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ImportState(""), got.State, "stored copy must not follow caller changes")

	require.NoError(t, store.Delete(ctx, session.Token))
	got, err = store.Get(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestImportStoreHidesAndSweepsExpired(t *testing.T) {
	store := NewImportStore(0)
	defer store.Close()
	ctx := context.Background()

	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	session := domain.NewImportSession(domain.ImportStationPrices, "s.csv", 1, now, time.Minute)
	require.NoError(t, store.Save(ctx, session))

	now = now.Add(time.Minute)
	got, err := store.Get(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, store.Len())

	store.sweep()
	assert.Equal(t, 0, store.Len())
}

func TestImportStoreSweepLoop(t *testing.T) {
	store := NewImportStore(10 * time.Millisecond)
	defer store.Close()

	session := domain.NewImportSession(domain.ImportStationPrices, "s.csv", 1, time.Now().Add(-time.Hour), time.Minute)
	require.NoError(t, store.Save(context.Background(), session))

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 10*time.Millisecond)
	require.NoError(t, store.Close())
}

func TestImportStoreTakeHandsSessionOutOnce(t *testing.T) {
	store := NewImportStore(0)
	defer store.Close()
	ctx := context.Background()

	session := domain.NewImportSession(domain.ImportStationPrices, "s.csv", 1, time.Now(), time.Hour)
	require.NoError(t, store.Save(ctx, session))

	const callers = 8
	taken := make(chan *domain.ImportSession, callers)
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := store.Take(ctx, session.Token)
			assert.NoError(t, err)
			if got != nil {
				taken <- got
			}
		}()
	}
	wg.Wait()
	close(taken)

	assert.Len(t, taken, 1)
	assert.Equal(t, 0, store.Len())
}

func TestImportStoreTakeExpired(t *testing.T) {
	store := NewImportStore(0)
	defer store.Close()
	ctx := context.Background()

	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	session := domain.NewImportSession(domain.ImportStationPrices, "s.csv", 1, now, time.Minute)
	require.NoError(t, store.Save(ctx, session))

	now = now.Add(time.Minute)
	got, err := store.Take(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, store.Len())
}
