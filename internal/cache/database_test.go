package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oakfieldhq/oakfield/internal/database/testutil"
	"github.com/oakfieldhq/oakfield/internal/models"
)

func newDatabaseStore(t *testing.T) *DatabaseStore {
	t.Helper()
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	return NewDatabaseStore(db)
}

func TestDatabaseStoreRoundTrip(t *testing.T) {
	store := newDatabaseStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "props", []byte(`[{"id":1}]`), time.Minute))

	value, ok, err := store.Get(ctx, "props")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`[{"id":1}]`), value)
}

func TestDatabaseStoreSetOverwrites(t *testing.T) {
	store := newDatabaseStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "props", []byte("first"), time.Minute))
	require.NoError(t, store.Set(ctx, "props", []byte("second"), time.Minute))

	value, ok, err := store.Get(ctx, "props")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("second"), value)
}

func TestDatabaseStoreExpiredEntryIsAbsent(t *testing.T) {
	store := newDatabaseStore(t)
	ctx := context.Background()

	// Insert a row that is already expired; Get must treat it as a miss
	// and clean it up.
	entry := models.CacheEntry{
		Key:       "stale",
		Value:     []byte("old"),
		ExpiresAt: time.Now().Add(-time.Second),
	}
	require.NoError(t, store.db.Create(&entry).Error)

	_, ok, err := store.Get(ctx, "stale")
	require.NoError(t, err)
	require.False(t, ok)

	var count int64
	require.NoError(t, store.db.Model(&models.CacheEntry{}).Where("key = ?", "stale").Count(&count).Error)
	require.Zero(t, count, "expired entry should be removed lazily")
}

func TestDatabaseStoreDeleteMissingKey(t *testing.T) {
	store := newDatabaseStore(t)

	require.NoError(t, store.Delete(context.Background(), "never-set"))
}
