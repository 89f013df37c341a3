package database_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oakfieldhq/oakfield/internal/database"
	"github.com/oakfieldhq/oakfield/internal/database/testutil"
	"github.com/oakfieldhq/oakfield/internal/models"
)

func TestAutoMigrateCreatesTables(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())

	require.True(t, db.Migrator().HasTable(&models.Property{}))
	require.True(t, db.Migrator().HasTable(&models.CacheEntry{}))
}

func TestSeedDataIsIdempotent(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())

	require.NoError(t, database.SeedData(db))

	var count int64
	require.NoError(t, db.Model(&models.Property{}).Count(&count).Error)
	require.EqualValues(t, 3, count, "re-seeding must not duplicate listings")
}

func TestSeedDataSkipsPopulatedStore(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())

	require.NoError(t, db.Create(&models.Property{Title: "Existing", Price: 1, Location: "x"}).Error)
	require.NoError(t, database.SeedData(db))

	var count int64
	require.NoError(t, db.Model(&models.Property{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
