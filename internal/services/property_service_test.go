package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oakfieldhq/oakfield/internal/database/testutil"
	"github.com/oakfieldhq/oakfield/internal/models"
)

func TestNewPropertyServiceRequiresDB(t *testing.T) {
	_, err := NewPropertyService(nil)
	require.Error(t, err)
}

func TestFetchAllProjectsSeededRows(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())
	svc, err := NewPropertyService(db)
	require.NoError(t, err)

	properties, err := svc.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 3)

	for _, property := range properties {
		require.NotZero(t, property.ID)
		require.NotEmpty(t, property.Title)
		require.NotEmpty(t, property.Location)
		require.Positive(t, property.Price)
		require.False(t, property.CreatedAt.IsZero())
	}
}

func TestFetchAllOnEmptyStore(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewPropertyService(db)
	require.NoError(t, err)

	properties, err := svc.FetchAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, properties)
}

func TestCountMatchesRows(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())
	svc, err := NewPropertyService(db)
	require.NoError(t, err)

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	require.NoError(t, db.Create(&models.Property{Title: "Studio", Price: 120000, Location: "Boise, ID"}).Error)

	count, err = svc.Count(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 4, count)
}
