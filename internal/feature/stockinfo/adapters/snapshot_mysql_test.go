package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stocks_api/internal/feature/stockinfo/domain/entity"
	"stocks_api/internal/feature/stockinfo/usecase"
)

// setupTestDB prepares an in-memory SQLite database for tests.
// TranslateError matches the production configuration so unique-index
// violations surface as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.StockSnapshot{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

var someDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

// seedSnapshot creates a snapshot row for tests.
func seedSnapshot(t *testing.T, db *gorm.DB, symbol string, marketCap, shares float64, date time.Time) *entity.StockSnapshot {
	t.Helper()

	snapshot := &entity.StockSnapshot{
		Symbol:               symbol,
		MarketCapitalization: marketCap,
		ShareOutstanding:     shares,
		Date:                 date,
	}
	err := db.Create(snapshot).Error
	require.NoError(t, err, "failed to seed snapshot")

	return snapshot
}

func TestNewSnapshotRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSnapshotRepository(db)

	assert.NotNil(t, repo, "repository should not be nil")
	assert.NotNil(t, repo.db, "database connection should not be nil")
}

// TestSnapshotMySQL_FindBySymbolAndDate verifies the (symbol, date) lookup.
func TestSnapshotMySQL_FindBySymbolAndDate(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSnapshotRepository(db)

	seedSnapshot(t, db, "SOME", 2000, 1000, someDay)

	t.Run("success: returns the matching snapshot", func(t *testing.T) {
		snapshot, err := repo.FindBySymbolAndDate(context.Background(), "SOME", someDay)

		require.NoError(t, err)
		require.NotNil(t, snapshot)
		assert.Equal(t, "SOME", snapshot.Symbol)
		assert.Equal(t, 2000.0, snapshot.MarketCapitalization)
		assert.Equal(t, 1000.0, snapshot.ShareOutstanding)
	})

	t.Run("success: returns nil for a different day", func(t *testing.T) {
		snapshot, err := repo.FindBySymbolAndDate(context.Background(), "SOME", someDay.AddDate(0, 0, -1))

		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("success: returns nil for an unknown symbol", func(t *testing.T) {
		snapshot, err := repo.FindBySymbolAndDate(context.Background(), "OTHER", someDay)

		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})
}

// TestSnapshotMySQL_Create verifies inserts and the composite unique index.
func TestSnapshotMySQL_Create(t *testing.T) {
	t.Parallel()

	t.Run("success: assigns an id", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewSnapshotRepository(db)

		snapshot := &entity.StockSnapshot{
			Symbol:               "SOME",
			MarketCapitalization: 2000,
			ShareOutstanding:     1000,
			Date:                 someDay,
		}
		err := repo.Create(context.Background(), snapshot)

		require.NoError(t, err)
		assert.NotZero(t, snapshot.ID, "ID should be assigned")
	})

	t.Run("success: same symbol on a different day is allowed", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewSnapshotRepository(db)

		seedSnapshot(t, db, "SOME", 2000, 1000, someDay)

		err := repo.Create(context.Background(), &entity.StockSnapshot{
			Symbol:               "SOME",
			MarketCapitalization: 2100,
			ShareOutstanding:     1000,
			Date:                 someDay.AddDate(0, 0, 1),
		})

		assert.NoError(t, err)
	})

	t.Run("failure: duplicate (symbol, date) returns ErrDuplicateSnapshot", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewSnapshotRepository(db)

		seedSnapshot(t, db, "SOME", 2000, 1000, someDay)

		err := repo.Create(context.Background(), &entity.StockSnapshot{
			Symbol:               "SOME",
			MarketCapitalization: 2222,
			ShareOutstanding:     1111,
			Date:                 someDay,
		})

		assert.ErrorIs(t, err, usecase.ErrDuplicateSnapshot)

		// The original row must be untouched
		stored, findErr := repo.FindBySymbolAndDate(context.Background(), "SOME", someDay)
		require.NoError(t, findErr)
		require.NotNil(t, stored)
		assert.Equal(t, 2000.0, stored.MarketCapitalization)
	})
}
