package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Stock{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedStock creates a test stock in the database for testing.
func seedStock(t *testing.T, db *gorm.DB, ticker string, active bool) *entity.Stock {
	t.Helper()

	stock := &entity.Stock{
		Ticker:      ticker,
		CompanyName: ticker + " Inc.",
		Sector:      "Technology",
		IsActive:    active,
	}
	err := db.Create(stock).Error
	require.NoError(t, err, "failed to seed stock")

	return stock
}

func TestStockGorm_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("success: inserts a new stock", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewStockRepository(db)

		err := repo.Upsert(context.Background(), entity.Stock{
			Ticker:      "AAPL",
			CompanyName: "Apple Inc.",
			Sector:      "Technology",
			MarketCap:   3000000000000,
			IsActive:    true,
		})
		require.NoError(t, err)

		var count int64
		db.Model(&entity.Stock{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("success: refreshes metadata for an existing ticker", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seedStock(t, db, "AAPL", true)

		err := repo.Upsert(context.Background(), entity.Stock{
			Ticker:      "AAPL",
			CompanyName: "Apple Inc. (updated)",
			Sector:      "Consumer Electronics",
			MarketCap:   3500000000000,
			IsActive:    true,
		})
		require.NoError(t, err)

		var count int64
		db.Model(&entity.Stock{}).Count(&count)
		assert.Equal(t, int64(1), count, "stock count should remain 1 after upsert")

		var stock entity.Stock
		db.Where("ticker = ?", "AAPL").First(&stock)
		assert.Equal(t, "Apple Inc. (updated)", stock.CompanyName, "CompanyName should be updated")
		assert.Equal(t, "Consumer Electronics", stock.Sector, "Sector should be updated")
		assert.Equal(t, float64(3500000000000), stock.MarketCap, "MarketCap should be updated")
	})
}

func TestStockGorm_FindByTicker(t *testing.T) {
	t.Parallel()

	t.Run("success: returns the stock", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewStockRepository(db)
		seedStock(t, db, "AAPL", true)

		stock, err := repo.FindByTicker(context.Background(), "AAPL")
		require.NoError(t, err)
		assert.Equal(t, "AAPL", stock.Ticker)
		assert.Equal(t, "AAPL Inc.", stock.CompanyName)
	})

	t.Run("error: unknown ticker returns ErrStockNotFound", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewStockRepository(db)

		_, err := repo.FindByTicker(context.Background(), "NOPE")
		assert.ErrorIs(t, err, usecase.ErrStockNotFound)
	})
}

func TestStockGorm_ListActive(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	seedStock(t, db, "MSFT", true)
	seedStock(t, db, "AAPL", true)
	seedStock(t, db, "DEAD", false)

	stocks, err := repo.ListActive(context.Background())
	require.NoError(t, err)

	require.Len(t, stocks, 2, "inactive stocks should be excluded")
	assert.Equal(t, "AAPL", stocks[0].Ticker, "stocks should be ordered by ticker")
	assert.Equal(t, "MSFT", stocks[1].Ticker)
}

func TestStockGorm_ListActiveTickers(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockRepository(db)
	seedStock(t, db, "MSFT", true)
	seedStock(t, db, "AAPL", true)
	seedStock(t, db, "DEAD", false)

	tickers, err := repo.ListActiveTickers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "MSFT"}, tickers)
}
