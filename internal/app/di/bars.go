package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stock_dashboard/internal/feature/prices/adapters"
	"stock_dashboard/internal/feature/prices/usecase"
	"stock_dashboard/internal/platform/cache"
)

// NewBarRepository creates the bar repository. If Redis is available, the
// GORM repository is wrapped with the caching decorator; otherwise reads
// go straight to the database.
func NewBarRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.BarRepository {
	inner := adapters.NewBarRepository(db)
	if rdb != nil {
		return cache.NewCachingBarRepository(rdb, ttl, inner, "bars")
	}
	return inner
}
