package main

import (
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"stock_dashboard/internal/app/di"
	"stock_dashboard/internal/app/router"
	analysisadapters "stock_dashboard/internal/feature/analysis/adapters"
	analysishandler "stock_dashboard/internal/feature/analysis/transport/handler"
	analysisusecase "stock_dashboard/internal/feature/analysis/usecase"
	earningsadapters "stock_dashboard/internal/feature/earnings/adapters"
	pricesusecase "stock_dashboard/internal/feature/prices/usecase"
	stocksadapters "stock_dashboard/internal/feature/stocks/adapters"
	stockshandler "stock_dashboard/internal/feature/stocks/transport/handler"
	stocksusecase "stock_dashboard/internal/feature/stocks/usecase"
	"stock_dashboard/internal/platform/config"
	platformdb "stock_dashboard/internal/platform/db"
	platformredis "stock_dashboard/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := platformdb.Open(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Redis is optional; without it reads go straight to the database.
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := platformredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			slog.Warn("Redis unavailable, running without cache")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	stockRepo := stocksadapters.NewStockRepository(db)
	earningsRepo := earningsadapters.NewEarningsRepository(db)
	snapshotRepo := analysisadapters.NewSnapshotRepository(db)
	barRepo := di.NewBarRepository(rdb, db, cfg.CacheTTL)

	// Usecase
	stockUC := stocksusecase.NewStockUsecase(stockRepo)
	priceUC := pricesusecase.NewPricesUsecase(barRepo)
	chartUC := analysisusecase.NewChartUsecase(stockRepo, priceUC, earningsRepo)
	analysisUC := analysisusecase.NewAnalysisUsecase(stockRepo, priceUC, earningsRepo, snapshotRepo)

	// Handler
	stockH := stockshandler.NewStockHandler(stockUC)
	chartH := analysishandler.NewChartHandler(chartUC)
	trendingH := analysishandler.NewTrendingHandler(analysisUC)
	pageH := analysishandler.NewPageHandler(analysisUC)

	r := router.NewRouter(pageH, stockH, chartH, trendingH)

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
