package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stocks_api/internal/app/router"
	companyadapters "stocks_api/internal/feature/company/adapters"
	companyhandler "stocks_api/internal/feature/company/transport/handler"
	companyusecase "stocks_api/internal/feature/company/usecase"
	stockinfoadapters "stocks_api/internal/feature/stockinfo/adapters"
	"stocks_api/internal/feature/stockinfo/adapters/finnhub"
	stockinfohandler "stocks_api/internal/feature/stockinfo/transport/handler"
	stockinfousecase "stocks_api/internal/feature/stockinfo/usecase"
	"stocks_api/internal/platform/cache"
	infradb "stocks_api/internal/platform/db"
	infrahttp "stocks_api/internal/platform/http"
	infraredis "stocks_api/internal/platform/redis"
)

func main() {
	// .env is optional; real deployments configure the environment directly
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded, using process environment")
	}

	// db
	db := infradb.OpenDB()

	// Redis (optional; the snapshot store works without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without snapshot cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	companyRepo := companyadapters.NewCompanyRepository(db)
	snapshotRepo := stockinfoadapters.NewSnapshotRepository(db)

	// Redis read-through cache over the snapshot store; entries expire at the next UTC midnight
	cachedSnapshotRepo := cache.NewCachingSnapshotRepository(rdb, 0, snapshotRepo, "snapshots")

	// External profile client
	finnhubCfg := finnhub.LoadConfig()
	if finnhubCfg.APIKey == "" {
		log.Println("[WARN] FINNHUB_API_KEY is not set. Profile lookups will fail.")
	}
	profileClient := finnhub.NewClient(finnhubCfg, infrahttp.NewHTTPClient(finnhubCfg.Timeout))

	// Usecase
	companyUC := companyusecase.NewCompanyUsecase(companyRepo)
	stockInfoUC := stockinfousecase.NewStockInfoUsecase(companyRepo, cachedSnapshotRepo, profileClient)

	// Handler
	companyH := companyhandler.NewCompanyHandler(companyUC)
	stockInfoH := stockinfohandler.NewStockInfoHandler(stockInfoUC)

	router := router.NewRouter(companyH, stockInfoH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
