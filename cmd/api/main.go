package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/MotionPhix/workhub-backend-go/internal/config"
	appHTTP "github.com/MotionPhix/workhub-backend-go/internal/handler/http"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/cache"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/cron"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/database"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/jwt"
	"github.com/MotionPhix/workhub-backend-go/internal/repository/postgresql"
	analyticsService "github.com/MotionPhix/workhub-backend-go/internal/service/analytics"
	reportService "github.com/MotionPhix/workhub-backend-go/internal/service/report"
	workEntryService "github.com/MotionPhix/workhub-backend-go/internal/service/workentry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	// Redis is optional; insights fall back to computing fresh on every
	// request when it is unavailable.
	insightCache, err := cache.NewRedisCache(cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB, cfg.Insight.CacheTTL)
	if err != nil {
		log.Println("Redis unavailable, insight caching disabled:", err)
		insightCache = nil
	}

	entryRepo := postgresql.NewWorkEntryRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	entrySvc := workEntryService.NewWorkEntryService(db, entryRepo)
	insightSvc := analyticsService.NewInsightService(entryRepo, insightCache, cfg.Insight)
	reportSvc := reportService.NewReportService(entryRepo)

	workEntryHandler := appHTTP.NewWorkEntryHandler(entrySvc)
	insightHandler := appHTTP.NewInsightHandler(insightSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	if insightCache != nil {
		scheduler.AddJob("insight-cache-hygiene", 24*time.Hour, cron.NewInsightCacheHygieneJob(insightCache))
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		workEntryHandler,
		insightHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
