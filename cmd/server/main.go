package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/HIBA-BEG/Warehouse-Management/internal/config"
	"github.com/HIBA-BEG/Warehouse-Management/internal/repository/mongodb"
	"github.com/HIBA-BEG/Warehouse-Management/internal/repository/sheets"
	"github.com/HIBA-BEG/Warehouse-Management/internal/scheduler"
	"github.com/HIBA-BEG/Warehouse-Management/internal/server/handlers"
	"github.com/HIBA-BEG/Warehouse-Management/internal/server/router"
	reportingsvc "github.com/HIBA-BEG/Warehouse-Management/internal/service/reporting"
	"github.com/HIBA-BEG/Warehouse-Management/internal/session"
	"github.com/HIBA-BEG/Warehouse-Management/pkg/clients/warehouse"
	"github.com/HIBA-BEG/Warehouse-Management/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	apiClient := warehouse.NewClient(cfg.Backend, baseLogger.Named("client.warehouse"))

	var sessions session.Store = session.NewMemoryStore()
	var snapshots mongodb.Repository

	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()

		sessions = mongoRepo
		snapshots = mongoRepo
		baseLogger.Info("mongodb enabled: persistent session and statistics snapshots")
	} else {
		baseLogger.Warn("mongodb uri missing, using in-memory session and skipping snapshot storage")
	}

	var sheetRepo sheets.Repository
	if cfg.Sheets.CredentialsPath != "" {
		sheetRepo, err = sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		baseLogger.Info("google sheets report export enabled")
	} else {
		baseLogger.Warn("sheets credentials missing, report export disabled")
	}

	reportingSvc := reportingsvc.NewService(apiClient, snapshots, sheetRepo, baseLogger.Named("svc.reporting"))
	inventoryHandler := handlers.NewInventoryHandler(apiClient, sessions, reportingSvc, baseLogger.Named("handlers.inventory"))
	engine := router.New(inventoryHandler, baseLogger.Named("router"))

	if snapshots != nil {
		sched := scheduler.NewScheduler(cfg.Snapshot, reportingSvc, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
