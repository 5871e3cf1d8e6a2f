package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"bunk-backend/internal/cache"
	"bunk-backend/internal/config"
	"bunk-backend/internal/database"
	"bunk-backend/internal/db"
	"bunk-backend/internal/handlers"
	apphttp "bunk-backend/internal/http"
	"bunk-backend/internal/middleware"
	"bunk-backend/internal/repositories"
	"bunk-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "override the configured HTTP port")
	flag.Parse()

	cfg := config.Load()
	if *port > 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	cache.Init()

	reportRepo := repositories.NewReportRepository(pool)
	ledgerRepo := repositories.NewLedgerRepository(pool)
	ledgerLogRepo := repositories.NewLedgerLogRepository(pool)
	settingsRepo := repositories.NewSettingsRepository(pool)

	exportService := services.NewExportService(cfg.Export.Dir)
	backupService := services.NewBackupService(cfg)
	reportService := services.NewReportService(
		reportRepo, exportService, backupService, cfg.Outlet.DefaultTestLiter)
	ledgerService := services.NewLedgerService(ledgerRepo, ledgerLogRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	statementService := services.NewStatementService(cfg.Outlet.Name)

	router := apphttp.NewRouter(
		pool,
		handlers.NewReportHandler(reportService, statementService),
		handlers.NewLedgerHandler(ledgerService, statementService),
		handlers.NewSettingsHandler(settingsService),
		handlers.NewExportHandler(reportService, exportService),
	)

	handler := middleware.PanicRecovery(
		middleware.CORS(cfg)(router))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] %s listening on %s", cfg.Outlet.Name, addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
