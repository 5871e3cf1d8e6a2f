package http

import (
	"net/http"

	"bunk-backend/internal/handlers"
	"bunk-backend/internal/health"
	"bunk-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every route to its handler.
func NewRouter(
	pool *pgxpool.Pool,
	reportHandler *handlers.ReportHandler,
	ledgerHandler *handlers.LedgerHandler,
	settingsHandler *handlers.SettingsHandler,
	exportHandler *handlers.ExportHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Registered on the router (not wrapped around it) so the matched
	// route template is available for the path label.
	r.Use(middleware.Metrics)

	r.HandleFunc("/health", health.Handler(pool)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Daily reports
	api.HandleFunc("/reports", reportHandler.GetMonthlyReports).
		Methods(http.MethodGet).Queries("month", "{month}")
	api.HandleFunc("/reports", reportHandler.SaveReport).Methods(http.MethodPost)
	api.HandleFunc("/reports/{date}", reportHandler.GetReport).Methods(http.MethodGet)
	api.HandleFunc("/reports/{date}/carry-forward", reportHandler.GetCarryForward).Methods(http.MethodGet)

	// Statements
	api.HandleFunc("/reports/{date}/statement.txt", reportHandler.GetStatementText).Methods(http.MethodGet)
	api.HandleFunc("/reports/{date}/statement.pdf", reportHandler.GetStatementPDF).Methods(http.MethodGet)
	api.HandleFunc("/reports/{date}/statement.png", reportHandler.GetStatementPNG).Methods(http.MethodGet)
	api.HandleFunc("/reports/{date}/statement/whatsapp", reportHandler.GetStatementWhatsApp).Methods(http.MethodGet)

	// Credit ledger
	api.HandleFunc("/ledger", ledgerHandler.GetLedger).Methods(http.MethodGet)
	api.HandleFunc("/ledger/transactions", ledgerHandler.ApplyTransaction).Methods(http.MethodPost)
	api.HandleFunc("/ledger/log", ledgerHandler.GetLog).Methods(http.MethodGet)
	api.HandleFunc("/ledger/export.csv", ledgerHandler.ExportLedgerCSV).Methods(http.MethodGet)
	api.HandleFunc("/ledger/log/export.csv", ledgerHandler.ExportLogCSV).Methods(http.MethodGet)

	// Settings
	api.HandleFunc("/settings", settingsHandler.GetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings", settingsHandler.UpdateSettings).Methods(http.MethodPut)
	api.HandleFunc("/settings/refresh", settingsHandler.RefreshSettings).Methods(http.MethodPost)

	// Exports
	api.HandleFunc("/export/daily.xlsx", exportHandler.DownloadXlsx).Methods(http.MethodGet)

	return r
}
