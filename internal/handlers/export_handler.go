package handlers

import (
	"net/http"

	"bunk-backend/internal/services"
	"bunk-backend/pkg/utils"
)

type ExportHandler struct {
	reports *services.ReportService
	export  *services.ExportService
}

func NewExportHandler(reports *services.ReportService, export *services.ExportService) *ExportHandler {
	return &ExportHandler{reports: reports, export: export}
}

// DownloadXlsx rebuilds the mirror workbook from the store and serves
// it, so the download always reflects the current data.
func (h *ExportHandler) DownloadXlsx(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reports.AllReports(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	path, err := h.export.WriteAll(r.Context(), reports)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="daily_reports.xlsx"`)
	http.ServeFile(w, r, path)
}
