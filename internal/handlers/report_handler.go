package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bunk-backend/internal/models"
	"bunk-backend/internal/services"
	"bunk-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	reports    *services.ReportService
	statements *services.StatementService
}

func NewReportHandler(reports *services.ReportService, statements *services.StatementService) *ReportHandler {
	return &ReportHandler{reports: reports, statements: statements}
}

// GetReport returns the stored report for a date, or a blank entry
// template when the date has no report yet.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	report, exists, err := h.reports.Fetch(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"report": report,
		"exists": exists,
	})
}

// GetCarryForward returns the previous day's closings as today's
// opening values.
func (h *ReportHandler) GetCarryForward(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	cf, err := h.reports.CarryForward(r.Context(), date)
	if err != nil {
		if errors.Is(err, services.ErrNoPreviousReport) {
			utils.Error(w, http.StatusNotFound, err.Error())
			return
		}
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, cf)
}

// SaveReport computes and upserts the daily report for the submitted
// date, replacing any earlier save for that date.
func (h *ReportHandler) SaveReport(w http.ResponseWriter, r *http.Request) {
	var input models.ReportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, warning, err := h.reports.Save(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := map[string]interface{}{"report": report}
	if warning != "" {
		response["warning"] = warning
	}
	utils.JSON(w, http.StatusOK, response)
}

// GetMonthlyReports returns all reports of a YYYY-MM month with the
// month totals.
func (h *ReportHandler) GetMonthlyReports(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		utils.Error(w, http.StatusBadRequest, "month query parameter is required (YYYY-MM)")
		return
	}

	summary, err := h.reports.MonthlySummary(r.Context(), month)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) statementReport(w http.ResponseWriter, r *http.Request) *models.DailyReport {
	date := mux.Vars(r)["date"]

	report, exists, err := h.reports.Fetch(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return nil
	}
	if !exists {
		utils.Error(w, http.StatusNotFound, "no report saved for "+date)
		return nil
	}
	return report
}

// GetStatementText returns the plain-text statement.
func (h *ReportHandler) GetStatementText(w http.ResponseWriter, r *http.Request) {
	report := h.statementReport(w, r)
	if report == nil {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(h.statements.Text(report)))
}

// GetStatementWhatsApp returns a wa.me link carrying the statement.
func (h *ReportHandler) GetStatementWhatsApp(w http.ResponseWriter, r *http.Request) {
	report := h.statementReport(w, r)
	if report == nil {
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{
		"url": h.statements.WhatsAppURL(report),
	})
}

// GetStatementPDF returns the statement rendered as a PDF.
func (h *ReportHandler) GetStatementPDF(w http.ResponseWriter, r *http.Request) {
	report := h.statementReport(w, r)
	if report == nil {
		return
	}

	data, err := h.statements.PDF(report)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="statement-`+report.Date+`.pdf"`)
	w.Write(data)
}

// GetStatementPNG returns the statement rendered as a PNG image.
func (h *ReportHandler) GetStatementPNG(w http.ResponseWriter, r *http.Request) {
	report := h.statementReport(w, r)
	if report == nil {
		return
	}

	data, err := h.statements.PNG(report)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="statement-`+report.Date+`.png"`)
	w.Write(data)
}
