package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"bunk-backend/internal/models"
	"bunk-backend/internal/services"
	"bunk-backend/internal/timeutil"
	"bunk-backend/pkg/utils"
)

type LedgerHandler struct {
	ledger     *services.LedgerService
	statements *services.StatementService
}

func NewLedgerHandler(ledger *services.LedgerService, statements *services.StatementService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, statements: statements}
}

// GetLedger returns all customer balances plus the total outstanding.
func (h *LedgerHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	balances, total, err := h.ledger.Balances(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"ledger":            balances,
		"total_outstanding": total,
	})
}

// ApplyTransaction records one CREDIT or PAYMENT and returns the
// updated ledger plus a shareable receipt.
func (h *LedgerHandler) ApplyTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.LedgerTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.ledger.Apply(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	entry := &models.LedgerLogEntry{
		EntryDate:     req.EntryDate,
		Type:          result.Type,
		Customer:      result.Customer,
		Amount:        result.Amount,
		BalanceBefore: result.BalanceBefore,
		BalanceAfter:  result.BalanceAfter,
		Employee:      req.Employee,
		Notes:         req.Notes,
	}
	if entry.EntryDate == "" {
		entry.EntryDate = timeutil.Now().Format(timeutil.DateLayout)
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"result":               result,
		"receipt_text":         h.statements.ReceiptText(entry),
		"receipt_whatsapp_url": h.statements.ReceiptWhatsAppURL(entry),
	})
}

// GetLog returns audit entries newest first. Optional query params:
// customer, limit.
func (h *LedgerHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	customer := r.URL.Query().Get("customer")
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.Error(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := h.ledger.Log(r.Context(), customer, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

// ExportLedgerCSV downloads the balance table as CSV.
func (h *LedgerHandler) ExportLedgerCSV(w http.ResponseWriter, r *http.Request) {
	balances, _, err := h.ledger.Balances(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="ledger.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"customer", "outstanding"})
	for _, b := range balances {
		cw.Write([]string{b.Customer, fmt.Sprintf("%.2f", b.Outstanding)})
	}
	cw.Flush()
}

// ExportLogCSV downloads the audit log as CSV, newest first.
func (h *LedgerHandler) ExportLogCSV(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledger.Log(r.Context(), r.URL.Query().Get("customer"), 0)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="ledger_log.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{
		"log_timestamp", "entry_date", "type", "customer",
		"amount", "balance_before", "balance_after", "employee", "notes",
	})
	for _, e := range entries {
		cw.Write([]string{
			e.LogTimestamp.In(timeutil.IST).Format(timeutil.DateTimeLayout),
			e.EntryDate,
			string(e.Type),
			e.Customer,
			fmt.Sprintf("%.2f", e.Amount),
			fmt.Sprintf("%.2f", e.BalanceBefore),
			fmt.Sprintf("%.2f", e.BalanceAfter),
			e.Employee,
			e.Notes,
		})
	}
	cw.Flush()
}
