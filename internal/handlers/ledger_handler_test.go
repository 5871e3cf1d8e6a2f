package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bunk-backend/internal/models"
	"bunk-backend/internal/services"

	"github.com/stretchr/testify/assert"
)

type failingBalanceStore struct {
	err error
}

func (f *failingBalanceStore) LoadAll(context.Context) ([]models.LedgerBalance, error) {
	return nil, f.err
}

func (f *failingBalanceStore) ReplaceAll(context.Context, []models.LedgerBalance) error {
	return f.err
}

type noopLogStore struct{}

func (noopLogStore) Append(context.Context, *models.LedgerLogEntry) error {
	return nil
}

func (noopLogStore) List(context.Context, string, int) ([]models.LedgerLogEntry, error) {
	return nil, nil
}

func newLedgerTestHandler(balances services.BalanceStore) *LedgerHandler {
	svc := services.NewLedgerService(balances, noopLogStore{})
	return NewLedgerHandler(svc, services.NewStatementService("HP PETROL BUNK"))
}

func TestApplyTransactionValidationIs400(t *testing.T) {
	// The request is rejected before the store is touched.
	h := newLedgerTestHandler(&failingBalanceStore{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ledger/transactions",
		strings.NewReader(`{"type": "CREDIT", "customer": "Ravi", "amount": 100}`))
	h.ApplyTransaction(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "employee")
}

func TestApplyTransactionStoreErrorIs500(t *testing.T) {
	h := newLedgerTestHandler(&failingBalanceStore{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ledger/transactions",
		strings.NewReader(`{"type": "CREDIT", "customer": "Ravi", "amount": 100, "employee": "Suresh"}`))
	h.ApplyTransaction(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
