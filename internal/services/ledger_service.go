package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"bunk-backend/internal/calc"
	"bunk-backend/internal/metrics"
	"bunk-backend/internal/models"
	"bunk-backend/internal/timeutil"
)

// BalanceStore is the customer balance table.
type BalanceStore interface {
	LoadAll(ctx context.Context) ([]models.LedgerBalance, error)
	ReplaceAll(ctx context.Context, balances []models.LedgerBalance) error
}

// LedgerLogStore is the append-only audit log.
type LedgerLogStore interface {
	Append(ctx context.Context, entry *models.LedgerLogEntry) error
	List(ctx context.Context, customer string, limit int) ([]models.LedgerLogEntry, error)
}

// LedgerService applies CREDIT/PAYMENT transactions. The load/replace
// cycle is not isolated: two concurrent writers on the same customer
// race and the last write wins, which is acceptable for a single
// low-traffic outlet.
type LedgerService struct {
	balances BalanceStore
	logs     LedgerLogStore
}

func NewLedgerService(balances BalanceStore, logs LedgerLogStore) *LedgerService {
	return &LedgerService{balances: balances, logs: logs}
}

// Apply records one CREDIT or PAYMENT against a customer. CREDIT adds
// to the outstanding balance; PAYMENT subtracts, clamped at zero so a
// customer never goes negative (overpayments settle the account). The
// balance write comes first; the audit append is advisory and a
// failure there surfaces as LogWarning without rolling the balance
// back.
func (s *LedgerService) Apply(ctx context.Context, req models.LedgerTransactionRequest) (*models.LedgerTransactionResult, error) {
	customer := strings.TrimSpace(req.Customer)
	if customer == "" {
		return nil, validationf("customer name is required")
	}
	if req.Amount <= 0 {
		return nil, validationf("amount must be greater than zero")
	}
	if req.Type != models.TransactionCredit && req.Type != models.TransactionPayment {
		return nil, validationf("invalid transaction type %q", req.Type)
	}
	employee := strings.TrimSpace(req.Employee)
	if employee == "" {
		return nil, validationf("employee is required")
	}

	entryDate := strings.TrimSpace(req.EntryDate)
	if entryDate == "" {
		entryDate = timeutil.Now().Format(timeutil.DateLayout)
	} else if _, err := timeutil.ParseDate(entryDate); err != nil {
		return nil, validationf("invalid entry date %q: want YYYY-MM-DD", entryDate)
	}

	amount := calc.Money(req.Amount)

	balances, err := s.balances.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	before, after, updated := applyTransaction(balances, customer, req.Type, amount)

	if err := s.balances.ReplaceAll(ctx, updated); err != nil {
		return nil, err
	}
	metrics.LedgerTransactions.WithLabelValues(string(req.Type)).Inc()

	result := &models.LedgerTransactionResult{
		Customer:      customer,
		Type:          req.Type,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		Ledger:        updated,
	}

	entry := &models.LedgerLogEntry{
		LogTimestamp:  timeutil.Now(),
		EntryDate:     entryDate,
		Type:          req.Type,
		Customer:      customer,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		Employee:      employee,
		Notes:         strings.TrimSpace(req.Notes),
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		log.Printf("[Ledger] Audit append failed for %s: %v", customer, err)
		result.LogWarning = "balance updated, but the audit log entry could not be written"
	}

	return result, nil
}

// applyTransaction computes the new balance set. Pure: no I/O.
func applyTransaction(balances []models.LedgerBalance, customer string,
	typ models.TransactionType, amount float64) (before, after float64, updated []models.LedgerBalance) {

	updated = make([]models.LedgerBalance, 0, len(balances)+1)
	for _, b := range balances {
		if b.Customer == customer {
			before = b.Outstanding
			continue
		}
		updated = append(updated, b)
	}

	if typ == models.TransactionCredit {
		after = calc.Money(before + amount)
	} else {
		after = calc.Money(before - amount)
		if after < 0 {
			after = 0
		}
	}

	updated = append(updated, models.LedgerBalance{Customer: customer, Outstanding: after})
	sortBalances(updated)
	return before, after, updated
}

func sortBalances(balances []models.LedgerBalance) {
	sort.Slice(balances, func(i, j int) bool {
		if balances[i].Outstanding != balances[j].Outstanding {
			return balances[i].Outstanding > balances[j].Outstanding
		}
		return balances[i].Customer < balances[j].Customer
	})
}

// Balances returns all customer balances in canonical order plus the
// total outstanding across customers.
func (s *LedgerService) Balances(ctx context.Context) ([]models.LedgerBalance, float64, error) {
	balances, err := s.balances.LoadAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	sortBalances(balances)

	var total float64
	for _, b := range balances {
		total += b.Outstanding
	}
	return balances, calc.Money(total), nil
}

// Log returns audit entries newest first, optionally filtered to one
// customer. limit <= 0 returns everything.
func (s *LedgerService) Log(ctx context.Context, customer string, limit int) ([]models.LedgerLogEntry, error) {
	return s.logs.List(ctx, strings.TrimSpace(customer), limit)
}
