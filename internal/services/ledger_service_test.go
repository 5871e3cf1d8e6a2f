package services

import (
	"context"
	"errors"
	"testing"

	"bunk-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCreditNewCustomer(t *testing.T) {
	balances := &fakeBalanceStore{}
	logs := &fakeLogStore{}
	svc := NewLedgerService(balances, logs)

	result, err := svc.Apply(context.Background(), models.LedgerTransactionRequest{
		EntryDate: "2026-09-01",
		Type:      models.TransactionCredit,
		Customer:  "Ravi Transport",
		Amount:    500,
		Employee:  "Suresh",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.BalanceBefore)
	assert.Equal(t, 500.0, result.BalanceAfter)
	assert.Empty(t, result.LogWarning)
	require.Len(t, result.Ledger, 1)
	assert.Equal(t, models.LedgerBalance{Customer: "Ravi Transport", Outstanding: 500}, result.Ledger[0])

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, models.TransactionCredit, entry.Type)
	assert.Equal(t, 500.0, entry.Amount)
	assert.Equal(t, 0.0, entry.BalanceBefore)
	assert.Equal(t, 500.0, entry.BalanceAfter)
	assert.Equal(t, "Suresh", entry.Employee)
}

func TestApplyPaymentClampsAtZero(t *testing.T) {
	balances := &fakeBalanceStore{balances: []models.LedgerBalance{
		{Customer: "Ravi Transport", Outstanding: 500},
	}}
	svc := NewLedgerService(balances, &fakeLogStore{})

	result, err := svc.Apply(context.Background(), models.LedgerTransactionRequest{
		EntryDate: "2026-09-01",
		Type:      models.TransactionPayment,
		Customer:  "Ravi Transport",
		Amount:    700,
		Employee:  "Suresh",
	})
	require.NoError(t, err)

	assert.Equal(t, 500.0, result.BalanceBefore)
	assert.Equal(t, 0.0, result.BalanceAfter, "overpayment settles at zero, never negative")
}

func TestApplyPaymentReducesBalance(t *testing.T) {
	balances := &fakeBalanceStore{balances: []models.LedgerBalance{
		{Customer: "Ravi Transport", Outstanding: 500},
	}}
	svc := NewLedgerService(balances, &fakeLogStore{})

	result, err := svc.Apply(context.Background(), models.LedgerTransactionRequest{
		EntryDate: "2026-09-01",
		Type:      models.TransactionPayment,
		Customer:  "Ravi Transport",
		Amount:    200,
		Employee:  "Suresh",
	})
	require.NoError(t, err)
	assert.Equal(t, 300.0, result.BalanceAfter)
}

func TestApplyValidation(t *testing.T) {
	svc := NewLedgerService(&fakeBalanceStore{}, &fakeLogStore{})
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.LedgerTransactionRequest
	}{
		{"blank customer", models.LedgerTransactionRequest{
			Type: models.TransactionCredit, Customer: "  ", Amount: 100, Employee: "Suresh"}},
		{"zero amount", models.LedgerTransactionRequest{
			Type: models.TransactionCredit, Customer: "Ravi", Amount: 0, Employee: "Suresh"}},
		{"negative amount", models.LedgerTransactionRequest{
			Type: models.TransactionCredit, Customer: "Ravi", Amount: -50, Employee: "Suresh"}},
		{"bad type", models.LedgerTransactionRequest{
			Type: "REFUND", Customer: "Ravi", Amount: 100, Employee: "Suresh"}},
		{"blank employee", models.LedgerTransactionRequest{
			Type: models.TransactionCredit, Customer: "Ravi", Amount: 100, Employee: "  "}},
		{"bad date", models.LedgerTransactionRequest{
			EntryDate: "01/09/2026", Type: models.TransactionCredit, Customer: "Ravi", Amount: 100, Employee: "Suresh"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Apply(ctx, tc.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "caller errors carry the validation class")
		})
	}
}

func TestApplySortsLedger(t *testing.T) {
	balances := &fakeBalanceStore{balances: []models.LedgerBalance{
		{Customer: "Anand", Outstanding: 300},
		{Customer: "Suresh", Outstanding: 900},
	}}
	svc := NewLedgerService(balances, &fakeLogStore{})

	result, err := svc.Apply(context.Background(), models.LedgerTransactionRequest{
		EntryDate: "2026-09-01",
		Type:      models.TransactionCredit,
		Customer:  "Prakash",
		Amount:    300,
		Employee:  "Suresh",
	})
	require.NoError(t, err)

	// Highest outstanding first, name breaks the 300 tie.
	require.Len(t, result.Ledger, 3)
	assert.Equal(t, "Suresh", result.Ledger[0].Customer)
	assert.Equal(t, "Anand", result.Ledger[1].Customer)
	assert.Equal(t, "Prakash", result.Ledger[2].Customer)
}

func TestApplyLogFailureKeepsBalance(t *testing.T) {
	balances := &fakeBalanceStore{}
	logs := &fakeLogStore{appendErr: errors.New("log table locked")}
	svc := NewLedgerService(balances, logs)

	result, err := svc.Apply(context.Background(), models.LedgerTransactionRequest{
		EntryDate: "2026-09-01",
		Type:      models.TransactionCredit,
		Customer:  "Ravi",
		Amount:    500,
		Employee:  "Suresh",
	})
	require.NoError(t, err, "audit append is advisory")
	assert.NotEmpty(t, result.LogWarning)

	stored, err := balances.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 500.0, stored[0].Outstanding)
}

func TestApplyReplaceFailureKeepsOldLedger(t *testing.T) {
	balances := &fakeBalanceStore{replaceErr: errors.New("db down")}
	logs := &fakeLogStore{}
	svc := NewLedgerService(balances, logs)

	_, err := svc.Apply(context.Background(), models.LedgerTransactionRequest{
		EntryDate: "2026-09-01",
		Type:      models.TransactionCredit,
		Customer:  "Ravi",
		Amount:    500,
		Employee:  "Suresh",
	})
	require.Error(t, err)
	assert.False(t, IsValidation(err), "store faults are not caller errors")
	assert.Empty(t, logs.entries, "no audit entry without a balance write")
}

func TestBalancesTotal(t *testing.T) {
	balances := &fakeBalanceStore{balances: []models.LedgerBalance{
		{Customer: "Anand", Outstanding: 300.25},
		{Customer: "Suresh", Outstanding: 900.50},
	}}
	svc := NewLedgerService(balances, &fakeLogStore{})

	list, total, err := svc.Balances(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Suresh", list[0].Customer)
	assert.Equal(t, 1200.75, total)
}

func TestLogFilterAndLimit(t *testing.T) {
	logs := &fakeLogStore{}
	svc := NewLedgerService(&fakeBalanceStore{}, logs)
	ctx := context.Background()

	for _, customer := range []string{"Ravi", "Suresh", "Ravi"} {
		_, err := svc.Apply(ctx, models.LedgerTransactionRequest{
			EntryDate: "2026-09-01",
			Type:      models.TransactionCredit,
			Customer:  customer,
			Amount:    100,
			Employee:  "Prakash",
		})
		require.NoError(t, err)
	}

	entries, err := svc.Log(ctx, "Ravi", 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = svc.Log(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ravi", entries[0].Customer, "newest entry first")
}
