package models

import "time"

// TransactionType is the type of a ledger transaction
type TransactionType string

const (
	TransactionCredit  TransactionType = "CREDIT"  // fuel/goods given without payment, outstanding goes up
	TransactionPayment TransactionType = "PAYMENT" // cash collected against prior credit, outstanding goes down
)

// LedgerBalance is one row of the customer balance table: the amount a
// customer currently owes. Customer is the unique key.
type LedgerBalance struct {
	Customer    string  `json:"customer"`
	Outstanding float64 `json:"outstanding"`
}

// LedgerLogEntry is one immutable row of the audit log. Rows are only
// ever appended, never updated or deleted.
type LedgerLogEntry struct {
	ID            int             `json:"id"`
	LogTimestamp  time.Time       `json:"log_timestamp"`
	EntryDate     string          `json:"entry_date"` // YYYY-MM-DD
	Type          TransactionType `json:"type"`
	Customer      string          `json:"customer"`
	Amount        float64         `json:"amount"`
	BalanceBefore float64         `json:"balance_before"`
	BalanceAfter  float64         `json:"balance_after"`
	Employee      string          `json:"employee"`
	Notes         string          `json:"notes"`
}

// LedgerTransactionRequest is a CREDIT/PAYMENT submission.
type LedgerTransactionRequest struct {
	EntryDate string          `json:"entry_date"`
	Type      TransactionType `json:"type"`
	Customer  string          `json:"customer"`
	Amount    float64         `json:"amount"`
	Employee  string          `json:"employee"`
	Notes     string          `json:"notes"`
}

// LedgerTransactionResult reports the applied transaction. LogWarning
// is set when the balance write succeeded but the advisory audit
// append failed; the balance update is not rolled back in that case.
type LedgerTransactionResult struct {
	Customer      string          `json:"customer"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	BalanceBefore float64         `json:"balance_before"`
	BalanceAfter  float64         `json:"balance_after"`
	Ledger        []LedgerBalance `json:"ledger"`
	LogWarning    string          `json:"log_warning,omitempty"`
}
