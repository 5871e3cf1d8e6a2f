package repositories

import (
	"context"
	"fmt"

	"bunk-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LedgerLogRepository struct {
	DB *pgxpool.Pool
}

func NewLedgerLogRepository(db *pgxpool.Pool) *LedgerLogRepository {
	return &LedgerLogRepository{DB: db}
}

// Append writes one audit row. Log rows are never updated or deleted.
func (r *LedgerLogRepository) Append(ctx context.Context, entry *models.LedgerLogEntry) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO ledger_log (
			log_timestamp, entry_date, type, customer, amount,
			balance_before, balance_after, employee, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`,
		entry.LogTimestamp, entry.EntryDate, entry.Type, entry.Customer,
		entry.Amount, entry.BalanceBefore, entry.BalanceAfter,
		entry.Employee, entry.Notes,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to append ledger log entry: %w", err)
	}
	return nil
}

// List returns log entries newest first, optionally filtered to one
// customer. limit <= 0 means no limit.
func (r *LedgerLogRepository) List(ctx context.Context, customer string, limit int) ([]models.LedgerLogEntry, error) {
	query := `
		SELECT id, log_timestamp, to_char(entry_date, 'YYYY-MM-DD'),
		       type, customer, amount, balance_before, balance_after,
		       employee, notes
		FROM ledger_log
	`
	args := []interface{}{}
	if customer != "" {
		query += " WHERE customer = $1"
		args = append(args, customer)
	}
	query += " ORDER BY log_timestamp DESC, id DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger log: %w", err)
	}
	defer rows.Close()

	var entries []models.LedgerLogEntry
	for rows.Next() {
		var e models.LedgerLogEntry
		err := rows.Scan(
			&e.ID, &e.LogTimestamp, &e.EntryDate, &e.Type, &e.Customer,
			&e.Amount, &e.BalanceBefore, &e.BalanceAfter, &e.Employee, &e.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger log entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
