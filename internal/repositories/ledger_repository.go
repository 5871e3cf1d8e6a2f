package repositories

import (
	"context"
	"fmt"

	"bunk-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LedgerRepository struct {
	DB *pgxpool.Pool
}

func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{DB: db}
}

// LoadAll returns every customer balance in canonical order:
// highest outstanding first, then customer name for ties.
func (r *LedgerRepository) LoadAll(ctx context.Context) ([]models.LedgerBalance, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT customer, outstanding
		FROM ledger_balances
		ORDER BY outstanding DESC, customer ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger balances: %w", err)
	}
	defer rows.Close()

	var balances []models.LedgerBalance
	for rows.Next() {
		var b models.LedgerBalance
		if err := rows.Scan(&b.Customer, &b.Outstanding); err != nil {
			return nil, fmt.Errorf("failed to scan ledger balance: %w", err)
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

// ReplaceAll swaps the whole balance table for the given rows in a
// single transaction, so readers never observe a partial ledger.
func (r *LedgerRepository) ReplaceAll(ctx context.Context, balances []models.LedgerBalance) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin ledger replace: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM ledger_balances"); err != nil {
		return fmt.Errorf("failed to clear ledger balances: %w", err)
	}

	if len(balances) > 0 {
		rows := make([][]interface{}, 0, len(balances))
		for _, b := range balances {
			rows = append(rows, []interface{}{b.Customer, b.Outstanding})
		}
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"ledger_balances"},
			[]string{"customer", "outstanding"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("failed to write ledger balances: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit ledger replace: %w", err)
	}
	return nil
}
