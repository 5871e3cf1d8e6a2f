package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"bunk-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	DB *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Load reads all option lists. Missing or malformed rows yield empty
// lists rather than errors.
func (r *SettingsRepository) Load(ctx context.Context) (*models.Settings, error) {
	rows, err := r.DB.Query(ctx, "SELECT setting_key, setting_value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	defer rows.Close()

	settings := &models.Settings{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		switch key {
		case models.SettingEmployees:
			settings.Employees = models.ParseStringList(value)
		case models.SettingCustomers:
			settings.Customers = models.ParseStringList(value)
		case models.SettingExpenseNames:
			settings.ExpenseNames = models.ParseStringList(value)
		case models.SettingOilPrices:
			settings.OilPrices = models.ParseFloatList(value)
		}
	}
	return settings, rows.Err()
}

// Save overwrites all four option lists in one transaction.
func (r *SettingsRepository) Save(ctx context.Context, settings *models.Settings) error {
	values := map[string]interface{}{
		models.SettingEmployees:    settings.Employees,
		models.SettingCustomers:    settings.Customers,
		models.SettingExpenseNames: settings.ExpenseNames,
		models.SettingOilPrices:    settings.OilPrices,
	}

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin settings save: %w", err)
	}
	defer tx.Rollback(ctx)

	for key, list := range values {
		encoded, err := json.Marshal(list)
		if err != nil {
			return fmt.Errorf("failed to serialize setting %s: %w", key, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO settings (setting_key, setting_value, updated_at)
			VALUES ($1, $2, CURRENT_TIMESTAMP)
			ON CONFLICT (setting_key) DO UPDATE SET
				setting_value = EXCLUDED.setting_value,
				updated_at = CURRENT_TIMESTAMP
		`, key, string(encoded))
		if err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit settings save: %w", err)
	}
	return nil
}
