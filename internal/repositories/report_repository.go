package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"bunk-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reportColumns = `
	to_char(date, 'YYYY-MM-DD'), employee_name, notes,
	p_open, p_close, p_test, p_rate,
	d_open, d_close, d_test, d_rate,
	petrol_liters_sold, petrol_amount, diesel_liters_sold, diesel_amount,
	oil_packets, oil_price, oil_amount,
	qr_amount, advance_paid, owner_phonepay_amount, yesterday_balance_amount,
	customer_credit_total, debt_collections_total, other_expenses_total,
	total_sales, cash_to_deposit, details_json`

type ReportRepository struct {
	DB *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{DB: db}
}

// FindByDate returns the report for a date, or nil when no row exists.
func (r *ReportRepository) FindByDate(ctx context.Context, date string) (*models.DailyReport, error) {
	row := r.DB.QueryRow(ctx,
		"SELECT"+reportColumns+" FROM daily_reports WHERE date = $1", date)

	report, err := scanReport(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch report for %s: %w", date, err)
	}
	return report, nil
}

// Upsert writes the full report row, replacing any existing row for
// the same date. The single statement makes the replace atomic.
func (r *ReportRepository) Upsert(ctx context.Context, report *models.DailyReport) error {
	detailsJSON, err := json.Marshal(report.Details)
	if err != nil {
		return fmt.Errorf("failed to serialize report details: %w", err)
	}

	query := `
		INSERT INTO daily_reports (
			date, employee_name, notes,
			p_open, p_close, p_test, p_rate,
			d_open, d_close, d_test, d_rate,
			petrol_liters_sold, petrol_amount, diesel_liters_sold, diesel_amount,
			oil_packets, oil_price, oil_amount,
			qr_amount, advance_paid, owner_phonepay_amount, yesterday_balance_amount,
			customer_credit_total, debt_collections_total, other_expenses_total,
			total_sales, cash_to_deposit, details_json
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28
		)
		ON CONFLICT (date) DO UPDATE SET
			employee_name = EXCLUDED.employee_name,
			notes = EXCLUDED.notes,
			p_open = EXCLUDED.p_open, p_close = EXCLUDED.p_close,
			p_test = EXCLUDED.p_test, p_rate = EXCLUDED.p_rate,
			d_open = EXCLUDED.d_open, d_close = EXCLUDED.d_close,
			d_test = EXCLUDED.d_test, d_rate = EXCLUDED.d_rate,
			petrol_liters_sold = EXCLUDED.petrol_liters_sold,
			petrol_amount = EXCLUDED.petrol_amount,
			diesel_liters_sold = EXCLUDED.diesel_liters_sold,
			diesel_amount = EXCLUDED.diesel_amount,
			oil_packets = EXCLUDED.oil_packets,
			oil_price = EXCLUDED.oil_price,
			oil_amount = EXCLUDED.oil_amount,
			qr_amount = EXCLUDED.qr_amount,
			advance_paid = EXCLUDED.advance_paid,
			owner_phonepay_amount = EXCLUDED.owner_phonepay_amount,
			yesterday_balance_amount = EXCLUDED.yesterday_balance_amount,
			customer_credit_total = EXCLUDED.customer_credit_total,
			debt_collections_total = EXCLUDED.debt_collections_total,
			other_expenses_total = EXCLUDED.other_expenses_total,
			total_sales = EXCLUDED.total_sales,
			cash_to_deposit = EXCLUDED.cash_to_deposit,
			details_json = EXCLUDED.details_json
	`

	_, err = r.DB.Exec(ctx, query,
		report.Date, report.EmployeeName, report.Notes,
		report.POpen, report.PClose, report.PTest, report.PRate,
		report.DOpen, report.DClose, report.DTest, report.DRate,
		report.PetrolLitersSold, report.PetrolAmount,
		report.DieselLitersSold, report.DieselAmount,
		report.OilPackets, report.OilPrice, report.OilAmount,
		report.QRAmount, report.AdvancePaid,
		report.OwnerPhonePayAmount, report.YesterdayBalanceAmount,
		report.CustomerCreditTotal, report.DebtCollectionsTotal, report.OtherExpensesTotal,
		report.TotalSales, report.CashToDeposit, string(detailsJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert report for %s: %w", report.Date, err)
	}
	return nil
}

// ListMonth returns all reports for a calendar month ordered by date.
func (r *ReportRepository) ListMonth(ctx context.Context, year int, month int) ([]models.DailyReport, error) {
	query := "SELECT" + reportColumns + `
		FROM daily_reports
		WHERE EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2
		ORDER BY date`

	rows, err := r.DB.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports for %d-%02d: %w", year, month, err)
	}
	defer rows.Close()

	return collectReports(rows)
}

// ListAll returns every stored report ordered by date. Used to rebuild
// the local xlsx mirror after each save.
func (r *ReportRepository) ListAll(ctx context.Context) ([]models.DailyReport, error) {
	rows, err := r.DB.Query(ctx,
		"SELECT"+reportColumns+" FROM daily_reports ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	return collectReports(rows)
}

func collectReports(rows pgx.Rows) ([]models.DailyReport, error) {
	var reports []models.DailyReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, rows.Err()
}

func scanReport(row pgx.Row) (*models.DailyReport, error) {
	var report models.DailyReport
	var detailsJSON string

	err := row.Scan(
		&report.Date, &report.EmployeeName, &report.Notes,
		&report.POpen, &report.PClose, &report.PTest, &report.PRate,
		&report.DOpen, &report.DClose, &report.DTest, &report.DRate,
		&report.PetrolLitersSold, &report.PetrolAmount,
		&report.DieselLitersSold, &report.DieselAmount,
		&report.OilPackets, &report.OilPrice, &report.OilAmount,
		&report.QRAmount, &report.AdvancePaid,
		&report.OwnerPhonePayAmount, &report.YesterdayBalanceAmount,
		&report.CustomerCreditTotal, &report.DebtCollectionsTotal, &report.OtherExpensesTotal,
		&report.TotalSales, &report.CashToDeposit, &detailsJSON,
	)
	if err != nil {
		return nil, err
	}

	report.Details = models.ParseReportDetails(detailsJSON)

	return &report, nil
}
