package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"bunk-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// mirrorColumns is the xlsx header row. The order matches the
// daily_reports table and must not change: the workbook doubles as the
// owner's offline copy of the ledger.
var mirrorColumns = []string{
	"date", "employee_name", "notes",
	"p_open", "p_close", "p_test", "p_rate",
	"d_open", "d_close", "d_test", "d_rate",
	"petrol_liters_sold", "petrol_amount", "diesel_liters_sold", "diesel_amount",
	"oil_packets", "oil_price", "oil_amount",
	"qr_amount", "advance_paid", "owner_phonepay_amount", "yesterday_balance_amount",
	"customer_credit_total", "debt_collections_total", "other_expenses_total",
	"total_sales", "cash_to_deposit", "details_json",
}

const mirrorSheet = "Daily Reports"
const mirrorFile = "daily_reports.xlsx"

// ExportService maintains a local xlsx mirror of all daily reports.
// The mirror is advisory: a failed write never fails the save that
// triggered it.
type ExportService struct {
	dir string
}

func NewExportService(dir string) *ExportService {
	return &ExportService{dir: dir}
}

// FilePath is where the mirror workbook lives on disk.
func (s *ExportService) FilePath() string {
	return filepath.Join(s.dir, mirrorFile)
}

// WriteAll rebuilds the whole workbook from the given reports and
// returns the written path. Rebuilding from scratch keeps the mirror
// consistent with the store without tracking per-row state.
func (s *ExportService) WriteAll(ctx context.Context, reports []models.DailyReport) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(mirrorSheet)
	if err != nil {
		return "", fmt.Errorf("failed to create mirror sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, name := range mirrorColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(mirrorSheet, cell, name); err != nil {
			return "", fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, report := range reports {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		detailsJSON, err := json.Marshal(report.Details)
		if err != nil {
			return "", fmt.Errorf("failed to serialize details for %s: %w", report.Date, err)
		}

		values := []interface{}{
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
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return "", fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(mirrorSheet, cell, value); err != nil {
				return "", fmt.Errorf("failed to write row for %s: %w", report.Date, err)
			}
		}
	}

	path := s.FilePath()
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save mirror workbook: %w", err)
	}
	return path, nil
}
