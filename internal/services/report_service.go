package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"bunk-backend/internal/calc"
	"bunk-backend/internal/metrics"
	"bunk-backend/internal/models"
	"bunk-backend/internal/timeutil"
)

// ErrNoPreviousReport is returned by CarryForward when the previous
// calendar day has no saved report.
var ErrNoPreviousReport = errors.New("no report for previous day")

// ReportStore is the persistence surface ReportService needs. The
// pgx-backed ReportRepository satisfies it; tests use in-memory fakes.
type ReportStore interface {
	FindByDate(ctx context.Context, date string) (*models.DailyReport, error)
	Upsert(ctx context.Context, report *models.DailyReport) error
	ListMonth(ctx context.Context, year int, month int) ([]models.DailyReport, error)
	ListAll(ctx context.Context) ([]models.DailyReport, error)
}

// ReportMirror rebuilds the local xlsx copy of all reports.
type ReportMirror interface {
	WriteAll(ctx context.Context, reports []models.DailyReport) (string, error)
}

// MirrorBackup pushes the mirror file offsite.
type MirrorBackup interface {
	Upload(ctx context.Context, path string) error
}

type ReportService struct {
	store       ReportStore
	mirror      ReportMirror
	backup      MirrorBackup
	defaultTest float64
}

func NewReportService(store ReportStore, mirror ReportMirror, backup MirrorBackup, defaultTest float64) *ReportService {
	return &ReportService{
		store:       store,
		mirror:      mirror,
		backup:      backup,
		defaultTest: defaultTest,
	}
}

// Fetch returns the stored report for a date. When none exists it
// returns a blank report pre-filled with the date and the default test
// liters, and exists=false, so the entry form can start from it.
func (s *ReportService) Fetch(ctx context.Context, date string) (*models.DailyReport, bool, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return nil, false, validationf("invalid date %q: want YYYY-MM-DD", date)
	}

	report, err := s.store.FindByDate(ctx, date)
	if err != nil {
		return nil, false, err
	}
	if report != nil {
		return report, true, nil
	}

	return &models.DailyReport{
		Date:  date,
		PTest: s.defaultTest,
		DTest: s.defaultTest,
	}, false, nil
}

// CarryForward returns the previous day's closing readings and rates
// as the opening values for the given date. Only those four fields
// carry over.
func (s *ReportService) CarryForward(ctx context.Context, date string) (*models.CarryForward, error) {
	prev, err := timeutil.PreviousDate(date)
	if err != nil {
		return nil, validationf("invalid date %q: want YYYY-MM-DD", date)
	}

	report, err := s.store.FindByDate(ctx, prev)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNoPreviousReport
	}

	return &models.CarryForward{
		POpen: report.PClose,
		DOpen: report.DClose,
		PRate: report.PRate,
		DRate: report.DRate,
	}, nil
}

// Save computes the full report from raw input and upserts it by date.
// Saving the same date twice replaces the earlier row. The xlsx mirror
// and its offsite backup are refreshed afterwards; their failures are
// logged and reported as a warning, never as a save failure.
func (s *ReportService) Save(ctx context.Context, in models.ReportInput) (*models.DailyReport, string, error) {
	if _, err := timeutil.ParseDate(in.Date); err != nil {
		return nil, "", validationf("invalid date %q: want YYYY-MM-DD", in.Date)
	}

	report := calc.BuildReport(in)
	if err := calc.Validate(report); err != nil {
		return nil, "", &ValidationError{Err: err}
	}

	if err := s.store.Upsert(ctx, &report); err != nil {
		return nil, "", err
	}
	metrics.ReportsSaved.Inc()

	warning := s.refreshMirror(ctx)
	return &report, warning, nil
}

func (s *ReportService) refreshMirror(ctx context.Context) string {
	if s.mirror == nil {
		return ""
	}

	reports, err := s.store.ListAll(ctx)
	if err != nil {
		log.Printf("[Reports] Mirror refresh: list failed: %v", err)
		return fmt.Sprintf("saved, but xlsx mirror not refreshed: %v", err)
	}

	path, err := s.mirror.WriteAll(ctx, reports)
	if err != nil {
		log.Printf("[Reports] Mirror refresh failed: %v", err)
		return fmt.Sprintf("saved, but xlsx mirror not refreshed: %v", err)
	}

	if s.backup != nil {
		if err := s.backup.Upload(ctx, path); err != nil {
			log.Printf("[Reports] Mirror backup failed: %v", err)
			return fmt.Sprintf("saved, but mirror backup failed: %v", err)
		}
	}
	return ""
}

// MonthlySummary returns every report of a YYYY-MM month plus the
// month totals shown on the reports page.
func (s *ReportService) MonthlySummary(ctx context.Context, month string) (*models.MonthlySummary, error) {
	t, err := timeutil.ParseMonth(month)
	if err != nil {
		return nil, validationf("invalid month %q: want YYYY-MM", month)
	}

	reports, err := s.store.ListMonth(ctx, t.Year(), int(t.Month()))
	if err != nil {
		return nil, err
	}

	summary := &models.MonthlySummary{Month: month, Reports: reports}
	for _, r := range reports {
		summary.TotalSales += r.TotalSales
		summary.TotalCashToDeposit += r.CashToDeposit
		summary.TotalQRAmount += r.QRAmount
	}
	summary.TotalSales = calc.Money(summary.TotalSales)
	summary.TotalCashToDeposit = calc.Money(summary.TotalCashToDeposit)
	summary.TotalQRAmount = calc.Money(summary.TotalQRAmount)
	return summary, nil
}

// AllReports returns every stored report, ordered by date.
func (s *ReportService) AllReports(ctx context.Context) ([]models.DailyReport, error) {
	return s.store.ListAll(ctx)
}
