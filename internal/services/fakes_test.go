package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bunk-backend/internal/models"
)

// In-memory stores for service tests. They mirror the repository
// contracts without a database.

type fakeReportStore struct {
	reports     map[string]models.DailyReport
	upsertCalls int
	listErr     error
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{reports: make(map[string]models.DailyReport)}
}

func (f *fakeReportStore) FindByDate(_ context.Context, date string) (*models.DailyReport, error) {
	r, ok := f.reports[date]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeReportStore) Upsert(_ context.Context, report *models.DailyReport) error {
	f.upsertCalls++
	f.reports[report.Date] = *report
	return nil
}

func (f *fakeReportStore) ListMonth(_ context.Context, year int, month int) ([]models.DailyReport, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	var out []models.DailyReport
	for _, r := range f.reports {
		if strings.HasPrefix(r.Date, prefix) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (f *fakeReportStore) ListAll(_ context.Context) ([]models.DailyReport, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.DailyReport
	for _, r := range f.reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

type fakeMirror struct {
	writes int
	err    error
}

func (f *fakeMirror) WriteAll(_ context.Context, _ []models.DailyReport) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.writes++
	return "bunk_data/daily_reports.xlsx", nil
}

type fakeBackup struct {
	uploads []string
	err     error
}

func (f *fakeBackup) Upload(_ context.Context, path string) error {
	if f.err != nil {
		return f.err
	}
	f.uploads = append(f.uploads, path)
	return nil
}

type fakeBalanceStore struct {
	balances   []models.LedgerBalance
	replaceErr error
}

func (f *fakeBalanceStore) LoadAll(_ context.Context) ([]models.LedgerBalance, error) {
	out := make([]models.LedgerBalance, len(f.balances))
	copy(out, f.balances)
	return out, nil
}

func (f *fakeBalanceStore) ReplaceAll(_ context.Context, balances []models.LedgerBalance) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.balances = make([]models.LedgerBalance, len(balances))
	copy(f.balances, balances)
	return nil
}

type fakeLogStore struct {
	entries   []models.LedgerLogEntry
	appendErr error
}

func (f *fakeLogStore) Append(_ context.Context, entry *models.LedgerLogEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	entry.ID = len(f.entries) + 1
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeLogStore) List(_ context.Context, customer string, limit int) ([]models.LedgerLogEntry, error) {
	var out []models.LedgerLogEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if customer != "" && f.entries[i].Customer != customer {
			continue
		}
		out = append(out, f.entries[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

type fakeSettingsStore struct {
	settings  models.Settings
	loadCalls int
	saveCalls int
}

func (f *fakeSettingsStore) Load(_ context.Context) (*models.Settings, error) {
	f.loadCalls++
	s := f.settings
	return &s, nil
}

func (f *fakeSettingsStore) Save(_ context.Context, settings *models.Settings) error {
	f.saveCalls++
	f.settings = *settings
	return nil
}
