package services

import (
	"context"
	"testing"

	"bunk-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoadsOnce(t *testing.T) {
	store := &fakeSettingsStore{settings: models.Settings{
		Employees: []string{"Ravi", "Suresh"},
	}}
	svc := NewSettingsService(store)
	ctx := context.Background()

	first, err := svc.Get(ctx)
	require.NoError(t, err)
	second, err := svc.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.loadCalls, "second read served from memory")
}

func TestSaveNormalizes(t *testing.T) {
	store := &fakeSettingsStore{}
	svc := NewSettingsService(store)

	err := svc.Save(context.Background(), &models.Settings{
		Employees:    []string{" Ravi ", "", "Suresh"},
		Customers:    []string{"Anand"},
		ExpenseNames: []string{"Tea", "  "},
		OilPrices:    []float64{350, 120, 350},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Ravi", "Suresh"}, store.settings.Employees)
	assert.Equal(t, []string{"Tea"}, store.settings.ExpenseNames)
	assert.Equal(t, []float64{120, 350}, store.settings.OilPrices)
}

func TestSaveUpdatesServedCopy(t *testing.T) {
	store := &fakeSettingsStore{settings: models.Settings{Employees: []string{"Ravi"}}}
	svc := NewSettingsService(store)
	ctx := context.Background()

	_, err := svc.Get(ctx)
	require.NoError(t, err)

	err = svc.Save(ctx, &models.Settings{Employees: []string{"Suresh"}})
	require.NoError(t, err)

	current, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Suresh"}, current.Employees)
	assert.Equal(t, 1, store.loadCalls, "save refreshes the copy without a reload")
}

func TestRefreshReloadsFromStore(t *testing.T) {
	store := &fakeSettingsStore{settings: models.Settings{Employees: []string{"Ravi"}}}
	svc := NewSettingsService(store)
	ctx := context.Background()

	_, err := svc.Get(ctx)
	require.NoError(t, err)

	// Another process edits the table directly.
	store.settings.Employees = []string{"Ravi", "Prakash"}

	refreshed, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ravi", "Prakash"}, refreshed.Employees)
	assert.Equal(t, 2, store.loadCalls)
}
