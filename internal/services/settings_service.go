package services

import (
	"context"
	"sync"

	"bunk-backend/internal/cache"
	"bunk-backend/internal/models"
)

// SettingsStore is the settings table.
type SettingsStore interface {
	Load(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, settings *models.Settings) error
}

// SettingsService serves the configured option lists. Reads go through
// an in-process copy (and Redis when available) since the lists change
// rarely but are read on every form load.
type SettingsService struct {
	store SettingsStore

	mu     sync.RWMutex
	loaded *models.Settings
}

func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the current settings, loading them on first use.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded != nil {
		return loaded, nil
	}

	if cached := cache.GetCachedSettings(ctx); cached != nil {
		s.mu.Lock()
		s.loaded = cached
		s.mu.Unlock()
		return cached, nil
	}

	return s.Refresh(ctx)
}

// Refresh drops every cached copy and reloads from the store.
func (s *SettingsService) Refresh(ctx context.Context) (*models.Settings, error) {
	settings, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	settings.Normalize()

	s.mu.Lock()
	s.loaded = settings
	s.mu.Unlock()
	cache.CacheSettings(ctx, settings)

	return settings, nil
}

// Save overwrites all option lists wholesale and refreshes the caches.
func (s *SettingsService) Save(ctx context.Context, settings *models.Settings) error {
	settings.Normalize()
	if err := s.store.Save(ctx, settings); err != nil {
		return err
	}

	s.mu.Lock()
	s.loaded = settings
	s.mu.Unlock()
	cache.InvalidateSettings(ctx)
	cache.CacheSettings(ctx, settings)

	return nil
}
