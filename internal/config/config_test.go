package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// No configs/config.yaml relative to the test working directory, so
	// every value comes from the defaults.
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "")
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		cfg.Server.CorsAllowedMethods)
	assert.Equal(t, []string{"Content-Type", "Authorization"},
		cfg.Server.CorsAllowedHeaders)
	assert.Equal(t, "bunk_db", cfg.Database.Name)
	assert.Equal(t, 5.0, cfg.Outlet.DefaultTestLiter)
	assert.Equal(t, "bunk_data", cfg.Export.Dir)
}
