package middleware

import (
	"net/http"

	"bunk-backend/internal/config"

	"github.com/rs/cors"
)

// CORS builds the CORS handler from the configured origin, method and
// header lists.
func CORS(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CorsAllowedOrigins,
		AllowedMethods:   cfg.Server.CorsAllowedMethods,
		AllowedHeaders:   cfg.Server.CorsAllowedHeaders,
		AllowCredentials: true,
	})
	return c.Handler
}
