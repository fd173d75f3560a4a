package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"shareit/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware applies cfg. Browser clients always get to send the actor
// header and read the request id, whatever the configured lists hold.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeader(cfg.AllowHeaders, SharerUserIDHeader),
		ExposeHeaders:    withHeader(cfg.ExposeHeaders, requestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

func withHeader(headers []string, name string) []string {
	if slices.ContainsFunc(headers, func(h string) bool { return strings.EqualFold(h, name) }) {
		return headers
	}
	return append(slices.Clone(headers), name)
}
