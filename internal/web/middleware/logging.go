package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/scoresheet/internal/middleware"
)

// Logging logs each page request with surface=web so browser traffic can be
// told apart from API calls sharing the same logger.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("surface", "web")))
}
