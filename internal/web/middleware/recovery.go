package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/scoresheet/internal/middleware"
)

// Recovery creates panic recovery middleware for the score sheet pages
// Returns an HTML error page on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, htmlPanicHandler)
}

func htmlPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Error | Scoresheet</title></head>
<body>
<h1>Something went wrong</h1>
<p>The score sheet could not be shown. Your scores are kept; try again.</p>
<p><a href="/">Back to the score sheet</a></p>
</body>
</html>`))
}
