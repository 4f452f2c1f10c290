package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcoot/scoresheet/internal/model"
	"github.com/mcoot/scoresheet/internal/services/sheet"
)

// SheetCookieName is the cookie that binds a browser to its sheet
const SheetCookieName = "sheet"

const (
	sheetContextKey contextKey = "sheet"
)

// GetSheet retrieves the active sheet from the request context
// Returns nil outside the ActiveSheet middleware
func GetSheet(ctx context.Context) *model.Sheet {
	s, _ := ctx.Value(sheetContextKey).(*model.Sheet)
	return s
}

// SetSheetCookie points the browser at a sheet for the rest of its session
func SetSheetCookie(w http.ResponseWriter, code model.SheetCode) {
	http.SetCookie(w, &http.Cookie{
		Name:     SheetCookieName,
		Value:    string(code),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSheetCookie forgets the browser's sheet
func ClearSheetCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SheetCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ActiveSheet returns middleware that loads the browser's sheet into the
// context. A browser without a sheet, or whose sheet has expired, gets a
// fresh one.
func ActiveSheet(controller sheet.ControllerInterface, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := loadSheet(r, controller)
			if err != nil {
				logger.Error("failed to load sheet",
					slog.String("error", err.Error()),
				)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			if s == nil {
				s, err = controller.CreateSheet(r.Context())
				if err != nil {
					logger.Error("failed to create sheet",
						slog.String("error", err.Error()),
					)
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				SetSheetCookie(w, s.Code)
			}

			ctx := context.WithValue(r.Context(), sheetContextKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func loadSheet(r *http.Request, controller sheet.ControllerInterface) (*model.Sheet, error) {
	cookie, err := r.Cookie(SheetCookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	s, err := controller.GetSheet(r.Context(), model.SheetCode(cookie.Value))
	if errors.Is(err, model.ErrSheetNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
