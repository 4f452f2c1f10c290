package model

import "errors"

// Common errors used across the application.
// Sheet operations themselves never fail; these come from lookups.
var (
	ErrSheetNotFound  = errors.New("sheet not found")
	ErrPlayerNotFound = errors.New("player not found")
)
