package pages

import (
	"github.com/mcoot/scoresheet/internal/web/templates/components"
	"github.com/mcoot/scoresheet/internal/web/templates/layout"
)

// SheetData holds data for the score sheet page. Exactly one of Setup and
// Table is set, depending on whether the game has started.
type SheetData struct {
	layout.PageData
	Code  string
	Setup *components.SetupData
	Table *components.ScoreTableData
}
