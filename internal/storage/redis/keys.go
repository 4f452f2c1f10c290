package redis

import (
	"fmt"

	"github.com/mcoot/scoresheet/internal/model"
)

// Key prefix for all score sheet data
const keyPrefix = "scoresheet"

// sheetKey returns the Redis key for a Sheet
func sheetKey(code model.SheetCode) string {
	return fmt.Sprintf("%s:sheet:%s", keyPrefix, code)
}
