package request

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AddPlayerRequest is the request body for adding a player
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// UpdateScoreRequest is the request body for setting a score.
// Value is the raw input and is normalized by the sheet, so "12", 12 and
// "abc" are all accepted.
type UpdateScoreRequest struct {
	Value ScoreValue `json:"value"`
}

// ScoreValue accepts a JSON string, number or null and keeps it as raw text
type ScoreValue string

// UnmarshalJSON implements json.Unmarshaler
func (v *ScoreValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = ScoreValue(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("score value must be a string or number: %w", err)
		}
		*v = ScoreValue(n.String())
	}
	return nil
}
