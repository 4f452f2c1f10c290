package model

// Medal marks one of the top three positions on a sheet
type Medal string

const (
	MedalNone   Medal = ""
	MedalGold   Medal = "gold"
	MedalSilver Medal = "silver"
	MedalBronze Medal = "bronze"
)

// MedalCount is the number of positions that receive a medal
const MedalCount = 3

// MedalForPosition returns the medal for a 0-based ranking position
func MedalForPosition(position int) Medal {
	switch position {
	case 0:
		return MedalGold
	case 1:
		return MedalSilver
	case 2:
		return MedalBronze
	default:
		return MedalNone
	}
}

// Icon returns the emoji shown for the medal
func (m Medal) Icon() string {
	switch m {
	case MedalGold:
		return "🥇"
	case MedalSilver:
		return "🥈"
	case MedalBronze:
		return "🥉"
	default:
		return ""
	}
}

// Standing is a player's ranked position on a sheet
type Standing struct {
	Position int // 0-based
	Player   Player
	Medal    Medal
}
