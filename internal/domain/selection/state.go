package selection

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxPlayerLength bounds the byte length of an accepted player parameter.
const MaxPlayerLength = 128

// State is the per-session focus: either no player (ranking view) or one player (history view).
// The zero value is Unselected.
type State struct {
	Player   string `json:"player"`
	Selected bool   `json:"selected"`
}

func Unselected() State {
	return State{}
}

func Selected(player string) State {
	return State{Player: player, Selected: true}
}

func (s State) IsSelected() bool {
	return s.Selected
}

// Observe applies the player parameter values of one interaction.
// The first value wins. An absent, blank or rejected value leaves the state as is,
// so a selection survives interactions that do not name a player.
// The bool reports whether the state changed.
func (s State) Observe(values []string) (State, bool) {
	if len(values) == 0 {
		return s, false
	}
	player := values[0]
	if !ValidPlayerParam(player) {
		return s, false
	}
	next := Selected(player)
	return next, next != s
}

// Reset returns to Unselected. It is the only transition out of Selected.
func (s State) Reset() State {
	return Unselected()
}

// ValidPlayerParam reports whether v may become a selection.
// The value is otherwise untrusted; presenters must escape it.
func ValidPlayerParam(v string) bool {
	if strings.TrimSpace(v) == "" {
		return false
	}
	if len(v) > MaxPlayerLength || !utf8.ValidString(v) {
		return false
	}
	return strings.IndexFunc(v, unicode.IsControl) < 0
}
