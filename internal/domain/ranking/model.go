package ranking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
)

var ErrUnknownLayout = errors.New("unknown layout")

// Labels that disable the team filter. The Korean label is the one the sheet UI uses.
const (
	AllTeams   = "All"
	AllTeamsKo = "전체"
)

// Row is the season-cumulative total of one (name, team, position) triple.
type Row struct {
	Name     string          `json:"name"`
	Team     string          `json:"team"`
	Position string          `json:"position"`
	Stats    roundstat.Stats `json:"stats"`
}

// Layout selects which metric columns a view carries.
type Layout string

const (
	LayoutFull    Layout = "full"
	LayoutCompact Layout = "compact"
)

func ParseLayout(v string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(v))) {
	case "", LayoutFull:
		return LayoutFull, nil
	case LayoutCompact:
		return LayoutCompact, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, v)
	}
}

// IsAllTeams reports whether team disables filtering.
func IsAllTeams(team string) bool {
	switch strings.TrimSpace(team) {
	case "", AllTeams, AllTeamsKo:
		return true
	default:
		return false
	}
}
