package roundstat

import "context"

// Source supplies the raw per-round tables, one per team.
type Source interface {
	FetchTeams(ctx context.Context) ([]TeamTable, error)
}
