package cache

import (
	"context"
	"maps"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
	basecache "github.com/riskibarqy/fkl-dashboard/internal/platform/cache"
)

const teamsKey = "roundstat:teams"

// RoundStatSource memoizes the wrapped source for the store's TTL.
// Concurrent misses share one upstream fetch.
type RoundStatSource struct {
	next  roundstat.Source
	cache *basecache.Store[[]roundstat.TeamTable]
}

func NewRoundStatSource(next roundstat.Source, cache *basecache.Store[[]roundstat.TeamTable]) *RoundStatSource {
	return &RoundStatSource{next: next, cache: cache}
}

func (r *RoundStatSource) FetchTeams(ctx context.Context) ([]roundstat.TeamTable, error) {
	tables, err := r.cache.GetOrLoad(ctx, teamsKey, r.next.FetchTeams)
	if err != nil {
		return nil, err
	}
	return cloneTables(tables), nil
}

func cloneTables(tables []roundstat.TeamTable) []roundstat.TeamTable {
	out := make([]roundstat.TeamTable, len(tables))
	for i, table := range tables {
		rows := make([]roundstat.RawRecord, len(table.Rows))
		for j, row := range table.Rows {
			rows[j] = maps.Clone(row)
		}
		out[i] = roundstat.TeamTable{Team: table.Team, Rows: rows}
	}
	return out
}
