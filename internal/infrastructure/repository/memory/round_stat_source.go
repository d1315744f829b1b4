package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
)

// RoundStatSource serves a fixed set of team tables. Callers get copies.
type RoundStatSource struct {
	mu     sync.RWMutex
	tables []roundstat.TeamTable
}

func NewRoundStatSource(tables []roundstat.TeamTable) *RoundStatSource {
	return &RoundStatSource{tables: cloneTables(tables)}
}

func (r *RoundStatSource) FetchTeams(_ context.Context) ([]roundstat.TeamTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneTables(r.tables), nil
}

// Replace swaps the served tables, e.g. after a manual sheet import.
func (r *RoundStatSource) Replace(tables []roundstat.TeamTable) {
	cloned := cloneTables(tables)

	r.mu.Lock()
	r.tables = cloned
	r.mu.Unlock()
}

func cloneTables(tables []roundstat.TeamTable) []roundstat.TeamTable {
	out := make([]roundstat.TeamTable, 0, len(tables))
	for _, table := range tables {
		rows := make([]roundstat.RawRecord, 0, len(table.Rows))
		for _, row := range table.Rows {
			rows = append(rows, maps.Clone(row))
		}
		out = append(out, roundstat.TeamTable{Team: table.Team, Rows: rows})
	}
	return out
}
