package ranking

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
)

type groupKey struct {
	name     string
	team     string
	position string
}

// Aggregate sums every metric per exact (name, team, position) triple.
// Rows come out in ascending key order; that order is the tie-break for Sort.
func Aggregate(ds roundstat.Dataset) []Row {
	index := make(map[groupKey]int, len(ds))
	rows := make([]Row, 0, len(ds))

	for _, rec := range ds {
		key := groupKey{name: rec.Name, team: rec.Team, position: rec.Position}
		if i, ok := index[key]; ok {
			rows[i].Stats = rows[i].Stats.Add(rec.Stats)
			continue
		}
		index[key] = len(rows)
		rows = append(rows, Row{
			Name:     rec.Name,
			Team:     rec.Team,
			Position: rec.Position,
			Stats:    rec.Stats,
		})
	}

	slices.SortFunc(rows, func(a, b Row) int {
		return cmp.Or(
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.Team, b.Team),
			cmp.Compare(a.Position, b.Position),
		)
	})

	return rows
}

// Sort returns a copy of rows ordered by metric, highest first. Ties keep their input order.
func Sort(rows []Row, metric roundstat.Metric) []Row {
	out := append(make([]Row, 0, len(rows)), rows...)
	slices.SortStableFunc(out, func(a, b Row) int {
		return cmp.Compare(b.Stats.Value(metric), a.Stats.Value(metric))
	})
	return out
}
