package ranking

import (
	"net/url"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
	"github.com/samber/lo"
)

// Query is the presenter-chosen projection of the ranking.
type Query struct {
	Team   string           `json:"team"`
	Metric roundstat.Metric `json:"metric"`
	Layout Layout           `json:"layout"`
}

// Column is one metric column of a view.
type Column struct {
	Metric roundstat.Metric `json:"metric"`
	Field  string           `json:"field"`
}

// ViewRow is a ranking row projected to the view's columns.
// PlayerRef is the query string that selects the player; it is URL-encoded but not markup-escaped.
type ViewRow struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Team      string `json:"team"`
	Position  string `json:"position"`
	Values    []int  `json:"values"`
	PlayerRef string `json:"playerRef"`
}

type View struct {
	Query   Query     `json:"query"`
	Columns []Column  `json:"columns"`
	Rows    []ViewRow `json:"rows"`
}

// Select filters rows by team, sorts them by the query metric and projects the layout columns.
// A team with no rows yields an empty view.
func Select(rows []Row, q Query) View {
	if !q.Metric.Valid() {
		q.Metric = roundstat.DefaultMetric
	}
	if q.Layout != LayoutCompact {
		q.Layout = LayoutFull
	}

	columns := viewColumns(q)
	sorted := Sort(FilterTeam(rows, q.Team), q.Metric)

	out := make([]ViewRow, 0, len(sorted))
	for i, row := range sorted {
		values := make([]int, 0, len(columns))
		for _, col := range columns {
			values = append(values, row.Stats.Value(col.Metric))
		}
		out = append(out, ViewRow{
			Rank:      i + 1,
			Name:      row.Name,
			Team:      row.Team,
			Position:  row.Position,
			Values:    values,
			PlayerRef: PlayerRef(row.Name, q),
		})
	}

	return View{Query: q, Columns: columns, Rows: out}
}

func viewColumns(q Query) []Column {
	if q.Layout == LayoutCompact {
		return []Column{{Metric: q.Metric, Field: q.Metric.Field()}}
	}
	return lo.Map(roundstat.Metrics(), func(info roundstat.MetricInfo, _ int) Column {
		return Column{Metric: info.Key, Field: info.Field}
	})
}

// FilterTeam keeps rows whose team equals team exactly, or all rows for the all-teams label.
func FilterTeam(rows []Row, team string) []Row {
	if IsAllTeams(team) {
		return append(make([]Row, 0, len(rows)), rows...)
	}
	return lo.Filter(rows, func(row Row, _ int) bool {
		return row.Team == team
	})
}

// TeamOptions lists the filter choices: the all-teams label, then each team in first-appearance order.
func TeamOptions(rows []Row) []string {
	teams := lo.Uniq(lo.Map(rows, func(row Row, _ int) string { return row.Team }))
	return append([]string{AllTeams}, teams...)
}

// PlayerRef builds the query string that focuses name while keeping the active filters.
func PlayerRef(name string, q Query) string {
	values := filterValues(q)
	values.Set("player", name)
	return "?" + values.Encode()
}

// FilterQuery encodes only the active filters, so the reset action returns to the same table.
func FilterQuery(q Query) string {
	values := filterValues(q)
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func filterValues(q Query) url.Values {
	values := url.Values{}
	if !IsAllTeams(q.Team) {
		values.Set("team", q.Team)
	}
	if q.Metric != "" && q.Metric != roundstat.DefaultMetric {
		values.Set("metric", string(q.Metric))
	}
	if q.Layout == LayoutCompact {
		values.Set("layout", string(LayoutCompact))
	}
	return values
}
