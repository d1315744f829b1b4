package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/ranking"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
)

func TestRoundStatSource_ReturnsCopies(t *testing.T) {
	source := NewRoundStatSource(SeedRoundStats())

	first, err := source.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("fetch teams: %v", err)
	}
	first[0].Rows[0][roundstat.FieldName] = "mutated"
	first[0].Team = "mutated"

	second, _ := source.FetchTeams(context.Background())
	if second[0].Team != TeamUlsan || second[0].Rows[0][roundstat.FieldName] != "주민규" {
		t.Fatalf("caller mutation leaked into the source: %+v", second[0].Rows[0])
	}
}

func TestRoundStatSource_Replace(t *testing.T) {
	source := NewRoundStatSource(SeedRoundStats())
	source.Replace([]roundstat.TeamTable{{Team: "FC 서울"}})

	tables, _ := source.FetchTeams(context.Background())
	if len(tables) != 1 || tables[0].Team != "FC 서울" {
		t.Fatalf("unexpected tables after replace: %+v", tables)
	}
}

func TestSeedRoundStats_Aggregates(t *testing.T) {
	ds := roundstat.Normalize(SeedRoundStats())
	rows := ranking.Aggregate(ds)

	var joo ranking.Row
	for _, row := range rows {
		if row.Name == "주민규" {
			joo = row
		}
	}
	if joo.Stats.Points != 14 || joo.Stats.Minutes != 168 || joo.Stats.Goals != 2 {
		t.Fatalf("unexpected seed totals: %+v", joo.Stats)
	}

	view := ranking.Select(rows, ranking.Query{Metric: roundstat.MetricPoints})
	if view.Rows[0].Name != "주민규" || view.Rows[0].Rank != 1 {
		t.Fatalf("unexpected leader: %s", view.Rows[0].Name)
	}
}
