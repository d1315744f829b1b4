package ranking

import (
	"net/url"
	"testing"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_AllTeamsReturnsEveryRow(t *testing.T) {
	rows := Aggregate(sampleDataset())

	for _, label := range []string{"", AllTeams, AllTeamsKo} {
		view := Select(rows, Query{Team: label, Metric: roundstat.MetricPoints})
		require.Len(t, view.Rows, len(rows), "label %q", label)
	}
}

func TestSelect_TeamFilterIsExact(t *testing.T) {
	rows := Aggregate(sampleDataset())

	view := Select(rows, Query{Team: "B", Metric: roundstat.MetricPoints})
	require.Len(t, view.Rows, 3)
	for _, row := range view.Rows {
		assert.Equal(t, "B", row.Team)
	}

	empty := Select(rows, Query{Team: "b", Metric: roundstat.MetricPoints})
	require.NotNil(t, empty.Rows)
	require.Empty(t, empty.Rows)

	missing := Select(rows, Query{Team: "Z"})
	require.NotNil(t, missing.Rows)
	require.Empty(t, missing.Rows)
}

func TestSelect_CompactLayoutProjectsChosenMetric(t *testing.T) {
	rows := Aggregate(sampleDataset())

	view := Select(rows, Query{Metric: roundstat.MetricSaves, Layout: LayoutCompact})
	require.Equal(t, []Column{{Metric: roundstat.MetricSaves, Field: roundstat.FieldSaves}}, view.Columns)
	require.Equal(t, "Choi", view.Rows[0].Name)
	require.Equal(t, []int{6}, view.Rows[0].Values)
	require.Equal(t, 1, view.Rows[0].Rank)

	for i := 1; i < len(view.Rows); i++ {
		require.GreaterOrEqual(t, view.Rows[i-1].Values[0], view.Rows[i].Values[0])
	}
}

func TestSelect_FullLayoutDefaults(t *testing.T) {
	rows := Aggregate(sampleDataset())

	view := Select(rows, Query{})
	require.Equal(t, roundstat.MetricPoints, view.Query.Metric)
	require.Equal(t, LayoutFull, view.Query.Layout)
	require.Len(t, view.Columns, 9)
	for _, row := range view.Rows {
		require.Len(t, row.Values, 9)
	}
}

func TestSelect_PlayerRefCarriesIdentityAndFilters(t *testing.T) {
	rows := []Row{{Name: "<script>alert(1)</script> & Son", Team: "A", Position: "FW"}}

	view := Select(rows, Query{Team: "A", Metric: roundstat.MetricGoals, Layout: LayoutCompact})
	require.Len(t, view.Rows, 1)

	ref := view.Rows[0].PlayerRef
	require.Equal(t, byte('?'), ref[0])

	values, err := url.ParseQuery(ref[1:])
	require.NoError(t, err)
	assert.Equal(t, "<script>alert(1)</script> & Son", values.Get("player"))
	assert.Equal(t, "A", values.Get("team"))
	assert.Equal(t, "goals", values.Get("metric"))
	assert.Equal(t, "compact", values.Get("layout"))
	assert.NotContains(t, ref, "<")
}

func TestFilterQuery(t *testing.T) {
	assert.Equal(t, "", FilterQuery(Query{Team: AllTeams, Metric: roundstat.MetricPoints, Layout: LayoutFull}))
	assert.Equal(t, "?metric=saves&team=A", FilterQuery(Query{Team: "A", Metric: roundstat.MetricSaves}))
}

func TestTeamOptions(t *testing.T) {
	rows := []Row{{Team: "B"}, {Team: "A"}, {Team: "B"}, {Team: "C"}}
	assert.Equal(t, []string{AllTeams, "B", "A", "C"}, TeamOptions(rows))
	assert.Equal(t, []string{AllTeams}, TeamOptions(nil))
}

func TestParseLayout(t *testing.T) {
	got, err := ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, LayoutFull, got)

	got, err = ParseLayout("COMPACT")
	require.NoError(t, err)
	assert.Equal(t, LayoutCompact, got)

	_, err = ParseLayout("wide")
	require.ErrorIs(t, err, ErrUnknownLayout)
}
