package roundstat

// History returns the unaggregated rows of a player in dataset order.
// An unknown player yields an empty, non-nil slice.
func History(ds Dataset, player string) []HistoryRow {
	out := make([]HistoryRow, 0)
	for _, rec := range ds {
		if rec.Name != player {
			continue
		}
		out = append(out, HistoryRow{
			Team:     rec.Team,
			Round:    rec.Round,
			Opponent: rec.Opponent,
			Stats:    rec.Stats,
		})
	}
	return out
}
