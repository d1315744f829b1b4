package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
)

const selectRoundStatsQuery = `
SELECT id, team, player_name, position, round, opponent,
       minutes_played, fantasy_points, goals, assists, clean_sheets,
       saves, bonus_points, yellow_cards, red_cards
FROM round_stats
ORDER BY id`

const pqUndefinedTable = "42P01"

type RoundStatSource struct {
	db *sqlx.DB
}

func NewRoundStatSource(db *sqlx.DB) *RoundStatSource {
	return &RoundStatSource{db: db}
}

// FetchTeams returns one table per team, teams ordered by their first row id.
func (r *RoundStatSource) FetchTeams(ctx context.Context) ([]roundstat.TeamTable, error) {
	var rows []roundStatTableModel
	if err := r.db.SelectContext(ctx, &rows, selectRoundStatsQuery); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable {
			return nil, fmt.Errorf("select round stats: table round_stats is missing, run migrations: %w", err)
		}
		return nil, fmt.Errorf("select round stats: %w", err)
	}

	return groupByTeam(rows), nil
}

func groupByTeam(rows []roundStatTableModel) []roundstat.TeamTable {
	index := make(map[string]int)
	out := make([]roundstat.TeamTable, 0, 16)
	for _, row := range rows {
		i, ok := index[row.Team]
		if !ok {
			i = len(out)
			index[row.Team] = i
			out = append(out, roundstat.TeamTable{Team: row.Team})
		}
		out[i].Rows = append(out[i].Rows, row.toRaw())
	}
	return out
}

func (m roundStatTableModel) toRaw() roundstat.RawRecord {
	return roundstat.RawRecord{
		roundstat.FieldName:        nullString(m.PlayerName),
		roundstat.FieldPosition:    nullString(m.Position),
		roundstat.FieldRound:       nullString(m.Round),
		roundstat.FieldOpponent:    nullString(m.Opponent),
		roundstat.FieldMinutes:     nullString(m.MinutesPlayed),
		roundstat.FieldPoints:      nullString(m.FantasyPoints),
		roundstat.FieldGoals:       nullString(m.Goals),
		roundstat.FieldAssists:     nullString(m.Assists),
		roundstat.FieldCleanSheets: nullString(m.CleanSheets),
		roundstat.FieldSaves:       nullString(m.Saves),
		roundstat.FieldBonus:       nullString(m.BonusPoints),
		roundstat.FieldYellowCards: nullString(m.YellowCards),
		roundstat.FieldRedCards:    nullString(m.RedCards),
	}
}

func nullString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}
