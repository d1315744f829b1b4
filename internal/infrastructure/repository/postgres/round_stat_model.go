package postgres

import "database/sql"

// roundStatTableModel mirrors round_stats. Stat columns are text so sheet exports load unchanged.
type roundStatTableModel struct {
	ID            int64          `db:"id"`
	Team          string         `db:"team"`
	PlayerName    sql.NullString `db:"player_name"`
	Position      sql.NullString `db:"position"`
	Round         sql.NullString `db:"round"`
	Opponent      sql.NullString `db:"opponent"`
	MinutesPlayed sql.NullString `db:"minutes_played"`
	FantasyPoints sql.NullString `db:"fantasy_points"`
	Goals         sql.NullString `db:"goals"`
	Assists       sql.NullString `db:"assists"`
	CleanSheets   sql.NullString `db:"clean_sheets"`
	Saves         sql.NullString `db:"saves"`
	BonusPoints   sql.NullString `db:"bonus_points"`
	YellowCards   sql.NullString `db:"yellow_cards"`
	RedCards      sql.NullString `db:"red_cards"`
}
