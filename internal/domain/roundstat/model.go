package roundstat

// Field names of the per-round sheet header row. Sources must provide these keys.
const (
	FieldName        = "이름"
	FieldTeam        = "소속팀"
	FieldPosition    = "포지션"
	FieldRound       = "라운드"
	FieldOpponent    = "상대팀"
	FieldMinutes     = "출전시간"
	FieldPoints      = "FKL 포인트"
	FieldGoals       = "득점"
	FieldAssists     = "도움"
	FieldCleanSheets = "클린시트"
	FieldSaves       = "선방"
	FieldBonus       = "보너스 포인트"
	FieldYellowCards = "경고"
	FieldRedCards    = "퇴장"
)

// RawRecord is one unparsed per-round row as delivered by a source.
type RawRecord map[string]any

// TeamTable groups the raw rows of one team. Team is not part of the rows themselves.
type TeamTable struct {
	Team string
	Rows []RawRecord
}

// Stats holds the nine numeric per-round statistics.
type Stats struct {
	Minutes     int `json:"minutes"`
	Points      int `json:"points"`
	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
	CleanSheets int `json:"cleanSheets"`
	Saves       int `json:"saves"`
	Bonus       int `json:"bonus"`
	YellowCards int `json:"yellowCards"`
	RedCards    int `json:"redCards"`
}

func (s Stats) Add(o Stats) Stats {
	return Stats{
		Minutes:     s.Minutes + o.Minutes,
		Points:      s.Points + o.Points,
		Goals:       s.Goals + o.Goals,
		Assists:     s.Assists + o.Assists,
		CleanSheets: s.CleanSheets + o.CleanSheets,
		Saves:       s.Saves + o.Saves,
		Bonus:       s.Bonus + o.Bonus,
		YellowCards: s.YellowCards + o.YellowCards,
		RedCards:    s.RedCards + o.RedCards,
	}
}

// Value returns the statistic addressed by m. Unknown metrics read as zero.
func (s Stats) Value(m Metric) int {
	switch m {
	case MetricPoints:
		return s.Points
	case MetricMinutes:
		return s.Minutes
	case MetricGoals:
		return s.Goals
	case MetricAssists:
		return s.Assists
	case MetricCleanSheets:
		return s.CleanSheets
	case MetricSaves:
		return s.Saves
	case MetricBonus:
		return s.Bonus
	case MetricYellowCards:
		return s.YellowCards
	case MetricRedCards:
		return s.RedCards
	default:
		return 0
	}
}

// Record is a normalized per-round row. Seq is its position in the combined dataset.
type Record struct {
	Seq      int
	Name     string
	Team     string
	Position string
	Round    string
	Opponent string
	Stats    Stats
}

// Dataset is the combined, normalized record set of every team.
type Dataset []Record

// HistoryRow is one round of a single player, unaggregated.
type HistoryRow struct {
	Team     string `json:"team"`
	Round    string `json:"round"`
	Opponent string `json:"opponent"`
	Stats
}
