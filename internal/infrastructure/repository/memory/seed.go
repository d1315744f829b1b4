package memory

import "github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"

const (
	TeamUlsan   = "울산 HD"
	TeamJeonbuk = "전북 현대"
	TeamPohang  = "포항 스틸러스"
)

// seedRow builds a sheet-shaped record. stats follow the sheet column order:
// minutes, points, goals, assists, clean sheets, saves, bonus, yellow, red.
func seedRow(name, position, round, opponent string, stats ...any) roundstat.RawRecord {
	raw := roundstat.RawRecord{
		roundstat.FieldName:     name,
		roundstat.FieldPosition: position,
		roundstat.FieldRound:    round,
		roundstat.FieldOpponent: opponent,
	}
	for i, info := range roundstat.Metrics() {
		if i < len(stats) {
			raw[info.Field] = stats[i]
		}
	}
	return raw
}

// SeedRoundStats is a small K League sample. Some cells are text or blank, as in a hand-kept sheet.
func SeedRoundStats() []roundstat.TeamTable {
	return []roundstat.TeamTable{
		{
			Team: TeamUlsan,
			Rows: []roundstat.RawRecord{
				seedRow("주민규", "FW", "1", TeamPohang, 90, 9, 1, 1, 0, 0, 2, 0, 0),
				seedRow("조현우", "GK", "1", TeamPohang, 90, 7, 0, 0, 1, 4, 1, 0, 0),
				seedRow("이청용", "MF", "1", TeamPohang, 64, 2, 0, 0, 0, 0, 0, 1, 0),
				seedRow("주민규", "FW", "2", TeamJeonbuk, 78, "5", 1, 0, 0, 0, "", 0, 0),
				seedRow("조현우", "GK", "2", TeamJeonbuk, 90, 2, 0, 0, 0, 3, 0, 0, 0),
				seedRow("이청용", "MF", "2", TeamJeonbuk, "", "", "", "", "", "", "", "", ""),
			},
		},
		{
			Team: TeamJeonbuk,
			Rows: []roundstat.RawRecord{
				seedRow("송민규", "MF", "1", "광주 FC", 90, 8, 1, 0, 0, 0, 1, 0, 0),
				seedRow("김진수", "DF", "1", "광주 FC", 90, 6, 0, 0, 1, 0, 0, 1, 0),
				seedRow("송민규", "MF", "2", TeamUlsan, 85, 3, 0, 1, 0, 0, 0, 0, 0),
				seedRow("김진수", "DF", "2", TeamUlsan, 90, 1, 0, 0, 0, 0, 0, 0, 1),
				seedRow("티아고", "FW", "2", TeamUlsan, 45.0, 12, 2, 0, 0, 0, 3, 0, 0),
			},
		},
		{
			Team: TeamPohang,
			Rows: []roundstat.RawRecord{
				seedRow("정재희", "FW", "1", TeamUlsan, 90, 2, 0, 0, 0, 0, 0, 0, 0),
				seedRow("황인재", "GK", "1", TeamUlsan, 90, 3, 0, 0, 0, 6, 1, 0, 0),
				seedRow("정재희", "FW", "2", "대구 FC", 90, "10", 2, "1", 0, 0, 3, 0, 0),
				seedRow("황인재", "GK", "2", "대구 FC", 90, 9.0, 0, 0, 1, 5, 2, 0, 0),
			},
		},
	}
}
