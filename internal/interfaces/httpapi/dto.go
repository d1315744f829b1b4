package httpapi

import (
	"github.com/riskibarqy/fkl-dashboard/internal/domain/ranking"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
	"github.com/riskibarqy/fkl-dashboard/internal/usecase"
)

type queryDTO struct {
	Team   string `json:"team"`
	Metric string `json:"metric"`
	Layout string `json:"layout"`
}

type columnDTO struct {
	Metric string `json:"metric"`
	Label  string `json:"label"`
}

type rankingRowDTO struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Team      string `json:"team"`
	Position  string `json:"position"`
	Values    []int  `json:"values"`
	PlayerRef string `json:"playerRef"`
}

type rankingDTO struct {
	Query   queryDTO        `json:"query"`
	Columns []columnDTO     `json:"columns"`
	Rows    []rankingRowDTO `json:"rows"`
}

type metricDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type statsDTO struct {
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

type historyRowDTO struct {
	Team     string   `json:"team"`
	Round    string   `json:"round"`
	Opponent string   `json:"opponent"`
	Stats    statsDTO `json:"stats"`
}

type playerHistoryDTO struct {
	Player string          `json:"player"`
	Rounds []historyRowDTO `json:"rounds"`
}

type dashboardDTO struct {
	Mode          string            `json:"mode"`
	Query         queryDTO          `json:"query"`
	FilterQuery   string            `json:"filterQuery"`
	TeamOptions   []string          `json:"teamOptions"`
	MetricOptions []metricDTO       `json:"metricOptions"`
	Ranking       *rankingDTO       `json:"ranking,omitempty"`
	History       *playerHistoryDTO `json:"history,omitempty"`
}

func queryToDTO(q ranking.Query) queryDTO {
	return queryDTO{Team: q.Team, Metric: string(q.Metric), Layout: string(q.Layout)}
}

func rankingToDTO(view ranking.View) rankingDTO {
	columns := make([]columnDTO, 0, len(view.Columns))
	for _, col := range view.Columns {
		columns = append(columns, columnDTO{Metric: string(col.Metric), Label: col.Field})
	}

	rows := make([]rankingRowDTO, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, rankingRowDTO{
			Rank:      row.Rank,
			Name:      row.Name,
			Team:      row.Team,
			Position:  row.Position,
			Values:    row.Values,
			PlayerRef: row.PlayerRef,
		})
	}

	return rankingDTO{Query: queryToDTO(view.Query), Columns: columns, Rows: rows}
}

func metricsToDTO(items []roundstat.MetricInfo) []metricDTO {
	out := make([]metricDTO, 0, len(items))
	for _, item := range items {
		out = append(out, metricDTO{Key: string(item.Key), Label: item.Field})
	}
	return out
}

func statsToDTO(s roundstat.Stats) statsDTO {
	return statsDTO{
		Minutes:     s.Minutes,
		Points:      s.Points,
		Goals:       s.Goals,
		Assists:     s.Assists,
		CleanSheets: s.CleanSheets,
		Saves:       s.Saves,
		Bonus:       s.Bonus,
		YellowCards: s.YellowCards,
		RedCards:    s.RedCards,
	}
}

func historyToDTO(player string, rows []roundstat.HistoryRow) playerHistoryDTO {
	rounds := make([]historyRowDTO, 0, len(rows))
	for _, row := range rows {
		rounds = append(rounds, historyRowDTO{
			Team:     row.Team,
			Round:    row.Round,
			Opponent: row.Opponent,
			Stats:    statsToDTO(row.Stats),
		})
	}
	return playerHistoryDTO{Player: player, Rounds: rounds}
}

func dashboardToDTO(vm usecase.ViewModel) dashboardDTO {
	out := dashboardDTO{
		Mode:          string(vm.Mode),
		Query:         queryToDTO(vm.Query),
		FilterQuery:   vm.FilterQuery,
		TeamOptions:   vm.TeamOptions,
		MetricOptions: metricsToDTO(vm.MetricOptions),
	}
	if vm.Ranking != nil {
		view := rankingToDTO(*vm.Ranking)
		out.Ranking = &view
	}
	if vm.Mode == usecase.ModeHistory {
		history := historyToDTO(vm.SelectedPlayer, vm.History)
		out.History = &history
	}
	return out
}
