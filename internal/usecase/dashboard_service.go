package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/ranking"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/selection"
	"github.com/riskibarqy/fkl-dashboard/internal/platform/logging"
)

type Mode string

const (
	ModeRanking Mode = "ranking"
	ModeHistory Mode = "history"
)

// RenderInput is one dashboard interaction. The string fields are raw request values.
type RenderInput struct {
	SessionID    string
	PlayerParams []string
	Team         string
	Metric       string
	Layout       string
}

type RankingQuery struct {
	Team   string
	Metric string
	Layout string
	// Limit keeps the top rows only; zero means all.
	Limit int
}

// ViewModel is what a presenter needs to draw one dashboard page.
// Ranking is set in ModeRanking; SelectedPlayer and History in ModeHistory.
type ViewModel struct {
	Mode           Mode
	Query          ranking.Query
	FilterQuery    string
	TeamOptions    []string
	MetricOptions  []roundstat.MetricInfo
	Ranking        *ranking.View
	SelectedPlayer string
	History        []roundstat.HistoryRow
}

type DashboardService struct {
	source   roundstat.Source
	sessions selection.Store
	logger   *logging.Logger
}

func NewDashboardService(source roundstat.Source, sessions selection.Store, logger *logging.Logger) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardService{
		source:   source,
		sessions: sessions,
		logger:   logger,
	}
}

// Render runs one pipeline pass: load, normalize, aggregate, advance the session
// selection, then project either the ranking or the selected player's history.
func (s *DashboardService) Render(ctx context.Context, in RenderInput) (ViewModel, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Render", queryAttributes(in.Team, in.Metric, in.Layout)...)
	defer span.End()

	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return ViewModel{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	query, err := parseQuery(in.Team, in.Metric, in.Layout)
	if err != nil {
		return ViewModel{}, err
	}

	ds, err := s.loadDataset(ctx)
	if err != nil {
		return ViewModel{}, err
	}
	rows := ranking.Aggregate(ds)

	state, err := s.advanceSelection(ctx, sessionID, in.PlayerParams)
	if err != nil {
		return ViewModel{}, err
	}

	vm := ViewModel{
		Mode:          ModeRanking,
		Query:         query,
		FilterQuery:   ranking.FilterQuery(query),
		TeamOptions:   teamOptions(rows),
		MetricOptions: roundstat.Metrics(),
	}
	if state.IsSelected() {
		vm.Mode = ModeHistory
		vm.SelectedPlayer = state.Player
		vm.History = roundstat.History(ds, state.Player)
		return vm, nil
	}

	view := ranking.Select(rows, query)
	vm.Ranking = &view
	return vm, nil
}

// Reset clears the session selection; the next Render shows the ranking.
func (s *DashboardService) Reset(ctx context.Context, sessionID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Reset")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.WarnContext(ctx, "reset session selection failed", "error", err)
		return fmt.Errorf("%w: reset session: %w", ErrDependencyUnavailable, err)
	}
	return nil
}

func (s *DashboardService) Ranking(ctx context.Context, q RankingQuery) (ranking.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Ranking", queryAttributes(q.Team, q.Metric, q.Layout)...)
	defer span.End()

	if q.Limit < 0 {
		return ranking.View{}, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}
	query, err := parseQuery(q.Team, q.Metric, q.Layout)
	if err != nil {
		return ranking.View{}, err
	}

	ds, err := s.loadDataset(ctx)
	if err != nil {
		return ranking.View{}, err
	}

	view := ranking.Select(ranking.Aggregate(ds), query)
	if q.Limit > 0 && len(view.Rows) > q.Limit {
		view.Rows = view.Rows[:q.Limit]
	}
	return view, nil
}

// History returns every round the player appears in, in dataset order. An unknown player has an empty history.
func (s *DashboardService) History(ctx context.Context, player string) ([]roundstat.HistoryRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.History")
	defer span.End()

	if !selection.ValidPlayerParam(player) {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	return roundstat.History(ds, player), nil
}

func (s *DashboardService) Teams(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Teams")
	defer span.End()

	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	return teamOptions(ranking.Aggregate(ds)), nil
}

func (s *DashboardService) Metrics() []roundstat.MetricInfo {
	return roundstat.Metrics()
}

func (s *DashboardService) loadDataset(ctx context.Context) (roundstat.Dataset, error) {
	tables, err := s.source.FetchTeams(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch round records failed", "error", err)
		return nil, fmt.Errorf("%w: fetch round records: %w", ErrDependencyUnavailable, err)
	}
	return roundstat.Normalize(tables), nil
}

func (s *DashboardService) advanceSelection(ctx context.Context, sessionID string, params []string) (selection.State, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		s.logger.WarnContext(ctx, "load session selection failed", "error", err)
		return selection.State{}, fmt.Errorf("%w: load session: %w", ErrDependencyUnavailable, err)
	}

	next, changed := state.Observe(params)
	if !changed {
		return state, nil
	}
	if err := s.sessions.Save(ctx, sessionID, next); err != nil {
		s.logger.WarnContext(ctx, "save session selection failed", "error", err)
		return selection.State{}, fmt.Errorf("%w: save session: %w", ErrDependencyUnavailable, err)
	}
	return next, nil
}

// teamOptions lists teams in order of first appearance in the default points ranking.
func teamOptions(rows []ranking.Row) []string {
	return ranking.TeamOptions(ranking.Sort(rows, roundstat.DefaultMetric))
}

func parseQuery(team, metric, layout string) (ranking.Query, error) {
	m, err := roundstat.ParseMetric(metric)
	if err != nil {
		return ranking.Query{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	l, err := ranking.ParseLayout(layout)
	if err != nil {
		return ranking.Query{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// Teams match exactly; only the all-teams labels ignore surrounding space.
	if ranking.IsAllTeams(team) {
		team = ranking.AllTeams
	}
	return ranking.Query{Team: team, Metric: m, Layout: l}, nil
}
