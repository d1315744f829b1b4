package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fkl-dashboard/internal/usecase"
)

func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRanking")
	defer span.End()

	req, err := parseRankingRequest(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.dashboardService.Ranking(ctx, usecase.RankingQuery{
		Team:   req.Team,
		Metric: req.Metric,
		Layout: req.Layout,
		Limit:  req.Limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get ranking failed", "team", req.Team, "metric", req.Metric, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingToDTO(view))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.dashboardService.Teams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMetrics")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, metricsToDTO(h.dashboardService.Metrics()))
}

func (h *Handler) GetPlayerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerHistory")
	defer span.End()

	name := r.PathValue("name")
	rows, err := h.dashboardService.History(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "get player history failed", "player", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, historyToDTO(name, rows))
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	sessionID, ok := sessionIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: session is missing from request context", usecase.ErrInvalidInput))
		return
	}

	query := r.URL.Query()
	req := parseViewQuery(query)
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	vm, err := h.dashboardService.Render(ctx, usecase.RenderInput{
		SessionID:    sessionID,
		PlayerParams: query["player"],
		Team:         req.Team,
		Metric:       req.Metric,
		Layout:       req.Layout,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "render dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(vm))
}

func (h *Handler) ResetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetDashboard")
	defer span.End()

	sessionID, ok := sessionIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: session is missing from request context", usecase.ErrInvalidInput))
		return
	}

	if err := h.dashboardService.Reset(ctx, sessionID); err != nil {
		h.logger.WarnContext(ctx, "reset dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"mode": string(usecase.ModeRanking)})
}
