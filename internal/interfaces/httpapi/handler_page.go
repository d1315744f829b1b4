package httpapi

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/ranking"
	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
	"github.com/riskibarqy/fkl-dashboard/internal/usecase"
)

type dashboardPageData struct {
	Title string
	VM    usecase.ViewModel
}

// DashboardPage shows the ranking, or the selected player's history once the session has a selection.
func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DashboardPage")
	defer span.End()

	sessionID, ok := sessionIDFromContext(ctx)
	if !ok {
		h.renderErrorPage(ctx, w, fmt.Errorf("%w: session is missing from request context", usecase.ErrInvalidInput))
		return
	}

	query := r.URL.Query()
	req := parseViewQuery(query)
	if err := h.validateRequest(ctx, req); err != nil {
		h.renderErrorPage(ctx, w, err)
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
		h.logger.WarnContext(ctx, "render dashboard page failed", "error", err)
		h.renderErrorPage(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, http.StatusOK, "dashboard", dashboardPageData{Title: pageTitle, VM: vm})
}

// ResetPage clears the selection and redirects back to the ranking with the same filters.
func (h *Handler) ResetPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetPage")
	defer span.End()

	sessionID, ok := sessionIDFromContext(ctx)
	if !ok {
		h.renderErrorPage(ctx, w, fmt.Errorf("%w: session is missing from request context", usecase.ErrInvalidInput))
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderErrorPage(ctx, w, fmt.Errorf("%w: parse form: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.dashboardService.Reset(ctx, sessionID); err != nil {
		h.logger.WarnContext(ctx, "reset dashboard page failed", "error", err)
		h.renderErrorPage(ctx, w, err)
		return
	}

	http.Redirect(w, r, resetLocation(r.Form), http.StatusSeeOther)
}

// resetLocation keeps the filters of the page the reset came from. Unparseable filters fall back to defaults.
func resetLocation(form url.Values) string {
	metric, err := roundstat.ParseMetric(form.Get("metric"))
	if err != nil {
		metric = roundstat.DefaultMetric
	}
	layout, err := ranking.ParseLayout(form.Get("layout"))
	if err != nil {
		layout = ranking.LayoutFull
	}

	return "/" + ranking.FilterQuery(ranking.Query{
		Team:   form.Get("team"),
		Metric: metric,
		Layout: layout,
	})
}
