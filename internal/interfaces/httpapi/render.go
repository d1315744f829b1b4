package httpapi

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/ranking"
	"github.com/valyala/bytebufferpool"
)

const pageTitle = "K리그 판타지 리그 - 포인트 순위표"

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"teamLabel": func(team string) string {
		if ranking.IsAllTeams(team) {
			return ranking.AllTeamsKo
		}
		return team
	},
}).ParseFS(templateFS, "templates/*.tmpl"))

type errorPageData struct {
	Title      string
	Status     int
	StatusText string
	Message    string
}

// renderPage executes into a pooled buffer first so a failed render never sends a partial page.
func (h *Handler) renderPage(ctx context.Context, w http.ResponseWriter, status int, name string, data any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := pageTemplates.ExecuteTemplate(buf, name, data); err != nil {
		h.logger.ErrorContext(ctx, "render page failed", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderErrorPage(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(ctx, err)
	h.renderPage(ctx, w, mapped.HTTPStatus, "error", errorPageData{
		Title:      pageTitle,
		Status:     mapped.HTTPStatus,
		StatusText: http.StatusText(mapped.HTTPStatus),
		Message:    publicMessage(mapped, err),
	})
}
