package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPageRoutes(mux *http.ServeMux, handler *Handler, sessions SessionConfig) {
	mux.Handle("GET /{$}", WithSession(sessions, http.HandlerFunc(handler.DashboardPage)))
	mux.Handle("POST /reset", WithSession(sessions, http.HandlerFunc(handler.ResetPage)))
}

func registerPublicAPIRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/ranking", handler.GetRanking)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/metrics", handler.ListMetrics)
	mux.HandleFunc("GET /v1/players/{name}/history", handler.GetPlayerHistory)
}

// Session routes accept the cookie or an X-Session-ID header, for clients without a cookie jar.
func registerSessionAPIRoutes(mux *http.ServeMux, handler *Handler, sessions SessionConfig) {
	mux.Handle("GET /v1/dashboard", WithSession(sessions, http.HandlerFunc(handler.GetDashboard)))
	mux.Handle("POST /v1/dashboard/reset", WithSession(sessions, http.HandlerFunc(handler.ResetDashboard)))
}
