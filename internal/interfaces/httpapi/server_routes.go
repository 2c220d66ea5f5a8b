package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/matches", handler.ListLeagueMatches)
	mux.HandleFunc("GET /v1/users/{userID}/progress", handler.GetUserProgress)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/matches/{matchID}/complete", handler.CompleteMatch)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/end", handler.EndLeague)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/xp-recalculate", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunXPRecalculateJob)))
	mux.Handle("POST /v1/internal/jobs/xp-sweep", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunXPSweepJob)))
}
