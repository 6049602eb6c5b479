package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func registerPublicDisciplineRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/{seasonID}/fixtures", handler.ListFixturesBySeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/discipline/cards", handler.ListCardSummary)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/discipline/suspensions", handler.ListSuspensions)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/discipline/suspensions.csv", handler.ExportSuspensionsCSV)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/discipline/overview", handler.GetDisciplineOverview)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/matches/{matchID}/players/{seasonPlayerID}/suspension", handler.CheckPlayerSuspension)
	mux.HandleFunc("POST /v1/seasons/{seasonID}/matches/{matchID}/lineup/check", handler.CheckLineup)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/admin/seasons/{seasonID}/discipline/recalculate", RequireAdminToken(adminToken, http.HandlerFunc(handler.RecalculateSeason)))
	mux.Handle("POST /v1/admin/discipline/recalculate", RequireAdminToken(adminToken, http.HandlerFunc(handler.RecalculateSeasons)))
	mux.Handle("POST /v1/admin/events/match-finalized", RequireAdminToken(adminToken, http.HandlerFunc(handler.PublishMatchFinalized)))
}
