package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics == nil {
		return
	}

	mux.Handle("GET /metrics", metrics)
}

func registerSheetRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/sheets/resolve", handler.ResolveSheet)
	mux.HandleFunc("GET /v1/sheets/default", handler.GetDefaultSheet)
	mux.HandleFunc("GET /v1/sheets/{sheetID}/competitors", handler.ListCompetitors)
	mux.HandleFunc("GET /v1/sheets/{sheetID}/rounds", handler.ListRounds)
	mux.HandleFunc("GET /v1/sheets/{sheetID}/rounds/{roundID}", handler.GetRoundDetail)
	mux.HandleFunc("GET /v1/sheets/{sheetID}/rounds/{roundID}/chart.png", handler.GetRoundChart)
	mux.HandleFunc("GET /v1/sheets/{sheetID}/standings", handler.GetStandings)
	// Drops cached tabs so the next read goes back to the sheet.
	mux.HandleFunc("POST /v1/sheets/{sheetID}/refresh", handler.RefreshSheet)
}
