package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/roster", handler.ListMainRoster)
	mux.HandleFunc("GET /v1/substitutes", handler.ListSubstitutes)

	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/games/current", handler.GetCurrentGame)
	mux.HandleFunc("GET /v1/games/{gameID}", handler.GetGame)
	mux.HandleFunc("GET /v1/games/{gameID}/status", handler.GetStatuses)
	mux.HandleFunc("GET /v1/games/{gameID}/lineup", handler.GetLineup)
	mux.HandleFunc("GET /v1/games/{gameID}/lineup/published", handler.GetPublishedLineup)
}

func registerOperatorRoutes(mux *http.ServeMux, handler *Handler, operatorToken string) {
	operator := func(h http.HandlerFunc) http.Handler {
		return RequireOperator(operatorToken, h)
	}

	mux.Handle("POST /v1/roster", operator(handler.AddToMainRoster))
	mux.Handle("DELETE /v1/roster/{name}", operator(handler.DeleteFromMainRoster))
	mux.Handle("PUT /v1/roster/{name}/gender", operator(handler.ToggleMainRosterGender))

	mux.Handle("POST /v1/substitutes", operator(handler.AddToSubstitutes))
	mux.Handle("DELETE /v1/substitutes/{name}", operator(handler.DeleteFromSubstitutes))
	mux.Handle("PUT /v1/substitutes/{name}/gender", operator(handler.ToggleSubstituteGender))

	mux.Handle("PUT /v1/games/{gameID}", operator(handler.UpdateGame))
	mux.Handle("POST /v1/games/{gameID}/logo", operator(handler.UploadLogo))
	mux.Handle("DELETE /v1/games/{gameID}/logo", operator(handler.DeleteLogo))

	mux.Handle("PUT /v1/games/{gameID}/status/{name}", operator(handler.ToggleStatus))
	mux.Handle("PUT /v1/games/{gameID}/order/{name}", operator(handler.ReorderPlayer))

	mux.Handle("PUT /v1/games/{gameID}/lineup/{name}/{inning}", operator(handler.SetLineupCell))
	mux.Handle("POST /v1/games/{gameID}/lineup/copy", operator(handler.CopyLineupInningOne))
	mux.Handle("POST /v1/games/{gameID}/lineup/reset", operator(handler.ResetLineup))

	mux.Handle("POST /v1/games/{gameID}/publish", operator(handler.PublishLineup))
	mux.Handle("POST /v1/games/{gameID}/unpublish", operator(handler.UnpublishLineup))
}
