package routes

import (
	"scorearena_server/controllers"
	"scorearena_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match-related operations under
// /api/matches. The fixed paths are registered before the {id} template
// so "live" and "clear" are never captured as match ids.
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	matchRouter.HandleFunc("/live", controller.GetLiveMatches).Methods("GET")
	matchRouter.HandleFunc("/clear", controller.ClearMatches).Methods("DELETE")

	matchRouter.HandleFunc("", controller.GetMatches).Methods("GET")
	matchRouter.HandleFunc("", controller.CreateMatch).Methods("POST")
	matchRouter.HandleFunc("/{id}", controller.GetMatch).Methods("GET")
	matchRouter.HandleFunc("/{id}/score", controller.UpdateMatchScore).Methods("PUT")
	matchRouter.HandleFunc("/{id}/start", controller.StartMatch).Methods("PUT")
	matchRouter.HandleFunc("/{id}/end", controller.EndMatch).Methods("PUT")
}
