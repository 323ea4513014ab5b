package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"scorearena_server/models"
	"scorearena_server/services"
	"scorearena_server/utils"
)

// MatchController handles HTTP requests for match-related actions
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

type createMatchRequest struct {
	Sport models.Sport `json:"sport"`
	TeamA string       `json:"teamA"`
	TeamB string       `json:"teamB"`
	Venue string       `json:"venue"`
}

type scoreRequest struct {
	Sport   models.Sport        `json:"sport"`
	Action  string              `json:"action"`
	Team    string              `json:"team"`
	Details models.EventDetails `json:"details"`
}

type endMatchRequest struct {
	Winner string `json:"winner"`
}

// GetMatches handles fetching all matches, most recent first
func (mc *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	matches := mc.MatchService.ListMatches()
	utils.RespondList(w, http.StatusOK, len(matches), matches)
}

// GetLiveMatches handles fetching live matches annotated with their
// current score
func (mc *MatchController) GetLiveMatches(w http.ResponseWriter, r *http.Request) {
	matches := mc.MatchService.ListLiveMatches()
	utils.RespondList(w, http.StatusOK, len(matches), matches)
}

// GetMatch handles fetching a single match by id. This is also the pull
// reconciliation endpoint polling viewers use to resync their local state.
func (mc *MatchController) GetMatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	match, err := mc.MatchService.GetMatch(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, match)
}

// CreateMatch handles creating a new scheduled match
func (mc *MatchController) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Sport == "" || req.TeamA == "" || req.TeamB == "" {
		utils.RespondError(w, http.StatusBadRequest, "sport, teamA and teamB are required")
		return
	}

	match, err := mc.MatchService.CreateMatch(r.Context(), req.Sport, req.TeamA, req.TeamB, req.Venue)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, match)
}

// UpdateMatchScore handles applying one score event to a match. The
// match's own sport decides which scoring rules run; the sport field in
// the body is informational only.
func (mc *MatchController) UpdateMatchScore(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Action == "" {
		utils.RespondError(w, http.StatusBadRequest, "action is required")
		return
	}

	match, err := mc.MatchService.ApplyScore(r.Context(), id, req.Action, req.Team, req.Details)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, match)
}

// StartMatch handles transitioning a match to live
func (mc *MatchController) StartMatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	match, err := mc.MatchService.StartMatch(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, match)
}

// EndMatch handles completing a match and recording its winner
func (mc *MatchController) EndMatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req endMatchRequest
	if r.Body != nil {
		// Winner is optional; an empty body is fine.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	match, err := mc.MatchService.EndMatch(r.Context(), id, req.Winner)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, match)
}

// ClearMatches handles the administrative wipe of every match
func (mc *MatchController) ClearMatches(w http.ResponseWriter, r *http.Request) {
	if err := mc.MatchService.ClearAllMatches(r.Context()); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, map[string]string{"message": "All matches cleared"})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrMatchNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidSport):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrMatchNotLive), errors.Is(err, services.ErrMatchCompleted):
		utils.RespondError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}
