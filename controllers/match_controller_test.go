package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"scorearena_server/models"
	"scorearena_server/routes"
	"scorearena_server/services"
)

type noopBroadcaster struct{}

func (noopBroadcaster) Publish(channel, event string, payload interface{}) {}

type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter() *mux.Router {
	service := services.NewMatchService(services.NewMemoryMatchStore(), noopBroadcaster{})
	r := mux.NewRouter()
	routes.RegisterMatchRoutes(r, service)
	return r
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func decodeMatch(t *testing.T, data json.RawMessage) models.Match {
	t.Helper()
	var match models.Match
	if err := json.Unmarshal(data, &match); err != nil {
		t.Fatalf("decode match: %v", err)
	}
	return match
}

func TestMatchEndToEnd(t *testing.T) {
	router := newTestRouter()

	// Create a cricket match.
	rec, env := doJSON(t, router, http.MethodPost, "/api/matches", map[string]interface{}{
		"sport": "cricket",
		"teamA": "Eagles",
		"teamB": "Hawks",
		"venue": "Main Ground",
	})
	if rec.Code != http.StatusCreated || !env.Success {
		t.Fatalf("create: code=%d body=%s", rec.Code, rec.Body.String())
	}
	match := decodeMatch(t, env.Data)
	if match.Status != models.StatusScheduled {
		t.Fatalf("status = %q, want scheduled", match.Status)
	}

	// Start it.
	rec, env = doJSON(t, router, http.MethodPut, "/api/matches/"+match.ID+"/start", nil)
	if rec.Code != http.StatusOK || decodeMatch(t, env.Data).Status != models.StatusLive {
		t.Fatalf("start: code=%d body=%s", rec.Code, rec.Body.String())
	}

	// Five singles and a boundary: 9 runs, one full over.
	for i := 0; i < 5; i++ {
		rec, _ = doJSON(t, router, http.MethodPut, "/api/matches/"+match.ID+"/score", map[string]interface{}{
			"sport":   "cricket",
			"action":  "runs",
			"team":    "teamA",
			"details": map[string]interface{}{"runs": 1},
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("score %d: code=%d body=%s", i, rec.Code, rec.Body.String())
		}
	}
	rec, env = doJSON(t, router, http.MethodPut, "/api/matches/"+match.ID+"/score", map[string]interface{}{
		"sport":   "cricket",
		"action":  "boundary",
		"team":    "teamA",
		"details": map[string]interface{}{"runs": 4},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("boundary: code=%d body=%s", rec.Code, rec.Body.String())
	}
	updated := decodeMatch(t, env.Data)
	score := updated.CricketScore
	if score == nil || score.Runs != 9 || score.Balls != 0 || score.Overs != 1 {
		t.Fatalf("cricket score = %+v, want runs=9 balls=0 overs=1", score)
	}
	if len(updated.ScoreHistory) != 6 {
		t.Errorf("history length = %d, want 6", len(updated.ScoreHistory))
	}

	// The live listing carries the computed score.
	rec, env = doJSON(t, router, http.MethodGet, "/api/matches/live", nil)
	if rec.Code != http.StatusOK || env.Count == nil || *env.Count != 1 {
		t.Fatalf("live: code=%d body=%s", rec.Code, rec.Body.String())
	}
	var live []models.MatchWithScore
	if err := json.Unmarshal(env.Data, &live); err != nil {
		t.Fatalf("decode live: %v", err)
	}
	if live[0].Score == nil {
		t.Error("live match missing score annotation")
	}

	// End it.
	rec, env = doJSON(t, router, http.MethodPut, "/api/matches/"+match.ID+"/end", map[string]interface{}{
		"winner": "Eagles",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("end: code=%d body=%s", rec.Code, rec.Body.String())
	}
	ended := decodeMatch(t, env.Data)
	if ended.Status != models.StatusCompleted || ended.Winner != "Eagles" {
		t.Errorf("ended match = %+v", ended)
	}

	// Pull reconciliation returns the canonical completed state.
	rec, env = doJSON(t, router, http.MethodGet, "/api/matches/"+match.ID, nil)
	if rec.Code != http.StatusOK || decodeMatch(t, env.Data).Status != models.StatusCompleted {
		t.Fatalf("get: code=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateMatchInvalidSport(t *testing.T) {
	router := newTestRouter()

	rec, env := doJSON(t, router, http.MethodPost, "/api/matches", map[string]interface{}{
		"sport": "handegg",
		"teamA": "A",
		"teamB": "B",
	})
	if rec.Code != http.StatusBadRequest || env.Success {
		t.Errorf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateMatchMissingFields(t *testing.T) {
	router := newTestRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/api/matches", map[string]interface{}{
		"sport": "cricket",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", rec.Code)
	}
}

func TestGetMatchNotFound(t *testing.T) {
	router := newTestRouter()

	rec, env := doJSON(t, router, http.MethodGet, "/api/matches/unknown-id", nil)
	if rec.Code != http.StatusNotFound || env.Success || env.Error == "" {
		t.Errorf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestScoreBeforeStartRejected(t *testing.T) {
	router := newTestRouter()

	_, env := doJSON(t, router, http.MethodPost, "/api/matches", map[string]interface{}{
		"sport": "volleyball",
		"teamA": "A",
		"teamB": "B",
	})
	match := decodeMatch(t, env.Data)

	rec, env := doJSON(t, router, http.MethodPut, "/api/matches/"+match.ID+"/score", map[string]interface{}{
		"action": "point",
		"team":   "teamA",
	})
	if rec.Code != http.StatusConflict || env.Success {
		t.Errorf("code=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestClearMatches(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/api/matches", map[string]interface{}{
		"sport": "chess",
		"teamA": "White",
		"teamB": "Black",
	})

	rec, _ := doJSON(t, router, http.MethodDelete, "/api/matches/clear", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("clear: code = %d", rec.Code)
	}

	rec, env := doJSON(t, router, http.MethodGet, "/api/matches", nil)
	if rec.Code != http.StatusOK || env.Count == nil || *env.Count != 0 {
		t.Errorf("list after clear: code=%d body=%s", rec.Code, rec.Body.String())
	}
}
