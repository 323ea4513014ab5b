package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"scorearena_server/log"
	"scorearena_server/models"
	"scorearena_server/scoring"
)

// Broadcaster is the push capability handed to the match service. Publish
// is fire-and-forget: delivery failures are the broadcaster's problem and
// never fail the originating mutation.
type Broadcaster interface {
	Publish(channel, event string, payload interface{})
}

// matchState pairs a match with the mutex that serializes its mutations.
// Every mutation of one match runs under its lock, so concurrent score
// events are applied one at a time in arrival order.
type matchState struct {
	mu    sync.Mutex
	match *models.Match
}

// MatchService is the match registry and state machine: it owns every
// match's lifecycle status, score record and history, and pushes accepted
// mutations to subscribers.
type MatchService struct {
	mu      sync.RWMutex
	matches map[string]*matchState
	order   []string

	store     MatchStore
	broadcast Broadcaster
}

// NewMatchService creates a match service backed by the given store and
// broadcaster.
func NewMatchService(store MatchStore, broadcast Broadcaster) *MatchService {
	return &MatchService{
		matches:   make(map[string]*matchState),
		store:     store,
		broadcast: broadcast,
	}
}

// CreateMatch registers a new match in scheduled status with the sport's
// initial score record.
func (ms *MatchService) CreateMatch(ctx context.Context, sport models.Sport, teamA, teamB, venue string) (*models.Match, error) {
	match := &models.Match{
		ID:           uuid.NewString(),
		Sport:        sport,
		TeamA:        teamA,
		TeamB:        teamB,
		Venue:        venue,
		Status:       models.StatusScheduled,
		CreatedAt:    time.Now(),
		ScoreHistory: []models.ScoreEvent{},
	}
	if !scoring.NewScore(match) {
		return nil, ErrInvalidSport
	}

	// Clone before the match becomes reachable through the registry:
	// once registered, other goroutines may mutate it under its own lock,
	// so the original pointer must not be read unlocked after this point.
	clone := cloneMatch(match)

	ms.mu.Lock()
	ms.matches[match.ID] = &matchState{match: match}
	ms.order = append(ms.order, match.ID)
	ms.mu.Unlock()

	ms.persist(ctx, clone)
	return clone, nil
}

// GetMatch returns a copy of the match with the given id.
func (ms *MatchService) GetMatch(id string) (*models.Match, error) {
	st, err := ms.state(id)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return cloneMatch(st.match), nil
}

// ListMatches returns all matches, most recently created first.
func (ms *MatchService) ListMatches() []*models.Match {
	states := ms.statesNewestFirst()

	matches := make([]*models.Match, 0, len(states))
	for _, st := range states {
		st.mu.Lock()
		matches = append(matches, cloneMatch(st.match))
		st.mu.Unlock()
	}
	return matches
}

// ListLiveMatches returns the live matches, each annotated with its
// current score under a computed "score" field.
func (ms *MatchService) ListLiveMatches() []models.MatchWithScore {
	states := ms.statesNewestFirst()

	live := make([]models.MatchWithScore, 0)
	for _, st := range states {
		st.mu.Lock()
		if st.match.Status == models.StatusLive {
			m := cloneMatch(st.match)
			live = append(live, models.MatchWithScore{Match: *m, Score: m.CurrentScore()})
		}
		st.mu.Unlock()
	}
	return live
}

// StartMatch transitions a match to live and stamps its start time. A
// repeated call only re-stamps the start time; the score record is never
// reset. Completed matches cannot be restarted.
func (ms *MatchService) StartMatch(ctx context.Context, id string) (*models.Match, error) {
	st, err := ms.state(id)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	if st.match.Status == models.StatusCompleted {
		st.mu.Unlock()
		return nil, ErrMatchCompleted
	}
	now := time.Now()
	st.match.Status = models.StatusLive
	st.match.StartTime = &now
	match := cloneMatch(st.match)
	st.mu.Unlock()

	ms.persist(ctx, match)

	ms.broadcast.Publish(models.MatchChannel(match.ID), models.EventMatchStarted, models.MatchStartedPayload{
		MatchID:   match.ID,
		Sport:     match.Sport,
		StartTime: *match.StartTime,
	})
	ms.broadcast.Publish(models.ChannelScoreboard, models.EventMatchStarted, models.MatchStartedPayload{
		MatchID:   match.ID,
		Sport:     match.Sport,
		TeamA:     match.TeamA,
		TeamB:     match.TeamB,
		StartTime: *match.StartTime,
	})

	return match, nil
}

// ApplyScore appends one score event to a live match's history, folds it
// into the score record and pushes the full updated score to both the
// per-match channel and the aggregate scoreboard. The append and fold run
// under the match's lock, so concurrent events against the same match
// never lose an update.
func (ms *MatchService) ApplyScore(ctx context.Context, id, action, team string, details models.EventDetails) (*models.Match, error) {
	st, err := ms.state(id)
	if err != nil {
		return nil, err
	}

	event := models.ScoreEvent{
		Action:    action,
		Team:      team,
		Details:   details,
		Timestamp: time.Now(),
	}

	st.mu.Lock()
	switch st.match.Status {
	case models.StatusCompleted:
		st.mu.Unlock()
		return nil, ErrMatchCompleted
	case models.StatusLive:
	default:
		st.mu.Unlock()
		return nil, ErrMatchNotLive
	}

	st.match.ScoreHistory = append(st.match.ScoreHistory, event)
	scoring.Apply(st.match, event)
	match := cloneMatch(st.match)
	st.mu.Unlock()

	ms.persist(ctx, match)

	ms.broadcast.Publish(models.MatchChannel(match.ID), models.EventScoreUpdate, models.ScoreUpdatePayload{
		MatchID:   match.ID,
		Sport:     match.Sport,
		Action:    event.Action,
		Team:      event.Team,
		Details:   event.Details,
		Score:     match.CurrentScore(),
		Timestamp: event.Timestamp,
	})
	ms.broadcast.Publish(models.ChannelScoreboard, models.EventLiveScoreUpdate, models.LiveScorePayload{
		MatchID:   match.ID,
		Sport:     match.Sport,
		TeamA:     match.TeamA,
		TeamB:     match.TeamB,
		Score:     match.CurrentScore(),
		Status:    match.Status,
		Timestamp: event.Timestamp,
	})

	return match, nil
}

// EndMatch completes a match, stamping its end time and winner. Further
// score events are rejected.
func (ms *MatchService) EndMatch(ctx context.Context, id, winner string) (*models.Match, error) {
	st, err := ms.state(id)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	if st.match.Status == models.StatusCompleted {
		st.mu.Unlock()
		return nil, ErrMatchCompleted
	}
	now := time.Now()
	st.match.Status = models.StatusCompleted
	st.match.EndTime = &now
	st.match.Winner = winner
	match := cloneMatch(st.match)
	st.mu.Unlock()

	ms.persist(ctx, match)

	ms.broadcast.Publish(models.MatchChannel(match.ID), models.EventMatchEnded, models.MatchEndedPayload{
		MatchID:    match.ID,
		Sport:      match.Sport,
		Winner:     match.Winner,
		EndTime:    *match.EndTime,
		FinalScore: match.CurrentScore(),
	})
	ms.broadcast.Publish(models.ChannelScoreboard, models.EventMatchEnded, models.MatchEndedPayload{
		MatchID:    match.ID,
		Sport:      match.Sport,
		TeamA:      match.TeamA,
		TeamB:      match.TeamB,
		Winner:     match.Winner,
		EndTime:    *match.EndTime,
		FinalScore: match.CurrentScore(),
	})

	return match, nil
}

// ClearAllMatches destroys every match. Administrative only.
func (ms *MatchService) ClearAllMatches(ctx context.Context) error {
	ms.mu.Lock()
	ms.matches = make(map[string]*matchState)
	ms.order = nil
	ms.mu.Unlock()

	if err := ms.store.DeleteAll(ctx); err != nil {
		log.Warn("Failed to clear match store", zap.Error(err))
	}
	return nil
}

func (ms *MatchService) state(id string) (*matchState, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	st, ok := ms.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	return st, nil
}

func (ms *MatchService) statesNewestFirst() []*matchState {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	states := make([]*matchState, 0, len(ms.order))
	for i := len(ms.order) - 1; i >= 0; i-- {
		states = append(states, ms.matches[ms.order[i]])
	}
	return states
}

// persist is a best-effort write-through; a store failure is logged and
// never fails the mutation that triggered it.
func (ms *MatchService) persist(ctx context.Context, match *models.Match) {
	if err := ms.store.Save(ctx, match); err != nil {
		log.Warn("Failed to persist match", zap.String("matchId", match.ID), zap.Error(err))
	}
}

// cloneMatch copies a match so callers can read it without holding the
// match lock. Score records are replaced wholesale on every mutation, so
// sharing the pointed-to values is safe.
func cloneMatch(m *models.Match) *models.Match {
	clone := *m
	clone.ScoreHistory = make([]models.ScoreEvent, len(m.ScoreHistory))
	copy(clone.ScoreHistory, m.ScoreHistory)
	return &clone
}
