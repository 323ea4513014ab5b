package models

import "time"

// Team/player designators used in ScoreEvent.Team. Sports played by
// individuals still use the teamA/teamB tags on the wire; the serving
// fields use the player form.
const (
	TeamA = "teamA"
	TeamB = "teamB"

	PlayerA = "playerA"
	PlayerB = "playerB"
)

// EventDetails carries the action-specific payload of a score event. Only
// the fields relevant to the action are set; everything else stays at its
// zero value and is omitted on the wire.
type EventDetails struct {
	Runs          int    `json:"runs,omitempty" dynamodbav:"runs,omitempty"`
	Points        int    `json:"points,omitempty" dynamodbav:"points,omitempty"`
	CardType      string `json:"cardType,omitempty" dynamodbav:"cardType,omitempty"`
	Time          int    `json:"time,omitempty" dynamodbav:"time,omitempty"`
	Period        string `json:"period,omitempty" dynamodbav:"period,omitempty"`
	Quarter       int    `json:"quarter,omitempty" dynamodbav:"quarter,omitempty"`
	Result        string `json:"result,omitempty" dynamodbav:"result,omitempty"`
	Player        string `json:"player,omitempty" dynamodbav:"player,omitempty"`
	CurrentPlayer string `json:"currentPlayer,omitempty" dynamodbav:"currentPlayer,omitempty"`
	Serving       string `json:"serving,omitempty" dynamodbav:"serving,omitempty"`
}

// ScoreEvent is one immutable entry in a match's score history. The
// history is append-only; folding the scoring rules over it from the
// sport's initial snapshot reproduces the current score exactly.
type ScoreEvent struct {
	Action    string       `json:"action" dynamodbav:"action"`
	Team      string       `json:"team" dynamodbav:"team"`
	Details   EventDetails `json:"details" dynamodbav:"details"`
	Timestamp time.Time    `json:"timestamp" dynamodbav:"timestamp"`
}

// ChannelScoreboard is the aggregate channel carrying a summarized feed
// of every live match.
const ChannelScoreboard = "live-scoreboard"

// MatchChannel returns the per-match channel name for a match id.
func MatchChannel(matchID string) string {
	return "match-" + matchID
}

// Real-time event names emitted to subscribers.
const (
	EventScoreUpdate     = "score-update"
	EventLiveScoreUpdate = "live-score-update"
	EventMatchStarted    = "match-started"
	EventMatchEnded      = "match-ended"
)

// ScoreUpdatePayload is pushed on the per-match channel after every
// accepted score event. Score is always the full current snapshot, never
// a delta, so a late joiner resyncs from the very next message.
type ScoreUpdatePayload struct {
	MatchID   string       `json:"matchId"`
	Sport     Sport        `json:"sport"`
	Action    string       `json:"action"`
	Team      string       `json:"team"`
	Details   EventDetails `json:"details"`
	Score     interface{}  `json:"score"`
	Timestamp time.Time    `json:"timestamp"`
}

// LiveScorePayload is the summarized form pushed on the aggregate
// scoreboard channel.
type LiveScorePayload struct {
	MatchID   string      `json:"matchId"`
	Sport     Sport       `json:"sport"`
	TeamA     string      `json:"teamA"`
	TeamB     string      `json:"teamB"`
	Score     interface{} `json:"score"`
	Status    string      `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// MatchStartedPayload announces a lifecycle transition to live.
type MatchStartedPayload struct {
	MatchID   string    `json:"matchId"`
	Sport     Sport     `json:"sport"`
	TeamA     string    `json:"teamA,omitempty"`
	TeamB     string    `json:"teamB,omitempty"`
	StartTime time.Time `json:"startTime"`
}

// MatchEndedPayload announces completion, carrying the final snapshot.
type MatchEndedPayload struct {
	MatchID    string      `json:"matchId"`
	Sport      Sport       `json:"sport"`
	TeamA      string      `json:"teamA,omitempty"`
	TeamB      string      `json:"teamB,omitempty"`
	Winner     string      `json:"winner,omitempty"`
	EndTime    time.Time   `json:"endTime"`
	FinalScore interface{} `json:"finalScore"`
}
