package models

import "time"

// Sport identifies one of the supported sports. The value doubles as the
// wire tag used by clients and by the Redis stream keys.
type Sport string

const (
	SportCricket     Sport = "cricket"
	SportFootball    Sport = "football"
	SportBasketball  Sport = "basketball"
	SportChess       Sport = "chess"
	SportVolleyball  Sport = "volleyball"
	SportBadminton   Sport = "badminton"
	SportTableTennis Sport = "table-tennis"
)

// AllSports lists every recognized sport tag.
var AllSports = []Sport{
	SportCricket,
	SportFootball,
	SportBasketball,
	SportChess,
	SportVolleyball,
	SportBadminton,
	SportTableTennis,
}

// IsValid reports whether s is one of the recognized sport tags.
func (s Sport) IsValid() bool {
	for _, known := range AllSports {
		if s == known {
			return true
		}
	}
	return false
}

// Match lifecycle statuses. Transitions are monotonic:
// scheduled -> live -> completed.
const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusCompleted = "completed"
)

// Match is a single scored contest between two sides. Exactly one of the
// sport-specific score pointers is non-nil, selected by Sport.
type Match struct {
	ID        string     `json:"id" dynamodbav:"matchId"`
	Sport     Sport      `json:"sport" dynamodbav:"sport"`
	TeamA     string     `json:"teamA" dynamodbav:"teamA"`
	TeamB     string     `json:"teamB" dynamodbav:"teamB"`
	Venue     string     `json:"venue,omitempty" dynamodbav:"venue,omitempty"`
	Status    string     `json:"status" dynamodbav:"status"`
	StartTime *time.Time `json:"startTime,omitempty" dynamodbav:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty" dynamodbav:"endTime,omitempty"`
	Winner    string     `json:"winner,omitempty" dynamodbav:"winner,omitempty"`
	CreatedAt time.Time  `json:"createdAt" dynamodbav:"createdAt"`

	ScoreHistory []ScoreEvent `json:"scoreHistory" dynamodbav:"scoreHistory"`

	CricketScore     *CricketScore     `json:"cricketScore,omitempty" dynamodbav:"cricketScore,omitempty"`
	FootballScore    *FootballScore    `json:"footballScore,omitempty" dynamodbav:"footballScore,omitempty"`
	BasketballScore  *BasketballScore  `json:"basketballScore,omitempty" dynamodbav:"basketballScore,omitempty"`
	ChessScore       *ChessScore       `json:"chessScore,omitempty" dynamodbav:"chessScore,omitempty"`
	VolleyballScore  *VolleyballScore  `json:"volleyballScore,omitempty" dynamodbav:"volleyballScore,omitempty"`
	BadmintonScore   *BadmintonScore   `json:"badmintonScore,omitempty" dynamodbav:"badmintonScore,omitempty"`
	TableTennisScore *TableTennisScore `json:"tableTennisScore,omitempty" dynamodbav:"tableTennisScore,omitempty"`
}

// CurrentScore returns the score record matching the match's sport, or nil
// for an unrecognized sport.
func (m *Match) CurrentScore() interface{} {
	switch m.Sport {
	case SportCricket:
		return m.CricketScore
	case SportFootball:
		return m.FootballScore
	case SportBasketball:
		return m.BasketballScore
	case SportChess:
		return m.ChessScore
	case SportVolleyball:
		return m.VolleyballScore
	case SportBadminton:
		return m.BadmintonScore
	case SportTableTennis:
		return m.TableTennisScore
	default:
		return nil
	}
}

// MatchWithScore is a Match annotated with its current score under a
// computed "score" key, used by the live matches listing.
type MatchWithScore struct {
	Match
	Score interface{} `json:"score"`
}
