package scoring

import "scorearena_server/models"

// The transition engine. One pure function per sport maps the current
// score record plus one event to the next record. Unknown actions leave
// the record unchanged so a garbled event never poisons the history fold.

// NewScore builds the fully initialized starting score record for a sport.
// Returns false for an unrecognized sport.
func NewScore(m *models.Match) bool {
	switch m.Sport {
	case models.SportCricket:
		m.CricketScore = &models.CricketScore{}
	case models.SportFootball:
		m.FootballScore = &models.FootballScore{Period: "1st Half"}
	case models.SportBasketball:
		m.BasketballScore = &models.BasketballScore{Quarter: 1, Time: 600}
	case models.SportChess:
		m.ChessScore = &models.ChessScore{WhiteTime: 1800, BlackTime: 1800, CurrentPlayer: "white"}
	case models.SportVolleyball:
		m.VolleyballScore = &models.VolleyballScore{CurrentSet: 1, Serving: models.TeamA}
	case models.SportBadminton:
		m.BadmintonScore = &models.BadmintonScore{CurrentGame: 1, Serving: models.PlayerA}
	case models.SportTableTennis:
		m.TableTennisScore = &models.TableTennisScore{CurrentGame: 1, Serving: models.PlayerA}
	default:
		return false
	}
	return true
}

// Apply folds one event into the match's score record, dispatching on the
// match's sport. A match whose score record is missing gets the initial
// record first, so the fold is total even over partially stored matches.
func Apply(m *models.Match, ev models.ScoreEvent) {
	switch m.Sport {
	case models.SportCricket:
		if m.CricketScore == nil {
			m.CricketScore = &models.CricketScore{}
		}
		next := ApplyCricket(*m.CricketScore, ev)
		m.CricketScore = &next
	case models.SportFootball:
		if m.FootballScore == nil {
			m.FootballScore = &models.FootballScore{Period: "1st Half"}
		}
		next := ApplyFootball(*m.FootballScore, ev)
		m.FootballScore = &next
	case models.SportBasketball:
		if m.BasketballScore == nil {
			m.BasketballScore = &models.BasketballScore{Quarter: 1, Time: 600}
		}
		next := ApplyBasketball(*m.BasketballScore, ev)
		m.BasketballScore = &next
	case models.SportChess:
		if m.ChessScore == nil {
			m.ChessScore = &models.ChessScore{WhiteTime: 1800, BlackTime: 1800, CurrentPlayer: "white"}
		}
		next := ApplyChess(*m.ChessScore, ev)
		m.ChessScore = &next
	case models.SportVolleyball:
		if m.VolleyballScore == nil {
			m.VolleyballScore = &models.VolleyballScore{CurrentSet: 1, Serving: models.TeamA}
		}
		next := ApplyVolleyball(*m.VolleyballScore, ev)
		m.VolleyballScore = &next
	case models.SportBadminton:
		if m.BadmintonScore == nil {
			m.BadmintonScore = &models.BadmintonScore{CurrentGame: 1, Serving: models.PlayerA}
		}
		next := ApplyBadminton(*m.BadmintonScore, ev)
		m.BadmintonScore = &next
	case models.SportTableTennis:
		if m.TableTennisScore == nil {
			m.TableTennisScore = &models.TableTennisScore{CurrentGame: 1, Serving: models.PlayerA}
		}
		next := ApplyTableTennis(*m.TableTennisScore, ev)
		m.TableTennisScore = &next
	}
}

// ApplyCricket handles runs, boundaries, wickets and extras. A completed
// over (6 legal balls) rolls Balls over into Overs.
func ApplyCricket(s models.CricketScore, ev models.ScoreEvent) models.CricketScore {
	switch ev.Action {
	case "runs":
		s.Runs += ev.Details.Runs
		if ev.Details.Runs >= 1 && ev.Details.Runs <= 3 {
			s.Balls++
		}
	case "boundary":
		s.Runs += ev.Details.Runs
		s.Balls++
	case "wicket":
		s.Wickets++
		s.Balls++
	case "wide":
		s.Extras.Wides++
		s.Runs++
	case "noBall":
		s.Extras.NoBalls++
		s.Runs++
	}

	if s.Balls >= 6 {
		s.Overs++
		s.Balls = 0
	}
	return s
}

func ApplyFootball(s models.FootballScore, ev models.ScoreEvent) models.FootballScore {
	side := &s.TeamA
	if ev.Team != models.TeamA {
		side = &s.TeamB
	}

	switch ev.Action {
	case "goal":
		side.Goals++
	case "card":
		switch ev.Details.CardType {
		case "yellow":
			side.Cards.Yellow++
		case "red":
			side.Cards.Red++
		}
	case "time":
		s.Time = ev.Details.Time
		s.Period = ev.Details.Period
	case "period":
		s.Period = ev.Details.Period
	}
	return s
}

func ApplyBasketball(s models.BasketballScore, ev models.ScoreEvent) models.BasketballScore {
	side := &s.TeamA
	if ev.Team != models.TeamA {
		side = &s.TeamB
	}

	switch ev.Action {
	case "points":
		side.Points += ev.Details.Points
	case "foul":
		side.Fouls++
	case "quarter":
		s.Quarter = ev.Details.Quarter
		s.Time = ev.Details.Time
	}
	return s
}

func ApplyChess(s models.ChessScore, ev models.ScoreEvent) models.ChessScore {
	switch ev.Action {
	case "result":
		s.Result = ev.Details.Result
	case "time":
		if ev.Details.Player == "white" {
			s.WhiteTime = ev.Details.Time
		} else {
			s.BlackTime = ev.Details.Time
		}
	case "switch":
		s.CurrentPlayer = ev.Details.CurrentPlayer
	}
	return s
}

// ApplyVolleyball scores a rally and runs the set-win check: the set goes
// to a side reaching the target (25, or 15 in the deciding 5th set) with a
// two-point lead. After a non-winning rally the serve passes to the side
// that did not score, matching the shipped scorer console.
func ApplyVolleyball(s models.VolleyballScore, ev models.ScoreEvent) models.VolleyballScore {
	scorer, other := &s.TeamA, &s.TeamB
	otherName := models.TeamB
	if ev.Team != models.TeamA {
		scorer, other = &s.TeamB, &s.TeamA
		otherName = models.TeamA
	}

	switch ev.Action {
	case "point":
		scorer.Points++

		target := 25
		if s.CurrentSet == 5 {
			target = 15
		}
		if scorer.Points >= target && scorer.Points-other.Points >= 2 {
			scorer.Sets++
			scorer.Points = 0
			other.Points = 0
			s.CurrentSet++
		} else {
			s.Serving = otherName
		}
	case "serve":
		s.Serving = ev.Details.Serving
	}
	return s
}

// ApplyBadminton scores a rally and runs the game-win check: 21 with a
// two-point lead, or 30 outright as the hard cap. The serve goes to the
// scorer whenever the rally total is even.
func ApplyBadminton(s models.BadmintonScore, ev models.ScoreEvent) models.BadmintonScore {
	scorer, other := &s.PlayerA, &s.PlayerB
	scorerName := models.PlayerA
	if ev.Team != models.TeamA && ev.Team != models.PlayerA {
		scorer, other = &s.PlayerB, &s.PlayerA
		scorerName = models.PlayerB
	}

	switch ev.Action {
	case "point":
		scorer.Points++

		if (scorer.Points >= 21 && scorer.Points-other.Points >= 2) || scorer.Points >= 30 {
			scorer.Games++
			scorer.Points = 0
			other.Points = 0
			s.CurrentGame++
		} else if (scorer.Points+other.Points)%2 == 0 {
			s.Serving = scorerName
		}
	case "serve":
		s.Serving = ev.Details.Serving
	}
	return s
}

// ApplyTableTennis scores a rally and runs the game-win check: 11 with a
// two-point lead, no cap. Serve rotates every two points, or every point
// once both players are at 10 or more.
func ApplyTableTennis(s models.TableTennisScore, ev models.ScoreEvent) models.TableTennisScore {
	scorer, other := &s.PlayerA, &s.PlayerB
	scorerName := models.PlayerA
	if ev.Team != models.TeamA && ev.Team != models.PlayerA {
		scorer, other = &s.PlayerB, &s.PlayerA
		scorerName = models.PlayerB
	}

	switch ev.Action {
	case "point":
		scorer.Points++

		if scorer.Points >= 11 && scorer.Points-other.Points >= 2 {
			scorer.Games++
			scorer.Points = 0
			other.Points = 0
			s.CurrentGame++
			return s
		}

		deuce := scorer.Points >= 10 && other.Points >= 10
		if deuce || (scorer.Points+other.Points)%2 == 0 {
			s.Serving = scorerName
		}
	case "serve":
		s.Serving = ev.Details.Serving
	}
	return s
}

// Replay rebuilds the score record by folding every history event from the
// sport's initial record. The result always matches the incrementally
// maintained record.
func Replay(m *models.Match) {
	if !NewScore(m) {
		return
	}
	for _, ev := range m.ScoreHistory {
		Apply(m, ev)
	}
}
