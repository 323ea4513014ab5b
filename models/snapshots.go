package models

// Per-sport score snapshots. Each sport gets a fully initialized record at
// match creation time so scoring never has to lazily create sub-records.

// CricketExtras tracks extra deliveries that award runs without counting
// a legal ball.
type CricketExtras struct {
	Wides   int `json:"wides" dynamodbav:"wides"`
	NoBalls int `json:"noBalls" dynamodbav:"noBalls"`
	Byes    int `json:"byes" dynamodbav:"byes"`
	LegByes int `json:"legByes" dynamodbav:"legByes"`
}

// CricketScore is a single-innings cricket tally. Balls roll over into
// Overs at 6.
type CricketScore struct {
	Runs    int           `json:"runs" dynamodbav:"runs"`
	Wickets int           `json:"wickets" dynamodbav:"wickets"`
	Overs   int           `json:"overs" dynamodbav:"overs"`
	Balls   int           `json:"balls" dynamodbav:"balls"`
	Extras  CricketExtras `json:"extras" dynamodbav:"extras"`
}

// FootballSide holds one team's goals and cards.
type FootballSide struct {
	Goals int `json:"goals" dynamodbav:"goals"`
	Cards struct {
		Yellow int `json:"yellow" dynamodbav:"yellow"`
		Red    int `json:"red" dynamodbav:"red"`
	} `json:"cards" dynamodbav:"cards"`
}

type FootballScore struct {
	TeamA  FootballSide `json:"teamA" dynamodbav:"teamA"`
	TeamB  FootballSide `json:"teamB" dynamodbav:"teamB"`
	Time   int          `json:"time" dynamodbav:"time"`
	Period string       `json:"period" dynamodbav:"period"`
}

// BasketballSide holds one team's points and fouls.
type BasketballSide struct {
	Points int `json:"points" dynamodbav:"points"`
	Fouls  int `json:"fouls" dynamodbav:"fouls"`
}

type BasketballScore struct {
	TeamA   BasketballSide `json:"teamA" dynamodbav:"teamA"`
	TeamB   BasketballSide `json:"teamB" dynamodbav:"teamB"`
	Quarter int            `json:"quarter" dynamodbav:"quarter"`
	Time    int            `json:"time" dynamodbav:"time"`
}

// ChessScore is terminal-result oriented: Result stays empty until a
// "result" event sets "1-0", "0-1" or "1/2-1/2".
type ChessScore struct {
	Result        string `json:"result,omitempty" dynamodbav:"result,omitempty"`
	WhiteTime     int    `json:"whiteTime" dynamodbav:"whiteTime"`
	BlackTime     int    `json:"blackTime" dynamodbav:"blackTime"`
	CurrentPlayer string `json:"currentPlayer" dynamodbav:"currentPlayer"`
}

// VolleyballSide holds one team's points in the current set plus sets won.
type VolleyballSide struct {
	Points int `json:"points" dynamodbav:"points"`
	Sets   int `json:"sets" dynamodbav:"sets"`
}

type VolleyballScore struct {
	TeamA      VolleyballSide `json:"teamA" dynamodbav:"teamA"`
	TeamB      VolleyballSide `json:"teamB" dynamodbav:"teamB"`
	CurrentSet int            `json:"currentSet" dynamodbav:"currentSet"`
	Serving    string         `json:"serving" dynamodbav:"serving"`
}

// RacketSide holds one player's points in the current game plus games won.
// Shared by badminton and table tennis.
type RacketSide struct {
	Points int `json:"points" dynamodbav:"points"`
	Games  int `json:"games" dynamodbav:"games"`
}

type BadmintonScore struct {
	PlayerA     RacketSide `json:"playerA" dynamodbav:"playerA"`
	PlayerB     RacketSide `json:"playerB" dynamodbav:"playerB"`
	CurrentGame int        `json:"currentGame" dynamodbav:"currentGame"`
	Serving     string     `json:"serving" dynamodbav:"serving"`
}

type TableTennisScore struct {
	PlayerA     RacketSide `json:"playerA" dynamodbav:"playerA"`
	PlayerB     RacketSide `json:"playerB" dynamodbav:"playerB"`
	CurrentGame int        `json:"currentGame" dynamodbav:"currentGame"`
	Serving     string     `json:"serving" dynamodbav:"serving"`
}
