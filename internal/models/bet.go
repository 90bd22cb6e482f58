package models

// BetType discriminates the supported bet intents.
type BetType string

const (
	BetTypeGameWinner BetType = "game_winner"
	BetTypePlayerProp BetType = "player_prop"
	BetTypeUnknown    BetType = "unknown"
)

// PropDirection is the over/under side of a player prop.
type PropDirection string

const (
	PropOver  PropDirection = "over"
	PropUnder PropDirection = "under"
)

// GameWinnerIntent carries both sides of a "team A beats team B" bet. The
// raw strings are kept alongside the resolved identities so an unresolved
// side can still be reported back to the caller.
type GameWinnerIntent struct {
	TeamARaw string       `json:"team_a_raw"`
	TeamBRaw string       `json:"team_b_raw"`
	TeamA    TeamIdentity `json:"team_a"`
	TeamB    TeamIdentity `json:"team_b"`
}

// PlayerPropIntent carries a player stat-line bet.
type PlayerPropIntent struct {
	Player    string        `json:"player"`
	Team      TeamIdentity  `json:"team,omitempty"`
	StatType  string        `json:"stat_type"`
	Threshold float64       `json:"threshold"`
	Direction PropDirection `json:"direction"`
}

// BetIntent is the classification of a free-text bet. Exactly one of
// GameWinner and PlayerProp is set, matching Type; an unknown intent
// carries only the raw text and is a normal result, not a failure.
// Intents are immutable once produced by the extractor.
type BetIntent struct {
	Type       BetType           `json:"type"`
	RawText    string            `json:"raw_text"`
	GameWinner *GameWinnerIntent `json:"game_winner,omitempty"`
	PlayerProp *PlayerPropIntent `json:"player_prop,omitempty"`
}
