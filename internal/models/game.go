package models

import "time"

// MarketOdds is one bookmaker's prices for a single market. Line is the
// spread handicap or the over/under total; zero for moneyline.
type MarketOdds struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
	Line float64 `json:"line,omitempty"`
}

// BookmakerOdds groups a bookmaker's markets for one game.
type BookmakerOdds struct {
	Moneyline *MarketOdds `json:"moneyline,omitempty"`
	Spread    *MarketOdds `json:"spread,omitempty"`
	Total     *MarketOdds `json:"total,omitempty"`
}

// GameOdds is the normalized odds picture for one game: the authoritative
// home/away assignment, the scheduled start, and per-bookmaker markets.
type GameOdds struct {
	HomeTeam    string                   `json:"home_team"`
	AwayTeam    string                   `json:"away_team"`
	CommenceAt  time.Time                `json:"commence_at"`
	Bookmakers  map[string]BookmakerOdds `json:"bookmakers"`
	SportKey    string                   `json:"sport_key"`
	ProviderRef string                   `json:"provider_ref,omitempty"`
}

// WeatherReport is the normalized venue weather for a game. Indoor venues
// carry the fixed climate-controlled reading and IsIndoor true.
type WeatherReport struct {
	VenueName   string `json:"venue_name"`
	Temperature int    `json:"temperature"` // Fahrenheit
	Humidity    int    `json:"humidity"`    // percent
	WindSpeed   int    `json:"wind_speed"`  // mph
	Description string `json:"description"`
	IsIndoor    bool   `json:"is_indoor"`
}

// InjuryImpact ranks how much an injury is expected to matter.
type InjuryImpact string

const (
	ImpactHigh   InjuryImpact = "High"
	ImpactMedium InjuryImpact = "Medium"
	ImpactLow    InjuryImpact = "Low"
)

// Injury is one player's current injury designation.
type Injury struct {
	Player     string       `json:"player"`
	Position   string       `json:"position,omitempty"`
	Status     string       `json:"status"`
	InjuryType string       `json:"injury_type,omitempty"`
	Impact     InjuryImpact `json:"impact"`
}

// TeamStatLine is one team's derived season statistics.
type TeamStatLine struct {
	PointsPerGame        float64 `json:"points_per_game"`
	PointsAllowedPerGame float64 `json:"points_allowed_per_game"`
	TotalYards           int     `json:"total_yards,omitempty"`
	PassingYards         int     `json:"passing_yards,omitempty"`
	RushingYards         int     `json:"rushing_yards,omitempty"`
	Turnovers            int     `json:"turnovers,omitempty"`
	Takeaways            int     `json:"takeaways,omitempty"`
	ThirdDownPct         float64 `json:"third_down_pct,omitempty"`
	GamesPlayed          int     `json:"games_played"`
}

// StatsComparison pairs both teams' derived stat lines.
type StatsComparison struct {
	Home TeamStatLine `json:"home"`
	Away TeamStatLine `json:"away"`
}

// GameRecord is the merged per-game view returned to the caller. It is
// constructed once per aggregation, never mutated after return, and never
// persisted. Enrichment fields left nil mean the corresponding provider
// attempt failed or was skipped; Warnings records why.
type GameRecord struct {
	RequestID   string       `json:"request_id"`
	BetType     BetType      `json:"bet_type"`
	RawText     string       `json:"raw_text,omitempty"`
	Home        TeamIdentity `json:"home,omitempty"`
	Away        TeamIdentity `json:"away,omitempty"`
	ScheduledAt time.Time    `json:"scheduled_at,omitempty"`

	Odds          *GameOdds         `json:"odds,omitempty"`
	OddsStale     bool              `json:"odds_stale,omitempty"`
	Weather       *WeatherReport    `json:"weather,omitempty"`
	HomeInjuries  []Injury          `json:"home_injuries,omitempty"`
	AwayInjuries  []Injury          `json:"away_injuries,omitempty"`
	Stats         *StatsComparison  `json:"stats,omitempty"`
	Narrative     string            `json:"narrative,omitempty"`
	PlayerProp    *PlayerPropIntent `json:"player_prop,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// Unresolved reports whether team identification failed entirely; the
// record then carries no enrichment.
func (g *GameRecord) Unresolved() bool {
	return g.BetType == BetTypeUnknown && g.Home.IsZero() && g.Away.IsZero()
}
