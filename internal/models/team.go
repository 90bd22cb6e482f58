package models

// Sport identifies one of the supported leagues.
type Sport string

const (
	SportFootball   Sport = "football"   // NFL
	SportBasketball Sport = "basketball" // NBA
	SportBaseball   Sport = "baseball"   // MLB
)

// AllSports lists every supported sport in a stable order.
func AllSports() []Sport {
	return []Sport{SportFootball, SportBasketball, SportBaseball}
}

// Valid reports whether s is one of the supported sports.
func (s Sport) Valid() bool {
	switch s {
	case SportFootball, SportBasketball, SportBaseball:
		return true
	}
	return false
}

// Venue is the home venue of a team, used for weather lookups. Indoor
// venues never trigger an outbound weather call.
type Venue struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Indoor    bool    `json:"indoor"`
}

// TeamIdentity is the canonical representation of a team, independent of
// any provider's naming. Aliases cover abbreviations, city-only and
// mascot-only names, and known misspellings; ProviderKeys maps a provider
// name to that provider's identifier for the team.
type TeamIdentity struct {
	CanonicalName string            `json:"canonical_name"`
	Sport         Sport             `json:"sport"`
	City          string            `json:"city"`
	Mascot        string            `json:"mascot"`
	Abbreviation  string            `json:"abbreviation"`
	Aliases       []string          `json:"aliases,omitempty"`
	ProviderKeys  map[string]string `json:"provider_keys,omitempty"`
	Venue         Venue             `json:"venue"`
}

// IsZero reports whether the identity is the unresolved zero value.
func (t TeamIdentity) IsZero() bool {
	return t.CanonicalName == ""
}
