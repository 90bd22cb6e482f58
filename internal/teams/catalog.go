// Package teams owns the canonical team catalog and the name resolver.
// All lookup tables are built once at construction and never mutated, so
// resolution is a read-only map/slice walk.
package teams

import (
	"sort"
	"strings"

	"github.com/betscope/betscope/internal/models"
)

// Provider names used as ProviderKeys map keys.
const (
	ProviderOdds     = "odds"
	ProviderStats    = "stats"
	ProviderInjuries = "injuries"
)

// Catalog resolves free-form team references to canonical identities and
// maps identities to per-provider keys.
type Catalog struct {
	bySport  map[models.Sport][]models.TeamIdentity
	byAlias  map[models.Sport]map[string]int   // normalized alias -> index into bySport slice
	scanList map[models.Sport][]aliasBinding   // sorted for deterministic containment matching
}

type aliasBinding struct {
	alias string
	index int
}

// NewCatalog builds the catalog from the static team table.
func NewCatalog() *Catalog {
	c := &Catalog{
		bySport:  make(map[models.Sport][]models.TeamIdentity),
		byAlias:  make(map[models.Sport]map[string]int),
		scanList: make(map[models.Sport][]aliasBinding),
	}

	for _, e := range teamTable {
		identity := models.TeamIdentity{
			CanonicalName: e.name,
			Sport:         e.sport,
			City:          e.city,
			Mascot:        e.mascot,
			Abbreviation:  e.abbr,
			Aliases:       e.aliases,
			ProviderKeys: map[string]string{
				ProviderOdds:     e.name,
				ProviderStats:    e.mascot,
				ProviderInjuries: e.name,
			},
			Venue: e.venue,
		}
		c.bySport[e.sport] = append(c.bySport[e.sport], identity)
	}

	for sport, list := range c.bySport {
		c.byAlias[sport] = make(map[string]int)
		ambiguous := make(map[string]bool)

		for i, team := range list {
			for _, alias := range teamAliases(team) {
				alias = Normalize(alias)
				if alias == "" {
					continue
				}
				if existing, ok := c.byAlias[sport][alias]; ok && existing != i {
					// Shared within the sport (two Chicago MLB clubs and
					// the like): fail closed rather than guess.
					ambiguous[alias] = true
					continue
				}
				c.byAlias[sport][alias] = i
			}
		}

		for alias := range ambiguous {
			delete(c.byAlias[sport], alias)
		}

		bindings := make([]aliasBinding, 0, len(c.byAlias[sport]))
		for alias, idx := range c.byAlias[sport] {
			bindings = append(bindings, aliasBinding{alias: alias, index: idx})
		}
		// Longest alias first so "new york yankees" beats "new york";
		// lexicographic tiebreak keeps scans deterministic.
		sort.Slice(bindings, func(a, b int) bool {
			if len(bindings[a].alias) != len(bindings[b].alias) {
				return len(bindings[a].alias) > len(bindings[b].alias)
			}
			return bindings[a].alias < bindings[b].alias
		})
		c.scanList[sport] = bindings
	}

	return c
}

func teamAliases(t models.TeamIdentity) []string {
	aliases := []string{t.CanonicalName, t.City, t.Mascot, t.Abbreviation}
	return append(aliases, t.Aliases...)
}

// Normalize lowercases, trims, and strips filler tokens from a team
// reference.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "the ")
	s = strings.TrimSuffix(s, " team")
	return strings.Join(strings.Fields(s), " ")
}

// Resolve maps a free-form team reference to its canonical identity
// within one sport. Match order: exact alias, then a known alias
// contained in the input, then the input contained in a canonical name.
// Unmatched input fails closed.
func (c *Catalog) Resolve(raw string, sport models.Sport) (models.TeamIdentity, bool) {
	input := Normalize(raw)
	if input == "" {
		return models.TeamIdentity{}, false
	}

	if idx, ok := c.byAlias[sport][input]; ok {
		return c.bySport[sport][idx], true
	}

	for _, b := range c.scanList[sport] {
		if containsWord(input, b.alias) {
			return c.bySport[sport][b.index], true
		}
	}

	// Partial canonical-name matches need a few characters to work with,
	// and must be unique: "new york" names two clubs in most sports, so
	// it fails closed instead of guessing.
	if len(input) >= 3 {
		match := -1
		for i, team := range c.bySport[sport] {
			if strings.Contains(strings.ToLower(team.CanonicalName), input) {
				if match >= 0 {
					return models.TeamIdentity{}, false
				}
				match = i
			}
		}
		if match >= 0 {
			return c.bySport[sport][match], true
		}
	}

	return models.TeamIdentity{}, false
}

// containsWord reports whether alias appears in input on word boundaries,
// so two-letter abbreviations cannot fire out of the middle of an
// unrelated word.
func containsWord(input, alias string) bool {
	return strings.Contains(" "+input+" ", " "+alias+" ")
}

// ResolveAny tries each sport in order and returns the first match.
func (c *Catalog) ResolveAny(raw string) (models.TeamIdentity, bool) {
	for _, sport := range models.AllSports() {
		if identity, ok := c.Resolve(raw, sport); ok {
			return identity, true
		}
	}
	return models.TeamIdentity{}, false
}

// ProviderKey returns the provider's identifier for a team. Absence means
// the adapter must not call upstream with a guessed key.
func (c *Catalog) ProviderKey(identity models.TeamIdentity, provider string) (string, bool) {
	key, ok := identity.ProviderKeys[provider]
	return key, ok && key != ""
}

// TeamsForSport returns the catalog entries for one sport.
func (c *Catalog) TeamsForSport(sport models.Sport) []models.TeamIdentity {
	return c.bySport[sport]
}
