// Package intent classifies free-text bet descriptions into structured
// bet intents. Classification is purely lexical; anything that does not
// match a supported pattern becomes an Unknown intent, which is a normal
// result the caller handles by skipping enrichment.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/betscope/betscope/internal/models"
	"github.com/betscope/betscope/internal/teams"
)

// Extractor turns raw bet text into a BetIntent, resolving any team
// references through the catalog.
type Extractor struct {
	catalog *teams.Catalog
	logger  *logrus.Logger
}

// NewExtractor creates an intent extractor backed by the team catalog.
func NewExtractor(catalog *teams.Catalog, logger *logrus.Logger) *Extractor {
	return &Extractor{catalog: catalog, logger: logger}
}

var (
	matchupSeparators = []string{" beat ", " beats ", " vs. ", " vs ", " versus ", " @ "}

	// "<player> over|under <number> <stat words>"
	propPattern = regexp.MustCompile(`^(.+?)\s+(over|under)\s+(\d+(?:\.\d+)?)\s+(.+)$`)
)

// statKeywords maps phrasing fragments onto normalized stat types. Longer
// fragments are listed first inside each entry set so "passing yards" wins
// over bare "yards".
var statKeywords = []struct {
	fragment string
	statType string
}{
	{"passing yards", "passing_yards"},
	{"rushing yards", "rushing_yards"},
	{"receiving yards", "receiving_yards"},
	{"passing touchdowns", "passing_touchdowns"},
	{"rushing touchdowns", "rushing_touchdowns"},
	{"home runs", "home_runs"},
	{"touchdowns", "touchdowns"},
	{"receptions", "receptions"},
	{"strikeouts", "strikeouts"},
	{"rebounds", "rebounds"},
	{"assists", "assists"},
	{"threes", "threes"},
	{"points", "points"},
	{"yards", "passing_yards"},
	{"hits", "hits"},
}

// Extract classifies the given text. Never returns an error: unparsable
// text yields an Unknown intent carrying the original text.
func (e *Extractor) Extract(text string) models.BetIntent {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return models.BetIntent{Type: models.BetTypeUnknown, RawText: text}
	}

	if intent, ok := e.extractGameWinner(text, normalized); ok {
		return intent
	}
	if intent, ok := e.extractPlayerProp(text, normalized); ok {
		return intent
	}

	e.logger.WithField("text", text).Debug("No bet pattern matched")
	return models.BetIntent{Type: models.BetTypeUnknown, RawText: text}
}

func (e *Extractor) extractGameWinner(raw, normalized string) (models.BetIntent, bool) {
	for _, sep := range matchupSeparators {
		parts := strings.SplitN(normalized, sep, 2)
		if len(parts) != 2 {
			continue
		}
		sideA := strings.TrimSpace(parts[0])
		sideB := strings.TrimSpace(parts[1])
		if sideA == "" || sideB == "" {
			continue
		}

		gw := &models.GameWinnerIntent{TeamARaw: sideA, TeamBRaw: sideB}
		if identity, ok := e.catalog.ResolveAny(sideA); ok {
			gw.TeamA = identity
		}
		// Keep both sides in one sport; a cross-sport "matchup" is noise.
		if !gw.TeamA.IsZero() {
			if identity, ok := e.catalog.Resolve(sideB, gw.TeamA.Sport); ok {
				gw.TeamB = identity
			}
		} else if identity, ok := e.catalog.ResolveAny(sideB); ok {
			gw.TeamB = identity
		}

		return models.BetIntent{
			Type:       models.BetTypeGameWinner,
			RawText:    raw,
			GameWinner: gw,
		}, true
	}
	return models.BetIntent{}, false
}

func (e *Extractor) extractPlayerProp(raw, normalized string) (models.BetIntent, bool) {
	m := propPattern.FindStringSubmatch(normalized)
	if m == nil {
		return models.BetIntent{}, false
	}

	statType, ok := classifyStat(m[4])
	if !ok {
		return models.BetIntent{}, false
	}

	threshold, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return models.BetIntent{}, false
	}

	prop := &models.PlayerPropIntent{
		Player:    titleCase(m[1]),
		StatType:  statType,
		Threshold: threshold,
		Direction: models.PropDirection(m[2]),
	}
	// A team mentioned anywhere in the text ("chiefs qb ...") rides along
	// so the caller can pull that team's context.
	if identity, ok := e.catalog.ResolveAny(normalized); ok {
		prop.Team = identity
	}

	return models.BetIntent{
		Type:       models.BetTypePlayerProp,
		RawText:    raw,
		PlayerProp: prop,
	}, true
}

func classifyStat(words string) (string, bool) {
	words = strings.TrimSpace(words)
	for _, kw := range statKeywords {
		if strings.Contains(words, kw.fragment) {
			return kw.statType, true
		}
	}
	return "", false
}

func titleCase(name string) string {
	fields := strings.Fields(name)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}
