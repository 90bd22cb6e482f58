package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/betscope/betscope/internal/cache"
	"github.com/betscope/betscope/internal/models"
	"github.com/betscope/betscope/internal/storage"
)

// InjuryProviderName keys the injury adapter's cache entries.
const InjuryProviderName = "injuries"

// InjuryReader is the store surface the adapter reads through.
type InjuryReader interface {
	TeamInjuries(ctx context.Context, teamName string) ([]storage.PlayerInjury, error)
}

// InjuryRecorder is the store surface the feed refresh writes through.
type InjuryRecorder interface {
	RecordInjury(ctx context.Context, teamName, playerName, position, status, injuryType, source string) error
}

// InjuryClient reads team injuries from the snapshot store, classifies
// their impact, and returns them ordered by severity. UpdateInjuries
// refreshes the store from the configured feed; it is invoked by the
// background scheduler, not per request.
type InjuryClient struct {
	client      *http.Client
	reader      InjuryReader
	recorder    InjuryRecorder
	cache       cache.Store
	logger      *logrus.Logger
	feedURL     string
	starPlayers map[string]bool
}

// injuryFeedItem is one row of the JSON injury feed.
type injuryFeedItem struct {
	Team       string `json:"team"`
	Player     string `json:"player"`
	Position   string `json:"position"`
	Status     string `json:"status"`
	InjuryType string `json:"injury_type"`
	Source     string `json:"source"`
}

// NewInjuryClient creates the injury adapter.
func NewInjuryClient(store *storage.InjuryStore, c cache.Store, feedURL string, starPlayers []string, logger *logrus.Logger) *InjuryClient {
	stars := make(map[string]bool, len(starPlayers))
	for _, p := range starPlayers {
		stars[strings.ToLower(strings.TrimSpace(p))] = true
	}
	return &InjuryClient{
		client:      &http.Client{Timeout: 10 * time.Second},
		reader:      store,
		recorder:    store,
		cache:       c,
		logger:      logger,
		feedURL:     feedURL,
		starPlayers: stars,
	}
}

// TeamInjuries returns a team's current injuries ordered by severity:
// Out first, then Doubtful, then Questionable, then everything else,
// with player name as the tiebreak.
func (i *InjuryClient) TeamInjuries(ctx context.Context, team models.TeamIdentity) Result[[]models.Injury] {
	subjectKey := cache.DayKey("team:"+team.CanonicalName, time.Now())
	if entry, err := i.cache.Get(ctx, InjuryProviderName, subjectKey); err == nil && entry != nil {
		if injuries, err := cache.Decode[[]models.Injury](entry); err == nil {
			return Ok(injuries, entry.InsertedAt)
		}
	}

	rows, err := i.reader.TeamInjuries(ctx, team.CanonicalName)
	if err != nil {
		i.logger.WithError(err).WithField("team", team.CanonicalName).Warn("Injury store read failed")
		return Unavailable[[]models.Injury](fmt.Sprintf("store read failed: %v", err))
	}

	injuries := make([]models.Injury, 0, len(rows))
	for _, row := range rows {
		injuries = append(injuries, models.Injury{
			Player:     row.Player,
			Position:   row.Position,
			Status:     row.Status,
			InjuryType: row.InjuryType,
			Impact:     i.ClassifyImpact(row.Status, row.Player, row.InjuryType),
		})
	}
	SortInjuries(injuries)

	if err := i.cache.Put(ctx, InjuryProviderName, subjectKey, injuries); err != nil {
		i.logger.WithError(err).Warn("Failed to cache injuries")
	}

	return Ok(injuries, time.Now())
}

// UpdateInjuries pulls the configured feed and rewrites the snapshot
// store. Called on a fixed schedule by the external refresh job.
func (i *InjuryClient) UpdateInjuries(ctx context.Context) error {
	if i.feedURL == "" {
		return fmt.Errorf("no injury feed configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.feedURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return fmt.Errorf("injury feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("injury feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read injury feed: %w", err)
	}

	var items []injuryFeedItem
	if err := json.Unmarshal(body, &items); err != nil {
		return fmt.Errorf("malformed injury feed: %w", err)
	}

	recorded := 0
	for _, item := range items {
		if item.Team == "" || item.Player == "" {
			continue
		}
		if err := i.recorder.RecordInjury(ctx, item.Team, item.Player, item.Position, item.Status, item.InjuryType, item.Source); err != nil {
			i.logger.WithError(err).WithFields(logrus.Fields{
				"team":   item.Team,
				"player": item.Player,
			}).Warn("Failed to record injury")
			continue
		}
		recorded++
	}

	i.logger.WithFields(logrus.Fields{
		"fetched":  len(items),
		"recorded": recorded,
	}).Info("Injury snapshot refreshed")
	return nil
}

// Severity keyword tables over injury-type strings. Status overrides the
// type-derived level; a configured star player bumps one level.
var (
	severeInjuries = []string{
		"acl", "mcl", "achilles", "fracture", "surgery",
		"concussion", "torn", "rupture",
	}
	moderateInjuries = []string{
		"knee", "back", "ankle", "hamstring", "groin",
		"shoulder", "hip", "foot", "wrist",
	}
)

// ClassifyImpact derives the impact level from status, injury type, and
// the star-player list.
func (i *InjuryClient) ClassifyImpact(status, player, injuryType string) models.InjuryImpact {
	status = strings.ToLower(status)
	injuryType = strings.ToLower(injuryType)

	impact := models.ImpactLow
	for _, kw := range severeInjuries {
		if strings.Contains(injuryType, kw) {
			impact = models.ImpactHigh
			break
		}
	}
	if impact == models.ImpactLow {
		for _, kw := range moderateInjuries {
			if strings.Contains(injuryType, kw) {
				impact = models.ImpactMedium
				break
			}
		}
	}

	if strings.Contains(status, "out") {
		impact = models.ImpactHigh
	} else if strings.Contains(status, "doubt") && impact != models.ImpactHigh {
		impact = models.ImpactMedium
	}

	if i.starPlayers[strings.ToLower(player)] {
		switch impact {
		case models.ImpactLow:
			impact = models.ImpactMedium
		case models.ImpactMedium:
			impact = models.ImpactHigh
		}
	}

	return impact
}

// SortInjuries orders injuries Out > Doubtful > Questionable > other,
// then by player name.
func SortInjuries(injuries []models.Injury) {
	sort.SliceStable(injuries, func(a, b int) bool {
		ra, rb := statusRank(injuries[a].Status), statusRank(injuries[b].Status)
		if ra != rb {
			return ra < rb
		}
		return injuries[a].Player < injuries[b].Player
	})
}

func statusRank(status string) int {
	status = strings.ToLower(status)
	switch {
	case strings.Contains(status, "out"):
		return 0
	case strings.Contains(status, "doubt"):
		return 1
	case strings.Contains(status, "quest"):
		return 2
	default:
		return 3
	}
}
