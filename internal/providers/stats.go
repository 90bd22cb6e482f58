package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/betscope/betscope/internal/cache"
	"github.com/betscope/betscope/internal/models"
	"github.com/betscope/betscope/internal/teams"
)

// Cache key namespaces for the stats adapter. Schedule lookups are
// static for a season and get the long TTL; comparisons get the live one.
const (
	StatsProviderName    = "stats"
	ScheduleProviderName = "stats_schedule"
)

// statsEndpoints maps a sport onto the provider's versioned path prefix
// and current season. One adapter serves all three sports.
var statsEndpoints = map[models.Sport]struct {
	prefix string
	season string
}{
	models.SportFootball:   {prefix: "nfl/trial/v7/en", season: "2025/REG"},
	models.SportBasketball: {prefix: "nba/trial/v8/en", season: "2025/REG"},
	models.SportBaseball:   {prefix: "mlb/trial/v7/en", season: "2025/REG"},
}

// StatsClient fetches seasonal team statistics. Display names are first
// resolved to the provider's opaque team IDs through a schedule lookup,
// then both team profiles are fetched and reduced to per-game rates.
type StatsClient struct {
	client  *http.Client
	cache   cache.Store
	catalog *teams.Catalog
	logger  *logrus.Logger
	apiKey  string
	baseURL string
}

type scheduleResponse struct {
	Games []scheduleGame `json:"games"`
	Weeks []struct {
		Games []scheduleGame `json:"games"`
	} `json:"weeks"`
}

type scheduleGame struct {
	Home scheduleTeam `json:"home"`
	Away scheduleTeam `json:"away"`
}

type scheduleTeam struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type profileResponse struct {
	Record struct {
		Points        int `json:"points"`
		PointsAgainst int `json:"points_against"`
		GamesPlayed   int `json:"games_played"`
		Offense       struct {
			TotalYards int `json:"total_yards"`
		} `json:"offense"`
		Passing struct {
			Yards         int `json:"yards"`
			Interceptions int `json:"interceptions"`
		} `json:"passing"`
		Rushing struct {
			Yards int `json:"yards"`
		} `json:"rushing"`
		Fumbles struct {
			LostFumbles int `json:"lost_fumbles"`
		} `json:"fumbles"`
		Defense struct {
			Sacks         int `json:"sacks"`
			Interceptions int `json:"interceptions"`
			ForcedFumbles int `json:"forced_fumbles"`
		} `json:"defense"`
		Efficiency struct {
			ThirdDown struct {
				Pct float64 `json:"pct"`
			} `json:"thirddown"`
		} `json:"efficiency"`
	} `json:"record"`
}

// NewStatsClient creates the statistics adapter.
func NewStatsClient(apiKey, baseURL string, store cache.Store, catalog *teams.Catalog, logger *logrus.Logger) *StatsClient {
	return &StatsClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   store,
		catalog: catalog,
		logger:  logger,
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// Compare fetches both teams' seasonal profiles and reduces them to a
// side-by-side comparison.
func (s *StatsClient) Compare(ctx context.Context, home, away models.TeamIdentity) Result[models.StatsComparison] {
	homeKey, okH := s.catalog.ProviderKey(home, teams.ProviderStats)
	awayKey, okA := s.catalog.ProviderKey(away, teams.ProviderStats)
	if !okH || !okA {
		return Unavailable[models.StatsComparison]("no mapping")
	}

	subjectKey := cache.DayKey(fmt.Sprintf("compare:%s|%s", home.CanonicalName, away.CanonicalName), time.Now())
	if entry, err := s.cache.Get(ctx, StatsProviderName, subjectKey); err == nil && entry != nil {
		if cmp, err := cache.Decode[models.StatsComparison](entry); err == nil {
			return Ok(cmp, entry.InsertedAt)
		}
	}

	ids, res := s.teamIDs(ctx, home.Sport)
	if res.Status != StatusOK {
		return Result[models.StatsComparison]{Status: res.Status, Reason: res.Reason}
	}

	homeID, okH := ids[strings.ToLower(homeKey)]
	awayID, okA := ids[strings.ToLower(awayKey)]
	if !okH || !okA {
		return Unavailable[models.StatsComparison](fmt.Sprintf("team ids not found in schedule for %s / %s", homeKey, awayKey))
	}

	homeLine, res2 := s.teamProfile(ctx, home.Sport, homeID)
	if res2.Status != StatusOK {
		return Result[models.StatsComparison]{Status: res2.Status, Reason: res2.Reason}
	}
	awayLine, res3 := s.teamProfile(ctx, home.Sport, awayID)
	if res3.Status != StatusOK {
		return Result[models.StatsComparison]{Status: res3.Status, Reason: res3.Reason}
	}

	cmp := models.StatsComparison{Home: homeLine, Away: awayLine}
	if err := s.cache.Put(ctx, StatsProviderName, subjectKey, cmp); err != nil {
		s.logger.WithError(err).Warn("Failed to cache stats comparison")
	}
	return Ok(cmp, time.Now())
}

// teamIDs resolves provider team names to opaque IDs via the season
// schedule, cached for the schedule TTL.
func (s *StatsClient) teamIDs(ctx context.Context, sport models.Sport) (map[string]string, Result[struct{}]) {
	ep, ok := statsEndpoints[sport]
	if !ok {
		return nil, Unavailable[struct{}](fmt.Sprintf("unsupported sport %q", sport))
	}

	scheduleKey := "ids:" + ep.prefix
	if entry, err := s.cache.Get(ctx, ScheduleProviderName, scheduleKey); err == nil && entry != nil {
		if ids, err := cache.Decode[map[string]string](entry); err == nil {
			return ids, Ok(struct{}{}, entry.InsertedAt)
		}
	}

	reqURL := fmt.Sprintf("%s/%s/games/%s/schedule.json?%s",
		s.baseURL, ep.prefix, ep.season, url.Values{"api_key": {s.apiKey}}.Encode())

	body, res := s.get(ctx, reqURL)
	if res.Status != StatusOK {
		return nil, res
	}

	var schedule scheduleResponse
	if err := json.Unmarshal(body, &schedule); err != nil {
		return nil, Unavailable[struct{}](fmt.Sprintf("malformed schedule response: %v", err))
	}

	ids := make(map[string]string)
	collect := func(games []scheduleGame) {
		for _, g := range games {
			if g.Home.ID != "" {
				ids[strings.ToLower(g.Home.Name)] = g.Home.ID
			}
			if g.Away.ID != "" {
				ids[strings.ToLower(g.Away.Name)] = g.Away.ID
			}
		}
	}
	collect(schedule.Games)
	for _, week := range schedule.Weeks {
		collect(week.Games)
	}

	if len(ids) == 0 {
		return nil, Unavailable[struct{}]("schedule contained no teams")
	}

	if err := s.cache.Put(ctx, ScheduleProviderName, scheduleKey, ids); err != nil {
		s.logger.WithError(err).Warn("Failed to cache schedule ids")
	}
	return ids, Ok(struct{}{}, time.Now())
}

func (s *StatsClient) teamProfile(ctx context.Context, sport models.Sport, teamID string) (models.TeamStatLine, Result[struct{}]) {
	ep := statsEndpoints[sport]
	reqURL := fmt.Sprintf("%s/%s/teams/%s/profile.json?%s",
		s.baseURL, ep.prefix, teamID, url.Values{"api_key": {s.apiKey}}.Encode())

	body, res := s.get(ctx, reqURL)
	if res.Status != StatusOK {
		return models.TeamStatLine{}, res
	}

	var profile profileResponse
	if err := json.Unmarshal(body, &profile); err != nil {
		return models.TeamStatLine{}, Unavailable[struct{}](fmt.Sprintf("malformed profile response: %v", err))
	}

	rec := profile.Record
	// Guard the per-game rates against an empty season.
	games := rec.GamesPlayed
	if games < 1 {
		games = 1
	}

	return models.TeamStatLine{
		PointsPerGame:        float64(rec.Points) / float64(games),
		PointsAllowedPerGame: float64(rec.PointsAgainst) / float64(games),
		TotalYards:           rec.Offense.TotalYards,
		PassingYards:         rec.Passing.Yards,
		RushingYards:         rec.Rushing.Yards,
		Turnovers:            rec.Passing.Interceptions + rec.Fumbles.LostFumbles,
		Takeaways:            rec.Defense.Interceptions + rec.Defense.ForcedFumbles,
		ThirdDownPct:         rec.Efficiency.ThirdDown.Pct,
		GamesPlayed:          rec.GamesPlayed,
	}, Ok(struct{}{}, time.Now())
}

func (s *StatsClient) get(ctx context.Context, reqURL string) ([]byte, Result[struct{}]) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, Unavailable[struct{}](fmt.Sprintf("failed to build request: %v", err))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, Unavailable[struct{}](fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		s.logger.Warn("Stats provider rate limited")
		return nil, RateLimited[struct{}]()
	}
	if resp.StatusCode != http.StatusOK {
		return nil, Unavailable[struct{}](fmt.Sprintf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Unavailable[struct{}](fmt.Sprintf("failed to read response: %v", err))
	}
	return body, Ok(struct{}{}, time.Now())
}
