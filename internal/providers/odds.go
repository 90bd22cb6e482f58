package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/betscope/betscope/internal/cache"
	"github.com/betscope/betscope/internal/models"
	"github.com/betscope/betscope/internal/teams"
)

// OddsProviderName keys the odds adapter's cache entries.
const OddsProviderName = "odds"

// oddsSportKeys maps internal sports onto the odds provider's sport keys.
var oddsSportKeys = map[models.Sport]string{
	models.SportFootball:   "americanfootball_nfl",
	models.SportBasketball: "basketball_nba",
	models.SportBaseball:   "baseball_mlb",
}

// SportKey reports the odds provider's key for a sport, if one exists.
func SportKey(sport models.Sport) (string, bool) {
	key, ok := oddsSportKeys[sport]
	return key, ok
}

// OddsClient fetches betting odds and normalizes them into GameOdds. The
// odds lookup is the authoritative source of home/away assignment and the
// scheduled game time.
type OddsClient struct {
	client  *http.Client
	cache   cache.Store
	catalog *teams.Catalog
	logger  *logrus.Logger
	apiKey  string
	baseURL string
}

// oddsAPIGame is the provider's wire shape for one game.
type oddsAPIGame struct {
	ID           string    `json:"id"`
	SportKey     string    `json:"sport_key"`
	CommenceTime time.Time `json:"commence_time"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	Bookmakers   []struct {
		Key     string `json:"key"`
		Markets []struct {
			Key      string `json:"key"`
			Outcomes []struct {
				Name  string  `json:"name"`
				Price float64 `json:"price"`
				Point float64 `json:"point"`
			} `json:"outcomes"`
		} `json:"markets"`
	} `json:"bookmakers"`
}

// NewOddsClient creates the odds adapter.
func NewOddsClient(apiKey, baseURL string, store cache.Store, catalog *teams.Catalog, logger *logrus.Logger) *OddsClient {
	return &OddsClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   store,
		catalog: catalog,
		logger:  logger,
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// MatchupKey builds the deterministic cache key for a pair of teams on
// the current calendar day. The pair is sorted so either ordering of the
// bet text lands on the same entry.
func MatchupKey(teamA, teamB models.TeamIdentity, day time.Time) string {
	names := []string{teamA.CanonicalName, teamB.CanonicalName}
	sort.Strings(names)
	subject := fmt.Sprintf("matchup:%s|%s", names[0], names[1])
	return cache.DayKey(subject, day)
}

// FindGame locates the upcoming game between two teams and returns its
// normalized odds. HTTP 429 surfaces as RateLimited so the caller can
// fall back to a stale cache entry.
func (o *OddsClient) FindGame(ctx context.Context, teamA, teamB models.TeamIdentity) Result[models.GameOdds] {
	keyA, okA := o.catalog.ProviderKey(teamA, teams.ProviderOdds)
	keyB, okB := o.catalog.ProviderKey(teamB, teams.ProviderOdds)
	if !okA || !okB {
		return Unavailable[models.GameOdds]("no mapping")
	}

	matchupKey := MatchupKey(teamA, teamB, time.Now())
	if entry, err := o.cache.Get(ctx, OddsProviderName, matchupKey); err == nil && entry != nil {
		if odds, err := cache.Decode[models.GameOdds](entry); err == nil {
			return Ok(odds, entry.InsertedAt)
		}
	}

	listing := o.Upcoming(ctx, teamA.Sport)
	if !listing.Usable() {
		return Result[models.GameOdds]{Status: listing.Status, Reason: listing.Reason}
	}

	wantA := strings.ToLower(keyA)
	wantB := strings.ToLower(keyB)
	for _, game := range listing.Data {
		home := strings.ToLower(game.HomeTeam)
		away := strings.ToLower(game.AwayTeam)
		if (strings.Contains(home, wantA) || strings.Contains(away, wantA)) &&
			(strings.Contains(home, wantB) || strings.Contains(away, wantB)) {
			if err := o.cache.Put(ctx, OddsProviderName, matchupKey, game); err != nil {
				o.logger.WithError(err).Warn("Failed to cache matchup odds")
			}
			return Ok(game, listing.FetchedAt)
		}
	}

	return Unavailable[models.GameOdds](fmt.Sprintf("no upcoming game matching %s vs %s", teamA.CanonicalName, teamB.CanonicalName))
}

// Upcoming fetches the normalized odds listing for a sport.
func (o *OddsClient) Upcoming(ctx context.Context, sport models.Sport) Result[[]models.GameOdds] {
	sportKey, ok := oddsSportKeys[sport]
	if !ok {
		return Unavailable[[]models.GameOdds](fmt.Sprintf("unsupported sport %q", sport))
	}

	listingKey := cache.DayKey("upcoming:"+sportKey, time.Now())
	if entry, err := o.cache.Get(ctx, OddsProviderName, listingKey); err == nil && entry != nil {
		if games, err := cache.Decode[[]models.GameOdds](entry); err == nil {
			return Ok(games, entry.InsertedAt)
		}
	}

	params := url.Values{}
	params.Set("apiKey", o.apiKey)
	params.Set("regions", "us")
	params.Set("markets", "h2h,spreads,totals")
	params.Set("oddsFormat", "american")
	params.Set("dateFormat", "iso")
	reqURL := fmt.Sprintf("%s/sports/%s/odds?%s", o.baseURL, sportKey, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Unavailable[[]models.GameOdds](fmt.Sprintf("failed to build request: %v", err))
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return Unavailable[[]models.GameOdds](fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		o.logger.WithField("sport", sportKey).Warn("Odds provider rate limited")
		return RateLimited[[]models.GameOdds]()
	}
	if resp.StatusCode != http.StatusOK {
		return Unavailable[[]models.GameOdds](fmt.Sprintf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Unavailable[[]models.GameOdds](fmt.Sprintf("failed to read response: %v", err))
	}

	var apiGames []oddsAPIGame
	if err := json.Unmarshal(body, &apiGames); err != nil {
		return Unavailable[[]models.GameOdds](fmt.Sprintf("malformed odds response: %v", err))
	}

	games := make([]models.GameOdds, 0, len(apiGames))
	for _, g := range apiGames {
		games = append(games, normalizeGame(g))
	}

	if err := o.cache.Put(ctx, OddsProviderName, listingKey, games); err != nil {
		o.logger.WithError(err).Warn("Failed to cache odds listing")
	}

	o.logger.WithFields(logrus.Fields{
		"sport": sportKey,
		"games": len(games),
	}).Debug("Fetched odds listing")
	return Ok(games, time.Now())
}

// normalizeGame flattens the provider's bookmaker/market/outcome nesting
// into the shared GameOdds shape.
func normalizeGame(g oddsAPIGame) models.GameOdds {
	odds := models.GameOdds{
		HomeTeam:    g.HomeTeam,
		AwayTeam:    g.AwayTeam,
		CommenceAt:  g.CommenceTime,
		SportKey:    g.SportKey,
		ProviderRef: g.ID,
		Bookmakers:  make(map[string]models.BookmakerOdds),
	}

	for _, book := range g.Bookmakers {
		var bo models.BookmakerOdds
		for _, market := range book.Markets {
			switch market.Key {
			case "h2h":
				m := &models.MarketOdds{}
				for _, out := range market.Outcomes {
					switch out.Name {
					case g.HomeTeam:
						m.Home = out.Price
					case g.AwayTeam:
						m.Away = out.Price
					}
				}
				bo.Moneyline = m
			case "spreads":
				m := &models.MarketOdds{}
				for _, out := range market.Outcomes {
					switch out.Name {
					case g.HomeTeam:
						m.Home = out.Price
						m.Line = out.Point
					case g.AwayTeam:
						m.Away = out.Price
					}
				}
				bo.Spread = m
			case "totals":
				m := &models.MarketOdds{}
				for _, out := range market.Outcomes {
					switch strings.ToLower(out.Name) {
					case "over":
						m.Home = out.Price
						m.Line = out.Point
					case "under":
						m.Away = out.Price
					}
				}
				bo.Total = m
			}
		}
		odds.Bookmakers[book.Key] = bo
	}

	return odds
}
