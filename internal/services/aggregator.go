// Package services hosts the aggregation orchestrator and the background
// injury refresh job.
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/betscope/betscope/internal/cache"
	"github.com/betscope/betscope/internal/intent"
	"github.com/betscope/betscope/internal/models"
	"github.com/betscope/betscope/internal/providers"
	"github.com/betscope/betscope/internal/teams"
)

// Provider surfaces the orchestrator fans out to. Kept narrow so tests
// can stand in fakes per branch.
type (
	OddsSource interface {
		FindGame(ctx context.Context, teamA, teamB models.TeamIdentity) providers.Result[models.GameOdds]
		Upcoming(ctx context.Context, sport models.Sport) providers.Result[[]models.GameOdds]
	}
	WeatherSource interface {
		VenueWeather(ctx context.Context, home models.TeamIdentity, gameDay time.Time) providers.Result[models.WeatherReport]
	}
	InjurySource interface {
		TeamInjuries(ctx context.Context, team models.TeamIdentity) providers.Result[[]models.Injury]
	}
	StatsSource interface {
		Compare(ctx context.Context, home, away models.TeamIdentity) providers.Result[models.StatsComparison]
	}
	NarrativeSource interface {
		GamePreview(ctx context.Context, home, away models.TeamIdentity, odds *models.GameOdds, homeInjuries, awayInjuries []models.Injury) providers.Result[string]
	}
)

// Aggregator coordinates one bet-context aggregation: intent extraction,
// team resolution, the odds prerequisite, the enrichment fan-out, and
// the final merge. It owns the request lifetime; intermediate provider
// results are discarded once the GameRecord is built.
type Aggregator struct {
	catalog   *teams.Catalog
	extractor *intent.Extractor
	odds      OddsSource
	weather   WeatherSource
	injuries  InjurySource
	stats     StatsSource
	narrative NarrativeSource
	cache     cache.Store
	logger    *logrus.Logger

	providerTimeout time.Duration
	batchCallDelay  time.Duration
	listingLimit    int
}

// NewAggregator wires the orchestrator.
func NewAggregator(
	catalog *teams.Catalog,
	extractor *intent.Extractor,
	odds OddsSource,
	weather WeatherSource,
	injuries InjurySource,
	stats StatsSource,
	narrative NarrativeSource,
	store cache.Store,
	providerTimeout, batchCallDelay time.Duration,
	logger *logrus.Logger,
) *Aggregator {
	if providerTimeout <= 0 {
		providerTimeout = 10 * time.Second
	}
	return &Aggregator{
		catalog:         catalog,
		extractor:       extractor,
		odds:            odds,
		weather:         weather,
		injuries:        injuries,
		stats:           stats,
		narrative:       narrative,
		cache:           store,
		logger:          logger,
		providerTimeout: providerTimeout,
		batchCallDelay:  batchCallDelay,
		listingLimit:    10,
	}
}

// AnalyzeBet classifies the bet text and aggregates the matching game
// context. Unresolvable input produces a partial record, not an error.
func (a *Aggregator) AnalyzeBet(ctx context.Context, text string) (*models.GameRecord, error) {
	requestID := uuid.NewString()
	log := a.logger.WithFields(logrus.Fields{"request_id": requestID, "text": text})

	parsed := a.extractor.Extract(text)
	record := &models.GameRecord{RequestID: requestID, BetType: parsed.Type, RawText: text}

	switch parsed.Type {
	case models.BetTypeGameWinner:
		a.aggregateGame(ctx, parsed.GameWinner, record, log)
	case models.BetTypePlayerProp:
		record.PlayerProp = parsed.PlayerProp
		a.enrichProp(ctx, record, log)
	default:
		record.Warnings = append(record.Warnings, "bet text did not match a supported pattern")
	}

	return record, nil
}

// aggregateGame runs the odds prerequisite and the enrichment fan-out
// for a game-winner intent, merging everything into record.
func (a *Aggregator) aggregateGame(ctx context.Context, gw *models.GameWinnerIntent, record *models.GameRecord, log *logrus.Entry) {
	if gw.TeamA.IsZero() || gw.TeamB.IsZero() {
		// Explicit partial result: identities could not be matched, so
		// no enrichment is attempted and nothing is guessed.
		record.BetType = models.BetTypeUnknown
		for _, side := range []struct {
			raw      string
			resolved models.TeamIdentity
		}{{gw.TeamARaw, gw.TeamA}, {gw.TeamBRaw, gw.TeamB}} {
			if side.resolved.IsZero() {
				record.Warnings = append(record.Warnings, fmt.Sprintf("could not resolve team %q", side.raw))
			}
		}
		log.Info("Aggregation ended unresolved")
		return
	}

	oddsRes := a.resolveOdds(ctx, gw.TeamA, gw.TeamB, record, log)
	if !oddsRes.Usable() {
		// Odds carry the authoritative home/away split; without it the
		// enrichment branches are never started.
		record.Home, record.Away = gw.TeamA, gw.TeamB
		record.Warnings = append(record.Warnings, "odds unavailable: "+oddsRes.Reason)
		log.WithField("reason", oddsRes.Reason).Warn("Odds prerequisite failed, skipping enrichment")
		return
	}

	odds := oddsRes.Data
	record.Odds = &odds
	record.OddsStale = oddsRes.Status == providers.StatusStale
	record.ScheduledAt = odds.CommenceAt
	record.Home, record.Away = a.assignSides(gw.TeamA, gw.TeamB, odds)

	a.enrich(ctx, record, log)
	log.Info("Aggregation complete")
}

// enrichProp pulls the injury picture for a player prop when the bet
// text named a recognizable team. Without one the prop fields stand on
// their own.
func (a *Aggregator) enrichProp(ctx context.Context, record *models.GameRecord, log *logrus.Entry) {
	team := record.PlayerProp.Team
	if team.IsZero() {
		return
	}

	record.Home = team
	injRes := timed(ctx, a.providerTimeout, func(c context.Context) providers.Result[[]models.Injury] {
		return a.injuries.TeamInjuries(c, team)
	})
	mergeBranch(record, "team injuries", injRes, func(inj []models.Injury) { record.HomeInjuries = inj }, log)
}

// resolveOdds fetches game odds, falling back to a stale cache entry
// when the provider is rate limited.
func (a *Aggregator) resolveOdds(ctx context.Context, teamA, teamB models.TeamIdentity, record *models.GameRecord, log *logrus.Entry) providers.Result[models.GameOdds] {
	res := a.timedOdds(ctx, teamA, teamB)
	if res.Status != providers.StatusRateLimited {
		return res
	}

	entry, err := a.cache.GetStale(ctx, providers.OddsProviderName, providers.MatchupKey(teamA, teamB, time.Now()))
	if err != nil || entry == nil {
		return res
	}
	odds, err := cache.Decode[models.GameOdds](entry)
	if err != nil {
		return res
	}

	record.Warnings = append(record.Warnings, "odds served stale after rate limit")
	log.WithField("fetched_at", entry.InsertedAt).Warn("Serving stale odds after rate limit")
	return providers.Stale(odds, entry.InsertedAt)
}

func (a *Aggregator) timedOdds(ctx context.Context, teamA, teamB models.TeamIdentity) providers.Result[models.GameOdds] {
	callCtx, cancel := context.WithTimeout(ctx, a.providerTimeout)
	defer cancel()
	res := a.odds.FindGame(callCtx, teamA, teamB)
	if callCtx.Err() == context.DeadlineExceeded {
		return providers.Unavailable[models.GameOdds]("timeout")
	}
	return res
}

// enrich fans out to the independent providers. Each branch is isolated:
// a failed branch leaves its field empty and appends a warning, never
// aborting the others.
func (a *Aggregator) enrich(ctx context.Context, record *models.GameRecord, log *logrus.Entry) {
	var (
		wg          sync.WaitGroup
		weatherRes  providers.Result[models.WeatherReport]
		homeInjRes  providers.Result[[]models.Injury]
		awayInjRes  providers.Result[[]models.Injury]
		statsRes    providers.Result[models.StatsComparison]
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		weatherRes = timed(ctx, a.providerTimeout, func(c context.Context) providers.Result[models.WeatherReport] {
			return a.weather.VenueWeather(c, record.Home, record.ScheduledAt)
		})
	}()
	go func() {
		defer wg.Done()
		homeInjRes = timed(ctx, a.providerTimeout, func(c context.Context) providers.Result[[]models.Injury] {
			return a.injuries.TeamInjuries(c, record.Home)
		})
	}()
	go func() {
		defer wg.Done()
		awayInjRes = timed(ctx, a.providerTimeout, func(c context.Context) providers.Result[[]models.Injury] {
			return a.injuries.TeamInjuries(c, record.Away)
		})
	}()
	go func() {
		defer wg.Done()
		statsRes = timed(ctx, a.providerTimeout, func(c context.Context) providers.Result[models.StatsComparison] {
			return a.stats.Compare(c, record.Home, record.Away)
		})
	}()
	wg.Wait()

	mergeBranch(record, "weather", weatherRes, func(w models.WeatherReport) { record.Weather = &w }, log)
	mergeBranch(record, "home injuries", homeInjRes, func(inj []models.Injury) { record.HomeInjuries = inj }, log)
	mergeBranch(record, "away injuries", awayInjRes, func(inj []models.Injury) { record.AwayInjuries = inj }, log)
	mergeBranch(record, "stats", statsRes, func(s models.StatsComparison) { record.Stats = &s }, log)

	// Narrative consumes the injury and odds results, so it runs once
	// they are in hand.
	narrativeRes := timed(ctx, a.providerTimeout, func(c context.Context) providers.Result[string] {
		return a.narrative.GamePreview(c, record.Home, record.Away, record.Odds, record.HomeInjuries, record.AwayInjuries)
	})
	mergeBranch(record, "narrative", narrativeRes, func(text string) { record.Narrative = text }, log)
}

// timed runs one provider call under the per-call deadline, mapping a
// deadline hit onto Unavailable("timeout").
func timed[T any](ctx context.Context, timeout time.Duration, call func(context.Context) providers.Result[T]) providers.Result[T] {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	res := call(callCtx)
	if callCtx.Err() == context.DeadlineExceeded {
		return providers.Unavailable[T]("timeout")
	}
	return res
}

// mergeBranch applies a usable branch result to the record or records
// why the field stays empty.
func mergeBranch[T any](record *models.GameRecord, name string, res providers.Result[T], apply func(T), log *logrus.Entry) {
	if res.Usable() {
		apply(res.Data)
		return
	}
	record.Warnings = append(record.Warnings, fmt.Sprintf("%s unavailable: %s", name, res.Reason))
	log.WithFields(logrus.Fields{"branch": name, "reason": res.Reason}).Warn("Enrichment branch failed")
}

// assignSides maps the resolved identities onto the odds provider's
// authoritative home/away split.
func (a *Aggregator) assignSides(teamA, teamB models.TeamIdentity, odds models.GameOdds) (home, away models.TeamIdentity) {
	keyA, _ := a.catalog.ProviderKey(teamA, teams.ProviderOdds)
	if strings.Contains(strings.ToLower(odds.HomeTeam), strings.ToLower(keyA)) {
		return teamA, teamB
	}
	return teamB, teamA
}

// AggregateUpcoming builds records for a sport's upcoming games. The
// per-game preview calls are deliberately serialized with a small delay
// to stay inside the narrative provider's quota.
func (a *Aggregator) AggregateUpcoming(ctx context.Context, sport models.Sport) ([]models.GameRecord, error) {
	if !sport.Valid() {
		return nil, fmt.Errorf("unsupported sport %q", sport)
	}

	listing := a.odds.Upcoming(ctx, sport)
	if !listing.Usable() {
		return nil, fmt.Errorf("odds listing unavailable: %s", listing.Reason)
	}

	games := listing.Data
	if len(games) > a.listingLimit {
		games = games[:a.listingLimit]
	}

	records := make([]models.GameRecord, 0, len(games))
	for i, game := range games {
		if err := ctx.Err(); err != nil {
			return records, err
		}
		if i > 0 && a.batchCallDelay > 0 {
			time.Sleep(a.batchCallDelay)
		}

		game := game
		record := models.GameRecord{
			RequestID:   uuid.NewString(),
			BetType:     models.BetTypeGameWinner,
			Odds:        &game,
			ScheduledAt: game.CommenceAt,
		}

		home, okH := a.catalog.Resolve(game.HomeTeam, sport)
		away, okA := a.catalog.Resolve(game.AwayTeam, sport)
		if okH && okA {
			record.Home, record.Away = home, away

			weatherRes := timed(ctx, a.providerTimeout, func(c context.Context) providers.Result[models.WeatherReport] {
				return a.weather.VenueWeather(c, home, game.CommenceAt)
			})
			if weatherRes.Usable() {
				w := weatherRes.Data
				record.Weather = &w
			}

			previewRes := timed(ctx, a.providerTimeout, func(c context.Context) providers.Result[string] {
				return a.narrative.GamePreview(c, home, away, &game, nil, nil)
			})
			if previewRes.Usable() {
				record.Narrative = previewRes.Data
			}
		} else {
			record.Warnings = append(record.Warnings, "listing teams not in catalog")
		}

		records = append(records, record)
	}

	return records, nil
}
