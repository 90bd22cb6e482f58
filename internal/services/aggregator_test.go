package services

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betscope/betscope/internal/cache"
	"github.com/betscope/betscope/internal/intent"
	"github.com/betscope/betscope/internal/models"
	"github.com/betscope/betscope/internal/providers"
	"github.com/betscope/betscope/internal/teams"
)

type fakeOdds struct {
	find      providers.Result[models.GameOdds]
	upcoming  providers.Result[[]models.GameOdds]
	findCalls int
}

func (f *fakeOdds) FindGame(context.Context, models.TeamIdentity, models.TeamIdentity) providers.Result[models.GameOdds] {
	f.findCalls++
	return f.find
}

func (f *fakeOdds) Upcoming(context.Context, models.Sport) providers.Result[[]models.GameOdds] {
	return f.upcoming
}

type fakeWeather struct {
	result providers.Result[models.WeatherReport]
	calls  int
}

func (f *fakeWeather) VenueWeather(context.Context, models.TeamIdentity, time.Time) providers.Result[models.WeatherReport] {
	f.calls++
	return f.result
}

type fakeInjuries struct {
	byTeam map[string]providers.Result[[]models.Injury]
	calls  int
}

func (f *fakeInjuries) TeamInjuries(_ context.Context, team models.TeamIdentity) providers.Result[[]models.Injury] {
	f.calls++
	if res, ok := f.byTeam[team.CanonicalName]; ok {
		return res
	}
	return providers.Ok([]models.Injury{}, time.Now())
}

type fakeStats struct {
	result providers.Result[models.StatsComparison]
	calls  int
}

func (f *fakeStats) Compare(context.Context, models.TeamIdentity, models.TeamIdentity) providers.Result[models.StatsComparison] {
	f.calls++
	return f.result
}

type fakeNarrative struct {
	result providers.Result[string]
	calls  int
}

func (f *fakeNarrative) GamePreview(context.Context, models.TeamIdentity, models.TeamIdentity, *models.GameOdds, []models.Injury, []models.Injury) providers.Result[string] {
	f.calls++
	return f.result
}

type aggregatorFixture struct {
	aggregator *Aggregator
	catalog    *teams.Catalog
	store      *cache.MemoryStore
	odds       *fakeOdds
	weather    *fakeWeather
	injuries   *fakeInjuries
	stats      *fakeStats
	narrative  *fakeNarrative
}

func chiefsAtEaglesOdds() models.GameOdds {
	return models.GameOdds{
		HomeTeam:   "Philadelphia Eagles",
		AwayTeam:   "Kansas City Chiefs",
		CommenceAt: time.Date(2026, time.September, 6, 17, 0, 0, 0, time.UTC),
		Bookmakers: map[string]models.BookmakerOdds{
			"draftkings": {Moneyline: &models.MarketOdds{Home: -135, Away: 115}},
		},
	}
}

func newAggregatorFixture() *aggregatorFixture {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	catalog := teams.NewCatalog()
	store := cache.NewMemoryStore(cache.TTLs{})

	f := &aggregatorFixture{
		catalog: catalog,
		store:   store,
		odds:    &fakeOdds{find: providers.Ok(chiefsAtEaglesOdds(), time.Now())},
		weather: &fakeWeather{result: providers.Ok(models.WeatherReport{
			VenueName: "Lincoln Financial Field", Temperature: 61, Description: "clear sky",
		}, time.Now())},
		injuries: &fakeInjuries{byTeam: map[string]providers.Result[[]models.Injury]{
			"Philadelphia Eagles": providers.Ok([]models.Injury{
				{Player: "Key Receiver", Status: "Out", Impact: models.ImpactHigh},
			}, time.Now()),
		}},
		stats: &fakeStats{result: providers.Ok(models.StatsComparison{
			Home: models.TeamStatLine{PointsPerGame: 25, GamesPlayed: 10},
			Away: models.TeamStatLine{PointsPerGame: 22, GamesPlayed: 10},
		}, time.Now())},
		narrative: &fakeNarrative{result: providers.Ok("A tight rematch in Philadelphia.", time.Now())},
	}

	f.aggregator = NewAggregator(
		catalog,
		intent.NewExtractor(catalog, logger),
		f.odds, f.weather, f.injuries, f.stats, f.narrative,
		store,
		time.Second, 0,
		logger,
	)
	return f
}

func TestAnalyzeBetFullAggregation(t *testing.T) {
	f := newAggregatorFixture()

	record, err := f.aggregator.AnalyzeBet(context.Background(), "Chiefs beat Eagles")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, models.BetTypeGameWinner, record.BetType)
	assert.NotEmpty(t, record.RequestID)

	// Odds assign home/away regardless of the bet text's ordering.
	assert.Equal(t, "Philadelphia Eagles", record.Home.CanonicalName)
	assert.Equal(t, "Kansas City Chiefs", record.Away.CanonicalName)
	assert.False(t, record.OddsStale)
	require.NotNil(t, record.Odds)
	assert.Equal(t, chiefsAtEaglesOdds().CommenceAt, record.ScheduledAt)

	require.NotNil(t, record.Weather)
	assert.Equal(t, "Lincoln Financial Field", record.Weather.VenueName)
	require.Len(t, record.HomeInjuries, 1)
	assert.Equal(t, "Key Receiver", record.HomeInjuries[0].Player)
	assert.Empty(t, record.AwayInjuries)
	require.NotNil(t, record.Stats)
	assert.Equal(t, 25.0, record.Stats.Home.PointsPerGame)
	assert.Equal(t, "A tight rematch in Philadelphia.", record.Narrative)
	assert.Empty(t, record.Warnings)

	assert.Equal(t, 2, f.injuries.calls, "one injury lookup per side")
	assert.Equal(t, 1, f.weather.calls)
	assert.Equal(t, 1, f.stats.calls)
	assert.Equal(t, 1, f.narrative.calls)
}

func TestAnalyzeBetBranchFailureIsIsolated(t *testing.T) {
	f := newAggregatorFixture()
	f.weather.result = providers.Unavailable[models.WeatherReport]("status 500")

	record, err := f.aggregator.AnalyzeBet(context.Background(), "Chiefs beat Eagles")
	require.NoError(t, err)

	assert.Nil(t, record.Weather)
	assert.NotNil(t, record.Stats)
	assert.NotNil(t, record.Odds)
	assert.Equal(t, "A tight rematch in Philadelphia.", record.Narrative)
	require.Len(t, record.Warnings, 1)
	assert.Contains(t, record.Warnings[0], "weather unavailable")
}

// slowStats parks until the per-call deadline fires, standing in for a
// provider that hangs.
type slowStats struct {
	result providers.Result[models.StatsComparison]
}

func (s *slowStats) Compare(ctx context.Context, _, _ models.TeamIdentity) providers.Result[models.StatsComparison] {
	<-ctx.Done()
	return s.result
}

func TestAnalyzeBetTimedOutBranchBecomesUnavailable(t *testing.T) {
	f := newAggregatorFixture()
	logger := quietLogger()
	stats := &slowStats{result: providers.Ok(models.StatsComparison{
		Home: models.TeamStatLine{PointsPerGame: 25},
	}, time.Now())}
	aggregator := NewAggregator(
		f.catalog,
		intent.NewExtractor(f.catalog, logger),
		f.odds, f.weather, f.injuries, stats, f.narrative,
		f.store,
		25*time.Millisecond, 0,
		logger,
	)

	record, err := aggregator.AnalyzeBet(context.Background(), "Chiefs beat Eagles")
	require.NoError(t, err)

	// Even though the call eventually produced data, hitting the deadline
	// discards it and records the branch as timed out.
	assert.Nil(t, record.Stats)
	require.Len(t, record.Warnings, 1)
	assert.Equal(t, "stats unavailable: timeout", record.Warnings[0])

	// The slow branch never delays or poisons the others.
	require.NotNil(t, record.Weather)
	require.Len(t, record.HomeInjuries, 1)
	assert.Equal(t, "A tight rematch in Philadelphia.", record.Narrative)
}

func TestAnalyzeBetOddsFailureShortCircuits(t *testing.T) {
	f := newAggregatorFixture()
	f.odds.find = providers.Unavailable[models.GameOdds]("no upcoming game matching")

	record, err := f.aggregator.AnalyzeBet(context.Background(), "Chiefs beat Eagles")
	require.NoError(t, err)

	assert.Equal(t, models.BetTypeGameWinner, record.BetType)
	assert.Nil(t, record.Odds)
	assert.Nil(t, record.Weather)
	assert.Nil(t, record.Stats)
	assert.Empty(t, record.Narrative)
	require.NotEmpty(t, record.Warnings)
	assert.Contains(t, record.Warnings[0], "odds unavailable")

	// Teams stay attached in bet-text order so the caller sees what was
	// asked about, but no enrichment branch ever ran.
	assert.Equal(t, "Kansas City Chiefs", record.Home.CanonicalName)
	assert.Zero(t, f.weather.calls)
	assert.Zero(t, f.injuries.calls)
	assert.Zero(t, f.stats.calls)
	assert.Zero(t, f.narrative.calls)
}

func TestAnalyzeBetRateLimitedServesStaleOdds(t *testing.T) {
	f := newAggregatorFixture()
	f.odds.find = providers.RateLimited[models.GameOdds]()

	// A listing cached earlier in the day is available as a fallback.
	chiefs, _ := f.catalog.Resolve("chiefs", models.SportFootball)
	eagles, _ := f.catalog.Resolve("eagles", models.SportFootball)
	key := providers.MatchupKey(chiefs, eagles, time.Now())
	require.NoError(t, f.store.Put(context.Background(), providers.OddsProviderName, key, chiefsAtEaglesOdds()))

	record, err := f.aggregator.AnalyzeBet(context.Background(), "Chiefs beat Eagles")
	require.NoError(t, err)

	require.NotNil(t, record.Odds)
	assert.True(t, record.OddsStale)
	assert.Equal(t, "Philadelphia Eagles", record.Home.CanonicalName)
	assert.Contains(t, record.Warnings, "odds served stale after rate limit")

	// Enrichment still runs on top of the stale odds.
	assert.Equal(t, 1, f.weather.calls)
	assert.Equal(t, 2, f.injuries.calls)
}

func TestAnalyzeBetRateLimitedWithoutCacheGivesUp(t *testing.T) {
	f := newAggregatorFixture()
	f.odds.find = providers.RateLimited[models.GameOdds]()

	record, err := f.aggregator.AnalyzeBet(context.Background(), "Chiefs beat Eagles")
	require.NoError(t, err)

	assert.Nil(t, record.Odds)
	assert.Contains(t, record.Warnings[0], "rate limited")
	assert.Zero(t, f.weather.calls)
}

func TestAnalyzeBetUnresolvedTeam(t *testing.T) {
	f := newAggregatorFixture()

	record, err := f.aggregator.AnalyzeBet(context.Background(), "Chiefs beat Gotham Knights")
	require.NoError(t, err)

	assert.Equal(t, models.BetTypeUnknown, record.BetType)
	assert.True(t, record.Unresolved())
	require.Len(t, record.Warnings, 1)
	assert.Contains(t, record.Warnings[0], `could not resolve team "gotham knights"`)
	assert.Zero(t, f.odds.findCalls)
}

func TestAnalyzeBetPlayerProp(t *testing.T) {
	f := newAggregatorFixture()

	record, err := f.aggregator.AnalyzeBet(context.Background(), "Josh Allen over 200 passing yards")
	require.NoError(t, err)

	assert.Equal(t, models.BetTypePlayerProp, record.BetType)
	require.NotNil(t, record.PlayerProp)
	assert.Equal(t, "Josh Allen", record.PlayerProp.Player)
	assert.Equal(t, "passing_yards", record.PlayerProp.StatType)
	assert.True(t, record.PlayerProp.Team.IsZero())
	assert.Zero(t, f.odds.findCalls, "player props do not trigger game aggregation")
	assert.Zero(t, f.injuries.calls, "no team named, no injury lookup")
}

func TestAnalyzeBetPlayerPropWithTeamPullsInjuries(t *testing.T) {
	f := newAggregatorFixture()
	f.injuries.byTeam["Kansas City Chiefs"] = providers.Ok([]models.Injury{
		{Player: "Backup Tackle", Status: "Questionable", Impact: models.ImpactLow},
	}, time.Now())

	record, err := f.aggregator.AnalyzeBet(context.Background(), "chiefs receiver over 5.5 receptions")
	require.NoError(t, err)

	require.NotNil(t, record.PlayerProp)
	assert.Equal(t, "Kansas City Chiefs", record.PlayerProp.Team.CanonicalName)
	assert.Equal(t, 1, f.injuries.calls)
	require.Len(t, record.HomeInjuries, 1)
	assert.Equal(t, "Backup Tackle", record.HomeInjuries[0].Player)
	assert.Zero(t, f.odds.findCalls)
}

func TestAnalyzeBetUnknownText(t *testing.T) {
	f := newAggregatorFixture()

	record, err := f.aggregator.AnalyzeBet(context.Background(), "put it all on red")
	require.NoError(t, err)

	assert.Equal(t, models.BetTypeUnknown, record.BetType)
	assert.Equal(t, "put it all on red", record.RawText)
	require.Len(t, record.Warnings, 1)
	assert.Contains(t, record.Warnings[0], "did not match")
}

func TestAggregateUpcoming(t *testing.T) {
	f := newAggregatorFixture()
	gameOne := chiefsAtEaglesOdds()
	gameTwo := models.GameOdds{
		HomeTeam:   "Green Bay Packers",
		AwayTeam:   "Chicago Bears",
		CommenceAt: time.Date(2026, time.September, 7, 17, 0, 0, 0, time.UTC),
	}
	f.odds.upcoming = providers.Ok([]models.GameOdds{gameOne, gameTwo}, time.Now())

	records, err := f.aggregator.AggregateUpcoming(context.Background(), models.SportFootball)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Philadelphia Eagles", records[0].Home.CanonicalName)
	assert.Equal(t, "Green Bay Packers", records[1].Home.CanonicalName)
	for _, record := range records {
		assert.Equal(t, models.BetTypeGameWinner, record.BetType)
		assert.NotNil(t, record.Odds)
		assert.Equal(t, "A tight rematch in Philadelphia.", record.Narrative)
	}
	assert.Equal(t, 2, f.narrative.calls)
}

func TestAggregateUpcomingUnsupportedSport(t *testing.T) {
	f := newAggregatorFixture()

	_, err := f.aggregator.AggregateUpcoming(context.Background(), models.Sport("cricket"))
	assert.Error(t, err)
}

func TestAggregateUpcomingListingUnavailable(t *testing.T) {
	f := newAggregatorFixture()
	f.odds.upcoming = providers.Unavailable[[]models.GameOdds]("status 502")

	_, err := f.aggregator.AggregateUpcoming(context.Background(), models.SportFootball)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "odds listing unavailable")
}

func TestAggregateUpcomingUnresolvableListingTeams(t *testing.T) {
	f := newAggregatorFixture()
	f.odds.upcoming = providers.Ok([]models.GameOdds{
		{HomeTeam: "Springfield Isotopes", AwayTeam: "Shelbyville Sharks"},
	}, time.Now())

	records, err := f.aggregator.AggregateUpcoming(context.Background(), models.SportFootball)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Home.IsZero())
	assert.Contains(t, records[0].Warnings, "listing teams not in catalog")
	assert.Zero(t, f.narrative.calls, "no enrichment without resolved teams")
}
