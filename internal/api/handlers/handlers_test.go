package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betscope/betscope/internal/cache"
	"github.com/betscope/betscope/internal/intent"
	"github.com/betscope/betscope/internal/models"
	"github.com/betscope/betscope/internal/providers"
	"github.com/betscope/betscope/internal/services"
	"github.com/betscope/betscope/internal/teams"
)

type stubOdds struct{ game models.GameOdds }

func (s *stubOdds) FindGame(context.Context, models.TeamIdentity, models.TeamIdentity) providers.Result[models.GameOdds] {
	return providers.Ok(s.game, time.Now())
}

func (s *stubOdds) Upcoming(context.Context, models.Sport) providers.Result[[]models.GameOdds] {
	return providers.Ok([]models.GameOdds{s.game}, time.Now())
}

type stubWeather struct{}

func (stubWeather) VenueWeather(context.Context, models.TeamIdentity, time.Time) providers.Result[models.WeatherReport] {
	return providers.Ok(models.WeatherReport{Description: "clear sky"}, time.Now())
}

type stubInjuries struct{}

func (stubInjuries) TeamInjuries(context.Context, models.TeamIdentity) providers.Result[[]models.Injury] {
	return providers.Ok([]models.Injury{}, time.Now())
}

type stubStats struct{}

func (stubStats) Compare(context.Context, models.TeamIdentity, models.TeamIdentity) providers.Result[models.StatsComparison] {
	return providers.Ok(models.StatsComparison{}, time.Now())
}

type stubNarrative struct{}

func (stubNarrative) GamePreview(context.Context, models.TeamIdentity, models.TeamIdentity, *models.GameOdds, []models.Injury, []models.Injury) providers.Result[string] {
	return providers.Ok("Preview text.", time.Now())
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	catalog := teams.NewCatalog()
	aggregator := services.NewAggregator(
		catalog,
		intent.NewExtractor(catalog, logger),
		&stubOdds{game: models.GameOdds{
			HomeTeam:   "Philadelphia Eagles",
			AwayTeam:   "Kansas City Chiefs",
			CommenceAt: time.Now().Add(24 * time.Hour),
		}},
		stubWeather{}, stubInjuries{}, stubStats{}, stubNarrative{},
		cache.NewMemoryStore(cache.TTLs{}),
		time.Second, 0,
		logger,
	)

	router := gin.New()
	betHandler := NewBetHandler(aggregator, logger)
	gamesHandler := NewGamesHandler(aggregator, logger)
	router.POST("/api/v1/bets/analyze", betHandler.AnalyzeBet)
	router.GET("/api/v1/games", gamesHandler.ListGames)
	router.GET("/api/v1/sports", gamesHandler.ListSports)
	return router
}

func TestAnalyzeBetEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"text": "Chiefs beat Eagles"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bets/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Result models.GameRecord `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, models.BetTypeGameWinner, response.Result.BetType)
	assert.Equal(t, "Philadelphia Eagles", response.Result.Home.CanonicalName)
	assert.Equal(t, "Preview text.", response.Result.Narrative)
}

func TestAnalyzeBetEndpointValidation(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"missing text", `{}`},
		{"blank text", `{"text": "   "}`},
		{"not json", `chiefs beat eagles`},
		{"oversized text", `{"text": "` + strings.Repeat("a", 600) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bets/analyze", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestListGamesEndpoint(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/games?sport=football", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Sport string              `json:"sport"`
		Games []models.GameRecord `json:"games"`
		Total int                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "football", response.Sport)
	assert.Equal(t, 1, response.Total)
	require.Len(t, response.Games, 1)
	assert.Equal(t, "Philadelphia Eagles", response.Games[0].Home.CanonicalName)
}

func TestListGamesRejectsUnknownSport(t *testing.T) {
	router := newTestRouter()

	for _, sport := range []string{"", "cricket"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/games?sport="+sport, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestListSportsEndpoint(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sports", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Sports []struct {
			Sport        models.Sport `json:"sport"`
			OddsSportKey string       `json:"odds_sport_key"`
		} `json:"sports"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Sports, len(models.AllSports()))
	for i, sport := range models.AllSports() {
		assert.Equal(t, sport, response.Sports[i].Sport)
		assert.NotEmpty(t, response.Sports[i].OddsSportKey)
	}
}
