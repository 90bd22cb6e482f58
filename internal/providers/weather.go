package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/betscope/betscope/internal/cache"
	"github.com/betscope/betscope/internal/models"
)

// WeatherProviderName keys the weather adapter's cache entries.
const WeatherProviderName = "weather"

// indoorReading is the fixed climate-controlled sentinel served for
// indoor venues without any outbound call.
var indoorReading = models.WeatherReport{
	Temperature: 72,
	Humidity:    45,
	WindSpeed:   0,
	Description: "climate controlled",
	IsIndoor:    true,
}

// WeatherClient fetches venue weather for the home team of a game. Venue
// coordinates and the indoor flag come from the team catalog, loaded once
// at startup.
type WeatherClient struct {
	client  *http.Client
	cache   cache.Store
	logger  *logrus.Logger
	apiKey  string
	baseURL string
}

// openWeatherResponse is the provider's wire shape.
type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// NewWeatherClient creates the weather adapter.
func NewWeatherClient(apiKey, baseURL string, store cache.Store, logger *logrus.Logger) *WeatherClient {
	return &WeatherClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   store,
		logger:  logger,
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// VenueWeather returns the normalized weather at the home team's venue
// for the given game day. Indoor venues short-circuit to the fixed
// climate-controlled reading.
func (w *WeatherClient) VenueWeather(ctx context.Context, home models.TeamIdentity, gameDay time.Time) Result[models.WeatherReport] {
	venue := home.Venue
	if venue.Name == "" {
		return Unavailable[models.WeatherReport]("no venue on record")
	}

	if venue.Indoor {
		report := indoorReading
		report.VenueName = venue.Name
		return Ok(report, time.Now())
	}

	subjectKey := cache.DayKey(fmt.Sprintf("venue:%s", home.CanonicalName), gameDay)
	if entry, err := w.cache.Get(ctx, WeatherProviderName, subjectKey); err == nil && entry != nil {
		if report, err := cache.Decode[models.WeatherReport](entry); err == nil {
			return Ok(report, entry.InsertedAt)
		}
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(venue.Latitude, 'f', 4, 64))
	params.Set("lon", strconv.FormatFloat(venue.Longitude, 'f', 4, 64))
	params.Set("appid", w.apiKey)
	params.Set("units", "imperial")
	reqURL := fmt.Sprintf("%s/weather?%s", w.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Unavailable[models.WeatherReport](fmt.Sprintf("failed to build request: %v", err))
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return Unavailable[models.WeatherReport](fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		w.logger.WithField("venue", venue.Name).Warn("Weather provider rate limited")
		return RateLimited[models.WeatherReport]()
	}
	if resp.StatusCode != http.StatusOK {
		return Unavailable[models.WeatherReport](fmt.Sprintf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Unavailable[models.WeatherReport](fmt.Sprintf("failed to read response: %v", err))
	}

	var wire openWeatherResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return Unavailable[models.WeatherReport](fmt.Sprintf("malformed weather response: %v", err))
	}

	report := models.WeatherReport{
		VenueName:   venue.Name,
		Temperature: int(wire.Main.Temp),
		Humidity:    wire.Main.Humidity,
		WindSpeed:   int(wire.Wind.Speed),
	}
	if len(wire.Weather) > 0 {
		report.Description = wire.Weather[0].Description
	}

	if err := w.cache.Put(ctx, WeatherProviderName, subjectKey, report); err != nil {
		w.logger.WithError(err).Warn("Failed to cache weather reading")
	}

	return Ok(report, time.Now())
}
