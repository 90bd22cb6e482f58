package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/betscope/betscope/internal/models"
)

// NarrativeProviderName identifies the commentary generator in logs and
// warnings.
const NarrativeProviderName = "narrative"

// PlaceholderNarrative is served whenever the completion API returns
// something unusable. Malformed output degrades to this string, never to
// an error.
const PlaceholderNarrative = "Game preview temporarily unavailable."

const narrativeSystemPrompt = "You are a sports betting analyst. Write a concise, " +
	"factual 2-4 sentence game preview from the data provided. Mention the " +
	"betting line and any significant injuries. Avoid speculation."

// NarrativeClient generates short game commentary through a
// text-completion API. The call is guarded by a circuit breaker so a
// misbehaving upstream cannot stall every aggregation.
type NarrativeClient struct {
	client    *http.Client
	breaker   *gobreaker.CircuitBreaker
	logger    *logrus.Logger
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
}

type completionRequest struct {
	Model     string              `json:"model"`
	MaxTokens int                 `json:"max_tokens"`
	System    string              `json:"system,omitempty"`
	Messages  []completionMessage `json:"messages"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// NewNarrativeClient creates the commentary adapter.
func NewNarrativeClient(apiKey, baseURL, model string, maxTokens int, logger *logrus.Logger) *NarrativeClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "narrative-api",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &NarrativeClient{
		client:    &http.Client{Timeout: 10 * time.Second},
		breaker:   breaker,
		logger:    logger,
		apiKey:    apiKey,
		baseURL:   baseURL,
		model:     model,
		maxTokens: maxTokens,
	}
}

// GamePreview generates a short preview from the game's odds and injury
// picture.
func (n *NarrativeClient) GamePreview(ctx context.Context, home, away models.TeamIdentity, odds *models.GameOdds, homeInjuries, awayInjuries []models.Injury) Result[string] {
	prompt := buildPreviewPrompt(home, away, odds, homeInjuries, awayInjuries)

	raw, err := n.breaker.Execute(func() (interface{}, error) {
		return n.complete(ctx, prompt)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return Unavailable[string]("circuit open")
		}
		return Unavailable[string](err.Error())
	}

	text := raw.(string)
	if strings.TrimSpace(text) == "" {
		return Ok(PlaceholderNarrative, time.Now())
	}
	return Ok(text, time.Now())
}

// complete performs one messages-API call. A body that fails to parse is
// not an error: the placeholder is returned so the caller still gets a
// usable record.
func (n *NarrativeClient) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := completionRequest{
		Model:     n.model,
		MaxTokens: n.maxTokens,
		System:    narrativeSystemPrompt,
		Messages:  []completionMessage{{Role: "user", Content: prompt}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", n.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	var wire completionResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		n.logger.WithError(err).Warn("Malformed completion response, serving placeholder")
		return PlaceholderNarrative, nil
	}

	var sb strings.Builder
	for _, block := range wire.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return PlaceholderNarrative, nil
	}
	return sb.String(), nil
}

func buildPreviewPrompt(home, away models.TeamIdentity, odds *models.GameOdds, homeInjuries, awayInjuries []models.Injury) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matchup: %s @ %s\n", away.CanonicalName, home.CanonicalName)

	if odds != nil {
		fmt.Fprintf(&sb, "Scheduled: %s\n", odds.CommenceAt.Format(time.RFC1123))
		for book, markets := range odds.Bookmakers {
			if markets.Moneyline != nil {
				fmt.Fprintf(&sb, "Moneyline (%s): home %+.0f, away %+.0f\n",
					book, markets.Moneyline.Home, markets.Moneyline.Away)
				break
			}
		}
	}

	writeInjuries := func(team models.TeamIdentity, injuries []models.Injury) {
		if len(injuries) == 0 {
			return
		}
		fmt.Fprintf(&sb, "%s injuries:\n", team.CanonicalName)
		for _, inj := range injuries {
			fmt.Fprintf(&sb, "- %s (%s): %s\n", inj.Player, inj.Status, inj.InjuryType)
		}
	}
	writeInjuries(home, homeInjuries)
	writeInjuries(away, awayInjuries)

	return sb.String()
}
