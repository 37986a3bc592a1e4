package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"commuterhub/models"

	"go.uber.org/zap"
)

// Provider fetches the current outdoor conditions. Implementations may fail
// (network, parse); callers are expected to degrade gracefully.
type Provider interface {
	Current(ctx context.Context) (models.CurrentConditions, error)
}

// OpenMeteoClient is a Provider backed by the Open-Meteo forecast API.
type OpenMeteoClient struct {
	BaseURL string
	Lat     float64
	Lon     float64
	client  *http.Client
	logger  *zap.Logger
}

func NewOpenMeteoClient(baseURL string, lat, lon float64, logger *zap.Logger) *OpenMeteoClient {
	return &OpenMeteoClient{
		BaseURL: baseURL,
		Lat:     lat,
		Lon:     lon,
		client:  &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
	}
}

type openMeteoResponse struct {
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// Current fetches current conditions. The underlying client carries a 5s
// timeout so an unresponsive provider cannot stall a conversation turn.
func (c *OpenMeteoClient) Current(ctx context.Context) (models.CurrentConditions, error) {
	url := fmt.Sprintf("%s?latitude=%f&longitude=%f&current_weather=true&timezone=auto", c.BaseURL, c.Lat, c.Lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.CurrentConditions{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("weather fetch failed", zap.Error(err))
		return models.CurrentConditions{}, fmt.Errorf("weather fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("weather provider returned non-OK status", zap.Int("status", resp.StatusCode))
		return models.CurrentConditions{}, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.CurrentConditions{}, fmt.Errorf("decoding weather response failed: %w", err)
	}
	if body.CurrentWeather == nil {
		return models.CurrentConditions{}, fmt.Errorf("weather response missing current conditions")
	}

	return models.CurrentConditions{
		TemperatureC:  body.CurrentWeather.Temperature,
		ConditionCode: body.CurrentWeather.WeatherCode,
	}, nil
}
