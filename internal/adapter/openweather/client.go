package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	owm "github.com/briandowns/openweathermap"

	"github.com/SVignesh2004/Weather-App/internal/domain"
)

// DefaultBaseURL is the OpenWeatherMap current weather endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// notFoundCode is the "cod" value the API uses for an unknown city.
const notFoundCode = "404"

// metricUnits is the only unit system the widget requests.
var metricUnits = owm.DataUnits["C"]

// Client implements domain.Provider using the OpenWeatherMap current weather API.
type Client struct {
	appID      string
	units      string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client. A zero timeout leaves requests
// bounded only by the caller's context.
func NewClient(appID, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		appID: appID,
		units: metricUnits,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// APIError is a non-OK response other than city-not-found.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openweather API error: status %d: %s", e.StatusCode, e.Message)
}

// CurrentWeather fetches the current conditions for city in metric units.
func (c *Client) CurrentWeather(ctx context.Context, city domain.Query) (domain.WeatherResult, error) {
	params := url.Values{
		"q":     {city.String()},
		"appid": {c.appID},
		"units": {c.units},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.WeatherResult{}, fmt.Errorf("create request: %w", err)
	}

	start := domain.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WeatherResult{}, fmt.Errorf("current weather request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("openweather response",
		"city", city.String(),
		"status", resp.StatusCode,
		"duration", domain.Since(start),
	)

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.WeatherResult{}, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if body.Cod == notFoundCode {
			return domain.WeatherResult{}, domain.ErrCityNotFound
		}
		return domain.WeatherResult{}, &APIError{
			StatusCode: resp.StatusCode,
			Code:       string(body.Cod),
			Message:    body.Message,
		}
	}

	return body.toResult(), nil
}

// CheckReadiness reports whether the client has a credential to call the API with.
func (c *Client) CheckReadiness(_ context.Context) error {
	if c.appID == "" {
		return errors.New("OWM_APP_ID is not set")
	}
	return nil
}

// OpenWeatherMap API response types.

type response struct {
	Cod     code          `json:"cod"`
	Message string        `json:"message"`
	Name    string        `json:"name"`
	Main    owm.Main      `json:"main"`
	Weather []owm.Weather `json:"weather"`
	Wind    owm.Wind      `json:"wind"`
}

func (r response) toResult() domain.WeatherResult {
	result := domain.WeatherResult{
		TempC:     float64(r.Main.Temp),
		Humidity:  int(r.Main.Humidity),
		WindSpeed: float64(r.Wind.Speed),
		Location:  r.Name,
	}
	if len(r.Weather) > 0 {
		result.Condition = r.Weather[0].Main
		result.Description = r.Weather[0].Description
	}
	return result
}

// code is the "cod" field, which the API sends as a number on success and a
// string on errors.
type code string

func (c *code) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = code(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("cod: %w", err)
	}
	*c = code(n.String())
	return nil
}
