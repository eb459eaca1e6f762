package openweather

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SVignesh2004/Weather-App/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAppID         = "test-app-id"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"

	londonRain = `{
		"coord": {"lon": -0.1257, "lat": 51.5085},
		"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
		"main": {"temp": 12.5, "feels_like": 11.9, "pressure": 1012, "humidity": 81},
		"wind": {"speed": 4.12, "deg": 250},
		"name": "London",
		"cod": 200
	}`
)

func testClient(baseURL string) *Client {
	return &Client{
		appID:      testAppID,
		units:      metricUnits,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func fixedResponse(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestClient_CurrentWeather_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		assert.Equal(t, testAppID, r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		fixedResponse(http.StatusOK, londonRain)(w, r)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	result, err := c.CurrentWeather(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, "Rain", result.Condition)
	assert.Equal(t, "light rain", result.Description)
	assert.Equal(t, 12.5, result.TempC)
	assert.Equal(t, 81, result.Humidity)
	assert.Equal(t, 4.12, result.WindSpeed)
	assert.Equal(t, "London", result.Location)
}

func TestClient_CurrentWeather_LogsDurationFromDomainClock(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC))
	domain.SetClock(fake)
	t.Cleanup(func() { domain.SetClock(nil) })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.Advance(250 * time.Millisecond)
		fixedResponse(http.StatusOK, londonRain)(w, r)
	}))
	defer srv.Close()

	var logs bytes.Buffer
	c := testClient(srv.URL)
	c.logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := c.CurrentWeather(context.Background(), "London")
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "openweather response")
	assert.Contains(t, logs.String(), "duration=250ms")
}

func TestClient_CurrentWeather_EscapesCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "São Paulo,BR", r.URL.Query().Get("q"))
		fixedResponse(http.StatusOK, `{"cod":200,"name":"São Paulo"}`)(w, r)
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).CurrentWeather(context.Background(), "São Paulo,BR")
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", result.Location)
}

func TestClient_CurrentWeather_NoWeatherEntries(t *testing.T) {
	srv := httptest.NewServer(fixedResponse(http.StatusOK, `{"cod":200,"name":"Nowhere","weather":[],"main":{"temp":3}}`))
	defer srv.Close()

	result, err := testClient(srv.URL).CurrentWeather(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.Empty(t, result.Condition)
	assert.Equal(t, float64(3), result.TempC)
}

func TestClient_CurrentWeather_NotFound(t *testing.T) {
	srv := httptest.NewServer(fixedResponse(http.StatusNotFound, `{"cod":"404","message":"city not found"}`))
	defer srv.Close()

	_, err := testClient(srv.URL).CurrentWeather(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCityNotFound)
}

func TestClient_CurrentWeather_NotFoundNumericCode(t *testing.T) {
	srv := httptest.NewServer(fixedResponse(http.StatusNotFound, `{"cod":404,"message":"city not found"}`))
	defer srv.Close()

	_, err := testClient(srv.URL).CurrentWeather(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, domain.ErrCityNotFound)
}

func TestClient_CurrentWeather_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(fixedResponse(http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key."}`))
	defer srv.Close()

	_, err := testClient(srv.URL).CurrentWeather(context.Background(), "London")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCityNotFound)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "401", apiErr.Code)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Invalid API key.")
}

func TestClient_CurrentWeather_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(fixedResponse(http.StatusOK, `<html>oops</html>`))
	defer srv.Close()

	_, err := testClient(srv.URL).CurrentWeather(context.Background(), "London")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_CurrentWeather_BadGatewayWithoutJSON(t *testing.T) {
	srv := httptest.NewServer(fixedResponse(http.StatusBadGateway, `bad gateway`))
	defer srv.Close()

	_, err := testClient(srv.URL).CurrentWeather(context.Background(), "London")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCityNotFound)
}

func TestClient_CurrentWeather_TransportError(t *testing.T) {
	srv := httptest.NewServer(fixedResponse(http.StatusOK, londonRain))
	url := srv.URL
	srv.Close()

	_, err := testClient(url).CurrentWeather(context.Background(), "London")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "current weather request")
}

func TestClient_CurrentWeather_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := testClient(srv.URL).CurrentWeather(ctx, "London")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(testAppID, "", 0, slog.Default())
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, "metric", c.units)
	assert.Zero(t, c.httpClient.Timeout)
}

func TestClient_CheckReadiness(t *testing.T) {
	assert.NoError(t, NewClient(testAppID, "", 0, slog.Default()).CheckReadiness(context.Background()))

	err := NewClient("", "", 0, slog.Default()).CheckReadiness(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OWM_APP_ID")
}
