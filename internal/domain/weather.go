package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCityNotFound is returned by a Provider when the city is unknown to it.
var ErrCityNotFound = errors.New("city not found")

// WeatherResult is the current weather for one location, in metric units.
type WeatherResult struct {
	Condition   string // primary condition label, e.g. "Rain"
	Description string // provider's free-text description, e.g. "light rain"
	TempC       float64
	Humidity    int // percent
	WindSpeed   float64
	Location    string
	ReceivedAt  time.Time
}

// Provider fetches current weather for a city.
type Provider interface {
	// CurrentWeather returns the conditions for city, or ErrCityNotFound.
	CurrentWeather(ctx context.Context, city Query) (WeatherResult, error)
}
