// Package ui is the go-app component that renders the weather widget in the
// browser.
package ui

import (
	"context"
	"log/slog"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/SVignesh2004/Weather-App/internal/adapter/openweather"
	"github.com/SVignesh2004/Weather-App/internal/domain"
	"github.com/SVignesh2004/Weather-App/internal/widget"
)

// Keys the server passes to the browser through app.Handler.Env.
const (
	EnvAppID       = "OWM_APP_ID"
	EnvBaseURL     = "OWM_BASE_URL"
	EnvDefaultCity = "DEFAULT_CITY"
	EnvCancelStale = "CANCEL_STALE_FETCHES"
	EnvDev         = "DEV"
)

var (
	_ app.Mounter    = (*Widget)(nil)
	_ app.Dismounter = (*Widget)(nil)
)

// Widget is the weather lookup component: a search bar over either a
// loading line, an error message, or the current conditions.
type Widget struct {
	app.Compo

	city  string
	state domain.State

	ctrl   *widget.Controller
	ctx    context.Context
	cancel context.CancelFunc
}

// OptionsFromEnv reads the controller options passed down by the server.
func OptionsFromEnv(getenv func(string) string) widget.Options {
	return widget.Options{
		DefaultCity: getenv(EnvDefaultCity),
		CancelStale: getenv(EnvCancelStale) != "false",
	}
}

func (w *Widget) OnMount(ctx app.Context) {
	w.ctx, w.cancel = context.WithCancel(context.Background())

	logger := newLogger(app.Getenv(EnvDev) != "")
	client := openweather.NewClient(app.Getenv(EnvAppID), app.Getenv(EnvBaseURL), 0, logger)

	opts := OptionsFromEnv(app.Getenv)
	opts.Async = ctx.Async
	opts.OnChange = func(s domain.State) {
		ctx.Dispatch(func(app.Context) {
			w.state = s
		})
	}

	w.ctrl = widget.NewController(client, logger, opts)
	w.ctrl.Mount(w.ctx)
}

func (w *Widget) OnDismount() {
	if w.ctrl != nil {
		w.ctrl.Close()
	}
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *Widget) Render() app.UI {
	v := widget.Render(w.state)

	body := []app.UI{w.renderSearchBar()}
	switch v.Mode {
	case domain.ModeError:
		body = append(body, app.P().
			Class("error-message").
			Style("color", "red").
			Text(v.Message))
	case domain.ModeResult:
		body = append(body, renderResult(v)...)
	default:
		body = append(body, app.P().Text(v.Message))
	}

	return app.Div().Class("weather").Body(body...)
}

func (w *Widget) renderSearchBar() app.UI {
	return app.Div().Class("search-bar").Body(
		app.Input().
			Type("text").
			Placeholder("Search").
			Value(w.city).
			OnInput(w.onInput).
			OnKeyUp(w.onKeyUp),
		app.Img().
			Src(string(domain.IconSearch)).
			Alt("search").
			OnClick(w.onSearch),
	)
}

func renderResult(v widget.View) []app.UI {
	return []app.UI{
		app.Img().Class("weather-icon").Src(string(v.Icon)).Alt(v.IconAlt),
		app.P().Class("temperature").Text(v.Temperature),
		app.P().Class("location").Text(v.Location),
		app.Div().Class("weather-data").Body(
			dataColumn(domain.IconHumidity, "humidity", v.Humidity, "Humidity"),
			dataColumn(domain.IconWind, "wind", v.WindSpeed, "Wind Speed"),
		),
	}
}

func dataColumn(icon domain.Icon, alt, value, label string) app.UI {
	return app.Div().Class("col").Body(
		app.Img().Src(string(icon)).Alt(alt),
		app.Div().Body(
			app.P().Text(value),
			app.Span().Text(label),
		),
	)
}

func (w *Widget) onInput(ctx app.Context, _ app.Event) {
	w.city = ctx.JSSrc().Get("value").String()
}

func (w *Widget) onKeyUp(ctx app.Context, e app.Event) {
	w.handleKey(e.Get("key").String(), ctx.JSSrc().Get("value").String())
}

// handleKey searches for value when Enter is released.
func (w *Widget) handleKey(key, value string) {
	if key != "Enter" {
		return
	}
	w.city = value
	w.search()
}

func (w *Widget) onSearch(_ app.Context, _ app.Event) {
	w.search()
}

func (w *Widget) search() {
	if w.ctrl == nil {
		return
	}
	w.ctrl.SubmitQuery(w.ctx, w.city)
}

// newLogger logs in text form; the wasm runtime forwards stdout to the browser console.
func newLogger(dev bool) *slog.Logger {
	return sharedobs.NewLogger(logLevel(dev), "text")
}

func logLevel(dev bool) string {
	if dev {
		return "debug"
	}
	return "info"
}
