package widget

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/SVignesh2004/Weather-App/internal/domain"
)

// DefaultCity is the query issued on mount when none is configured.
const DefaultCity = "London"

// Options configures a Controller.
type Options struct {
	// DefaultCity is fetched by Mount.
	DefaultCity string

	// CancelStale makes every new fetch cancel the one in flight and drop
	// completions from superseded fetches, so the last initiated search wins.
	// When false, completions are applied in arrival order.
	CancelStale bool

	// Async runs a fetch off the caller's flow. Defaults to a new goroutine.
	Async func(func())

	// OnChange is called with every committed state.
	OnChange func(domain.State)
}

// Controller owns the widget state and runs searches against a Provider.
type Controller struct {
	provider domain.Provider
	logger   *slog.Logger
	opts     Options

	mu      sync.Mutex
	state   domain.State
	seq     uint64
	cancel  context.CancelFunc
	mounted bool
}

// NewController creates a Controller in the loading state.
func NewController(provider domain.Provider, logger *slog.Logger, opts Options) *Controller {
	if opts.DefaultCity == "" {
		opts.DefaultCity = DefaultCity
	}
	if opts.Async == nil {
		opts.Async = func(fn func()) { go fn() }
	}
	return &Controller{
		provider: provider,
		logger:   logger,
		opts:     opts,
	}
}

// State returns the current state record.
func (c *Controller) State() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Mount issues the default query. Only the first call has an effect.
func (c *Controller) Mount(ctx context.Context) {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.mu.Unlock()

	c.FetchWeather(ctx, domain.Query(c.opts.DefaultCity))
}

// SubmitQuery validates raw user input and starts a fetch for it. Blank input
// sets MsgEnterCity without touching the network.
func (c *Controller) SubmitQuery(ctx context.Context, raw string) {
	city, err := domain.ParseQuery(raw)
	if err != nil {
		_, seq := c.begin(ctx)
		c.commit(seq, c.State().WithError("", domain.MsgEnterCity))
		return
	}
	c.FetchWeather(ctx, city)
}

// FetchWeather asks the provider for city and commits the outcome when it
// completes. It returns immediately.
func (c *Controller) FetchWeather(ctx context.Context, city domain.Query) {
	fetchCtx, seq := c.begin(ctx)
	logger := c.logger.With("city", city.String(), "fetch_id", uuid.NewString())

	c.opts.Async(func() {
		c.run(fetchCtx, seq, city, logger)
	})
}

// Close cancels any fetch still in flight. With CancelStale set, its
// completion is discarded.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// begin registers a new user action and, when cancelling stale work, aborts
// the previous fetch.
func (c *Controller) begin(parent context.Context) (context.Context, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	if !c.opts.CancelStale {
		return parent, c.seq
	}
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	c.cancel = cancel
	return ctx, c.seq
}

func (c *Controller) run(ctx context.Context, seq uint64, city domain.Query, logger *slog.Logger) {
	start := domain.Now()
	result, err := c.provider.CurrentWeather(ctx, city)

	if c.superseded(seq) {
		logger.Debug("discarding superseded weather fetch", "error", err)
		return
	}

	var next domain.State
	switch {
	case err == nil:
		result.ReceivedAt = domain.Now()
		next = c.State().WithResult(city, result)
		logger.Info("weather fetched",
			"condition", result.Condition,
			"received_at", result.ReceivedAt,
			"duration", domain.Since(start),
		)
	case errors.Is(err, domain.ErrCityNotFound):
		next = c.State().WithError(city, domain.MsgInvalidCity)
		logger.Info("city not found")
	default:
		next = c.State().WithError(city, domain.MsgFetchFailed)
		logger.Error("weather fetch failed", "error", err, "duration", domain.Since(start))
	}

	c.commit(seq, next)
}

func (c *Controller) superseded(seq uint64) bool {
	if !c.opts.CancelStale {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return seq != c.seq
}

// commit replaces the state unless a newer action has superseded seq.
func (c *Controller) commit(seq uint64, next domain.State) {
	c.mu.Lock()
	if c.opts.CancelStale && seq != c.seq {
		c.mu.Unlock()
		return
	}
	c.state = next
	onChange := c.opts.OnChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(next)
	}
}
