package chillmcp

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/chillmcp/internal/config"
	"github.com/aretw0/chillmcp/internal/logging"
	"github.com/aretw0/chillmcp/internal/runtime"
	"github.com/aretw0/chillmcp/pkg/breaks"
	"github.com/aretw0/chillmcp/pkg/domain"
)

// Version is the release version of ChillMCP.
var Version = "0.2.0"

// Engine is the high-level entry point: the break catalog wired to the state
// kernel. One Engine holds the process-wide shared state.
type Engine struct {
	catalog *breaks.Catalog
	store   *runtime.Store
	gate    *runtime.Gate
	logger  *slog.Logger

	alertness int
	cooldown  time.Duration
	penalty   time.Duration
	hooks     domain.Hooks
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithBossAlertness sets the percent chance (0-100) that the boss notices a break.
func WithBossAlertness(pct int) Option {
	return func(e *Engine) {
		e.alertness = pct
	}
}

// WithCooldown sets the period after which the Boss Alert Level drops by one.
func WithCooldown(d time.Duration) Option {
	return func(e *Engine) {
		e.cooldown = d
	}
}

// WithCatalog replaces the built-in break catalog.
func WithCatalog(c *breaks.Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithLogger configures the Engine's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks (see internal/metrics).
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithPenalty overrides the max-alert response delay. Tests use a short one;
// production keeps the default twenty seconds.
func WithPenalty(d time.Duration) Option {
	return func(e *Engine) {
		e.penalty = d
	}
}

// New validates the configuration and builds the Engine. It fails fast on an
// out-of-range alertness or a non-positive cooldown.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		catalog:   breaks.Builtin(),
		logger:    logging.NewNop(),
		alertness: config.DefaultBossAlertness,
		cooldown:  config.DefaultCooldownSeconds * time.Second,
		penalty:   domain.BossAlertPenalty,
	}
	for _, opt := range opts {
		opt(e)
	}

	cfg := config.Config{
		BossAlertness:                e.alertness,
		BossAlertnessCooldownSeconds: int(e.cooldown / time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("chillmcp: %w", err)
	}

	e.store = runtime.NewStore(e.cooldown, time.Now(),
		runtime.WithStoreLogger(e.logger),
	)
	e.gate = runtime.NewGate(e.store, e.alertness,
		runtime.WithGateLogger(e.logger),
		runtime.WithPenalty(e.penalty),
		runtime.WithHooks(e.hooks),
	)

	e.logger.Info("chillmcp engine ready",
		"boss_alertness", e.alertness,
		"boss_alertness_cooldown", e.cooldown,
		"breaks", e.catalog.Len(),
	)
	return e, nil
}

// Breaks lists the available break profiles in catalog order.
func (e *Engine) Breaks() []domain.BreakProfile {
	return e.catalog.Profiles()
}

// PerformBreak executes the named break action and returns its result. The
// call blocks for the penalty duration when it leaves the Boss Alert Level
// maxed out. Unknown names return domain.ErrUnknownBreak.
func (e *Engine) PerformBreak(name string) (domain.BreakResult, error) {
	profile, ok := e.catalog.Get(name)
	if !ok {
		return domain.BreakResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownBreak, name)
	}
	return e.gate.PerformBreak(profile), nil
}

// Status applies passive time effects and returns the current counters
// without taking a break.
func (e *Engine) Status() domain.Snapshot {
	return e.gate.Status()
}
