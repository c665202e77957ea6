package runtime

import (
	"log/slog"
	"time"

	"github.com/aretw0/chillmcp/internal/logging"
	"github.com/aretw0/chillmcp/pkg/domain"
)

// Gate is the per-call entry point. Each PerformBreak runs the full
// read-modify-write sequence atomically under the store lock, then serves the
// boss-alert penalty outside it so concurrent calls are never serialized
// behind another call's delay.
type Gate struct {
	store     *Store
	alertness int
	penalty   time.Duration
	now       func() time.Time
	hooks     domain.Hooks
	logger    *slog.Logger
}

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithPenalty overrides the max-alert response delay (tests use a short one).
func WithPenalty(d time.Duration) GateOption {
	return func(g *Gate) {
		g.penalty = d
	}
}

// WithClock injects the wall-clock source.
func WithClock(now func() time.Time) GateOption {
	return func(g *Gate) {
		g.now = now
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) GateOption {
	return func(g *Gate) {
		g.hooks = hooks
	}
}

// WithGateLogger configures the gate's logger.
func WithGateLogger(logger *slog.Logger) GateOption {
	return func(g *Gate) {
		g.logger = logger
	}
}

// NewGate creates a gate over the store. alertness is the percent chance
// [0,100] that the boss notices a break.
func NewGate(store *Store, alertness int, opts ...GateOption) *Gate {
	g := &Gate{
		store:     store,
		alertness: alertness,
		penalty:   domain.BossAlertPenalty,
		now:       time.Now,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PerformBreak executes one break call. Catching up passive ticks, applying a
// uniform relief draw from the profile's span, rolling the boss alert, and
// reading the snapshot all happen under the store lock. If the snapshot left the alert
// maxed, the call then sleeps for the penalty with the lock released. The
// sleep is not cancellable; it always runs to completion.
func (g *Gate) PerformBreak(profile domain.BreakProfile) domain.BreakResult {
	res := domain.BreakResult{Profile: profile}

	g.store.WithLock(func(tx Tx) {
		report := tx.ApplyPassiveTicks(g.now())

		lo, hi := profile.MinRelief, profile.MaxRelief
		if lo < 1 || hi < lo || hi > domain.MaxStress {
			lo, hi = 1, domain.MaxStress
		}
		delta := lo + tx.Rand().Intn(hi-lo+1)

		res.Relief = tx.ApplyBreak(delta)
		res.AlertRaised = tx.RollBossAlert(g.alertness)
		res.Snapshot = tx.Snapshot()
		res.StressGrowth = report.StressGrowth
		res.CooldownSteps = report.CooldownSteps
	})

	res.Delayed = res.Snapshot.BossAlert >= domain.MaxBossAlert

	g.logger.Debug("break performed",
		"action", profile.Name,
		"relief", res.Relief,
		"stress", res.Snapshot.Stress,
		"boss_alert", res.Snapshot.BossAlert,
		"delayed", res.Delayed,
	)
	if g.hooks.OnBreak != nil {
		g.hooks.OnBreak(res)
	}

	if res.Delayed {
		g.logger.Debug("boss alert at maximum, delaying response", "penalty", g.penalty)
		time.Sleep(g.penalty)
	}

	return res
}

// Status applies passive ticks and returns the current snapshot without
// performing a break. It never rolls the alert and never sleeps.
func (g *Gate) Status() domain.Snapshot {
	var snap domain.Snapshot
	g.store.WithLock(func(tx Tx) {
		tx.ApplyPassiveTicks(g.now())
		snap = tx.Snapshot()
	})

	if g.hooks.OnStatus != nil {
		g.hooks.OnStatus(snap)
	}
	return snap
}
