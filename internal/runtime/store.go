package runtime

import (
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/chillmcp/internal/logging"
	"github.com/aretw0/chillmcp/pkg/domain"
)

// Store owns the shared counter state. It is the sole mutator: every read or
// write happens through WithLock, and the counters never leave their clamp
// ranges, even mid-update.
type Store struct {
	mu sync.Mutex

	stress    int
	bossAlert int

	// lastStressTick and lastAlertCooldown mark the last applied passive
	// tick for each counter. They advance by whole consumed periods only,
	// so fractional elapsed time carries over to the next call.
	lastStressTick    time.Time
	lastAlertCooldown time.Time

	cooldown time.Duration
	rng      Rand
	logger   *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithInitialStress overrides the starting Stress Level.
func WithInitialStress(stress int) StoreOption {
	return func(s *Store) {
		s.stress = clamp(stress, 0, domain.MaxStress)
	}
}

// WithRand injects a deterministic randomness source.
func WithRand(rng Rand) StoreOption {
	return func(s *Store) {
		s.rng = rng
	}
}

// WithStoreLogger configures the store's logger.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates the process-wide state record. The cooldown is the period
// after which the Boss Alert Level passively drops by one; now anchors both
// tick clocks.
func NewStore(cooldown time.Duration, now time.Time, opts ...StoreOption) *Store {
	s := &Store{
		stress:            domain.InitialStress,
		lastStressTick:    now,
		lastAlertCooldown: now,
		cooldown:          cooldown,
		rng:               newDefaultRand(),
		logger:            logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tx exposes the store operations while the exclusive lock is held. A Tx is
// only valid inside the WithLock callback that produced it.
type Tx struct {
	s *Store
}

// WithLock runs fn while holding the store's exclusive lock. The callback is
// the atomicity unit of the kernel: a call's full read-modify-write sequence
// goes through a single WithLock.
func (s *Store) WithLock(fn func(tx Tx)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(Tx{s})
}

// Snapshot reads the counter pair under its own lock acquisition. Callers
// already inside WithLock use Tx.Snapshot instead.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Snapshot{Stress: s.stress, BossAlert: s.bossAlert}
}

// TickReport is what a lazy catch-up actually changed.
type TickReport struct {
	// StressGrowth is the stress added, after clamping at MaxStress.
	StressGrowth int

	// CooldownSteps is the alert decay applied, after clamping at 0.
	CooldownSteps int
}

// ApplyPassiveTicks catches both counters up to now. Stress gains one point
// per full elapsed minute; the alert drops one level per full elapsed
// cooldown period. Each tick clock advances by the consumed whole periods,
// preserving the fractional remainder.
func (tx Tx) ApplyPassiveTicks(now time.Time) TickReport {
	s := tx.s
	var report TickReport

	if ticks := int(now.Sub(s.lastStressTick) / domain.StressTickInterval); ticks > 0 {
		prev := s.stress
		s.stress = clamp(s.stress+ticks, 0, domain.MaxStress)
		s.lastStressTick = s.lastStressTick.Add(time.Duration(ticks) * domain.StressTickInterval)
		report.StressGrowth = s.stress - prev
		s.logger.Debug("stress accrued passively", "ticks", ticks, "stress", s.stress)
	}

	if steps := int(now.Sub(s.lastAlertCooldown) / s.cooldown); steps > 0 {
		prev := s.bossAlert
		s.bossAlert = clamp(s.bossAlert-steps, 0, domain.MaxBossAlert)
		s.lastAlertCooldown = s.lastAlertCooldown.Add(time.Duration(steps) * s.cooldown)
		report.CooldownSteps = prev - s.bossAlert
		if report.CooldownSteps > 0 {
			s.logger.Debug("boss alert cooled down", "steps", report.CooldownSteps, "boss_alert", s.bossAlert)
		}
	}

	return report
}

// ApplyBreak subtracts the relief delta from stress, clamped at 0, and
// returns the relief actually applied.
func (tx Tx) ApplyBreak(delta int) int {
	s := tx.s
	prev := s.stress
	s.stress = clamp(s.stress-delta, 0, domain.MaxStress)
	return prev - s.stress
}

// RollBossAlert draws one uniform integer in [0,100) and, if it falls below
// probability, raises the alert by one (clamped at MaxBossAlert). It reports
// whether the boss noticed; probability 100 always triggers.
func (tx Tx) RollBossAlert(probability int) bool {
	s := tx.s
	if probability <= 0 {
		return false
	}

	roll := s.rng.Intn(100)
	if roll >= probability {
		s.logger.Debug("boss stayed calm", "roll", roll)
		return false
	}

	if s.bossAlert < domain.MaxBossAlert {
		s.bossAlert++
	}
	s.logger.Debug("boss alert triggered", "roll", roll, "boss_alert", s.bossAlert)
	return true
}

// Snapshot reads the counter pair under the already-held lock.
func (tx Tx) Snapshot() domain.Snapshot {
	return domain.Snapshot{Stress: tx.s.stress, BossAlert: tx.s.bossAlert}
}

// Rand exposes the store's randomness source to the gate's relief draw,
// which also happens under the lock.
func (tx Tx) Rand() Rand {
	return tx.s.rng
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
