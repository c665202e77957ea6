package domain

import "fmt"

// Snapshot is the externally observable pair of counters, captured atomically
// at the end of a state update.
type Snapshot struct {
	Stress    int
	BossAlert int
}

// BreakProfile is the behavioral configuration of a single break action.
type BreakProfile struct {
	// Name is the tool name the dispatcher invokes (e.g. "watch_netflix").
	Name string

	// Description is the short tool description advertised to agents.
	Description string

	// Summary is the human-readable activity line of the response contract.
	Summary string

	// Flavor is the narrative line that opens the response.
	Flavor string

	// MinRelief and MaxRelief bound the uniform stress-relief draw.
	// Both must lie within [1, MaxStress] with MinRelief <= MaxRelief.
	MinRelief int
	MaxRelief int
}

// Validate checks the relief span against the counter domain.
func (p BreakProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidProfile)
	}
	if p.MinRelief < 1 || p.MaxRelief > MaxStress || p.MinRelief > p.MaxRelief {
		return fmt.Errorf("%w: %s relief span [%d,%d] outside [1,%d]",
			ErrInvalidProfile, p.Name, p.MinRelief, p.MaxRelief, MaxStress)
	}
	return nil
}

// BreakResult is everything a single break call produced: the post-update
// snapshot plus the per-call deltas needed for the narrative notes.
type BreakResult struct {
	Profile BreakProfile

	// Snapshot is the counter pair read back after all mutations of the call.
	Snapshot Snapshot

	// Relief is the stress actually removed (after clamping at 0).
	Relief int

	// StressGrowth is the passive stress accrued during this call's catch-up.
	StressGrowth int

	// CooldownSteps is how many alert levels decayed during catch-up.
	CooldownSteps int

	// AlertRaised reports whether the boss noticed this break.
	AlertRaised bool

	// Delayed reports whether the call was held for the boss-alert penalty.
	Delayed bool
}
