package domain

import "time"

const (
	// MaxStress is the upper clamp of the Stress Level counter.
	MaxStress = 100

	// MaxBossAlert is the upper clamp of the Boss Alert Level counter.
	MaxBossAlert = 5

	// InitialStress is the Stress Level a fresh agent starts the day with.
	InitialStress = 60

	// StressTickInterval is the passive accrual period: every full elapsed
	// interval adds one stress point.
	StressTickInterval = time.Minute

	// BossAlertPenalty is how long a response is held back while the
	// Boss Alert Level sits at its maximum.
	BossAlertPenalty = 20 * time.Second
)
