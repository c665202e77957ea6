package domain

// Hooks receive kernel events for observability (metrics, logging sinks).
// Nil fields are skipped. Hooks are invoked outside the state lock.
type Hooks struct {
	OnBreak  func(res BreakResult)
	OnStatus func(snap Snapshot)
}
