// Package runtime is the concurrency kernel of ChillMCP: a single mutex-owned
// state record (stress and boss-alert counters plus their tick clocks) and the
// per-call gate that mutates it.
//
// Passive time effects are evaluated lazily: instead of a background timer,
// every call catches up the counters from the elapsed wall-clock time since
// the last applied tick, so idle periods are never lost and there is no drift.
package runtime
