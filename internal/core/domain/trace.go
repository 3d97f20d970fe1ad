package domain

// TraceKind names a decision point in the conversion engine.
type TraceKind string

const (
	TraceDirectPath   TraceKind = "direct_path"
	TraceIndirectPath TraceKind = "indirect_path"
	TraceNoPath       TraceKind = "no_path"
	TraceCacheHit     TraceKind = "cache_hit"
	TraceCacheMiss    TraceKind = "cache_miss"
	TraceCachePurged  TraceKind = "cache_purged"
	TraceSameCurrency TraceKind = "same_currency"
	TraceConfigured   TraceKind = "configured"
	TraceCleared      TraceKind = "cleared"
)

// TraceEvent is emitted to an observer whenever the engine takes a decision worth recording.
// Fields that do not apply to a kind are left zero.
type TraceEvent struct {
	Kind     TraceKind
	Strategy string
	From     CurrencyCode
	To       CurrencyCode
	Path     Path
	Rate     float64
	// Count carries the number of rates applied for TraceConfigured.
	Count int
}
