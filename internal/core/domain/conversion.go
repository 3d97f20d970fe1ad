package domain

// Path is the ordered list of currencies a conversion passes through, source first.
type Path []CurrencyCode

// Hops returns the number of rate applications along the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Strings converts the path for serialization.
func (p Path) Strings() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = string(c)
	}
	return out
}

// Resolution is what a path resolver produces for one request.
type Resolution struct {
	Amount float64
	Rate   float64
	Path   Path
}

// CachedResult is the memoized outcome for an ordered currency pair.
// Only the compounded rate is stored so any amount can be served from it.
type CachedResult struct {
	Rate float64
	Path Path
}

// Conversion is the result returned to callers of the engine.
type Conversion struct {
	From      CurrencyCode `json:"from"`
	To        CurrencyCode `json:"to"`
	Amount    float64      `json:"amount"`
	Converted float64      `json:"converted"`
	Rate      float64      `json:"rate"`
	Path      Path         `json:"path"`
	Strategy  string       `json:"strategy"`
	Cached    bool         `json:"cached"`
}
