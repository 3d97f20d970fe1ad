package domain

import (
	"sort"
)

// RateGraph is a symmetric adjacency map of direct exchange rates.
// rates[A][B] is the number of B units bought by one unit of A; every stored
// edge has its reciprocal stored alongside it.
//
// RateGraph is not safe for concurrent use; the owning engine serializes access.
type RateGraph struct {
	rates map[CurrencyCode]map[CurrencyCode]float64
}

// NewRateGraph returns an empty graph.
func NewRateGraph() *RateGraph {
	return &RateGraph{rates: make(map[CurrencyCode]map[CurrencyCode]float64)}
}

// Clear removes every currency and rate.
func (g *RateGraph) Clear() {
	g.rates = make(map[CurrencyCode]map[CurrencyCode]float64)
}

// UpsertRate stores rate for from->to and 1/rate for to->from, replacing any
// previous values for the pair.
func (g *RateGraph) UpsertRate(from, to CurrencyCode, rate float64) error {
	if err := (ExchangeRate{From: from, To: to, Rate: rate}).Validate(); err != nil {
		return err
	}
	g.set(from, to, rate)
	g.set(to, from, 1/rate)
	return nil
}

func (g *RateGraph) set(from, to CurrencyCode, rate float64) {
	edges, ok := g.rates[from]
	if !ok {
		edges = make(map[CurrencyCode]float64)
		g.rates[from] = edges
	}
	edges[to] = rate
}

// HasNode reports whether code appears in any configured rate.
func (g *RateGraph) HasNode(code CurrencyCode) bool {
	_, ok := g.rates[code]
	return ok
}

// Rate returns the direct rate from->to, if one is configured.
func (g *RateGraph) Rate(from, to CurrencyCode) (float64, bool) {
	r, ok := g.rates[from][to]
	return r, ok
}

// Neighbors returns a copy of the direct rates out of code.
// An unknown code yields an empty map.
func (g *RateGraph) Neighbors(code CurrencyCode) map[CurrencyCode]float64 {
	out := make(map[CurrencyCode]float64, len(g.rates[code]))
	for k, v := range g.rates[code] {
		out[k] = v
	}
	return out
}

// SortedNeighbors returns the neighbor codes of code in ascending order.
func (g *RateGraph) SortedNeighbors(code CurrencyCode) []CurrencyCode {
	return sortedKeys(g.rates[code])
}

// Nodes returns every known currency in ascending order.
func (g *RateGraph) Nodes() []CurrencyCode {
	return sortedKeys(g.rates)
}

// Len returns the number of known currencies.
func (g *RateGraph) Len() int {
	return len(g.rates)
}

// Edges returns every directed rate, reciprocals included, ordered by From then To.
func (g *RateGraph) Edges() []ExchangeRate {
	var out []ExchangeRate
	for _, from := range g.Nodes() {
		for _, to := range g.SortedNeighbors(from) {
			out = append(out, ExchangeRate{From: from, To: to, Rate: g.rates[from][to]})
		}
	}
	return out
}

func sortedKeys[V any](m map[CurrencyCode]V) []CurrencyCode {
	keys := make([]CurrencyCode, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
