package services

import (
	"container/heap"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
)

// ShortestMode selects how the shortest-path resolver weighs and walks routes.
type ShortestMode int

const (
	// ShortestModeHops finds the route with the fewest conversions and compounds
	// every rate along it.
	ShortestModeHops ShortestMode = iota
	// ShortestModeLegacy sums raw rates as distances and only ever routes through
	// a single intermediate currency. Kept so existing clients see identical results.
	ShortestModeLegacy
)

const (
	StrategyShortest       = "shortest"
	StrategyShortestLegacy = "shortest-legacy"
)

type shortestResolver struct {
	mode ShortestMode
}

// NewShortestPathResolver returns a Dijkstra based resolver running in the given mode.
func NewShortestPathResolver(mode ShortestMode) portssvc.PathResolver {
	return shortestResolver{mode: mode}
}

var _ portssvc.PathResolver = shortestResolver{}

func (r shortestResolver) Name() string {
	if r.mode == ShortestModeLegacy {
		return StrategyShortestLegacy
	}
	return StrategyShortest
}

func (r shortestResolver) Resolve(g *domain.RateGraph, from, to domain.CurrencyCode, amount float64) (domain.Resolution, error) {
	if rate, ok := g.Rate(from, to); ok {
		return domain.Resolution{Amount: amount * rate, Rate: rate, Path: domain.Path{from, to}}, nil
	}
	if r.mode == ShortestModeLegacy {
		return resolveOneHop(g, from, to, amount)
	}
	return resolveFewestHops(g, from, to, amount)
}

func resolveOneHop(g *domain.RateGraph, from, to domain.CurrencyCode, amount float64) (domain.Resolution, error) {
	dist, _ := shortestPaths(g, from, func(rate float64) float64 { return rate })

	var via domain.CurrencyCode
	found := false
	best := 0.0
	for _, c := range g.Nodes() {
		d, reached := dist[c]
		if !reached || c == from || c == to {
			continue
		}
		// The intermediate must sit on a direct edge from the source and to the target.
		if _, ok := g.Rate(from, c); !ok {
			continue
		}
		if _, ok := g.Rate(c, to); !ok {
			continue
		}
		if !found || d < best {
			via, best, found = c, d, true
		}
	}
	if !found {
		return domain.Resolution{}, errPathNotFound
	}

	first, _ := g.Rate(from, via)
	second, _ := g.Rate(via, to)
	rate := first * second
	return domain.Resolution{Amount: amount * rate, Rate: rate, Path: domain.Path{from, via, to}}, nil
}

func resolveFewestHops(g *domain.RateGraph, from, to domain.CurrencyCode, amount float64) (domain.Resolution, error) {
	_, prev := shortestPaths(g, from, func(float64) float64 { return 1 })
	if _, ok := prev[to]; !ok {
		return domain.Resolution{}, errPathNotFound
	}

	var path domain.Path
	for c := to; c != from; c = prev[c] {
		path = append(path, c)
	}
	path = append(path, from)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	rate := 1.0
	for i := 1; i < len(path); i++ {
		edge, _ := g.Rate(path[i-1], path[i])
		rate *= edge
	}
	return domain.Resolution{Amount: amount * rate, Rate: rate, Path: path}, nil
}

// shortestPaths runs Dijkstra from source using weight to cost each edge.
// Unreachable currencies are absent from both maps.
func shortestPaths(g *domain.RateGraph, source domain.CurrencyCode, weight func(rate float64) float64) (map[domain.CurrencyCode]float64, map[domain.CurrencyCode]domain.CurrencyCode) {
	dist := map[domain.CurrencyCode]float64{source: 0}
	prev := make(map[domain.CurrencyCode]domain.CurrencyCode)
	settled := make(map[domain.CurrencyCode]bool)

	pq := &distQueue{{code: source}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(queueItem)
		if settled[item.code] {
			continue
		}
		settled[item.code] = true

		for _, n := range g.SortedNeighbors(item.code) {
			if settled[n] {
				continue
			}
			rate, _ := g.Rate(item.code, n)
			alt := item.dist + weight(rate)
			if d, ok := dist[n]; !ok || alt < d {
				dist[n] = alt
				prev[n] = item.code
				heap.Push(pq, queueItem{code: n, dist: alt})
			}
		}
	}
	return dist, prev
}

type queueItem struct {
	code domain.CurrencyCode
	dist float64
}

// distQueue is a min-heap on distance, ties broken by currency code.
type distQueue []queueItem

func (q distQueue) Len() int { return len(q) }

func (q distQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].code < q[j].code
}

func (q distQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *distQueue) Push(x any) { *q = append(*q, x.(queueItem)) }

func (q *distQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
