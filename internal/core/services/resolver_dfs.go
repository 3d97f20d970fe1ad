package services

import (
	"errors"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
)

// errPathNotFound is returned by resolvers when no route exists. The engine
// translates it into apperrors.ErrNoPathFound.
var errPathNotFound = errors.New("path not found")

// StrategyDFS is the name of the depth-first resolver.
const StrategyDFS = "dfs"

type dfsResolver struct{}

// NewDFSResolver returns a resolver that takes the first route a depth-first
// search finds. The route is valid but not necessarily the shortest.
func NewDFSResolver() portssvc.PathResolver {
	return dfsResolver{}
}

var _ portssvc.PathResolver = dfsResolver{}

func (dfsResolver) Name() string { return StrategyDFS }

// dfsFrame is one currency on the current search path.
type dfsFrame struct {
	code      domain.CurrencyCode
	neighbors []domain.CurrencyCode
	next      int
	// rate is the compounded rate from the source to code.
	rate float64
}

func (dfsResolver) Resolve(g *domain.RateGraph, from, to domain.CurrencyCode, amount float64) (domain.Resolution, error) {
	if r, ok := g.Rate(from, to); ok {
		return domain.Resolution{Amount: amount * r, Rate: r, Path: domain.Path{from, to}}, nil
	}

	// onPath holds the currencies on the current branch only, so a currency
	// abandoned on one branch can still be tried through another.
	onPath := map[domain.CurrencyCode]bool{from: true}
	stack := []dfsFrame{{code: from, neighbors: g.SortedNeighbors(from), rate: 1}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.neighbors) {
			delete(onPath, top.code)
			stack = stack[:len(stack)-1]
			continue
		}

		next := top.neighbors[top.next]
		top.next++
		if onPath[next] {
			continue
		}

		edge, _ := g.Rate(top.code, next)
		rate := top.rate * edge
		if next == to {
			path := make(domain.Path, 0, len(stack)+1)
			for _, f := range stack {
				path = append(path, f.code)
			}
			path = append(path, to)
			return domain.Resolution{Amount: amount * rate, Rate: rate, Path: path}, nil
		}

		onPath[next] = true
		stack = append(stack, dfsFrame{code: next, neighbors: g.SortedNeighbors(next), rate: rate})
	}

	return domain.Resolution{}, errPathNotFound
}
