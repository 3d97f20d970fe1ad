package services

import (
	"fmt"
	"sync"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
)

var (
	defaultConverterOnce sync.Once
	defaultConverter     portssvc.ConverterSvcFacade
)

// DefaultConverter returns a lazily created process-wide engine using the
// depth-first resolver. Code that needs isolation, tests included, should
// call NewConversionService instead.
func DefaultConverter() portssvc.ConverterSvcFacade {
	defaultConverterOnce.Do(func() {
		// The default options cannot fail to build a cache.
		defaultConverter, _ = NewConversionService()
	})
	return defaultConverter
}

// NewResolver maps a strategy name to a resolver.
func NewResolver(strategy string) (portssvc.PathResolver, error) {
	switch strategy {
	case "", StrategyDFS:
		return NewDFSResolver(), nil
	case StrategyShortest:
		return NewShortestPathResolver(ShortestModeHops), nil
	case StrategyShortestLegacy:
		return NewShortestPathResolver(ShortestModeLegacy), nil
	default:
		return nil, fmt.Errorf("%w: unknown resolver strategy %q", apperrors.ErrValidation, strategy)
	}
}
