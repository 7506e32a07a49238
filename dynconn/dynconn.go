package dynconn

import (
	"fmt"

	"github.com/katalvlaran/dynconn/dtree"
	"github.com/katalvlaran/dynconn/hdt"
	"github.com/katalvlaran/dynconn/wang"
)

// Algorithm is the common surface every dynamic connectivity structure in
// this module implements: query/addEdge/deleteEdge/numberOfComponents, the
// methods every concrete algorithm actually overrides. Algorithm-specific
// extras such as DTree's per-node component lookup are reached through a
// type assertion when needed rather than bloating this common surface.
type Algorithm interface {
	// Query reports whether u and v are currently connected.
	Query(u, v uint64) bool
	// AddEdge inserts edge {u,v}.
	AddEdge(u, v uint64) error
	// DeleteEdge removes edge {u,v}.
	DeleteEdge(u, v uint64) error
	// NumberOfComponents returns the current component count.
	NumberOfComponents() int
}

// config collects the parameters shared across the randomized algorithms.
// Unset fields take io.cpp's defaults: precision c=1, boost B=1.
type config struct {
	precision float64
	boost     int
	seed      int64
}

// Option configures New's algorithm construction.
type Option func(*config)

// WithPrecision sets the Wang/Kaibel/GKKT query-error exponent c (false
// negatives bounded by n^-c). Ignored by DTree and HDT, which are exact.
func WithPrecision(c float64) Option {
	return func(cfg *config) { cfg.precision = c }
}

// WithBoost sets the number of parallel boost copies B used to tighten the
// randomized algorithms' per-round search success probability. Ignored by
// DTree and HDT.
func WithBoost(b int) Option {
	return func(cfg *config) { cfg.boost = b }
}

// WithSeed sets the PRNG seed driving TabularHash and the randomized
// algorithms' internal sampling. Ignored by DTree and HDT, which are
// deterministic.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.seed = seed }
}

// ErrUnknownAlgorithm is a ContractViolation: New was asked for a name
// outside the registry accepted by the `-a` flag.
type ErrUnknownAlgorithm struct{ Name string }

func (e *ErrUnknownAlgorithm) Error() string {
	return fmt.Sprintf("dynconn: unknown algorithm %q", e.Name)
}

// New constructs the named algorithm over n initially-isolated vertices.
// name must be one of the registry entries accepted by the `-a` flag: DTree,
// HDT, GKKT[base|pHeu|lvlHeu], Wang[base|pHeu|lvlHeu], Kaibel[base|pHeu|lvlHeu].
//
// GKKT, Wang, and Kaibel name the same randomized cut-set algorithm under
// three historical names (GKKT.hpp is only ever included, never defined, in
// the reference C++ sources — Wang.hpp and Kaibel.cpp are its two surviving,
// identical bodies) — all three resolve to package wang here, selecting
// wang.Mode from the bracketed suffix.
func New(name string, n uint64, opts ...Option) (Algorithm, error) {
	cfg := config{precision: 1, boost: 1, seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch name {
	case "DTree":
		return dtree.New(n), nil
	case "HDT":
		return hdt.New(n), nil
	case "GKKT[base]", "Wang[base]", "Kaibel[base]":
		return wang.New(n, cfg.precision, cfg.seed, cfg.boost, wang.Base), nil
	case "GKKT[pHeu]", "Wang[pHeu]", "Kaibel[pHeu]":
		return wang.New(n, cfg.precision, cfg.seed, cfg.boost, wang.PHeu), nil
	case "GKKT[lvlHeu]", "Wang[lvlHeu]", "Kaibel[lvlHeu]":
		return wang.New(n, cfg.precision, cfg.seed, cfg.boost, wang.LvlHeu), nil
	default:
		return nil, &ErrUnknownAlgorithm{Name: name}
	}
}

// Names lists every registry entry accepted by New, in the order the `-a`
// flag's help text enumerates them.
func Names() []string {
	return []string{
		"DTree",
		"GKKT[base]", "GKKT[pHeu]", "GKKT[lvlHeu]",
		"Wang[base]", "Wang[pHeu]", "Wang[lvlHeu]",
		"Kaibel[base]", "Kaibel[pHeu]", "Kaibel[lvlHeu]",
		"HDT",
	}
}
