// Package centrality options and error definitions.
package centrality

import (
	"errors"
	"fmt"

	"github.com/tidygraph/go-tidygraph/core"
)

// Sentinel errors for centrality computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrBadWeight is returned when the weight attribute is absent or a
	// cell is missing, negative or non-numeric.
	ErrBadWeight = errors.New("centrality: bad edge weight")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Mode selects the edge direction considered on directed graphs.
// Undirected graphs ignore it.
type Mode int

const (
	// All considers every incident edge (both directions).
	All Mode = iota

	// Out considers outgoing edges / forward paths.
	Out

	// In considers incoming edges / reverse paths.
	In
)

// Option configures a centrality computation via functional arguments.
type Option func(*Options)

// Options holds centrality parameters. The zero value is not meaningful;
// use DefaultOptions.
type Options struct {
	// Mode is the direction policy on directed graphs.
	Mode Mode

	// Loops controls whether self-loops contribute to Degree.
	Loops bool

	// Weights names an edge attribute column used as edge weights;
	// empty means unweighted.
	Weights string

	// Normalized rescales Closeness and Harmonic by the vertex count.
	Normalized bool

	// Damping is the PageRank damping factor.
	Damping float64

	// MaxIter bounds the power iterations (PageRank, Eigenvector).
	MaxIter int

	// Tol is the power iterations' L1 convergence threshold.
	Tol float64

	// Scale rescales Eigenvector so the largest score is 1.
	Scale bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with All mode, self-loops counted,
// unweighted edges, damping 0.85, 100 iterations, tolerance 1e-9,
// eigenvector scaling on.
func DefaultOptions() Options {
	return Options{
		Mode:    All,
		Loops:   true,
		Damping: 0.85,
		MaxIter: 100,
		Tol:     1e-9,
		Scale:   true,
	}
}

// WithMode selects the direction policy for directed graphs.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m < All || m > In {
			o.err = fmt.Errorf("%w: mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithLoops controls whether self-loops are counted by Degree.
func WithLoops(count bool) Option {
	return func(o *Options) { o.Loops = count }
}

// WithWeights reads edge weights from the named edge attribute.
func WithWeights(attr string) Option {
	return func(o *Options) { o.Weights = attr }
}

// WithNormalized rescales Closeness and Harmonic to [0,1].
func WithNormalized() Option {
	return func(o *Options) { o.Normalized = true }
}

// WithDamping sets the PageRank damping factor, in (0,1).
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d >= 1 {
			o.err = fmt.Errorf("%w: damping %v", ErrOptionViolation, d)
			return
		}
		o.Damping = d
	}
}

// WithMaxIter bounds the power iterations.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations %d", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

// WithScale controls whether Eigenvector rescales the result so the
// largest score is 1.
func WithScale(scale bool) Option {
	return func(o *Options) { o.Scale = scale }
}

// WithTolerance sets the power iterations' convergence threshold.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance %v", ErrOptionViolation, tol)
			return
		}
		o.Tol = tol
	}
}

// build collapses the option list, surfacing any recorded violation.
func build(g *core.Graph, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// edgeWeights extracts the named edge attribute as float64 weights.
func edgeWeights(g *core.Graph, attr string) ([]float64, error) {
	col, ok := g.Attribute(core.Edges, attr)
	if !ok {
		return nil, fmt.Errorf("%w: no edge attribute %q", ErrBadWeight, attr)
	}
	out := make([]float64, len(col))
	for i, v := range col {
		f, ok := toFloat(v)
		if !ok || f < 0 {
			return nil, fmt.Errorf("%w: %q[%d] = %v", ErrBadWeight, attr, i, v)
		}
		out[i] = f
	}

	return out, nil
}

// toFloat converts the canonical numeric cell types.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}
