// Centrality dispatch by measure name.
package tidygraph

import (
	"errors"
	"fmt"

	"github.com/tidygraph/go-tidygraph/centrality"
)

// ErrUnknownCentrality is returned for an unrecognized measure name.
var ErrUnknownCentrality = errors.New("tidygraph: unsupported centrality measure")

// CentralityKind names a supported measure for Centrality.
type CentralityKind string

// Supported centrality measures.
const (
	CentralityDegree          CentralityKind = "degree"
	CentralityCloseness       CentralityKind = "closeness"
	CentralityHarmonic        CentralityKind = "harmonic"
	CentralityBetweenness     CentralityKind = "betweenness"
	CentralityEdgeBetweenness CentralityKind = "edge_betweenness"
	CentralityEigenvector     CentralityKind = "eigenvector"
	CentralityPageRank        CentralityKind = "pagerank"
)

// Centrality computes the named measure for every vertex; edge
// betweenness is the one edge-context measure and returns one value per
// edge instead. Options are forwarded to the centrality package (mode,
// weights, damping, ...).
func (t *Graph) Centrality(kind CentralityKind, opts ...centrality.Option) ([]float64, error) {
	switch kind {
	case CentralityDegree:
		return centrality.Degree(t.g, opts...)
	case CentralityCloseness:
		return centrality.Closeness(t.g, opts...)
	case CentralityHarmonic:
		return centrality.Harmonic(t.g, opts...)
	case CentralityBetweenness:
		return centrality.Betweenness(t.g, opts...)
	case CentralityEdgeBetweenness:
		return centrality.EdgeBetweenness(t.g, opts...)
	case CentralityEigenvector:
		return centrality.Eigenvector(t.g, opts...)
	case CentralityPageRank:
		return centrality.PageRank(t.g, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCentrality, kind)
	}
}
