// Package pagerank estimates the relative importance of pages in a link
// graph, both by Monte-Carlo sampling of a random surfer and by fixed-point
// iteration of the PageRank recurrence.
package pagerank

import (
	"errors"
	"fmt"
	"math"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/graph"
)

const (
	// DefaultDamping is the probability that the random surfer follows an
	// outgoing link instead of jumping to a random page.
	DefaultDamping = 0.85
	// DefaultSamples is the default random walk length.
	DefaultSamples = 10000
	// DefaultThreshold is the default convergence threshold of the
	// iterative solver.
	DefaultThreshold = 0.001
)

// Distribution maps every page of a corpus to the probability of visiting
// it next. Values are non-negative and sum to 1.
type Distribution map[string]float64

// RankMap maps every page of a corpus to its estimated PageRank.
// Values are non-negative and sum to 1.
type RankMap map[string]float64

var (
	ErrEmptyCorpus      = errors.New("corpus is empty")
	ErrUnknownPage      = errors.New("page is not part of the corpus")
	ErrInvalidDamping   = errors.New("damping factor must be between 0 and 1")
	ErrInvalidSamples   = errors.New("sample count must be at least 1")
	ErrInvalidThreshold = errors.New("convergence threshold must be positive")
	ErrNoConvergence    = errors.New("no convergence within the iteration cap")
)

func validate(corpus graph.Corpus, damping float64) error {
	if len(corpus) == 0 {
		return ErrEmptyCorpus
	}
	if damping < 0 || damping > 1 {
		return fmt.Errorf("damping factor %f: %w", damping, ErrInvalidDamping)
	}
	return nil
}

// Distance returns the L1 distance between two rank maps over the same pages.
func Distance(a, b RankMap) float64 {
	distance := 0.0
	for page := range a {
		distance += math.Abs(a[page] - b[page])
	}
	return distance
}
