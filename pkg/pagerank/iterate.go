package pagerank

import (
	"fmt"
	"math"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/graph"
)

// Iterate computes PageRank by fixed-point iteration of the recurrence
//
//	PR(p) = (1 - damping)/N + damping * sum_(p' links to p) PR(p')/L(p')
//
// where dangling pages (L = 0) spread their rank over the whole corpus.
// Iteration stops once every page's value moved by less than threshold in
// a full pass. Returns the converged map and the number of passes. There
// is no iteration cap; use IterateCapped to bound latency.
func Iterate(corpus graph.Corpus, damping, threshold float64) (RankMap, int, error) {
	return IterateCapped(corpus, damping, threshold, 0)
}

// IterateCapped is Iterate with an optional bound on the number of passes.
// A maxIterations <= 0 means unbounded. When the cap is hit before convergence the
// latest map is returned together with ErrNoConvergence.
func IterateCapped(corpus graph.Corpus, damping, threshold float64, maxIterations int) (RankMap, int, error) {
	if err := validate(corpus, damping); err != nil {
		return nil, 0, err
	}
	if threshold <= 0 {
		return nil, 0, fmt.Errorf("threshold %f: %w", threshold, ErrInvalidThreshold)
	}
	n := float64(len(corpus))
	// Two alternating maps: every pass reads current and writes next, so
	// no page sees a value from its own pass
	current := make(RankMap, len(corpus))
	next := make(RankMap, len(corpus))
	for page := range corpus {
		current[page] = 1 / n
	}
	for iteration := 1; ; iteration++ {
		for page := range corpus {
			next[page] = (1 - damping) / n
		}
		for page, links := range corpus {
			if len(links) == 0 {
				// Dangling page -> its rank flows to every page
				share := damping * current[page] / n
				for p := range corpus {
					next[p] += share
				}
				continue
			}
			share := damping * current[page] / float64(len(links))
			for link := range links {
				next[link] += share
			}
		}
		// Convergence check after the full pass
		converged := true
		for page := range corpus {
			if math.Abs(next[page]-current[page]) >= threshold {
				converged = false
				break
			}
		}
		current, next = next, current
		if converged {
			return current, iteration, nil
		}
		if maxIterations > 0 && iteration >= maxIterations {
			return current, iteration, fmt.Errorf("%d iterations: %w", iteration, ErrNoConvergence)
		}
	}
}
