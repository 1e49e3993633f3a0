package pagerank

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/graph"
)

// Sample estimates PageRank by simulating a random surfer for n steps.
// The first page is chosen uniformly at random; every following page is
// drawn from the transition distribution of the current one. Visit counts
// normalized by n form the result, which sums to 1 by construction.
//
// The randomness source is injected so callers can seed it for
// reproducible runs; a nil rng gets a time-seeded one.
func Sample(corpus graph.Corpus, damping float64, n int, rng *rand.Rand) (RankMap, error) {
	if err := validate(corpus, damping); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("sampling with n = %d: %w", n, ErrInvalidSamples)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	pages := corpus.Pages()
	counts := make(map[string]int, len(pages))
	page := pages[rng.Intn(len(pages))]
	for i := 0; i < n; i++ {
		counts[page]++
		dist, err := Transition(corpus, page, damping)
		if err != nil {
			return nil, err
		}
		page = weightedChoice(pages, dist, rng)
	}
	ranks := make(RankMap, len(pages))
	for _, p := range pages {
		ranks[p] = float64(counts[p]) / float64(n)
	}
	return ranks, nil
}

// weightedChoice draws one page from an ordered sequence of pages with the
// given weights. Weights are non-negative and sum to ~1; ties and ordering
// within the draw are decided by the randomness source alone.
func weightedChoice(pages []string, weights Distribution, rng *rand.Rand) string {
	target := rng.Float64()
	cumulative := 0.0
	for _, page := range pages {
		cumulative += weights[page]
		if target < cumulative {
			return page
		}
	}
	// Floating-point slack can leave the cumulative sum just under 1
	return pages[len(pages)-1]
}
