package pagerank

import (
	"fmt"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/graph"
)

// Transition returns the probability distribution over which page the
// random surfer visits next from the given page. With probability damping
// it follows one of the page's outgoing links; with probability 1-damping
// it jumps to any corpus page. A page with no outgoing links is treated as
// linking to every page in the corpus.
func Transition(corpus graph.Corpus, page string, damping float64) (Distribution, error) {
	if err := validate(corpus, damping); err != nil {
		return nil, err
	}
	links, ok := corpus[page]
	if !ok {
		return nil, fmt.Errorf("transition from %q: %w", page, ErrUnknownPage)
	}
	n := float64(len(corpus))
	dist := make(Distribution, len(corpus))
	for p := range corpus {
		dist[p] = (1 - damping) / n
	}
	if len(links) == 0 {
		// Dangling page -> links uniformly to the whole corpus
		for p := range corpus {
			dist[p] += damping / n
		}
		return dist, nil
	}
	for link := range links {
		dist[link] += damping / float64(len(links))
	}
	return dist, nil
}
