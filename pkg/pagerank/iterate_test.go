package pagerank

import (
	"errors"
	"math"
	"testing"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/graph"
)

// applyRecurrence computes one synchronous pass of the PageRank recurrence,
// used to verify that a returned map really is a fixed point.
func applyRecurrence(corpus graph.Corpus, damping float64, ranks RankMap) RankMap {
	n := float64(len(corpus))
	next := make(RankMap, len(corpus))
	for page := range corpus {
		next[page] = (1 - damping) / n
	}
	for page, links := range corpus {
		if len(links) == 0 {
			for p := range corpus {
				next[p] += damping * ranks[page] / n
			}
			continue
		}
		for link := range links {
			next[link] += damping * ranks[page] / float64(len(links))
		}
	}
	return next
}

// TestIterate tests the fixed-point solver.
func TestIterate(t *testing.T) {
	t.Parallel()

	t.Run("symmetric two-page cycle converges to a half each", func(t *testing.T) {
		t.Parallel()

		corpus := corpusFromLinks(t, map[string][]string{
			"A": {"B"},
			"B": {"A"},
		})
		ranks, iterations, err := Iterate(corpus, 0.85, 0.001)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if iterations < 1 {
			t.Errorf("converged in %d iterations, expected at least one pass", iterations)
		}
		for page, rank := range ranks {
			if math.Abs(rank-0.5) > 0.01 {
				t.Errorf("rank of %s = %f, expected ~0.5", page, rank)
			}
		}
	})

	t.Run("dangling page still sums to one", func(t *testing.T) {
		t.Parallel()

		corpus := corpusFromLinks(t, map[string][]string{
			"A": {"B"},
			"B": {},
		})
		ranks, _, err := Iterate(corpus, 0.85, 0.001)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum := 0.0
		for _, rank := range ranks {
			sum += rank
		}
		if math.Abs(sum-1) > 1e-3 {
			t.Errorf("ranks sum to %f, expected 1", sum)
		}
	})

	t.Run("result is a fixed point of the recurrence", func(t *testing.T) {
		t.Parallel()

		corpus := corpusFromLinks(t, map[string][]string{
			"A": {"B"},
			"B": {"A", "C"},
			"C": {"A", "D"},
			"D": {},
		})
		const threshold = 0.001
		ranks, _, err := Iterate(corpus, 0.85, threshold)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		next := applyRecurrence(corpus, 0.85, ranks)
		for page := range corpus {
			if diff := math.Abs(next[page] - ranks[page]); diff >= threshold {
				t.Errorf("one more pass moved %s by %f, expected < %f", page, diff, threshold)
			}
		}
	})

	t.Run("more in-links means higher rank", func(t *testing.T) {
		t.Parallel()

		corpus := corpusFromLinks(t, map[string][]string{
			"A": {"B"},
			"B": {"A"},
			"C": {"A"},
		})
		ranks, _, err := Iterate(corpus, 0.85, 0.0001)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !(ranks["A"] > ranks["B"] && ranks["B"] > ranks["C"]) {
			t.Errorf("expected A > B > C, got A=%f B=%f C=%f",
				ranks["A"], ranks["B"], ranks["C"])
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		t.Parallel()

		corpus := corpusFromLinks(t, map[string][]string{
			"A": {"B", "C"},
			"B": {"C"},
			"C": {"A"},
		})
		first, _, err := Iterate(corpus, 0.85, 0.001)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, _, err := Iterate(corpus, 0.85, 0.001)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for page := range corpus {
			if first[page] != second[page] {
				t.Errorf("rank of %s differs between runs: %v vs %v",
					page, first[page], second[page])
			}
		}
	})

	t.Run("iteration cap reports no convergence", func(t *testing.T) {
		t.Parallel()

		corpus := corpusFromLinks(t, map[string][]string{
			"A": {"B"},
			"B": {"A"},
			"C": {"A"},
		})
		ranks, iterations, err := IterateCapped(corpus, 0.85, 1e-12, 1)
		if !errors.Is(err, ErrNoConvergence) {
			t.Fatalf("got %v, expected ErrNoConvergence", err)
		}
		if iterations != 1 {
			t.Errorf("ran %d iterations, expected exactly 1", iterations)
		}
		if ranks == nil {
			t.Error("expected the best-so-far map alongside the error")
		}
	})

	t.Run("invalid threshold", func(t *testing.T) {
		t.Parallel()

		corpus := corpusFromLinks(t, map[string][]string{"A": {}})
		if _, _, err := Iterate(corpus, 0.85, 0); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("got %v, expected ErrInvalidThreshold", err)
		}
	})

	t.Run("invalid damping", func(t *testing.T) {
		t.Parallel()

		corpus := corpusFromLinks(t, map[string][]string{"A": {}})
		if _, _, err := Iterate(corpus, -1, 0.001); !errors.Is(err, ErrInvalidDamping) {
			t.Errorf("got %v, expected ErrInvalidDamping", err)
		}
	})

	t.Run("empty corpus", func(t *testing.T) {
		t.Parallel()

		if _, _, err := Iterate(graph.New(), 0.85, 0.001); !errors.Is(err, ErrEmptyCorpus) {
			t.Errorf("got %v, expected ErrEmptyCorpus", err)
		}
	})
}
