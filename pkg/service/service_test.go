package service

import (
	"math"
	"testing"

	"github.com/Yqzi/HarvardCS-PageRank/proto"
)

const edgeList = "A B\nB A\nC A\n"

// TestComputeRanks tests the shared computation entry point.
func TestComputeRanks(t *testing.T) {
	t.Parallel()

	t.Run("both estimators with defaults", func(t *testing.T) {
		t.Parallel()

		ranks, err := ComputeRanks(&proto.CorpusUpload{
			Contents: []byte(edgeList),
			Samples:  500,
		}, JobBoth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ranks.Sampled) != 3 || len(ranks.Iterated) != 3 {
			t.Fatalf("got %d sampled and %d iterated scores, expected 3 each",
				len(ranks.Sampled), len(ranks.Iterated))
		}
		if ranks.Iterations < 1 {
			t.Errorf("got %d iterations, expected at least 1", ranks.Iterations)
		}
		// Scores come back sorted by page name
		for i, want := range []string{"A", "B", "C"} {
			if ranks.Iterated[i].Page != want {
				t.Errorf("score %d is %s, expected %s", i, ranks.Iterated[i].Page, want)
			}
		}
		sum := 0.0
		for _, score := range ranks.Iterated {
			sum += score.Rank
		}
		if math.Abs(sum-1) > 1e-3 {
			t.Errorf("iterated ranks sum to %f, expected 1", sum)
		}
	})

	t.Run("sample job skips the solver", func(t *testing.T) {
		t.Parallel()

		ranks, err := ComputeRanks(&proto.CorpusUpload{
			Contents: []byte(edgeList),
			Samples:  100,
		}, JobSample)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ranks.Sampled) != 3 {
			t.Errorf("got %d sampled scores, expected 3", len(ranks.Sampled))
		}
		if len(ranks.Iterated) != 0 {
			t.Errorf("got %d iterated scores, expected none", len(ranks.Iterated))
		}
	})

	t.Run("iterate job skips sampling", func(t *testing.T) {
		t.Parallel()

		ranks, err := ComputeRanks(&proto.CorpusUpload{
			Contents: []byte(edgeList),
		}, JobIterate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ranks.Sampled) != 0 {
			t.Errorf("got %d sampled scores, expected none", len(ranks.Sampled))
		}
		if len(ranks.Iterated) != 3 {
			t.Errorf("got %d iterated scores, expected 3", len(ranks.Iterated))
		}
	})

	t.Run("empty corpus fails", func(t *testing.T) {
		t.Parallel()

		if _, err := ComputeRanks(&proto.CorpusUpload{}, JobBoth); err == nil {
			t.Error("expected an error for an empty corpus")
		}
	})

	t.Run("malformed corpus fails", func(t *testing.T) {
		t.Parallel()

		upload := &proto.CorpusUpload{Contents: []byte("A B C\n")}
		if _, err := ComputeRanks(upload, JobBoth); err == nil {
			t.Error("expected an error for a malformed edge list")
		}
	})
}
