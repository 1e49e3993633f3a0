package store

import (
	"context"
	"math"
	"testing"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/pagerank"
)

// TestRunStore tests the save/load round trip.
func TestRunStore(t *testing.T) {
	t.Parallel()

	t.Run("saves and lists runs", func(t *testing.T) {
		t.Parallel()

		s, err := Open(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer s.Close()

		ctx := context.Background()
		sampled := pagerank.RankMap{"A": 0.6, "B": 0.4}
		iterated := pagerank.RankMap{"A": 0.55, "B": 0.45}
		id, err := s.SaveRun(ctx, Run{
			Source:     "corpus0",
			Damping:    0.85,
			Samples:    10000,
			Threshold:  0.001,
			Iterations: 12,
			Pages:      2,
		}, sampled, iterated)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == 0 {
			t.Error("expected a non-zero run id")
		}

		runs, err := s.Runs(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(runs) != 1 {
			t.Fatalf("got %d runs, expected 1", len(runs))
		}
		run := runs[0]
		if run.Source != "corpus0" || run.Iterations != 12 || run.Pages != 2 {
			t.Errorf("unexpected run: %+v", run)
		}
		if run.CreatedAt.IsZero() {
			t.Error("expected a creation timestamp")
		}
	})

	t.Run("loads both rank maps", func(t *testing.T) {
		t.Parallel()

		s, err := Open(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer s.Close()

		ctx := context.Background()
		sampled := pagerank.RankMap{"A": 0.6, "B": 0.4}
		iterated := pagerank.RankMap{"A": 0.55, "B": 0.45}
		id, err := s.SaveRun(ctx, Run{Source: "corpus1", Pages: 2}, sampled, iterated)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for method, want := range map[string]pagerank.RankMap{
			MethodSample:  sampled,
			MethodIterate: iterated,
		} {
			got, err := s.Ranks(ctx, id, method)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", method, err)
			}
			if len(got) != len(want) {
				t.Fatalf("%s: got %d pages, expected %d", method, len(got), len(want))
			}
			for page, rank := range want {
				if math.Abs(got[page]-rank) > 1e-12 {
					t.Errorf("%s: rank of %s = %f, expected %f", method, page, got[page], rank)
				}
			}
		}
	})

	t.Run("separate runs stay separate", func(t *testing.T) {
		t.Parallel()

		s, err := Open(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer s.Close()

		ctx := context.Background()
		first, err := s.SaveRun(ctx, Run{Source: "a", Pages: 1},
			pagerank.RankMap{"A": 1}, pagerank.RankMap{"A": 1})
		if err != nil {
			t.Fatal(err)
		}
		second, err := s.SaveRun(ctx, Run{Source: "b", Pages: 1},
			pagerank.RankMap{"B": 1}, pagerank.RankMap{"B": 1})
		if err != nil {
			t.Fatal(err)
		}
		got, err := s.Ranks(ctx, first, MethodSample)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := got["B"]; ok {
			t.Errorf("run %d leaked into run %d", second, first)
		}
	})
}
