// Package service exposes the PageRank estimators over gRPC, HTTP and a
// RabbitMQ job queue.
package service

import (
	"fmt"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/graph"
	"github.com/Yqzi/HarvardCS-PageRank/pkg/pagerank"
	"github.com/Yqzi/HarvardCS-PageRank/proto"
)

// Job types carried by queue messages.
const (
	JobSample int32 = iota // Sampling estimator only
	JobIterate             // Iterative solver only
	JobBoth                // Both estimators
)

// ComputeRanks runs the requested estimators over an uploaded edge-list
// corpus. Zero-valued parameters fall back to the standard ones.
func ComputeRanks(upload *proto.CorpusUpload, jobType int32) (*proto.Ranks, error) {
	corpus, err := graph.LoadCorpusFromBytes(upload.GetContents())
	if err != nil {
		return nil, fmt.Errorf("could not load corpus: %w", err)
	}
	damping := upload.GetDamping()
	if damping == 0 {
		damping = pagerank.DefaultDamping
	}
	samples := int(upload.GetSamples())
	if samples == 0 {
		samples = pagerank.DefaultSamples
	}
	threshold := upload.GetThreshold()
	if threshold == 0 {
		threshold = pagerank.DefaultThreshold
	}
	result := &proto.Ranks{}
	if jobType == JobSample || jobType == JobBoth {
		sampled, err := pagerank.Sample(corpus, damping, samples, nil)
		if err != nil {
			return nil, err
		}
		result.Sampled = toScores(corpus, sampled)
	}
	if jobType == JobIterate || jobType == JobBoth {
		iterated, iterations, err := pagerank.IterateCapped(
			corpus, damping, threshold, int(upload.GetMaxIterations()),
		)
		if err != nil {
			return nil, err
		}
		result.Iterated = toScores(corpus, iterated)
		result.Iterations = int64(iterations)
	}
	return result, nil
}

func toScores(corpus graph.Corpus, ranks pagerank.RankMap) []*proto.PageScore {
	scores := make([]*proto.PageScore, 0, len(ranks))
	for _, page := range corpus.Pages() {
		scores = append(scores, &proto.PageScore{Page: page, Rank: ranks[page]})
	}
	return scores
}
