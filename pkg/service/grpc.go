package service

import (
	"context"

	"github.com/charmbracelet/log"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/Yqzi/HarvardCS-PageRank/proto"
)

type RankerServerImpl struct {
	proto.UnimplementedRankerServer
}

// From client to server: compute both rank sets for an uploaded corpus
func (s *RankerServerImpl) SendCorpus(_ context.Context, in *proto.CorpusUpload) (*proto.Ranks, error) {
	log.Info("received corpus", "from", in.GetFrom(), "bytes", len(in.GetContents()))
	ranks, err := ComputeRanks(in, JobBoth)
	if err != nil {
		return nil, err
	}
	log.Info("computed ranks", "pages", len(ranks.Iterated), "iterations", ranks.Iterations)
	return ranks, nil
}

func (s *RankerServerImpl) HealthCheck(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}
