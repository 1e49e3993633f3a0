package service

import (
	"fmt"
	"net"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/utils"
	"github.com/Yqzi/HarvardCS-PageRank/proto"
)

// Run starts the gRPC and HTTP servers and, when RabbitMQ is configured,
// the queue worker. Blocks until the first of them fails.
func Run(env utils.EnvVars) error {
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", env.Host, env.GrpcPort))
	if err != nil {
		return fmt.Errorf("could not listen for the ranker server: %w", err)
	}
	server := grpc.NewServer()
	proto.RegisterRankerServer(server, &RankerServerImpl{})

	var g errgroup.Group
	g.Go(func() error {
		log.Info("starting ranker server", "addr", lis.Addr().String())
		return server.Serve(lis)
	})
	g.Go(func() error {
		log.Info("starting api server", "port", env.HTTPPort)
		return NewHTTPServer().Start(fmt.Sprintf("%s:%d", env.Host, env.HTTPPort))
	})
	if env.RabbitHost != "" {
		q, err := ConnectQueue(env)
		if err != nil {
			return err
		}
		g.Go(func() error {
			defer q.Close()
			return Work(q)
		})
	}
	return g.Wait()
}
