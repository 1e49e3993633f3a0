package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/Yqzi/HarvardCS-PageRank/proto"
)

type Client struct {
	Client proto.RankerClient
	Ctx    context.Context
	conn   *grpc.ClientConn
	cancel context.CancelFunc
}

// RankerCall creates a gRPC client to the ranker server at `url`.
// Has to be closed (`c.Close()`).
func RankerCall(url string) (Client, error) {
	conn, err := grpc.Dial(
		url,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return Client{}, err
	}
	client := proto.NewRankerClient(conn)
	// Large corpora can take a while to converge
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	return Client{
		conn:   conn,
		Client: client,
		Ctx:    ctx,
		cancel: cancel,
	}, nil
}

func (c Client) Close() {
	c.cancel()
	c.conn.Close()
}

func FailOnError(format string, err error, v ...any) {
	if err != nil {
		log.Fatalf("%s: %v", fmt.Sprintf(format, v...), err)
	}
}
