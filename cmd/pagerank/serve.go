package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/service"
	"github.com/Yqzi/HarvardCS-PageRank/pkg/utils"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the rank servers (gRPC + HTTP, and the queue worker when configured)",
		Long: `Serve starts the gRPC ranker server and the HTTP API. When RABBIT_HOST
is set it also consumes rank jobs from the configured RabbitMQ queue.
Configuration comes from the environment (or a .env file): HOST, HTTP_PORT,
GRPC_PORT, RABBIT_HOST, RABBIT_USER, RABBIT_PASSWORD, JOB_QUEUE,
RESULT_QUEUE, VERBOSE.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			env := utils.ReadEnvVars()
			if env.Verbose {
				log.SetLevel(log.DebugLevel)
			}
			return service.Run(env)
		},
	}
}
