package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/pagerank"
	"github.com/Yqzi/HarvardCS-PageRank/pkg/utils"
	"github.com/Yqzi/HarvardCS-PageRank/proto"
)

// NewSendCmd creates the send command, the gRPC client of a running server.
func NewSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <corpus>",
		Short: "Upload an edge-list corpus to a running server and print the ranks",
		Args:  cobra.ExactArgs(1),
		RunE:  runSend,
	}
	cmd.Flags().String("api", "127.0.0.1:1234", "Ranker server connection")
	cmd.Flags().Float64("damping", pagerank.DefaultDamping, "Damping factor")
	cmd.Flags().Int64("samples", pagerank.DefaultSamples, "Random walk length")
	cmd.Flags().Float64("threshold", pagerank.DefaultThreshold, "Convergence threshold")
	cmd.Flags().Int64("max-iterations", 0, "Iteration cap for the solver (0 = unbounded)")
	return cmd
}

func runSend(cmd *cobra.Command, args []string) error {
	contents, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read corpus file: %w", err)
	}
	api, _ := cmd.Flags().GetString("api")
	damping, _ := cmd.Flags().GetFloat64("damping")
	samples, _ := cmd.Flags().GetInt64("samples")
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	maxIterations, _ := cmd.Flags().GetInt64("max-iterations")

	hostname, _ := os.Hostname()
	client, err := utils.RankerCall(api)
	if err != nil {
		return fmt.Errorf("could not call server: %w", err)
	}
	defer client.Close()
	ranks, err := client.Client.SendCorpus(client.Ctx, &proto.CorpusUpload{
		From:          hostname,
		Contents:      contents,
		Damping:       damping,
		Samples:       samples,
		Threshold:     threshold,
		MaxIterations: maxIterations,
	})
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "PageRank Results from Sampling (n = %d)\n", samples)
	for _, score := range ranks.Sampled {
		fmt.Fprintf(out, "  %s: %.4f\n", score.Page, score.Rank)
	}
	fmt.Fprintln(out, "PageRank Results from Iteration")
	for _, score := range ranks.Iterated {
		fmt.Fprintf(out, "  %s: %.4f\n", score.Page, score.Rank)
	}
	return nil
}
