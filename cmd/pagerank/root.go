package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the pagerank CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagerank",
		Short: "Estimate page importance in a hyperlink graph",
		Long: `pagerank estimates the relative importance of pages in a hyperlink
graph two ways: by sampling a random surfer's trajectory and by iterating
the PageRank recurrence until convergence.

A corpus is either a directory of HTML documents or an edge-list text file
("from to" pairs, one per line), local or fetched over HTTP.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	}

	cmd.AddCommand(NewRankCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewSendCmd())
	cmd.AddCommand(NewWatchCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
