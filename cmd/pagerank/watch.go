package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/graph"
	"github.com/Yqzi/HarvardCS-PageRank/pkg/pagerank"
)

// NewWatchCmd creates the watch command.
func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <directory>",
		Short: "Recompute ranks whenever the corpus directory changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	cmd.Flags().Float64("damping", pagerank.DefaultDamping, "Damping factor")
	cmd.Flags().Int("samples", pagerank.DefaultSamples, "Random walk length")
	cmd.Flags().Float64("threshold", pagerank.DefaultThreshold, "Convergence threshold")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	damping, _ := cmd.Flags().GetFloat64("damping")
	samples, _ := cmd.Flags().GetInt("samples")
	threshold, _ := cmd.Flags().GetFloat64("threshold")

	recompute := func() {
		corpus, err := graph.Crawl(dir)
		if err != nil {
			log.Error("could not rebuild corpus", "err", err)
			return
		}
		sampled, err := pagerank.Sample(corpus, damping, samples, nil)
		if err != nil {
			log.Error("could not sample ranks", "err", err)
			return
		}
		iterated, _, err := pagerank.Iterate(corpus, damping, threshold)
		if err != nil {
			log.Error("could not iterate ranks", "err", err)
			return
		}
		printRanks(cmd.OutOrStdout(), corpus, sampled, iterated, samples)
	}
	recompute()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return err
	}
	log.Info("watching corpus directory", "dir", dir)

	// Debounce: editors fire several events per save
	const debounce = 200 * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".html") {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				log.Debug("corpus changed", "file", event.Name, "op", event.Op)
				timer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", "err", err)
		case <-timer.C:
			recompute()
		}
	}
}
