package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/graph"
	"github.com/Yqzi/HarvardCS-PageRank/pkg/pagerank"
	"github.com/Yqzi/HarvardCS-PageRank/pkg/report"
	"github.com/Yqzi/HarvardCS-PageRank/pkg/store"
	"github.com/Yqzi/HarvardCS-PageRank/pkg/utils"
)

// NewRankCmd creates the rank command.
func NewRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <corpus>",
		Short: "Compute PageRank for a corpus, by sampling and by iteration",
		Args:  cobra.ExactArgs(1),
		RunE:  runRank,
	}
	cmd.Flags().Float64("damping", pagerank.DefaultDamping, "Damping factor")
	cmd.Flags().Int("samples", pagerank.DefaultSamples, "Random walk length")
	cmd.Flags().Float64("threshold", pagerank.DefaultThreshold, "Convergence threshold")
	cmd.Flags().Int("max-iterations", 0, "Iteration cap for the solver (0 = unbounded)")
	cmd.Flags().Int64("seed", 0, "Random seed for sampling (0 = time-based)")
	cmd.Flags().String("config", "", "JSON file with rank parameter defaults")
	cmd.Flags().String("report", "", "Write a Markdown report to this file")
	cmd.Flags().String("render", "", "Render the link graph to this PNG file")
	cmd.Flags().Bool("save", false, "Persist the results to the run history database")
	cmd.Flags().String("data-dir", "", "Run history directory (default: XDG data home)")
	return cmd
}

func runRank(cmd *cobra.Command, args []string) error {
	source := args[0]
	config := utils.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if config, err = utils.LoadConfiguration(path); err != nil {
			return fmt.Errorf("could not load configuration: %w", err)
		}
	}
	if cmd.Flags().Changed("damping") {
		config.Damping, _ = cmd.Flags().GetFloat64("damping")
	}
	if cmd.Flags().Changed("samples") {
		config.Samples, _ = cmd.Flags().GetInt("samples")
	}
	if cmd.Flags().Changed("threshold") {
		config.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	}
	if cmd.Flags().Changed("max-iterations") {
		config.MaxIterations, _ = cmd.Flags().GetInt("max-iterations")
	}

	corpus, err := loadCorpus(source)
	if err != nil {
		return err
	}
	log.Debug("corpus loaded", "source", source, "pages", len(corpus))

	var rng *rand.Rand
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	progress := newProgress("computing ranks...")
	progress.start()
	sampled, err := pagerank.Sample(corpus, config.Damping, config.Samples, rng)
	if err != nil {
		progress.stop()
		return err
	}
	iterated, iterations, err := pagerank.IterateCapped(
		corpus, config.Damping, config.Threshold, config.MaxIterations,
	)
	progress.stop()
	if err != nil {
		return err
	}
	log.Debug("iteration converged", "passes", iterations)

	printRanks(cmd.OutOrStdout(), corpus, sampled, iterated, config.Samples)

	if path, _ := cmd.Flags().GetString("report"); path != "" {
		if err := writeReport(path, report.Result{
			Source:     source,
			Damping:    config.Damping,
			Samples:    config.Samples,
			Threshold:  config.Threshold,
			Iterations: iterations,
			Corpus:     corpus,
			Sampled:    sampled,
			Iterated:   iterated,
			Date:       time.Now(),
		}); err != nil {
			return err
		}
		log.Info("report written", "path", path)
	}
	if path, _ := cmd.Flags().GetString("render"); path != "" {
		if err := graph.Render(path, corpus, iterated); err != nil {
			return fmt.Errorf("could not render graph: %w", err)
		}
		log.Info("graph rendered", "path", path)
	}
	if save, _ := cmd.Flags().GetBool("save"); save {
		dir, _ := cmd.Flags().GetString("data-dir")
		if dir == "" {
			dir = store.DefaultDir()
		}
		id, err := saveRun(cmd, dir, source, config, iterations, corpus, sampled, iterated)
		if err != nil {
			return err
		}
		log.Info("run saved", "id", id, "dir", dir)
	}
	return nil
}

// loadCorpus builds a corpus from a directory of HTML documents or from an
// edge-list file or URL.
func loadCorpus(source string) (graph.Corpus, error) {
	if !strings.HasPrefix(source, "http") {
		if info, err := os.Stat(source); err == nil && info.IsDir() {
			return graph.Crawl(source)
		}
	}
	return graph.LoadCorpusResource(source)
}

func printRanks(w io.Writer, corpus graph.Corpus, sampled, iterated pagerank.RankMap, samples int) {
	fmt.Fprintf(w, "PageRank Results from Sampling (n = %d)\n", samples)
	for _, page := range corpus.Pages() {
		fmt.Fprintf(w, "  %s: %.4f\n", page, sampled[page])
	}
	fmt.Fprintln(w, "PageRank Results from Iteration")
	for _, page := range corpus.Pages() {
		fmt.Fprintf(w, "  %s: %.4f\n", page, iterated[page])
	}
}

func writeReport(path string, result report.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create report file: %w", err)
	}
	defer file.Close()
	return report.WriteMarkdown(file, result)
}

func saveRun(
	cmd *cobra.Command, dir, source string, config utils.Config,
	iterations int, corpus graph.Corpus, sampled, iterated pagerank.RankMap,
) (int64, error) {
	runs, err := store.Open(dir)
	if err != nil {
		return 0, err
	}
	defer runs.Close()
	return runs.SaveRun(cmd.Context(), store.Run{
		Source:     source,
		Damping:    config.Damping,
		Samples:    config.Samples,
		Threshold:  config.Threshold,
		Iterations: iterations,
		Pages:      len(corpus),
	}, sampled, iterated)
}

// progress wraps a terminal spinner that stays silent when stderr is not
// a TTY.
type progress struct {
	spinner *spinner.Spinner
}

func newProgress(suffix string) progress {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return progress{}
	}
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	return progress{spinner: s}
}

func (p progress) start() {
	if p.spinner != nil {
		p.spinner.Start()
	}
}

func (p progress) stop() {
	if p.spinner != nil {
		p.spinner.Stop()
	}
}
