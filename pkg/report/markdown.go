// Package report renders rank results as Markdown for sharing.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"github.com/Yqzi/HarvardCS-PageRank/pkg/graph"
	"github.com/Yqzi/HarvardCS-PageRank/pkg/pagerank"
)

// Result bundles everything one report covers.
type Result struct {
	Source     string
	Damping    float64
	Samples    int
	Threshold  float64
	Iterations int
	Corpus     graph.Corpus
	Sampled    pagerank.RankMap
	Iterated   pagerank.RankMap
	Date       time.Time
}

// WriteMarkdown renders the full rank report to w.
func WriteMarkdown(w io.Writer, r Result) error {
	md := markdown.NewMarkdown(w)

	md.H1("PageRank Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + r.Source + "`"},
			{"Pages", strconv.Itoa(len(r.Corpus))},
			{"Damping", fmt.Sprintf("%.2f", r.Damping)},
			{"Samples", strconv.Itoa(r.Samples)},
			{"Threshold", fmt.Sprintf("%g", r.Threshold)},
			{"Iterations", strconv.Itoa(r.Iterations)},
			{"Date", r.Date.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")

	writeRanks(md, "Results from Sampling", r.Corpus, r.Sampled)
	writeRanks(md, "Results from Iteration", r.Corpus, r.Iterated)

	return md.Build()
}

func writeRanks(md *markdown.Markdown, title string, corpus graph.Corpus, ranks pagerank.RankMap) {
	if ranks == nil {
		return
	}
	md.H2(title)
	md.PlainText("")
	rows := make([][]string, 0, len(ranks))
	for _, page := range corpus.Pages() {
		rows = append(rows, []string{page, fmt.Sprintf("%.4f", ranks[page])})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Page", "Rank"},
		Rows:   rows,
	})
	md.PlainText("")
}
