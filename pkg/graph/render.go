package graph

import (
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// Render draws the link graph to a PNG file. When ranks is non-nil, every
// node is labelled with its rank value.
func Render(output string, corpus Corpus, ranks map[string]float64) error {
	g := graphviz.New()
	viz, err := g.Graph()
	if err != nil {
		return fmt.Errorf("could not create graphviz graph: %w", err)
	}
	defer func() {
		viz.Close()
		g.Close()
	}()
	nodes := make(map[string]*cgraph.Node, len(corpus))
	for _, page := range corpus.Pages() {
		node, err := viz.CreateNode(page)
		if err != nil {
			return fmt.Errorf("could not create node %s: %w", page, err)
		}
		if rank, ok := ranks[page]; ok {
			node.SetLabel(fmt.Sprintf("%s\n%.4f", page, rank))
		}
		nodes[page] = node
	}
	for _, page := range corpus.Pages() {
		for _, link := range corpus.Links(page) {
			if _, err := viz.CreateEdge("", nodes[page], nodes[link]); err != nil {
				return fmt.Errorf("could not create edge %s -> %s: %w", page, link, err)
			}
		}
	}
	return g.RenderFilename(viz, graphviz.PNG, output)
}
