package graph

import "sort"

// LinkSet is the set of pages a page links to.
type LinkSet map[string]struct{}

// Corpus maps every page in the collection to the set of pages it links to.
// A corpus never contains self references or links to pages outside of it;
// both are stripped by the builders before the corpus is handed out.
type Corpus map[string]LinkSet

func New() Corpus {
	return make(Corpus)
}

// AddPage registers a page with no outgoing links (no-op if already present).
func (c Corpus) AddPage(page string) {
	if _, ok := c[page]; !ok {
		c[page] = make(LinkSet)
	}
}

// AddLink registers a link between two pages, creating both as needed.
// Self links are ignored.
func (c Corpus) AddLink(from, to string) {
	if from == to {
		return
	}
	c.AddPage(from)
	c.AddPage(to)
	c[from][to] = struct{}{}
}

// Pages returns every page name in sorted order.
// Used wherever deterministic iteration matters (sampling, output).
func (c Corpus) Pages() []string {
	pages := make([]string, 0, len(c))
	for page := range c {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}

// OutDegree returns the number of outgoing links of a page.
func (c Corpus) OutDegree(page string) int {
	return len(c[page])
}

// Links returns the outgoing links of a page in sorted order.
func (c Corpus) Links(page string) []string {
	links := make([]string, 0, len(c[page]))
	for link := range c[page] {
		links = append(links, link)
	}
	sort.Strings(links)
	return links
}

// normalize removes self references and links to pages outside the corpus
func (c Corpus) normalize() {
	for page, links := range c {
		for link := range links {
			if link == page {
				delete(links, link)
				continue
			}
			if _, ok := c[link]; !ok {
				delete(links, link)
			}
		}
	}
}
