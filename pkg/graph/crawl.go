package graph

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Crawl builds a corpus from a directory of HTML documents.
// Every .html file becomes a page (keyed by file name) and every
// <a href="..."> inside it becomes a candidate link. Links to pages
// that are not part of the directory and self links are dropped.
func Crawl(dir string) (Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read corpus directory %s: %w", dir, err)
	}
	corpus := New()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		file, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not open %s: %w", entry.Name(), err)
		}
		links, err := extractLinks(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", entry.Name(), err)
		}
		corpus.AddPage(entry.Name())
		for _, link := range links {
			corpus[entry.Name()][link] = struct{}{}
		}
	}
	// Only keep links to other pages in the corpus
	corpus.normalize()
	return corpus, nil
}

// extractLinks collects every href attribute of every anchor element.
// A proper HTML parser handles malformed markup a regex would choke on.
func extractLinks(r *os.File) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	var links []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && attr.Val != "" {
					links = append(links, attr.Val)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return links, nil
}
