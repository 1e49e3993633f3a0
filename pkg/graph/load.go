package graph

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
)

// LoadCorpusResource loads an edge-list corpus from a local path or an
// http(s) URL.
func LoadCorpusResource(resource string) (Corpus, error) {
	var bytes []byte
	var err error
	// Check if it's a network resource or a local one
	if strings.HasPrefix(resource, "http") {
		// Loading file from network
		resp, err := http.Get(resource)
		if err != nil {
			return nil, fmt.Errorf("could not load network file at %s: %w", resource, err)
		}
		defer resp.Body.Close()
		// Read response body
		bytes, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("could not load body from request: %w", err)
		}
	} else {
		// Loading file from local filesystem
		bytes, err = os.ReadFile(resource)
		if err != nil {
			return nil, fmt.Errorf("could not read corpus at %s: %w", resource, err)
		}
	}
	// Parse file contents into corpus representation
	corpus, err := LoadCorpusFromBytes(bytes)
	if err != nil {
		return nil, fmt.Errorf("could not load corpus from %s: %w", resource, err)
	}
	return corpus, nil
}

// LoadCorpusFromBytes parses an edge-list text file: one "from to" pair per
// line, `#` and `//` comment lines skipped. Page names are arbitrary strings
// without whitespace. Self links are dropped.
func LoadCorpusFromBytes(contents []byte) (Corpus, error) {
	corpus := New()
	// Split file contents in lines (based on newline delimiter)
	lines := strings.Split(strings.ReplaceAll(string(contents), "\r\n", "\n"), "\n")
	for _, line := range lines {
		from, to, skip, err := convertLine(line)
		if err != nil {
			return nil, err
		}
		// Comment or blank line -> no new link to add
		if skip {
			continue
		}
		corpus.AddLink(from, to)
	}
	return corpus, nil
}

func convertLine(line string) (string, string, bool, error) {
	line = strings.TrimSpace(line)
	// Skip comment lines
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") || line == "" {
		return "", "", true, nil
	}
	// Split line in FromPage and ToPage
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return "", "", false, fmt.Errorf("could not convert line %q: expected two pages", line)
	}
	return tokens[0], tokens[1], false, nil
}

// WriteRanks dumps a page -> rank mapping to a text file, sorted by page.
func WriteRanks(output string, ranks map[string]float64) error {
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()
	pages := make([]string, 0, len(ranks))
	for page := range ranks {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	var contents strings.Builder
	for _, page := range pages {
		fmt.Fprintf(&contents, "Page %s with rank %f\n", page, ranks[page])
	}
	_, err = file.WriteString(contents.String())
	return err
}
