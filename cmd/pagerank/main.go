// Package main provides the entry point for the pagerank CLI.
//
// Usage:
//
//	pagerank rank <corpus>
//	pagerank serve
//	pagerank send --api host:port <corpus>
//	pagerank watch <directory>
//
// See --help for all available options.
package main

func main() {
	Execute()
}
