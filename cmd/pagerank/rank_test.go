package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCorpusDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"1.html": `<html><body><a href="2.html">two</a></body></html>`,
		"2.html": `<html><body><a href="1.html">one</a></body></html>`,
	}
	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// TestRankCmd tests the rank command end to end on a small corpus.
func TestRankCmd(t *testing.T) {
	t.Parallel()

	t.Run("ranks an HTML directory", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpusDir(t)
		var out bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"rank", dir, "--samples", "500", "--seed", "1"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := out.String()
		if !strings.Contains(got, "PageRank Results from Sampling (n = 500)") {
			t.Errorf("missing sampling header in output:\n%s", got)
		}
		if !strings.Contains(got, "PageRank Results from Iteration") {
			t.Errorf("missing iteration header in output:\n%s", got)
		}
		// Symmetric two-page cycle -> both close to a half
		if !strings.Contains(got, "1.html: 0.5") {
			t.Errorf("expected 1.html near 0.5 in output:\n%s", got)
		}
	})

	t.Run("ranks an edge-list file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "corpus.txt")
		if err := os.WriteFile(path, []byte("A B\nB A\n"), 0600); err != nil {
			t.Fatal(err)
		}
		var out bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"rank", path, "--samples", "200"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "A: 0.5") {
			t.Errorf("expected A near 0.5 in output:\n%s", out.String())
		}
	})

	t.Run("writes a report and saves the run", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpusDir(t)
		reportPath := filepath.Join(t.TempDir(), "report.md")
		dataDir := t.TempDir()
		var out bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{
			"rank", dir,
			"--samples", "200",
			"--report", reportPath,
			"--save", "--data-dir", dataDir,
		})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		contents, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatalf("report was not written: %v", err)
		}
		if !strings.Contains(string(contents), "# PageRank Report") {
			t.Error("report is missing its header")
		}
		if _, err := os.Stat(filepath.Join(dataDir, "pagerank.db")); err != nil {
			t.Errorf("run database was not created: %v", err)
		}
	})

	t.Run("missing corpus", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"rank", filepath.Join(t.TempDir(), "nope")})
		if err := cmd.Execute(); err == nil {
			t.Error("expected an error for a missing corpus")
		}
	})
}

// TestRootCmd tests command registration.
func TestRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	for _, name := range []string{"rank", "serve", "send", "watch", "version"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}
