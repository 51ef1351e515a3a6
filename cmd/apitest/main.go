// Command apitest runs smoke checks against a running hdate API.
//
// Usage:
//
//	go run ./cmd/apitest -url http://localhost:8080
//	API_KEY=secret go run ./cmd/apitest -v
//
// Custom-day checks write to the database and only run when an API key
// is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// result is the outcome of one check.
type result struct {
	check
	message string
	err     error
}

// Report collects the results of a run.
type Report struct {
	results []result
}

func (r *Report) Failed() []result {
	var failed []result
	for _, res := range r.results {
		if res.err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// runChecks runs checks in order, printing each result to w as it
// completes.
func runChecks(ctx context.Context, c *Client, checks []check, w io.Writer, verbose bool) *Report {
	report := &Report{}
	group := ""

	for _, chk := range checks {
		if chk.group != group {
			group = chk.group
			fmt.Fprintf(w, "\n--- %s ---\n", group)
		}

		checkCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		msg, err := chk.run(checkCtx, c)
		cancel()

		res := result{check: chk, message: msg, err: err}
		report.results = append(report.results, res)

		if err != nil {
			fmt.Fprintf(w, "  ✗ %s: %v\n", chk.name, err)
			continue
		}
		if !verbose {
			msg, _, _ = strings.Cut(msg, "\n")
		}
		fmt.Fprintf(w, "  ✓ %s → %s\n", chk.name, msg)
	}
	return report
}

func printSummary(w io.Writer, report *Report) {
	failed := report.Failed()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "==============================================")
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, "==============================================")
	fmt.Fprintf(w, "  Passed: %d\n", len(report.results)-len(failed))
	fmt.Fprintf(w, "  Failed: %d\n", len(failed))

	if len(failed) == 0 {
		fmt.Fprintln(w, "\nAll checks passed ✓")
		return
	}
	fmt.Fprintln(w, "\nFailures:")
	for _, res := range failed {
		fmt.Fprintf(w, "  • %s / %s: %v\n", res.group, res.name, res.err)
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	apiKey := flag.String("key", os.Getenv("API_KEY"), "API key; enables the custom day checks")
	verbose := flag.Bool("v", false, "Show day details")
	flag.Parse()

	ctx := context.Background()
	client := NewClient(*baseURL, *apiKey)

	if _, _, err := client.Do(ctx, "GET", "/health", nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot reach %s: %v\n", *baseURL, err)
		fmt.Fprintln(os.Stderr, "Make sure the API server is running.")
		os.Exit(1)
	}

	fmt.Println("==============================================")
	fmt.Println("Hebrew Calendar API Checks")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", *baseURL)

	report := runChecks(ctx, client, suite(*apiKey != ""), os.Stdout, *verbose)
	printSummary(os.Stdout, report)

	if len(report.Failed()) > 0 {
		os.Exit(1)
	}
}
