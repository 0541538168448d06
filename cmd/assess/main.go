// Command assess runs a single rooftop rainwater-harvesting feasibility
// assessment offline. It reads a site JSON payload from a file or stdin,
// evaluates it with the same pipeline the service uses (supplied rainfall or
// the default, no network lookups), and prints the assessment JSON.
//
// Usage:
//
//	go run ./cmd/assess -input site.json
//	echo '{"dwellers":5,"roof_area":100,"rainfall_mm":800}' | go run ./cmd/assess
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hydranaut/rtrwh-assessment/internal/domain"
)

func main() {
	input := flag.String("input", "-", "path to the site JSON payload, or - for stdin")
	rainfall := flag.String("rainfall", "", "annual rainfall in mm, overriding the payload")
	flag.Parse()

	os.Exit(run(*input, *rainfall))
}

func run(inputPath, rainfall string) int {
	data, err := readInput(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		return 1
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil || payload == nil {
		fmt.Fprintln(os.Stderr, "Invalid JSON input")
		return 1
	}

	if rainfall != "" {
		payload["rainfall_mm"] = rainfall
	}

	site, err := domain.ParseSiteInput(payload)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	mm, _ := domain.ResolveRainfall(context.Background(), site, nil, logger)
	result := domain.BuildAssessment(site, mm)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		return 1
	}
	out = append(out, '\n')
	os.Stdout.Write(out) //nolint:errcheck // best-effort stdout write

	return 0
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
