// Command reindeer solves a reindeer maze puzzle input.
//
// Usage:
//
//	reindeer -f input.txt        solve a puzzle input file
//	reindeer -test               solve the built-in sample and check the answers
//	reindeer -f input.txt -v     also print the maze and log every trial
//
// Part I prints the lowest score from S to E. Part II prints how many tiles
// lie on at least one lowest-score route.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/vyevs/vtools"

	"github.com/katalvlaran/reindeer/besttiles"
	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/grid"
	"github.com/katalvlaran/reindeer/internal/testmaze"
)

func main() {
	defer vtools.TimeIt(time.Now(), "everything")

	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("reindeer failed", "err", err)
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	file    string
	test    bool
	verbose bool
	method  string
	color   bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("reindeer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.file, "f", "", "puzzle input file")
	fs.BoolVar(&cfg.test, "test", false, "solve the built-in sample and check the answers")
	fs.BoolVar(&cfg.verbose, "v", false, "print the maze and log perturbation trials")
	fs.StringVar(&cfg.method, "method", "exact", `best-tile strategy: "exact" or "perturb"`)
	fs.BoolVar(&cfg.color, "color", false, "colour the maze printout")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if !cfg.test && cfg.file == "" {
		return cfg, errors.New("file or test must be specified")
	}
	if cfg.method != "exact" && cfg.method != "perturb" {
		return cfg, fmt.Errorf("unknown method %q", cfg.method)
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	text := testmaze.Sample
	if !cfg.test {
		raw, err := os.ReadFile(cfg.file)
		if err != nil {
			return err
		}
		text = string(raw)
	}

	partDivider(stdout, "Part I")
	start := time.Now()
	g, err := grid.Parse(text)
	if err != nil {
		return err
	}
	if cfg.verbose {
		fmt.Fprintf(stdout, "Maze:\n%s\n\n\n", render(g, nil, cfg.color))
	}
	res, err := dijkstra.Search(g)
	if err != nil {
		return err
	}
	lowest, ok := res.Cost(g.End())
	if !ok {
		_, walls, berr := grid.Breach(g, g.Start(), g.End())
		if berr != nil {
			return berr
		}
		fmt.Fprintf(stdout, "No path exists: at least %d wall(s) separate S from E\n", walls)
		return fmt.Errorf("%w: %v", dijkstra.ErrUnreachable, g.End())
	}
	fmt.Fprintf(stdout, "The lowest score for the Reindeer Maze is (%d)\n", lowest)
	fmt.Fprintf(stdout, "Took %.3f[s] to run.\n", time.Since(start).Seconds())
	if cfg.test && lowest != testmaze.SampleCost {
		return fmt.Errorf("the lowest score didn't match expected (%d)", testmaze.SampleCost)
	}

	partDivider(stdout, "Part II")
	start = time.Now()
	opts := besttiles.Options{Ctx: ctx, Verbose: cfg.verbose, Logger: logger}
	var tiles besttiles.Set
	if cfg.method == "perturb" {
		tiles, err = besttiles.Perturb(g, opts)
	} else {
		tiles, err = besttiles.Exact(g, opts)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "There are (%d) best tiles to choose from\n", tiles.Len())
	fmt.Fprintf(stdout, "Took %.3f[s] to run.\n", time.Since(start).Seconds())
	if cfg.verbose {
		fmt.Fprintf(stdout, "\n%s\n", render(g, tiles, cfg.color))
	}
	if cfg.test && cfg.method == "exact" && tiles.Len() != testmaze.SampleTiles {
		return fmt.Errorf("the number of best tiles didn't match expected (%d)", testmaze.SampleTiles)
	}

	return nil
}

// partDivider prints a blank line and the part title centred in dashes.
func partDivider(w io.Writer, part string) {
	const width = 50
	title := " " + part + " "
	left := (width - len(title)) / 2
	right := width - len(title) - left
	fmt.Fprintf(w, "\n%s%s%s\n", strings.Repeat("-", left), title, strings.Repeat("-", right))
}
