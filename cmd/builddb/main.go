// Command builddb builds a disjoint pattern database for an N by N puzzle
// and writes it to <N>.patterndb in the current directory:
//
//	builddb [-workers n] [-walks n] [-maxmoves n] N
//
// N must be at least 4 (the first-half/last-half split is degenerate below
// that).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jackr276/npuzzle-astar/builder"
)

var (
	workers  = flag.Int("workers", 0, "workers per subset (0 = builder.DefaultConfig default)")
	walks    = flag.Int("walks", 0, "walks per worker (0 = builder.DefaultConfig default)")
	maxMoves = flag.Int("maxmoves", 0, "max moves per reverse walk (0 = builder.DefaultConfig default)")
)

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() error {
	return fmt.Errorf("usage: builddb [-workers n] [-walks n] [-maxmoves n] N")
}

func run(args []string) error {
	if len(args) != 1 {
		return usage()
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 4 {
		return fmt.Errorf("%w: N must be an integer >= 4, got %q", usage(), args[0])
	}

	cfg := builder.DefaultConfig(n)
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *walks > 0 {
		cfg.WalksPerWorker = *walks
	}
	if *maxMoves > 0 {
		cfg.MaxMoves = *maxMoves
	}

	log.Printf("building pattern database for N=%d (workers=%d, walks/worker=%d, max moves=%d)",
		n, cfg.Workers, cfg.WalksPerWorker, cfg.MaxMoves)

	db, err := builder.Build(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("building pattern database: %w", err)
	}
	log.Printf("built %d distinct pattern entries", db.Len())

	outPath := fmt.Sprintf("%d.patterndb", n)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if err := db.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	log.Printf("wrote %s", outPath)
	return nil
}
