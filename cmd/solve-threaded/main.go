// Command solve-threaded is the threaded-successor-expansion variant of the
// solver: the same CLI (without -cache-dir) and output as solve, but each node's four
// successors are generated across four goroutines joined with errgroup
// instead of serially.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"

	"github.com/jackr276/npuzzle-astar/puzzle"
)

var (
	patternDBPath = flag.String("patterndb", "", "path to a <N>.patterndb file built by builddb (optional)")
	cpuProfile    = flag.String("cpuprofile", "", "write cpu profile to file")
	memProfile    = flag.String("memprofile", "", "write memory profile to file")
)

func main() {
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}
	defer func() {
		if *memProfile == "" {
			return
		}
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal("could not create memory profile: ", err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}()

	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() error {
	return fmt.Errorf("usage: solve-threaded [-patterndb path] N t0 t1 ... t_{N*N-1}")
}

func run(args []string) error {
	if len(args) < 1 {
		return usage()
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("%w: N must be a positive integer, got %q", usage(), args[0])
	}

	tileArgs := args[1:]
	if len(tileArgs) != n*n {
		return fmt.Errorf("%w: expected %d tiles for N=%d, got %d", usage(), n*n, n, len(tileArgs))
	}

	tiles := make([]int16, len(tileArgs))
	for i, a := range tileArgs {
		v, err := strconv.Atoi(a)
		if err != nil || v < 0 || v >= n*n {
			return fmt.Errorf("tile %d is not a valid integer in [0, %d): %q", i, n*n, a)
		}
		tiles[i] = int16(v)
	}

	start, err := puzzle.NewBoardFromRowMajor(n, tiles)
	if err != nil {
		return fmt.Errorf("building start configuration: %w", err)
	}
	if err := start.Validate(); err != nil {
		return fmt.Errorf("invalid start configuration: %w", err)
	}

	var db *puzzle.PatternDB
	if *patternDBPath != "" {
		f, err := os.Open(*patternDBPath)
		if err != nil {
			return fmt.Errorf("pattern database %s not found: %w", *patternDBPath, err)
		}
		defer f.Close()
		db, err = puzzle.LoadPatternDB(n, f)
		if err != nil {
			return fmt.Errorf("loading pattern database %s: %w", *patternDBPath, err)
		}
		fmt.Printf("\nSuccessfully loaded %d patterns into memory\n", db.Len())
	}

	fmt.Println("\nInitial state")
	fmt.Print(start.String())
	goal := puzzle.NewGoalBoard(n)
	fmt.Println("Goal state")
	fmt.Print(goal.String())

	search := puzzle.NewSearch(n, db)
	path, stats, err := search.SolveThreaded(context.Background(), start)
	if err == puzzle.ErrNoSolution {
		fmt.Println("No solution.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Println("\nSolution found! Now displaying solution path")
	fmt.Printf("Path Length: %d\n\n", stats.PathLength)
	for _, s := range path {
		fmt.Print(s.Board.String())
		fmt.Println()
	}

	fmt.Println("------------- Program Running Statistics -------------")
	fmt.Println()
	fmt.Printf("Optimal solution path length: %d\n", stats.PathLength)
	fmt.Printf("Unique configurations generated by solver: %d\n", stats.UniqueStates)
	if stats.DatabaseHits > 0 {
		fmt.Printf("Pattern database hits: %d\n", stats.DatabaseHits)
	}
	fmt.Printf("Memory consumed: %.2f MB\n", float64(stats.ApproxMemoryBytes)/1048576.0)
	fmt.Printf("Total CPU time spent: %.7f seconds\n\n", stats.CPUTime.Seconds())
	fmt.Println("------------------------------------------------------")

	return nil
}
