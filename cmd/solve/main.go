// Command solve runs the single-threaded A* solver against a start
// configuration given on the command line:
//
//	solve [-patterndb path] [-cache-dir dir] N t0 t1 ... t_{N*N-1}
//
// N is the puzzle's row/column count; the remaining arguments are N*N
// distinct integers in [0, N*N-1], in row-major order, with 0 denoting the
// blank. Exit status is 0 on a solution found or "No solution.", 1 on an
// argument error.
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
	"github.com/jackr276/npuzzle-astar/resultcache"
)

var (
	patternDBPath = flag.String("patterndb", "", "path to a <N>.patterndb file built by builddb (optional)")
	cacheDir      = flag.String("cache-dir", "", "directory for memoizing solved configurations (optional)")
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
	return fmt.Errorf("usage: solve [-patterndb path] [-cache-dir dir] N t0 t1 ... t_{N*N-1}")
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
		db, err = loadPatternDB(n, *patternDBPath)
		if err != nil {
			return err
		}
	}

	var cache *resultcache.Cache
	if *cacheDir != "" {
		cache, err = resultcache.Open(*cacheDir)
		if err != nil {
			return fmt.Errorf("opening result cache: %w", err)
		}
		defer cache.Close()
	}

	fmt.Println("\nInitial state")
	fmt.Print(start.String())
	goal := puzzle.NewGoalBoard(n)
	fmt.Println("Goal state")
	fmt.Print(goal.String())

	if cache != nil {
		if cached, ok, err := cache.Get(start); err != nil {
			log.Printf("result cache lookup failed, solving anyway: %v", err)
		} else if ok {
			printCachedResult(cached)
			return nil
		}
	}

	search := puzzle.NewSearch(n, db)
	path, stats, err := search.Solve(context.Background(), start)
	if err == puzzle.ErrNoSolution {
		fmt.Println("No solution.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	printSolution(path, stats)

	if cache != nil {
		result := resultcache.ResultFromStats(path, stats)
		if err := cache.Put(start, result); err != nil {
			log.Printf("failed to write result cache: %v", err)
		}
	}

	return nil
}

func loadPatternDB(n int, path string) (*puzzle.PatternDB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pattern database %s not found: %w", path, err)
	}
	defer f.Close()

	db, err := puzzle.LoadPatternDB(n, f)
	if err != nil {
		return nil, fmt.Errorf("loading pattern database %s: %w", path, err)
	}
	fmt.Printf("\nSuccessfully loaded %d patterns into memory\n", db.Len())
	return db, nil
}

func printSolution(path []*puzzle.State, stats puzzle.Stats) {
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
}

func printCachedResult(result resultcache.Result) {
	fmt.Println("\nSolution found (from cache)!")
	fmt.Printf("Path Length: %d\n\n", result.PathLength)
	for i, move := range result.Moves {
		fmt.Printf("%d. %s\n", i+1, move)
	}
	fmt.Println()
	fmt.Println("------------- Program Running Statistics -------------")
	fmt.Println()
	fmt.Printf("Optimal solution path length: %d\n", result.PathLength)
	fmt.Printf("Unique configurations generated by solver: %d\n", result.UniqueStates)
	if result.DatabaseHits > 0 {
		fmt.Printf("Pattern database hits: %d\n", result.DatabaseHits)
	}
	fmt.Printf("Memory consumed: %.2f MB\n", float64(result.ApproxMemoryBytes)/1048576.0)
	fmt.Printf("Total CPU time spent (original run): %.7f seconds\n\n", result.CPUTime.Seconds())
	fmt.Println("------------------------------------------------------")
}
