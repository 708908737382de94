// Command scramble prints a randomly scrambled N by N start configuration:
//
//	scramble N k
//
// k is the number of random moves applied to the goal board. The board is
// printed both as a grid and as a single row-major line suitable for feeding
// directly into solve/solve-threaded's tile arguments.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/jackr276/npuzzle-astar/puzzle"
)

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() error {
	return fmt.Errorf("usage: scramble N k")
}

func run(args []string) error {
	if len(args) != 2 {
		return usage()
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("%w: N must be a positive integer, got %q", usage(), args[0])
	}

	k, err := strconv.Atoi(args[1])
	if err != nil || k < 0 {
		return fmt.Errorf("%w: k must be a non-negative integer, got %q", usage(), args[1])
	}

	rng := rand.New(rand.NewSource(rand.Int63()))
	board := puzzle.Scramble(n, k, rng)

	fmt.Print(board.String())
	fmt.Println()
	fmt.Println(rowMajorLine(board))
	return nil
}

func rowMajorLine(b *puzzle.Board) string {
	out := fmt.Sprintf("%d", b.N)
	for _, row := range b.Tiles {
		for _, tile := range row {
			out += fmt.Sprintf(" %d", tile)
		}
	}
	return out
}
