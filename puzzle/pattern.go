package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PatternType distinguishes the two disjoint tile subsets a pattern
// database is built over.
type PatternType int

const (
	// FirstHalf covers tiles 1..N*N/2.
	FirstHalf PatternType = 0
	// LastHalf covers tiles N*N/2+1..N*N-1. The blank is never encoded.
	LastHalf PatternType = 1
)

func (t PatternType) String() string {
	if t == FirstHalf {
		return "first-half"
	}
	return "last-half"
}

// PatternLength returns the fixed length of a pattern's Positions array for
// an N by N board: N*N/2 for FirstHalf, N*N-1-N*N/2 for LastHalf. The two
// counts only coincide (half, half-1) when N*N is even; for odd N*N (the
// classic 8-puzzle, N=3, included) integer division rounds half down, so
// LastHalf must use N*N-1-half rather than half-1 to cover every non-zero
// tile above the split.
func PatternLength(n int, t PatternType) int {
	half := n * n / 2
	if t == FirstHalf {
		return half
	}
	return n*n - 1 - half
}

// PatternEntry is one (pattern_type, cost, positions) record, either read
// from a pattern-database file or produced during a builder walk. Positions
// is a positional encoding: Positions[i] is the linear board index the
// pattern's i-th tile currently occupies.
type PatternEntry struct {
	Type      PatternType
	Cost      int
	Positions []int16
}

// patternsEqual reports whether two positions arrays of the same pattern
// type are an exact match.
func patternsEqual(a, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Pattern translates board into a partial pattern of the given type: for
// each non-zero tile v, if v <= N*N/2 write (v-1 -> i*N+j) into the
// FirstHalf positions array, else write (v-N*N/2-1 -> i*N+j) into LastHalf.
// Tiles outside the requested subset have no slot in the array. The array
// is allocated zero-filled, so any slot not written (possible only for a
// board that is not a valid permutation) holds 0, resolving the "zero-fill
// vs uninitialized" ambiguity the original C drafts left open.
func (b *Board) Pattern(t PatternType) PatternEntry {
	n := b.N
	half := n * n / 2
	length := PatternLength(n, t)
	positions := make([]int16, length)

	for i, row := range b.Tiles {
		for j, tile := range row {
			if tile == 0 {
				continue
			}
			linear := int16(i*n + j)
			switch {
			case t == FirstHalf && int(tile) <= half:
				positions[tile-1] = linear
			case t == LastHalf && int(tile) > half:
				positions[int(tile)-half-1] = linear
			}
		}
	}
	return PatternEntry{Type: t, Positions: positions}
}

// PatternDB is the in-memory disjoint pattern database: one slice of
// entries per subset, each scanned linearly for a match. Two entries in the
// same subset never share a Positions array; Insert keeps whichever cost is
// lower.
type PatternDB struct {
	N         int
	firstHalf []PatternEntry
	lastHalf  []PatternEntry

	hits int
}

// NewPatternDB returns an empty database for an N by N puzzle.
func NewPatternDB(n int) *PatternDB {
	return &PatternDB{N: n}
}

func (db *PatternDB) entries(t PatternType) []PatternEntry {
	if t == FirstHalf {
		return db.firstHalf
	}
	return db.lastHalf
}

// Insert records (pattern positions, cost). If an identical positions array
// already exists for that subset, the stored cost is lowered when cost is
// smaller and the new entry is otherwise discarded; this is not
// synchronized and is not safe for concurrent use (see builder.Build for
// the mutex-guarded variant used during database construction).
func (db *PatternDB) Insert(entry PatternEntry) {
	list := &db.firstHalf
	if entry.Type == LastHalf {
		list = &db.lastHalf
	}
	for i := range *list {
		if patternsEqual((*list)[i].Positions, entry.Positions) {
			if entry.Cost < (*list)[i].Cost {
				(*list)[i].Cost = entry.Cost
			}
			return
		}
	}
	*list = append(*list, entry)
}

// Lookup translates board into a FirstHalf and a LastHalf pattern and
// returns the sum of the minimum recorded cost for each (0 for a pattern
// with no match). The two subsets are disjoint on tile indices, so their
// costs are additive and the sum remains a lower bound on
// remaining moves (so long as the stored costs themselves are admissible;
// see the builder package doc comment for the caveat this implementation
// inherits from using random reverse walks instead of BFS enumeration).
func (db *PatternDB) Lookup(b *Board) int {
	if db == nil {
		return 0
	}
	first := b.Pattern(FirstHalf)
	last := b.Pattern(LastHalf)
	return db.costOf(first) + db.costOf(last)
}

func (db *PatternDB) costOf(entry PatternEntry) int {
	for _, cand := range db.entries(entry.Type) {
		if patternsEqual(cand.Positions, entry.Positions) {
			db.hits++
			return cand.Cost
		}
	}
	return 0
}

// Hits reports how many pattern lookups (across both subsets) found a
// matching entry since the database was loaded, mirroring
// solve_pattern_db.c's num_database_hits counter.
func (db *PatternDB) Hits() int { return db.hits }

// Len reports the total number of entries across both subsets.
func (db *PatternDB) Len() int { return len(db.firstHalf) + len(db.lastHalf) }

// WriteTo serializes the database as one entry per line,
// "<pattern_type> <cost> <p0> <p1> ... <p_{L-1})", fields space-separated,
// FirstHalf entries then LastHalf entries.
func (db *PatternDB) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, list := range [][]PatternEntry{db.firstHalf, db.lastHalf} {
		for _, entry := range list {
			if err := writeEntry(bw, entry); err != nil {
				return fmt.Errorf("writing pattern database entry: %w", err)
			}
		}
	}
	return bw.Flush()
}

func writeEntry(w *bufio.Writer, entry PatternEntry) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d", entry.Type, entry.Cost)
	for _, p := range entry.Positions {
		fmt.Fprintf(&sb, " %d", p)
	}
	sb.WriteByte('\n')
	_, err := w.WriteString(sb.String())
	return err
}

// LoadPatternDB reads a pattern-database file in the format written by
// WriteTo. A truncated line or a field-count mismatch is a malformed-database
// error: readers must fail loudly rather than silently skip a bad line.
func LoadPatternDB(n int, r io.Reader) (*PatternDB, error) {
	db := NewPatternDB(n)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r\n")
		if line == "" {
			continue
		}
		entry, err := parsePatternLine(n, line)
		if err != nil {
			return nil, fmt.Errorf("pattern database malformed at line %d: %w", lineNo, err)
		}
		db.Insert(entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading pattern database: %w", err)
	}
	return db, nil
}

func parsePatternLine(n int, line string) (PatternEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return PatternEntry{}, fmt.Errorf("expected at least 2 fields, got %d", len(fields))
	}

	typeVal, err := strconv.Atoi(fields[0])
	if err != nil || (typeVal != 0 && typeVal != 1) {
		return PatternEntry{}, fmt.Errorf("invalid pattern_type field %q", fields[0])
	}
	patternType := PatternType(typeVal)

	cost, err := strconv.Atoi(fields[1])
	if err != nil || cost < 0 {
		return PatternEntry{}, fmt.Errorf("invalid cost field %q", fields[1])
	}

	wantLen := PatternLength(n, patternType)
	positionFields := fields[2:]
	if len(positionFields) != wantLen {
		return PatternEntry{}, fmt.Errorf("expected %d position fields for %s, got %d",
			wantLen, patternType, len(positionFields))
	}

	positions := make([]int16, wantLen)
	for i, f := range positionFields {
		p, err := strconv.Atoi(f)
		if err != nil {
			return PatternEntry{}, fmt.Errorf("invalid position field %q: %w", f, err)
		}
		positions[i] = int16(p)
	}

	return PatternEntry{Type: patternType, Cost: cost, Positions: positions}, nil
}
