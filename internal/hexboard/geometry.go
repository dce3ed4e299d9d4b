// Package hexboard implements pure, stateless hex-grid geometry over
// row/col offset coordinates. Tile identity is the string "r{row}c{col}";
// every function here takes and returns that string so callers never need
// to touch the underlying offset/cube math.
//
// Layout is even-r, pointy-top: even rows are not shifted, odd rows are
// shifted; adjacency follows the row-parity rule fixed once here and
// nowhere else in the codebase.
package hexboard

import "fmt"

// ID formats a tile identifier from row/col.
func ID(row, col int) string {
	return fmt.Sprintf("r%dc%d", row, col)
}

// Parse extracts row/col from a tile identifier. ok is false if id is
// malformed.
func Parse(id string) (row, col int, ok bool) {
	n, err := fmt.Sscanf(id, "r%dc%d", &row, &col)
	if err != nil || n != 2 {
		return 0, 0, false
	}
	return row, col, true
}

// floorDiv2 returns floor(n/2), unlike Go's truncating integer division.
func floorDiv2(n int) int {
	if n >= 0 || n%2 == 0 {
		return n / 2
	}
	return n/2 - 1
}

// cube holds cube coordinates (q + r + s == 0 always).
type cube struct{ q, r, s int }

func toCube(row, col int) cube {
	q := col - floorDiv2(row)
	r := row
	return cube{q: q, r: r, s: -q - r}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Distance converts a and b to cube coordinates and returns the Chebyshev
// cube distance between them. Malformed ids are treated as distance 0 from
// everything (callers are expected to validate tile ids against the board
// before calling).
func Distance(a, b string) int {
	ar, ac, aok := Parse(a)
	br, bc, bok := Parse(b)
	if !aok || !bok {
		return 0
	}
	ca, cb := toCube(ar, ac), toCube(br, bc)
	dq, dr, ds := abs(ca.q-cb.q), abs(ca.r-cb.r), abs(ca.s-cb.s)
	return max(dq, max(dr, ds))
}

// evenRowOffsets and oddRowOffsets are (drow, dcol) pairs, fixed by this
// grid's offset-coordinate neighbor rule: even rows use
// {(-1,-1),(-1,0),(0,-1),(0,+1),(+1,-1),(+1,0)}; odd rows use
// {(-1,0),(-1,+1),(0,-1),(0,+1),(+1,0),(+1,+1)}.
var evenRowOffsets = [6][2]int{
	{-1, -1}, {-1, 0}, {0, -1}, {0, 1}, {1, -1}, {1, 0},
}

var oddRowOffsets = [6][2]int{
	{-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, 0}, {1, 1},
}

// Adjacent returns the six immediate neighbors of a tile, applying the
// row-parity rule. The existence of those tiles on any particular board is
// not considered here; the rules engine filters against the tile map.
func Adjacent(id string) []string {
	row, col, ok := Parse(id)
	if !ok {
		return nil
	}
	offsets := evenRowOffsets
	if row%2 != 0 {
		offsets = oddRowOffsets
	}
	out := make([]string, 0, 6)
	for _, off := range offsets {
		out = append(out, ID(row+off[0], col+off[1]))
	}
	return out
}

// Neighbors returns the set of tile ids within rng hex steps of tileId,
// excluding the origin. A rng of 0 always returns an empty set. Ordering
// is not guaranteed.
func Neighbors(tileId string, rng int) []string {
	if rng <= 0 {
		return nil
	}
	visited := map[string]bool{tileId: true}
	frontier := []string{tileId}
	var result []string

	for step := 0; step < rng; step++ {
		var next []string
		for _, id := range frontier {
			for _, n := range Adjacent(id) {
				if visited[n] {
					continue
				}
				visited[n] = true
				result = append(result, n)
				next = append(next, n)
			}
		}
		frontier = next
	}
	return result
}
