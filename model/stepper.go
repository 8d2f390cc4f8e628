package model

import "github.com/sheikhrachel/go-bitgol/rules"

// neighborOffsets lists the eight (dRow, dCol) steps around a cell
var neighborOffsets = [rules.MaxNeighbors][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NeighborCount returns how many of the eight toroidal neighbors of (row, col) are alive
func NeighborCount(cur Register, row, col int, d Dims) (count int) {
	for _, off := range neighborOffsets {
		if cur.Alive(row+off[0], col+off[1], d) {
			count++
		}
	}
	return
}

// Step computes the next generation from cur. It does not modify cur.
func Step(cur Register, d Dims) Register {
	var next Register

	for r := range int(d.Rows) {
		for c := range int(d.Cols) {
			pos := BitPos(r, c, d)
			if rules.ApplyConwayRules(NeighborCount(cur, r, c, d), cur.Test(pos, d)) {
				next = next.Set(pos, d)
			}
		}
	}

	return next
}
