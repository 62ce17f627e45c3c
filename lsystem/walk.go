package lsystem

import (
	"strings"

	"github.com/katalvlaran/spacefill/grid"
)

// headings in counter-clockwise order, starting north (+Y).
var headings = [4]grid.Coord{
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: 0},
}

// Walk interprets instructions as a 90° turtle on the integer lattice.
// The turtle starts at (0,0) facing +Y; each rune in forward moves it one
// cell, '+' turns left, '-' turns right, and anything else is ignored.
// The returned path includes the start cell.
func Walk(instructions, forward string) []grid.Coord {
	pos := grid.Coord{}
	dir := 0
	path := []grid.Coord{pos}
	for _, r := range instructions {
		switch {
		case r == '+':
			dir = (dir + 1) % 4
		case r == '-':
			dir = (dir + 3) % 4
		case strings.ContainsRune(forward, r):
			h := headings[dir]
			pos = grid.Coord{X: pos.X + h.X, Y: pos.Y + h.Y}
			path = append(path, pos)
		}
	}
	return path
}
