package grid

// GridOptions contains tunable parameters for neighbor queries.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity for Neighbors.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn8, the Chebyshev
// neighborhood the stretch measurements are defined over.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn8}
}

// Grid is the square zero-based grid of a given order. It is immutable once
// built and safe for concurrent use.
type Grid struct {
	Order int
	Side  int
	Conn  Connectivity
	// maxCoord is Side-1, the largest valid zero-based component.
	maxCoord int
}

// NewGrid constructs the grid of side 2^order.
// Returns ErrInvalidOrder if order is outside [1, MaxOrder].
// Complexity: O(1).
func NewGrid(order int, opts GridOptions) (*Grid, error) {
	if err := ValidateOrder(order); err != nil {
		return nil, err
	}
	side := Side(order)
	return &Grid{
		Order:    order,
		Side:     side,
		Conn:     opts.Conn,
		maxCoord: side - 1,
	}, nil
}

// InBounds reports whether zero-based (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x <= g.maxCoord && y >= 0 && y <= g.maxCoord
}

// MaxCoord returns the largest valid zero-based component, Side-1.
func (g *Grid) MaxCoord() int {
	return g.maxCoord
}

// Len returns the number of cells, Side².
func (g *Grid) Len() int {
	return g.Side * g.Side
}

// index maps (x,y) to a row-major index: y*Side + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Side + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Side, Y: idx / g.Side}
}

// Cells lists every zero-based coordinate in row-major order.
// Complexity: O(Side²) time and memory.
func (g *Grid) Cells() []Coord {
	out := make([]Coord, g.Len())
	for y := 0; y < g.Side; y++ {
		for x := 0; x < g.Side; x++ {
			out[g.index(x, y)] = Coord{X: x, Y: y}
		}
	}
	return out
}

// Neighbors returns the in-bounds neighbors of zero-based c under g.Conn.
// Out-of-grid c yields nil.
func (g *Grid) Neighbors(c Coord) []Coord {
	if g.Conn == Conn8 {
		return g.ChebyshevNeighbors(c)
	}
	return g.OrthogonalNeighbors(c)
}

// ChebyshevNeighbors returns every cell at Chebyshev distance 1 from c that
// lies inside the grid: 8 for interior cells, 5 on edges, 3 in corners.
// Each offset is bounds-checked on its own so that nothing wraps around an edge.
// Complexity: O(1).
func (g *Grid) ChebyshevNeighbors(c Coord) []Coord {
	x, y, m := c.X, c.Y, g.maxCoord
	if !g.InBounds(x, y) {
		return nil
	}
	out := make([]Coord, 0, 8)
	if x > 0 && x < m && y > 0 && y < m {
		// Interior: all eight are valid.
		return append(out,
			Coord{x - 1, y - 1}, Coord{x - 1, y}, Coord{x, y - 1}, Coord{x + 1, y - 1},
			Coord{x + 1, y}, Coord{x - 1, y + 1}, Coord{x, y + 1}, Coord{x + 1, y + 1},
		)
	}
	if x > 0 && y > 0 {
		out = append(out, Coord{x - 1, y - 1})
	}
	if x > 0 {
		out = append(out, Coord{x - 1, y})
	}
	if y > 0 {
		out = append(out, Coord{x, y - 1})
	}
	if x < m && y > 0 {
		out = append(out, Coord{x + 1, y - 1})
	}
	if x < m {
		out = append(out, Coord{x + 1, y})
	}
	if x > 0 && y < m {
		out = append(out, Coord{x - 1, y + 1})
	}
	if y < m {
		out = append(out, Coord{x, y + 1})
	}
	if x < m && y < m {
		out = append(out, Coord{x + 1, y + 1})
	}
	return out
}

// OrthogonalNeighbors returns the in-bounds N, E, S, W neighbors of c.
// Complexity: O(1).
func (g *Grid) OrthogonalNeighbors(c Coord) []Coord {
	x, y, m := c.X, c.Y, g.maxCoord
	if !g.InBounds(x, y) {
		return nil
	}
	out := make([]Coord, 0, 4)
	if y > 0 {
		out = append(out, Coord{x, y - 1})
	}
	if x < m {
		out = append(out, Coord{x + 1, y})
	}
	if y < m {
		out = append(out, Coord{x, y + 1})
	}
	if x > 0 {
		out = append(out, Coord{x - 1, y})
	}
	return out
}

// Adjacent reports whether a and b are distinct cells within distance 1
// under the given connectivity. Bounds are not checked.
func Adjacent(a, b Coord, conn Connectivity) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if conn == Conn8 {
		return max(dx, dy) == 1
	}
	return dx+dy == 1
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
