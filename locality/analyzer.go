package locality

import (
	"fmt"

	"github.com/katalvlaran/spacefill/grid"
	"github.com/samber/lo"
)

// MaxAnalyzerOrder is the largest order NewAnalyzer accepts. The index table
// of order 12 holds 16 Mi entries (128 MiB); each further order quadruples it.
const MaxAnalyzerOrder = 12

// Analyzer computes neighbor stretch statistics for one codec.
// The index of every cell is resolved once at construction; afterwards the
// Analyzer is read-only and safe for concurrent use.
type Analyzer struct {
	codec  Codec
	grid   *grid.Grid
	cyclic bool
	// index[y*Side+x] is the curve index of zero-based cell (x,y).
	index []uint64
	cells uint64
}

// NewAnalyzer resolves the curve index of every cell of the codec's grid.
// Returns grid.ErrInvalidOrder when the codec order exceeds MaxAnalyzerOrder.
// Complexity: O(4^n) codec calls, O(4^n) memory.
func NewAnalyzer(c Codec, opts ...Option) (*Analyzer, error) {
	if c.Order() > MaxAnalyzerOrder {
		return nil, fmt.Errorf("locality: %s: %w: got %d, analyzer limit %d",
			c.Kind(), grid.ErrInvalidOrder, c.Order(), MaxAnalyzerOrder)
	}
	cfg := newConfig(opts...)
	g, err := grid.NewGrid(c.Order(), grid.GridOptions{Conn: grid.Conn8})
	if err != nil {
		return nil, err
	}
	index := make([]uint64, g.Len())
	for k := range index {
		p := g.Coordinate(k)
		i, err := c.Index(p)
		if err != nil {
			return nil, fmt.Errorf("locality: %s order %d: %w", c.Kind(), c.Order(), err)
		}
		index[k] = i
	}
	return &Analyzer{
		codec:  c,
		grid:   g,
		cyclic: cfg.cyclic && c.Closed(),
		index:  index,
		cells:  grid.CellCount(c.Order()),
	}, nil
}

// Codec returns the analyzed codec.
func (a *Analyzer) Codec() Codec { return a.codec }

func (a *Analyzer) indexOf(p grid.Coord) uint64 {
	return a.index[p.Y*a.grid.Side+p.X]
}

// Stretch returns the index distance between two zero-based cells.
func (a *Analyzer) Stretch(p, q grid.Coord) (float64, error) {
	if !a.grid.InBounds(p.X, p.Y) || !a.grid.InBounds(q.X, q.Y) {
		return 0, fmt.Errorf("locality: %v-%v: %w", p, q, grid.ErrCoordinateOutOfRange)
	}
	return a.stretch(p, q), nil
}

func (a *Analyzer) stretch(p, q grid.Coord) float64 {
	i, j := a.indexOf(p), a.indexOf(q)
	d := i - j
	if j > i {
		d = j - i
	}
	if a.cyclic && a.cells-d < d {
		d = a.cells - d
	}
	return float64(d)
}

// NeighborStretches returns the stretch from p to each of its Chebyshev
// neighbors, in grid.ChebyshevNeighbors order.
func (a *Analyzer) NeighborStretches(p grid.Coord) ([]float64, error) {
	if !a.grid.InBounds(p.X, p.Y) {
		return nil, fmt.Errorf("locality: %v: %w", p, grid.ErrCoordinateOutOfRange)
	}
	return lo.Map(a.grid.ChebyshevNeighbors(p), func(n grid.Coord, _ int) float64 {
		return a.stretch(p, n)
	}), nil
}

// CellStretches aggregates each cell's neighbor stretches with stat.
// The result is in row-major cell order.
func (a *Analyzer) CellStretches(stat Statistic) ([]float64, error) {
	out := make([]float64, a.grid.Len())
	for k := range out {
		p := a.grid.Coordinate(k)
		ds, err := a.NeighborStretches(p)
		if err != nil {
			return nil, err
		}
		v, err := stat.apply(ds)
		if err != nil {
			return nil, fmt.Errorf("locality: cell %v: %w", p, err)
		}
		out[k] = v
	}
	return out, nil
}

// Measure aggregates CellStretches(stat) over the grid with stat.
func (a *Analyzer) Measure(stat Statistic) (float64, error) {
	per, err := a.CellStretches(stat)
	if err != nil {
		return 0, err
	}
	return stat.apply(per)
}

// AverageStretch is the mean over cells of each cell's mean neighbor stretch.
func (a *Analyzer) AverageStretch() (float64, error) {
	return a.Measure(StatMean)
}

// MedianStretch is the median over cells of each cell's median neighbor stretch.
func (a *Analyzer) MedianStretch() (float64, error) {
	return a.Measure(StatMedian)
}

// AverageStretch builds the codec for kind at order and returns its average stretch.
func AverageStretch(kind Kind, order int, opts ...Option) (float64, error) {
	a, err := analyzerFor(kind, order, opts...)
	if err != nil {
		return 0, err
	}
	return a.AverageStretch()
}

// MedianStretch builds the codec for kind at order and returns its median stretch.
func MedianStretch(kind Kind, order int, opts ...Option) (float64, error) {
	a, err := analyzerFor(kind, order, opts...)
	if err != nil {
		return 0, err
	}
	return a.MedianStretch()
}

func analyzerFor(kind Kind, order int, opts ...Option) (*Analyzer, error) {
	c, err := NewCodec(kind, order)
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(c, opts...)
}
