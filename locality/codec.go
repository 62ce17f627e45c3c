package locality

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spacefill/grid"
	"github.com/katalvlaran/spacefill/hilbert"
	"github.com/katalvlaran/spacefill/moore"
	"github.com/katalvlaran/spacefill/morton"
)

// Kind selects a curve codec.
type Kind int

const (
	// Hilbert curve.
	Hilbert Kind = iota
	// Moore curve (closed Hilbert loop).
	Moore
	// Morton (Z-order) curve.
	Morton
)

// Kinds lists every codec-backed curve.
func Kinds() []Kind {
	return []Kind{Hilbert, Moore, Morton}
}

// String returns the lower-case curve name.
func (k Kind) String() string {
	switch k {
	case Hilbert:
		return "hilbert"
	case Moore:
		return "moore"
	case Morton:
		return "morton"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind resolves a curve name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hilbert":
		return Hilbert, nil
	case "moore":
		return Moore, nil
	case "morton", "z", "zorder", "z-order":
		return Morton, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Codec converts between zero-based cells and curve indices for one curve at
// one order. Implementations are immutable and safe for concurrent use.
type Codec interface {
	Kind() Kind
	Order() int
	Index(c grid.Coord) (uint64, error)
	Coordinate(i uint64) (grid.Coord, error)
	// Closed reports whether the last index is adjacent to the first.
	Closed() bool
}

// NewCodec builds the codec for kind at order. Dispatch happens here, once.
func NewCodec(kind Kind, order int) (Codec, error) {
	switch kind {
	case Hilbert:
		c, err := hilbert.New(order)
		if err != nil {
			return nil, err
		}
		return hilbertCodec{c}, nil
	case Moore:
		c, err := moore.New(order)
		if err != nil {
			return nil, err
		}
		return mooreCodec{c}, nil
	case Morton:
		c, err := morton.New(order)
		if err != nil {
			return nil, err
		}
		return mortonCodec{c}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
}

// hilbertCodec converts zero-based cells to the centered convention.
type hilbertCodec struct{ c *hilbert.Codec }

func (h hilbertCodec) Kind() Kind                              { return Hilbert }
func (h hilbertCodec) Order() int                              { return h.c.Order() }
func (h hilbertCodec) Index(p grid.Coord) (uint64, error)      { return h.c.CoordinateToIndexZero(p) }
func (h hilbertCodec) Coordinate(i uint64) (grid.Coord, error) { return h.c.IndexToCoordinateZero(i) }
func (h hilbertCodec) Closed() bool                            { return false }

// mooreCodec converts zero-based cells to the centered convention.
type mooreCodec struct{ c *moore.Codec }

func (m mooreCodec) Kind() Kind                              { return Moore }
func (m mooreCodec) Order() int                              { return m.c.Order() }
func (m mooreCodec) Index(p grid.Coord) (uint64, error)      { return m.c.CoordinateToIndexZero(p) }
func (m mooreCodec) Coordinate(i uint64) (grid.Coord, error) { return m.c.IndexToCoordinateZero(i) }
func (m mooreCodec) Closed() bool                            { return m.c.IsClosed() }

// mortonCodec uses zero-based cells directly.
type mortonCodec struct{ c *morton.Codec }

func (m mortonCodec) Kind() Kind                              { return Morton }
func (m mortonCodec) Order() int                              { return m.c.Order() }
func (m mortonCodec) Index(p grid.Coord) (uint64, error)      { return m.c.CoordinateToIndex(p) }
func (m mortonCodec) Coordinate(i uint64) (grid.Coord, error) { return m.c.IndexToCoordinate(i) }
func (m mortonCodec) Closed() bool                            { return false }
