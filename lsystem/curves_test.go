package lsystem_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/spacefill/grid"
	"github.com/katalvlaran/spacefill/lsystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pow(b, e uint64) uint64 {
	r := uint64(1)
	for ; e > 0; e-- {
		r *= b
	}
	return r
}

// TestGrammarLengths_ClosedForm compares each grammar's expansion length with
// the count derived from its rule branching factors, for g = 0..4.
//
//	Hilbert: 4^g non-terminals, 4^g-1 F, 4(4^g-1)/3 turns.
//	Moore:   4·4^g non-terminals, 4^(g+1)-1 F, 2+16(4^g-1)/3 turns.
//	Gosper:  7^g letters, 4(7^g-1)/3 turns.
//	Dragon:  2^g letters, 2^g-1 turns.
func TestGrammarLengths_ClosedForm(t *testing.T) {
	cases := []struct {
		v     lsystem.Variant
		total func(g uint64) uint64
		drawn func(g uint64) uint64
	}{
		{
			lsystem.Hilbert,
			func(g uint64) uint64 { p := pow(4, g); return p + (p - 1) + 4*(p-1)/3 },
			func(g uint64) uint64 { p := pow(4, g); return (p - 1) + 4*(p-1)/3 },
		},
		{
			lsystem.Moore,
			func(g uint64) uint64 { p := pow(4, g); return 4*p + (4*p - 1) + 2 + 16*(p-1)/3 },
			func(g uint64) uint64 { p := pow(4, g); return (4*p - 1) + 2 + 16*(p-1)/3 },
		},
		{
			lsystem.Gosper,
			func(g uint64) uint64 { p := pow(7, g); return p + 4*(p-1)/3 },
			func(g uint64) uint64 { p := pow(7, g); return p + 4*(p-1)/3 },
		},
		{
			lsystem.Dragon,
			func(g uint64) uint64 { return pow(2, g+1) - 1 },
			func(g uint64) uint64 { return pow(2, g+1) - 1 },
		},
	}
	for _, tc := range cases {
		t.Run(tc.v.String(), func(t *testing.T) {
			e, err := tc.v.Engine()
			require.NoError(t, err)
			for g := 0; g <= 4; g++ {
				s, err := e.Expand(g)
				require.NoError(t, err)
				assert.Equal(t, tc.total(uint64(g)), uint64(len(s)), "generation %d", g)
				assert.Equal(t, tc.drawn(uint64(g)), uint64(len(e.FilterForDrawing(s))), "generation %d filtered", g)
			}
		})
	}
}

// TestVariant_Literals pins the first generation of each grammar.
func TestVariant_Literals(t *testing.T) {
	cases := []struct {
		v    lsystem.Variant
		gen1 string
	}{
		{lsystem.Hilbert, "+RF-LFL-FR+"},
		{lsystem.Moore, "-RF+LFL+FR-F-RF+LFL+FR-+F+-RF+LFL+FR-F-RF+LFL+FR-"},
		{lsystem.Gosper, "A-B--B+A++AA+B-"},
		{lsystem.Dragon, "F+G"},
	}
	for _, tc := range cases {
		e, err := tc.v.Engine()
		require.NoError(t, err)
		s, err := e.Expand(1)
		require.NoError(t, err)
		assert.Equal(t, tc.gen1, s, tc.v.String())
	}
}

// TestVariant_Metadata checks names, turn angles and forward symbols.
func TestVariant_Metadata(t *testing.T) {
	assert.Equal(t, "hilbert", lsystem.Hilbert.String())
	assert.Equal(t, "Variant(9)", lsystem.Variant(9).String())
	assert.Equal(t, 90, lsystem.Hilbert.TurnAngle())
	assert.Equal(t, 90, lsystem.Moore.TurnAngle())
	assert.Equal(t, 90, lsystem.Dragon.TurnAngle())
	assert.Equal(t, 60, lsystem.Gosper.TurnAngle())
	assert.Equal(t, "AB", lsystem.Gosper.ForwardSymbols())

	_, _, _, err := lsystem.Variant(9).Grammar()
	assert.ErrorIs(t, err, lsystem.ErrUnknownVariant)
	_, err = lsystem.NewCurve(lsystem.Variant(9), 2)
	assert.ErrorIs(t, err, lsystem.ErrUnknownVariant)
}

// TestNewCurve_InvalidOrder rejects non-positive orders.
func TestNewCurve_InvalidOrder(t *testing.T) {
	_, err := lsystem.NewCurve(lsystem.Hilbert, 0)
	assert.ErrorIs(t, err, grid.ErrInvalidOrder)
	_, err = lsystem.NewCurve(lsystem.Moore, -2)
	assert.ErrorIs(t, err, grid.ErrInvalidOrder)
}

// TestMoore_GenerationOffset: an order-1 Moore curve is the axiom alone.
func TestMoore_GenerationOffset(t *testing.T) {
	c, err := lsystem.NewCurve(lsystem.Moore, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Generations())
	s, err := c.GenerateInstructionString()
	require.NoError(t, err)
	assert.Equal(t, "LFL+F+LFL", s)
	d, err := c.Instructions()
	require.NoError(t, err)
	assert.Equal(t, "F+F+F", d)

	h, err := lsystem.NewCurve(lsystem.Hilbert, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Generations())
}

// TestForwardCount: Hilbert and Moore of order n draw 4^n - 1 steps.
func TestForwardCount(t *testing.T) {
	for _, v := range []lsystem.Variant{lsystem.Hilbert, lsystem.Moore} {
		for order := 1; order <= 6; order++ {
			c, err := lsystem.NewCurve(v, order)
			require.NoError(t, err)
			s, err := c.Instructions()
			require.NoError(t, err)
			assert.Equal(t, int(grid.CellCount(order))-1, strings.Count(s, "F"), "%s order %d", v, order)
			assert.NotContains(t, s, "L")
			assert.NotContains(t, s, "R")
		}
	}
}

// TestWalk_CoversGrid: the lattice walk of Hilbert and Moore visits every
// cell of a 2^n square exactly once with unit steps.
func TestWalk_CoversGrid(t *testing.T) {
	for _, v := range []lsystem.Variant{lsystem.Hilbert, lsystem.Moore} {
		for order := 1; order <= 6; order++ {
			c, err := lsystem.NewCurve(v, order)
			require.NoError(t, err)
			path, err := c.Walk()
			require.NoError(t, err)
			require.Len(t, path, int(grid.CellCount(order)))

			seen := make(map[grid.Coord]bool, len(path))
			minX, minY, maxX, maxY := 0, 0, 0, 0
			for i, p := range path {
				require.False(t, seen[p], "%s order %d: %v revisited", v, order, p)
				seen[p] = true
				if i > 0 {
					require.True(t, grid.Adjacent(path[i-1], p, grid.Conn4))
				}
				minX, maxX = min(minX, p.X), max(maxX, p.X)
				minY, maxY = min(minY, p.Y), max(maxY, p.Y)
			}
			assert.Equal(t, grid.Side(order)-1, maxX-minX, "%s order %d width", v, order)
			assert.Equal(t, grid.Side(order)-1, maxY-minY, "%s order %d height", v, order)
		}
	}
}

// TestWalk_MooreClosed: the Moore walk ends next to where it began.
func TestWalk_MooreClosed(t *testing.T) {
	for order := 1; order <= 5; order++ {
		c, err := lsystem.NewCurve(lsystem.Moore, order)
		require.NoError(t, err)
		path, err := c.Walk()
		require.NoError(t, err)
		assert.True(t, grid.Adjacent(path[0], path[len(path)-1], grid.Conn4), "order %d", order)
	}
}

// TestWalk_Dragon counts steps and rejects Gosper.
func TestWalk_Dragon(t *testing.T) {
	c, err := lsystem.NewCurve(lsystem.Dragon, 5)
	require.NoError(t, err)
	path, err := c.Walk()
	require.NoError(t, err)
	assert.Len(t, path, 1<<5+1)

	g, err := lsystem.NewCurve(lsystem.Gosper, 2)
	require.NoError(t, err)
	_, err = g.Walk()
	assert.ErrorIs(t, err, lsystem.ErrUnsupportedTurn)
}

// TestWalk_Primitive checks headings and turn directions.
func TestWalk_Primitive(t *testing.T) {
	path := lsystem.Walk("F+F-F--F", "F")
	want := []grid.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 2}, {X: -1, Y: 1}}
	assert.Equal(t, want, path)
}
