package lsystem

import (
	"fmt"

	"github.com/katalvlaran/spacefill/grid"
)

// Variant names one of the fixed curve grammars.
type Variant int

const (
	// Hilbert: axiom L, 90° turns, L/R skipped.
	Hilbert Variant = iota
	// Moore: closed Hilbert loop, axiom LFL+F+LFL, 90° turns, L/R skipped.
	Moore
	// Gosper: flowsnake on a hexagonal lattice, 60° turns, A and B both draw.
	Gosper
	// Dragon: Heighway dragon, 90° turns, F and G both draw.
	Dragon
)

// String returns the lower-case curve name.
func (v Variant) String() string {
	switch v {
	case Hilbert:
		return "hilbert"
	case Moore:
		return "moore"
	case Gosper:
		return "gosper"
	case Dragon:
		return "dragon"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// TurnAngle is the rotation in degrees applied by '+' (left) and '-' (right).
func (v Variant) TurnAngle() int {
	if v == Gosper {
		return 60
	}
	return 90
}

// ForwardSymbols lists the symbols a turtle interprets as one step forward.
func (v Variant) ForwardSymbols() string {
	switch v {
	case Gosper:
		return "AB"
	case Dragon:
		return "FG"
	default:
		return "F"
	}
}

// Grammar returns the variant's axiom, a fresh copy of its rule table and its skip set.
func (v Variant) Grammar() (axiom string, rules map[rune]string, skip string, err error) {
	switch v {
	case Hilbert:
		return "L", map[rune]string{
			'L': "+RF-LFL-FR+",
			'R': "-LF+RFR+FL-",
			'F': "F",
			'+': "+",
			'-': "-",
		}, "LR", nil
	case Moore:
		return "LFL+F+LFL", map[rune]string{
			'L': "-RF+LFL+FR-",
			'R': "+LF-RFR-FL+",
			'F': "F",
			'+': "+",
			'-': "-",
		}, "LR", nil
	case Gosper:
		return "A", map[rune]string{
			'A': "A-B--B+A++AA+B-",
			'B': "+A-BB--B-A++A+B",
			'+': "+",
			'-': "-",
		}, "", nil
	case Dragon:
		return "F", map[rune]string{
			'F': "F+G",
			'G': "F-G",
			'+': "+",
			'-': "-",
		}, "", nil
	}
	return "", nil, "", fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
}

// Engine builds a validated Engine for the variant's grammar.
func (v Variant) Engine(opts ...Option) (*Engine, error) {
	axiom, rules, skip, err := v.Grammar()
	if err != nil {
		return nil, err
	}
	return New(axiom, rules, skip, opts...)
}

// Curve is a curve grammar fixed at an order. Immutable.
type Curve struct {
	variant Variant
	order   int
	engine  *Engine
}

// NewCurve returns the grammar of v at the given order.
// Returns grid.ErrInvalidOrder when order is outside [1, grid.MaxOrder].
func NewCurve(v Variant, order int, opts ...Option) (*Curve, error) {
	if err := grid.ValidateOrder(order); err != nil {
		return nil, fmt.Errorf("lsystem: %s: %w", v, err)
	}
	e, err := v.Engine(opts...)
	if err != nil {
		return nil, err
	}
	return &Curve{variant: v, order: order, engine: e}, nil
}

// Variant returns the curve family.
func (c *Curve) Variant() Variant { return c.variant }

// Order returns the nominal order.
func (c *Curve) Order() int { return c.order }

// Engine exposes the underlying grammar.
func (c *Curve) Engine() *Engine { return c.engine }

// Generations is the rewrite depth passed to the engine: the order itself,
// except Moore, whose axiom is already a complete order-1 curve.
func (c *Curve) Generations() int {
	if c.variant == Moore {
		return c.order - 1
	}
	return c.order
}

// GenerateInstructionString expands the grammar to the curve's order.
func (c *Curve) GenerateInstructionString() (string, error) {
	return c.engine.Expand(c.Generations())
}

// FilterForDrawing strips the variant's recursion-only symbols from seq.
func (c *Curve) FilterForDrawing(seq string) string {
	return c.engine.FilterForDrawing(seq)
}

// Instructions is GenerateInstructionString followed by FilterForDrawing.
func (c *Curve) Instructions() (string, error) {
	s, err := c.GenerateInstructionString()
	if err != nil {
		return "", err
	}
	return c.FilterForDrawing(s), nil
}

// Walk replays the curve's instructions on the integer lattice.
// Returns ErrUnsupportedTurn for Gosper.
func (c *Curve) Walk() ([]grid.Coord, error) {
	if c.variant.TurnAngle() != 90 {
		return nil, fmt.Errorf("%w: %s turns %d degrees", ErrUnsupportedTurn, c.variant, c.variant.TurnAngle())
	}
	s, err := c.Instructions()
	if err != nil {
		return nil, err
	}
	return Walk(s, c.variant.ForwardSymbols()), nil
}
