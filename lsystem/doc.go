// Package lsystem expands context-free string-rewriting grammars (L-systems)
// into the instruction strings that draw space-filling curves.
//
// 🚀 What is an L-system?
//
//	An axiom plus one replacement rule per symbol. Each generation rewrites
//	every symbol of the current string at once; after n generations the
//	string is a set of turtle commands. Symbols that only drive recursion
//	(Hilbert's L and R) are stripped by FilterForDrawing before drawing.
//
// ✨ Key features:
//   - Engine: validated, immutable grammar with exact length prediction and a
//     symbol ceiling, so exponential growth fails fast instead of exhausting memory.
//   - Variant: the Hilbert, Moore, Gosper and Dragon grammars with their turn angles.
//   - Curve: a Variant at a given order; Moore's axiom already draws the first
//     level, so an order-n Moore curve expands n-1 generations.
//   - Walk: replays a 90° instruction string on the integer lattice.
//
// ⚙️ Usage:
//
//	c, err := lsystem.NewCurve(lsystem.Hilbert, 3)
//	s, err := c.Instructions() // "+F-F-F+..." with L/R removed
//
// Grammar policy: New rejects any grammar in which a symbol reachable from
// the axiom has no rule (ErrMalformedGrammar). Identity rules (s → s) are the
// way to keep a symbol. The free function Expand keeps the raw semantics and
// drops symbols without a rule.
//
// Performance:
//
//   - Expand: O(L) time and memory, where L = PredictLength(n) = O(b^n).
//   - PredictLength: O(n·|Σ|²).
package lsystem
