package lsystem

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// Engine is a validated grammar: axiom, rule table and skip set.
// The rule table is copied at construction; an Engine is immutable and safe
// for concurrent use.
type Engine struct {
	axiom      string
	rules      map[rune]string
	skip       string
	maxSymbols uint64
	// alphabet is every symbol reachable from the axiom, sorted.
	alphabet []rune
	// occur[p][s] counts occurrences of s in rules[p].
	occur map[rune]map[rune]uint64
}

// New validates and freezes a grammar.
//
// Errors:
//   - ErrEmptyAxiom when axiom is "".
//   - ErrMalformedGrammar when a symbol reachable from the axiom has no rule.
func New(axiom string, rules map[rune]string, skip string, opts ...Option) (*Engine, error) {
	if axiom == "" {
		return nil, ErrEmptyAxiom
	}
	cfg := newConfig(opts...)

	frozen := make(map[rune]string, len(rules))
	for k, v := range rules {
		frozen[k] = v
	}

	// Walk the reachable alphabet breadth-first from the axiom.
	seen := make(map[rune]bool)
	queue := []rune(axiom)
	for qi := 0; qi < len(queue); qi++ {
		r := queue[qi]
		if seen[r] {
			continue
		}
		seen[r] = true
		rep, ok := frozen[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedGrammar, r)
		}
		queue = append(queue, []rune(rep)...)
	}

	alphabet := make([]rune, 0, len(seen))
	for r := range seen {
		alphabet = append(alphabet, r)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	occur := make(map[rune]map[rune]uint64, len(alphabet))
	for _, p := range alphabet {
		m := make(map[rune]uint64)
		for _, s := range frozen[p] {
			m[s]++
		}
		occur[p] = m
	}

	return &Engine{
		axiom:      axiom,
		rules:      frozen,
		skip:       skip,
		maxSymbols: cfg.maxSymbols,
		alphabet:   alphabet,
		occur:      occur,
	}, nil
}

// Axiom returns the starting string.
func (e *Engine) Axiom() string { return e.axiom }

// Skip returns the symbols removed by FilterForDrawing.
func (e *Engine) Skip() string { return e.skip }

// Rule returns the replacement for r.
func (e *Engine) Rule(r rune) (string, bool) {
	rep, ok := e.rules[r]
	return rep, ok
}

// Alphabet returns the symbols reachable from the axiom in ascending order.
func (e *Engine) Alphabet() []rune {
	return append([]rune(nil), e.alphabet...)
}

// PredictLength returns the exact length of Expand(generations) without
// building it, by propagating per-symbol counts through the rule table.
// Returns ErrTooManySymbols once the count passes the engine's ceiling.
func (e *Engine) PredictLength(generations int) (uint64, error) {
	if generations < 0 {
		return 0, ErrNegativeGenerations
	}
	counts := make(map[rune]uint64, len(e.alphabet))
	for _, r := range e.axiom {
		counts[r]++
	}
	total := uint64(len([]rune(e.axiom)))
	if total > e.maxSymbols {
		return 0, e.tooMany(0)
	}

	for g := 1; g <= generations; g++ {
		next := make(map[rune]uint64, len(e.alphabet))
		total = 0
		for _, p := range e.alphabet {
			cp := counts[p]
			if cp == 0 {
				continue
			}
			for s, k := range e.occur[p] {
				hi, lo := bits.Mul64(cp, k)
				if hi != 0 {
					return 0, e.tooMany(g)
				}
				sum, carry := bits.Add64(next[s], lo, 0)
				if carry != 0 {
					return 0, e.tooMany(g)
				}
				next[s] = sum
				if total, carry = bits.Add64(total, lo, 0); carry != 0 {
					return 0, e.tooMany(g)
				}
			}
		}
		if total > e.maxSymbols {
			return 0, e.tooMany(g)
		}
		counts = next
	}
	return total, nil
}

func (e *Engine) tooMany(generation int) error {
	return fmt.Errorf("%w: generation %d passes %d symbols", ErrTooManySymbols, generation, e.maxSymbols)
}

// Expand rewrites the axiom generations times.
// Generation 0 is the axiom itself.
func (e *Engine) Expand(generations int) (string, error) {
	if _, err := e.PredictLength(generations); err != nil {
		return "", err
	}
	return Expand(e.axiom, e.rules, generations), nil
}

// FilterForDrawing removes the engine's skip symbols from seq.
func (e *Engine) FilterForDrawing(seq string) string {
	return FilterForDrawing(seq, e.skip)
}

// Expand performs generations simultaneous rewrite passes over axiom.
// Every symbol is replaced by rules[symbol]; a symbol without a rule is
// dropped. generations ≤ 0 returns axiom unchanged.
// Complexity: O(total output of all passes).
func Expand(axiom string, rules map[rune]string, generations int) string {
	cur := axiom
	for g := 0; g < generations; g++ {
		var sb strings.Builder
		sb.Grow(len(cur) * 4)
		for _, r := range cur {
			sb.WriteString(rules[r])
		}
		cur = sb.String()
	}
	return cur
}

// FilterForDrawing removes every rune of skip from seq, keeping order.
func FilterForDrawing(seq, skip string) string {
	if skip == "" {
		return seq
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(skip, r) {
			return -1
		}
		return r
	}, seq)
}
