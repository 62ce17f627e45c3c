package lsystem

import "errors"

var (
	// ErrEmptyAxiom indicates a grammar without a starting string.
	ErrEmptyAxiom = errors.New("lsystem: axiom must be non-empty")

	// ErrMalformedGrammar indicates a symbol reachable from the axiom has no rule.
	ErrMalformedGrammar = errors.New("lsystem: symbol has no replacement rule")

	// ErrNegativeGenerations indicates a negative rewrite depth.
	ErrNegativeGenerations = errors.New("lsystem: generations must be >= 0")

	// ErrTooManySymbols indicates the expansion would exceed the configured ceiling.
	ErrTooManySymbols = errors.New("lsystem: expansion exceeds symbol limit")

	// ErrUnsupportedTurn indicates Walk was asked to replay a non-90° curve.
	ErrUnsupportedTurn = errors.New("lsystem: lattice walk needs 90 degree turns")

	// ErrUnknownVariant indicates a Variant outside the defined set.
	ErrUnknownVariant = errors.New("lsystem: unknown curve variant")
)
