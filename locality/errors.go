package locality

import "errors"

var (
	// ErrEmptyAggregation indicates a statistic was requested over no values.
	ErrEmptyAggregation = errors.New("locality: cannot aggregate an empty list")

	// ErrUnknownKind indicates a curve kind outside Hilbert, Moore, Morton.
	ErrUnknownKind = errors.New("locality: unknown curve kind")
)
