package locality

import (
	"sort"

	"github.com/samber/lo"
)

// Mean returns the arithmetic mean of xs.
// Returns ErrEmptyAggregation for an empty slice.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyAggregation
	}
	return lo.Sum(xs) / float64(len(xs)), nil
}

// Median returns the middle value of xs after sorting a copy ascending; an
// even count yields the mean of the two middle values.
// Returns ErrEmptyAggregation for an empty slice.
func Median(xs []float64) (float64, error) {
	n := len(xs)
	if n == 0 {
		return 0, ErrEmptyAggregation
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	if n%2 == 1 {
		return s[n/2], nil
	}
	return (s[n/2-1] + s[n/2]) / 2, nil
}

// Statistic selects the aggregation used at both levels of a stretch measurement.
type Statistic int

const (
	// StatMean aggregates with the arithmetic mean.
	StatMean Statistic = iota
	// StatMedian aggregates with the median.
	StatMedian
)

// String returns "mean" or "median".
func (s Statistic) String() string {
	if s == StatMedian {
		return "median"
	}
	return "mean"
}

func (s Statistic) apply(xs []float64) (float64, error) {
	if s == StatMedian {
		return Median(xs)
	}
	return Mean(xs)
}
