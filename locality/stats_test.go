package locality_test

import (
	"testing"

	"github.com/katalvlaran/spacefill/locality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMedian_EvenCount: sorted [1,2,10,12,13,15] → mean of 10 and 12.
func TestMedian_EvenCount(t *testing.T) {
	in := []float64{10, 2, 1, 12, 15, 13}
	m, err := locality.Median(in)
	require.NoError(t, err)
	assert.Equal(t, 11.0, m)
	assert.Equal(t, []float64{10, 2, 1, 12, 15, 13}, in, "input must not be reordered")
}

// TestMedian_OddCount picks the single middle value.
func TestMedian_OddCount(t *testing.T) {
	m, err := locality.Median([]float64{7, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, m)
	m, err = locality.Median([]float64{4})
	require.NoError(t, err)
	assert.Equal(t, 4.0, m)
}

// TestMean covers the arithmetic mean.
func TestMean(t *testing.T) {
	m, err := locality.Mean([]float64{1, 2, 3, 6})
	require.NoError(t, err)
	assert.Equal(t, 3.0, m)
}

// TestEmptyAggregation: both statistics reject empty input instead of NaN.
func TestEmptyAggregation(t *testing.T) {
	_, err := locality.Mean(nil)
	assert.ErrorIs(t, err, locality.ErrEmptyAggregation)
	_, err = locality.Median([]float64{})
	assert.ErrorIs(t, err, locality.ErrEmptyAggregation)
}

// TestStatistic_String names both statistics.
func TestStatistic_String(t *testing.T) {
	assert.Equal(t, "mean", locality.StatMean.String())
	assert.Equal(t, "median", locality.StatMedian.String())
}
