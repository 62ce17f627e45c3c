package main

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/spacefill/locality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Defaults(t *testing.T) {
	opts, err := parseArgs(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, locality.Kinds(), opts.curves)
	assert.Equal(t, 1, opts.min)
	assert.Equal(t, 9, opts.max)
	assert.Equal(t, []locality.Statistic{locality.StatMean, locality.StatMedian}, opts.stats)
	assert.False(t, opts.cyclic)
	assert.GreaterOrEqual(t, opts.workers, 1)
}

func TestParseArgs_Errors(t *testing.T) {
	cases := [][]string{
		{"-curves", "peano"},
		{"-min", "4", "-max", "2"},
		{"-stat", "mode"},
		{"-workers", "0"},
		{"-min", "0"},
		{"-max", "13"},
		{"-bogus"},
	}
	for _, args := range cases {
		_, err := parseArgs(args, io.Discard)
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestParseArgs_MaxOrderLimit(t *testing.T) {
	opts, err := parseArgs([]string{"-max", strconv.Itoa(locality.MaxAnalyzerOrder)}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, locality.MaxAnalyzerOrder, opts.max)

	_, err = parseArgs([]string{"-min", "2", "-max", strconv.Itoa(locality.MaxAnalyzerOrder + 1)}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analyzer limit")
}

func TestRun_Table(t *testing.T) {
	opts, err := parseArgs([]string{"-curves", "hilbert,morton,hilbert", "-min", "1", "-max", "3", "-stat", "median"}, io.Discard)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), opts, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"curve", "stat", "1", "2", "3"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"hilbert", "median", "1.50", "2.00", "2.50"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"morton", "median", "1.50", "2.00", "3.00"}, strings.Fields(lines[2]))
}

func TestRun_CyclicMoore(t *testing.T) {
	opts, err := parseArgs([]string{"-curves", "moore", "-max", "2", "-stat", "mean", "-cyclic"}, io.Discard)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), opts, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"moore", "mean", "1.33", "2.21"}, strings.Fields(lines[1]))
}
