package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSamplesTriangle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sp, err := build(shapes["triangle"], 0.5, true)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, printSamples(&buf, sp, 10))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3*10)
	assert.Equal(t, "   260   240", lines[0])
	assert.Equal(t, "   360   240", lines[10])
}

func TestPrintStatsOpenCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sp, err := build(shapes["curve"], 2.0, false)
	require.NoError(t, err)
	assert.Equal(t, 7, sp.SegmentCount())
	var buf bytes.Buffer
	require.NoError(t, printStats(&buf, sp, 10))
	assert.True(t, strings.HasPrefix(buf.String(), "length "))
	assert.NotContains(t, buf.String(), "area", "open curves have no area")
}

func TestBuildRejectsShortShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := build([]float64{0, 0, 1, 1}, 0.5, false)
	assert.Error(t, err)
}
