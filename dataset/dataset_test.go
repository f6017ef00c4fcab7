package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
	"lat": [10.0, 20.0, 30.0],
	"lon": [100.0, 110.0],
	"H_index": [
		[0.1, 0.2],
		[0.3, null],
		[0.5, 0.9]
	]
}`

func mustParse(t *testing.T) *Grid {
	t.Helper()
	g, err := Parse([]byte(fixture), "test.json")
	require.NoError(t, err)
	return g
}

func TestParse(t *testing.T) {
	g := mustParse(t)
	assert.Equal(t, "test.json", g.Path)
	assert.Len(t, g.Lat, 3)
	assert.Len(t, g.Lon, 2)
	assert.True(t, math.IsNaN(g.H[1][1]), "null cell should parse as NaN")
	assert.Equal(t, 0.9, g.H[2][1])
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":        `{`,
		"missing H_index": `{"lat":[1],"lon":[2]}`,
		"missing lat":     `{"lon":[2],"H_index":[[0.1]]}`,
		"empty lon":       `{"lat":[1],"lon":[],"H_index":[[0.1]]}`,
		"row mismatch":    `{"lat":[1,2],"lon":[3],"H_index":[[0.1]]}`,
		"column mismatch": `{"lat":[1],"lon":[3,4],"H_index":[[0.1]]}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in), "bad.json")
			assert.Error(t, err)
		})
	}
}

func TestMeta(t *testing.T) {
	m := mustParse(t).Meta()
	assert.Equal(t, 3, m.Lat.Size)
	assert.Equal(t, 10.0, m.Lat.Min)
	assert.Equal(t, 30.0, m.Lat.Max)
	assert.Equal(t, 2, m.Lon.Size)
	assert.Equal(t, 100.0, m.Lon.Min)
	assert.Equal(t, 110.0, m.Lon.Max)
}

func TestStats(t *testing.T) {
	s, ok := mustParse(t).Stats()
	require.True(t, ok)
	assert.Equal(t, 0.1, s.Min)
	assert.Equal(t, 0.9, s.Max)
	assert.InDelta(t, 0.4, s.Mean, 1e-9) // (0.1+0.2+0.3+0.5+0.9)/5
}

func TestStats_AllMissing(t *testing.T) {
	g, err := Parse([]byte(`{"lat":[1],"lon":[2],"H_index":[[null]]}`), "empty.json")
	require.NoError(t, err)
	_, ok := g.Stats()
	assert.False(t, ok)
	assert.False(t, g.HasFinite())
}

func TestNearest(t *testing.T) {
	g := mustParse(t)
	tests := []struct {
		lat, lon float64
		i, j     int
	}{
		{10, 100, 0, 0},
		{31, 111, 2, 1},
		{14, 104, 0, 0},
		{16, 106, 1, 1},
		{-100, 1000, 0, 1}, // out of range clamps to nearest edge
	}
	for _, tc := range tests {
		i, j := g.Nearest(tc.lat, tc.lon)
		assert.Equal(t, tc.i, i, "lat=%v", tc.lat)
		assert.Equal(t, tc.j, j, "lon=%v", tc.lon)
	}
}

func TestLatMean(t *testing.T) {
	means := mustParse(t).LatMean()
	require.Len(t, means, 3)
	assert.InDelta(t, 0.15, means[0], 1e-9)
	assert.InDelta(t, 0.3, means[1], 1e-9) // NaN cell skipped
	assert.InDelta(t, 0.7, means[2], 1e-9)
}

func TestLonMean(t *testing.T) {
	means := mustParse(t).LonMean()
	require.Len(t, means, 2)
	assert.InDelta(t, 0.3, means[0], 1e-9)
	assert.InDelta(t, 0.55, means[1], 1e-9) // (0.2+0.9)/2
}

func TestLatMean_AllMissingRow(t *testing.T) {
	g, err := Parse([]byte(`{"lat":[1,2],"lon":[3],"H_index":[[null],[0.4]]}`), "t.json")
	require.NoError(t, err)
	means := g.LatMean()
	assert.True(t, math.IsNaN(means[0]))
	assert.Equal(t, 0.4, means[1])
}

func TestHistogram(t *testing.T) {
	g := mustParse(t)
	edges, counts := g.Histogram(10, 0.0, 1.0)
	require.Len(t, edges, 10)
	require.Len(t, counts, 10)
	assert.InDelta(t, 0.0, edges[0], 1e-9)
	assert.InDelta(t, 0.9, edges[9], 1e-9)

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 5, total, "NaN cells excluded")
	assert.Equal(t, 1, counts[1]) // 0.1
	assert.Equal(t, 1, counts[9]) // 0.9
}

func TestHistogram_DegenerateArgs(t *testing.T) {
	g := mustParse(t)
	edges, counts := g.Histogram(0, 0, 1)
	assert.Nil(t, edges)
	assert.Nil(t, counts)
	edges, counts = g.Histogram(10, 1, 1)
	assert.Nil(t, edges)
	assert.Nil(t, counts)
}
