// Package dataset parses and queries the habitat index grid H(lat, lon).
// The asset is the JSON export of the habitat notebook: "lat" and "lon"
// coordinate arrays plus an "H_index" matrix with null marking missing cells.
package dataset

import (
	"encoding/json"
	"math"

	"github.com/mazishark/mazishark/utils"
)

// Grid is the in-memory habitat index. H is row-major over (lat, lon);
// missing cells are NaN. Grids are immutable once parsed.
type Grid struct {
	Path string
	Lat  []float64
	Lon  []float64
	H    [][]float64
}

type gridFile struct {
	Lat []float64    `json:"lat"`
	Lon []float64    `json:"lon"`
	H   [][]*float64 `json:"H_index"`
}

// Parse decodes and validates a habitat index export. The location is kept
// for metadata responses.
func Parse(data []byte, location string) (*Grid, error) {
	var f gridFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, utils.Errorf("invalid habitat index file %s: %w", location, err)
	}
	if f.H == nil {
		return nil, utils.Errorf("variable 'H_index' missing from %s", location)
	}
	if len(f.Lat) == 0 || len(f.Lon) == 0 {
		return nil, utils.Errorf("coordinates 'lat'/'lon' missing from %s", location)
	}
	if len(f.H) != len(f.Lat) {
		return nil, utils.Errorf("H_index has %d rows, want %d (len(lat)) in %s", len(f.H), len(f.Lat), location)
	}

	h := make([][]float64, len(f.H))
	for i, row := range f.H {
		if len(row) != len(f.Lon) {
			return nil, utils.Errorf("H_index row %d has %d columns, want %d (len(lon)) in %s", i, len(row), len(f.Lon), location)
		}
		h[i] = make([]float64, len(row))
		for j, v := range row {
			if v == nil {
				h[i][j] = math.NaN()
			} else {
				h[i][j] = *v
			}
		}
	}

	return &Grid{Path: location, Lat: f.Lat, Lon: f.Lon, H: h}, nil
}

// AxisMeta describes one coordinate axis.
type AxisMeta struct {
	Size int     `json:"size"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Meta summarizes the grid extents.
type Meta struct {
	Path string   `json:"path"`
	Lat  AxisMeta `json:"lat"`
	Lon  AxisMeta `json:"lon"`
}

// Meta returns sizes and bounds of both axes.
func (g *Grid) Meta() Meta {
	return Meta{
		Path: g.Path,
		Lat:  axisMeta(g.Lat),
		Lon:  axisMeta(g.Lon),
	}
}

func axisMeta(axis []float64) AxisMeta {
	m := AxisMeta{Size: len(axis), Min: axis[0], Max: axis[0]}
	for _, v := range axis {
		if v < m.Min {
			m.Min = v
		}
		if v > m.Max {
			m.Max = v
		}
	}
	return m
}

// Stats holds summary statistics over the finite cells of H.
type Stats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// Stats computes min/max/mean over finite cells. ok is false when every cell
// is missing.
func (g *Grid) Stats() (s Stats, ok bool) {
	var sum float64
	var n int
	for _, row := range g.H {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if n == 0 {
				s.Min, s.Max = v, v
			} else {
				if v < s.Min {
					s.Min = v
				}
				if v > s.Max {
					s.Max = v
				}
			}
			sum += v
			n++
		}
	}
	if n == 0 {
		return Stats{}, false
	}
	s.Mean = sum / float64(n)
	return s, true
}

// Nearest returns the grid indices of the cell closest to (lat, lon).
func (g *Grid) Nearest(lat, lon float64) (i, j int) {
	return nearestIndex(g.Lat, lat), nearestIndex(g.Lon, lon)
}

func nearestIndex(axis []float64, v float64) int {
	best := 0
	bestDist := math.Abs(axis[0] - v)
	for i, a := range axis {
		if d := math.Abs(a - v); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// At returns H at the given cell.
func (g *Grid) At(i, j int) float64 {
	return g.H[i][j]
}

// LatMean returns the mean of H along each latitude row, NaN where a row has
// no finite cells.
func (g *Grid) LatMean() []float64 {
	out := make([]float64, len(g.Lat))
	for i, row := range g.H {
		out[i] = finiteMean(row)
	}
	return out
}

// LonMean returns the mean of H along each longitude column.
func (g *Grid) LonMean() []float64 {
	out := make([]float64, len(g.Lon))
	for j := range g.Lon {
		var sum float64
		var n int
		for i := range g.Lat {
			v := g.H[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			out[j] = math.NaN()
		} else {
			out[j] = sum / float64(n)
		}
	}
	return out
}

func finiteMean(vals []float64) float64 {
	var sum float64
	var n int
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Histogram buckets the finite cells of H into equal-width bins over
// [lo, hi). H is an index in [0, 1]; out-of-range values are clamped into the
// edge bins. The returned edges are the lower bound of each bin.
func (g *Grid) Histogram(bins int, lo, hi float64) (edges []float64, counts []int) {
	if bins <= 0 || hi <= lo {
		return nil, nil
	}
	edges = make([]float64, bins)
	counts = make([]int, bins)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	for _, row := range g.H {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			idx := int((v - lo) / width)
			if idx < 0 {
				idx = 0
			}
			if idx >= bins {
				idx = bins - 1
			}
			counts[idx]++
		}
	}
	return edges, counts
}

// HasFinite reports whether the grid contains at least one finite cell.
func (g *Grid) HasFinite() bool {
	_, ok := g.Stats()
	return ok
}
