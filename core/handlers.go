package core

import (
	"bytes"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/mazishark/mazishark/constants"
	"github.com/mazishark/mazishark/render"
	"github.com/mazishark/mazishark/utils"
)

const (
	dateLayout    = "2006-01-02"
	histogramBins = 10
	mapCellScale  = 6
)

// RegisterRoutes attaches every API route to the mux. The same routes serve
// the local server and the serverless function.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", a.handleHealth)
	mux.HandleFunc("/meta", a.handleMeta)
	mux.HandleFunc("/analyze", a.handleAnalyze)
	mux.HandleFunc("/predict", a.handlePredict)
	mux.HandleFunc("/series", a.handleSeries)
	mux.HandleFunc("/map", a.handleMap)
	mux.HandleFunc("/plot", a.handleMap) // placeholder alias until per-layer plots exist
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteHTTPJSON(w, map[string]string{"status": "ok"})
}

func (a *App) handleMeta(w http.ResponseWriter, r *http.Request) {
	grid, err := a.Grid(r.Context())
	if err != nil {
		a.writeGridError(w, r, err)
		return
	}
	utils.WriteHTTPJSON(w, grid.Meta())
}

// statsPayload mirrors dataset.Stats with nulls for an all-missing grid.
type statsPayload struct {
	Min  *float64 `json:"min"`
	Max  *float64 `json:"max"`
	Mean *float64 `json:"mean"`
}

type analyzeResponse struct {
	DataPath      string       `json:"data_path"`
	Stats         statsPayload `json:"stats"`
	RequestedDate string       `json:"requested_date,omitempty"`
}

func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			utils.WriteHTTPError(w, "invalid date format, want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	grid, err := a.Grid(r.Context())
	if err != nil {
		if assetMissing(err) {
			// Not an error for /analyze: explain how to produce the asset.
			utils.WriteHTTPJSON(w, map[string]string{
				"message":       "no habitat index found; run the notebook to generate it",
				"expected_file": constants.DataFilename,
			})
			return
		}
		a.writeGridError(w, r, err)
		return
	}

	resp := analyzeResponse{DataPath: grid.Path, RequestedDate: date}
	if stats, ok := grid.Stats(); ok {
		resp.Stats = statsPayload{
			Min:  &stats.Min,
			Max:  &stats.Max,
			Mean: &stats.Mean,
		}
	}
	utils.WriteHTTPJSON(w, resp)
}

type predictResponse struct {
	Lat  float64  `json:"lat"`
	Lon  float64  `json:"lon"`
	H    *float64 `json:"H"`
	I    *int     `json:"i,omitempty"`
	J    *int     `json:"j,omitempty"`
	Note string   `json:"note,omitempty"`
}

func (a *App) handlePredict(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err1 := strconv.ParseFloat(q.Get("lat"), 64)
	lon, err2 := strconv.ParseFloat(q.Get("lon"), 64)
	if q.Get("lat") == "" || q.Get("lon") == "" || err1 != nil || err2 != nil {
		utils.WriteHTTPError(w, "lat and lon query parameters are required numbers", http.StatusBadRequest)
		return
	}

	grid, err := a.Grid(r.Context())
	if err != nil {
		if assetMissing(err) {
			// Neutral prior when the index is absent.
			fallback := 0.5
			utils.WriteHTTPJSON(w, predictResponse{
				Lat: lat, Lon: lon, H: &fallback,
				Note: "habitat index absent, returning default",
			})
			return
		}
		a.writeGridError(w, r, err)
		return
	}

	i, j := grid.Nearest(lat, lon)
	resp := predictResponse{Lat: lat, Lon: lon, I: &i, J: &j}
	if v := grid.At(i, j); !math.IsNaN(v) && !math.IsInf(v, 0) {
		resp.H = &v
	}
	utils.WriteHTTPJSON(w, resp)
}

func (a *App) handleSeries(w http.ResponseWriter, r *http.Request) {
	grid, err := a.Grid(r.Context())
	if err != nil {
		a.writeGridError(w, r, err)
		return
	}

	switch r.URL.Query().Get("agg") {
	case "lat_mean":
		utils.WriteHTTPJSON(w, map[string]any{
			"type": "lat_mean",
			"lat":  grid.Lat,
			"H":    nullableSeries(grid.LatMean()),
		})
	case "lon_mean":
		utils.WriteHTTPJSON(w, map[string]any{
			"type": "lon_mean",
			"lon":  grid.Lon,
			"H":    nullableSeries(grid.LonMean()),
		})
	default:
		edges, counts := grid.Histogram(histogramBins, 0.0, 1.0)
		if !grid.HasFinite() {
			edges, counts = []float64{}, []int{}
		}
		utils.WriteHTTPJSON(w, map[string]any{
			"type":   "global",
			"bins":   edges,
			"counts": counts,
		})
	}
}

func (a *App) handleMap(w http.ResponseWriter, r *http.Request) {
	grid, err := a.Grid(r.Context())
	if err != nil {
		a.writeGridError(w, r, err)
		return
	}

	img := render.Heatmap(grid, mapCellScale)
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		utils.ErrorCtx(r.Context(), "map rendering failed", "error", err)
		utils.WriteHTTPError(w, "failed to render map", http.StatusInternalServerError)
		return
	}
	w.Header().Set(constants.HeaderContentType, constants.ContentTypePNG)
	w.Header().Set(constants.HeaderContentDisp, `inline; filename="map.png"`)
	w.Write(buf.Bytes())
}

// writeGridError maps asset failures onto responses: absence is 404 (a
// configuration error the caller can see), anything else is 500.
func (a *App) writeGridError(w http.ResponseWriter, r *http.Request, err error) {
	if assetMissing(err) {
		utils.WriteHTTPError(w, "habitat index file not found; run the notebook to generate it", http.StatusNotFound)
		return
	}
	utils.ErrorCtx(r.Context(), "habitat index unavailable", "error", err)
	utils.WriteHTTPError(w, "habitat index unavailable", http.StatusInternalServerError)
}

// nullableSeries converts NaN/Inf entries to nulls for JSON.
func nullableSeries(vals []float64) []*float64 {
	out := make([]*float64, len(vals))
	for i := range vals {
		if v := vals[i]; !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[i] = &v
		}
	}
	return out
}
