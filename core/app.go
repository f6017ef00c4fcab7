// Package core is the MaziShark application: the habitat index API served by
// both the local server and the serverless entry point.
package core

import (
	"context"
	"errors"
	"sync"

	"github.com/mazishark/mazishark/asset"
	"github.com/mazishark/mazishark/config"
	"github.com/mazishark/mazishark/dataset"
	"github.com/mazishark/mazishark/utils"
)

// App holds the process-wide application state: config plus the lazily loaded
// habitat grid. One App lives for the lifetime of a function instance or
// server process.
type App struct {
	cfg *config.Config

	mu   sync.Mutex
	grid *dataset.Grid
}

// NewApp constructs the application. The data asset is not touched here: it
// loads lazily on the first request that needs it, so a missing asset fails
// that request rather than the cold start.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &App{cfg: cfg}
}

// Grid returns the habitat grid, loading and caching it on first use.
// A wrapped asset.ErrNotFound means the asset is absent (a configuration
// error surfaced per-request); any other error means the asset is unreadable.
// Load failures are not cached: a later deploy fix or S3 recovery should not
// require a new instance.
func (a *App) Grid(ctx context.Context) (*dataset.Grid, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.grid != nil {
		return a.grid, nil
	}

	src, err := asset.Resolve(ctx, a.cfg.Data.Path)
	if err != nil {
		return nil, err
	}
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, utils.Errorf("failed to read data asset %s: %w", src.Location(), err)
	}
	grid, err := dataset.Parse(data, src.Location())
	if err != nil {
		return nil, err
	}

	utils.InfoCtx(ctx, "habitat index loaded",
		"path", grid.Path,
		"lat_size", len(grid.Lat),
		"lon_size", len(grid.Lon),
	)
	a.grid = grid
	return grid, nil
}

// assetMissing reports whether err means "no asset", as opposed to a corrupt
// or unreadable one.
func assetMissing(err error) bool {
	return errors.Is(err, asset.ErrNotFound)
}
