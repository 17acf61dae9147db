package geostat

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Method selects the estimator the driver runs per cell.
type Method string

const (
	InverseDistance Method = "inverse-distance"
	OrdinaryKriging Method = "ordinary-kriging"
)

// Params configures one interpolation run.
type Params struct {
	Method Method `json:"method"`
	// Power is the inverse-distance exponent, InverseDistance only.
	Power float64 `json:"power"`
	// Model is the variogram model, OrdinaryKriging only.
	Model  *Model       `json:"model"`
	Search SearchParams `json:"search"`
	Grid   GridSpec     `json:"grid"`
	// Workers caps the worker pool; <= 0 means one per CPU.
	Workers int `json:"workers"`
	// ClipToHull marks cells outside the sample convex hull as missing
	// instead of extrapolating into them.
	ClipToHull bool `json:"clip_to_hull"`
}

// Workers claim cells in chunks of this size to keep the atomic counter off
// the per-cell path.
const cellChunk = 256

// Interpolate runs the configured estimator over every grid cell and
// assembles the result surface in raster order. Configuration errors fail
// the run before any estimation starts; per-cell failures (no neighbors,
// singular system) are recorded as cell status and the run continues.
// Cancelling ctx aborts the workers promptly and returns the context error.
func Interpolate(ctx context.Context, samples []SamplePoint, p Params) (*Surface, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if err := p.Grid.Validate(); err != nil {
		return nil, err
	}
	switch p.Method {
	case InverseDistance:
		if p.Power <= 0 {
			return nil, fmt.Errorf("%w: power=%g", ErrInvalidParams, p.Power)
		}
	case OrdinaryKriging:
		if p.Model == nil {
			return nil, fmt.Errorf("%w: ordinary kriging needs a variogram model", ErrInvalidParams)
		}
		if err := p.Model.Validate(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: method %q", ErrInvalidParams, p.Method)
	}

	searcher, err := NewSearcher(samples, p.Search)
	if err != nil {
		return nil, err
	}

	// Hull edges are computed up front so workers only read.
	var hull *Convex
	if p.ClipToHull {
		hull = NewConvex(samples)
		hull.Edges()
	}

	surf := newSurface(p.Grid, p.Method == OrdinaryKriging)

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	cells := p.Grid.Cells()

	var next atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	for wk := 0; wk < workers; wk++ {
		g.Go(func() error {
			var krig *Kriging
			if p.Method == OrdinaryKriging {
				var err error
				if krig, err = NewKriging(p.Model); err != nil {
					return err
				}
			}
			var nbuf []Neighbor
			for {
				start := int(next.Add(cellChunk)) - cellChunk
				if start >= cells {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				end := start + cellChunk
				if end > cells {
					end = cells
				}
				for c := start; c < end; c++ {
					ct := p.Grid.Center(c%p.Grid.NX, c/p.Grid.NX)

					if hull != nil && !hull.Contains(ct) {
						surf.setFailed(c, CellOutsideHull)
						continue
					}

					nb, err := searcher.Search(ct[0], ct[1], nbuf)
					nbuf = nb
					if err != nil {
						surf.setFailed(c, CellNoNeighbors)
						continue
					}

					switch p.Method {
					case InverseDistance:
						v, err := IDW(ct[0], ct[1], p.Power, samples, nb)
						if err != nil {
							surf.setFailed(c, CellNoNeighbors)
							continue
						}
						surf.Values[c] = v
					case OrdinaryKriging:
						pred, err := krig.Estimate(ct[0], ct[1], samples, nb)
						if err != nil {
							surf.setFailed(c, CellSingular)
							continue
						}
						surf.Values[c] = pred.Value
						surf.Variances[c] = pred.Variance
						if pred.Variance < -varianceSlack*krig.sill {
							surf.Flags[c] |= FlagNegativeVariance
						} else if pred.Variance > (1+varianceSlack)*krig.sill {
							surf.Flags[c] |= FlagVarianceAboveSill
						}
					}
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	surf.tally()
	return surf, nil
}

// varianceSlack absorbs roundoff-scale excursions of the estimation variance
// before a cell is flagged as outside [0, sill].
const varianceSlack = 1e-9
