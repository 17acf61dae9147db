package geostat

import (
	"fmt"

	vec2d "github.com/flywave/go3d/float64/vec2"

	"github.com/flywave/go-geo"
)

// GridSpec describes a regular raster of cell centers. Cell (ix, iy) is
// centered at (XMin + ix*XSize, YMin + iy*YSize), zero-based.
type GridSpec struct {
	NX    int     `json:"nx"`
	NY    int     `json:"ny"`
	XMin  float64 `json:"xmin"`
	YMin  float64 `json:"ymin"`
	XSize float64 `json:"xsize"`
	YSize float64 `json:"ysize"`
}

func (g GridSpec) Validate() error {
	if g.NX <= 0 || g.NY <= 0 {
		return fmt.Errorf("%w: nx=%d ny=%d", ErrInvalidGridSpec, g.NX, g.NY)
	}
	if g.XSize <= 0 || g.YSize <= 0 {
		return fmt.Errorf("%w: xsize=%g ysize=%g", ErrInvalidGridSpec, g.XSize, g.YSize)
	}
	return nil
}

// Cells returns the number of grid cells, NX*NY.
func (g GridSpec) Cells() int {
	return g.NX * g.NY
}

// Index maps cell coordinates to the raster index. The raster is row-major:
// the outer loop runs over iy, the inner over ix, so consumers reshape the
// flat result as [NY][NX].
func (g GridSpec) Index(ix, iy int) int {
	return iy*g.NX + ix
}

// Center returns the cell-center coordinate of cell (ix, iy).
func (g GridSpec) Center(ix, iy int) vec2d.T {
	return vec2d.T{g.XMin + float64(ix)*g.XSize, g.YMin + float64(iy)*g.YSize}
}

// CellCenters generates every cell center in raster order (see Index).
func (g GridSpec) CellCenters() ([]vec2d.T, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	coords := make([]vec2d.T, 0, g.Cells())
	for iy := 0; iy < g.NY; iy++ {
		for ix := 0; ix < g.NX; ix++ {
			coords = append(coords, g.Center(ix, iy))
		}
	}
	return coords, nil
}

// Rect returns the outer bounds of the raster, half a cell beyond the
// outermost centers on every side.
func (g GridSpec) Rect() vec2d.Rect {
	return vec2d.Rect{
		Min: vec2d.T{g.XMin - g.XSize/2, g.YMin - g.YSize/2},
		Max: vec2d.T{
			g.XMin + (float64(g.NX)-0.5)*g.XSize,
			g.YMin + (float64(g.NY)-0.5)*g.YSize,
		},
	}
}

// GridSpecFromGeoReference derives the spec whose cells tile the referenced
// bounding box at the given raster size. Cell centers sit half a pixel
// inside the box edges.
func GridSpecFromGeoReference(width, height int, georef *geo.GeoReference) (GridSpec, error) {
	if width <= 0 || height <= 0 {
		return GridSpec{}, fmt.Errorf("%w: width=%d height=%d", ErrInvalidGridSpec, width, height)
	}
	bbox := georef.GetBBox()
	xsize := (bbox.Max[0] - bbox.Min[0]) / float64(width)
	ysize := (bbox.Max[1] - bbox.Min[1]) / float64(height)
	spec := GridSpec{
		NX:    width,
		NY:    height,
		XMin:  bbox.Min[0] + xsize/2,
		YMin:  bbox.Min[1] + ysize/2,
		XSize: xsize,
		YSize: ysize,
	}
	return spec, spec.Validate()
}
