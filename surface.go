package geostat

import (
	"fmt"
	"image"

	"github.com/flywave/go-cog"
	"github.com/flywave/go-geo"
)

// NoData marks cells with no valid estimate, using the raster convention the
// export path writes. A failed cell never carries a numeric prediction.
const NoData = float64(-9999)

// CellStatus reports how a cell's estimate ended.
type CellStatus uint8

const (
	CellOK CellStatus = iota
	CellNoNeighbors
	CellSingular
	CellOutsideHull
)

// CellFlag is a bit set of advisory conditions on an otherwise valid cell.
type CellFlag uint8

const (
	FlagNegativeVariance CellFlag = 1 << iota
	FlagVarianceAboveSill
)

// Surface is the interpolation result raster in the grid's row-major order
// (see GridSpec.Index). Variances is nil for inverse-distance runs.
type Surface struct {
	Spec      GridSpec
	Values    []float64
	Variances []float64
	Status    []CellStatus
	Flags     []CellFlag

	// FailedCells counts cells whose Status is not CellOK; FlaggedCells
	// counts valid cells with advisory flags.
	FailedCells  int
	FlaggedCells int
}

func newSurface(spec GridSpec, withVariance bool) *Surface {
	n := spec.Cells()
	s := &Surface{
		Spec:   spec,
		Values: make([]float64, n),
		Status: make([]CellStatus, n),
		Flags:  make([]CellFlag, n),
	}
	if withVariance {
		s.Variances = make([]float64, n)
	}
	return s
}

func (s *Surface) setFailed(i int, st CellStatus) {
	s.Status[i] = st
	s.Values[i] = NoData
	if s.Variances != nil {
		s.Variances[i] = NoData
	}
}

func (s *Surface) tally() {
	s.FailedCells = 0
	s.FlaggedCells = 0
	for i := range s.Status {
		if s.Status[i] != CellOK {
			s.FailedCells++
		} else if s.Flags[i] != 0 {
			s.FlaggedCells++
		}
	}
}

// Value returns the prediction at cell (ix, iy).
func (s *Surface) Value(ix, iy int) float64 {
	return s.Values[s.Spec.Index(ix, iy)]
}

// Variance returns the estimation variance at cell (ix, iy), or NoData when
// the run produced none.
func (s *Surface) Variance(ix, iy int) float64 {
	if s.Variances == nil {
		return NoData
	}
	return s.Variances[s.Spec.Index(ix, iy)]
}

// WriteGeoTIFF writes the prediction raster as an LZW-compressed
// cloud-optimized GeoTIFF. A nil srs defaults to EPSG:4326.
func (s *Surface) WriteGeoTIFF(path string, srs geo.Proj) error {
	return writeRaster(path, s.Spec, s.Values, srs)
}

// WriteVarianceGeoTIFF writes the estimation-variance raster.
func (s *Surface) WriteVarianceGeoTIFF(path string, srs geo.Proj) error {
	if s.Variances == nil {
		return fmt.Errorf("%w: surface has no variance band", ErrInvalidParams)
	}
	return writeRaster(path, s.Spec, s.Variances, srs)
}

func writeRaster(path string, spec GridSpec, vals []float64, srs geo.Proj) error {
	if srs == nil {
		srs = epsg4326
	}
	// The grid's iy axis grows northward; TIFF rows run top-down.
	data := make([]float64, len(vals))
	for iy := 0; iy < spec.NY; iy++ {
		src := iy * spec.NX
		dst := (spec.NY - 1 - iy) * spec.NX
		copy(data[dst:dst+spec.NX], vals[src:src+spec.NX])
	}
	rect := image.Rect(0, 0, spec.NX, spec.NY)
	src := cog.NewSource(data, &rect, cog.CTLZW)
	si := [2]uint32{uint32(spec.NX), uint32(spec.NY)}
	return cog.WriteTile(path, src, spec.Rect(), srs, si, nil)
}
