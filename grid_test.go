package geostat

import (
	"testing"

	vec2d "github.com/flywave/go3d/float64/vec2"

	"github.com/flywave/go-geo"
	"github.com/stretchr/testify/assert"
)

func TestCellCentersRasterOrder(t *testing.T) {
	a := assert.New(t)

	spec := GridSpec{NX: 3, NY: 2, XMin: 10, YMin: 100, XSize: 1, YSize: 2}
	coords, err := spec.CellCenters()
	a.NoError(err)
	a.Len(coords, 6)

	// Row-major: the first NX entries share iy=0, x varies fastest.
	want := []vec2d.T{
		{10, 100}, {11, 100}, {12, 100},
		{10, 102}, {11, 102}, {12, 102},
	}
	a.Equal(want, coords)

	for iy := 0; iy < spec.NY; iy++ {
		for ix := 0; ix < spec.NX; ix++ {
			a.Equal(coords[spec.Index(ix, iy)], spec.Center(ix, iy))
		}
	}
}

func TestGridSpecValidation(t *testing.T) {
	a := assert.New(t)

	bad := []GridSpec{
		{NX: 0, NY: 2, XSize: 1, YSize: 1},
		{NX: 2, NY: -1, XSize: 1, YSize: 1},
		{NX: 2, NY: 2, XSize: 0, YSize: 1},
		{NX: 2, NY: 2, XSize: 1, YSize: -3},
	}
	for _, spec := range bad {
		a.ErrorIs(spec.Validate(), ErrInvalidGridSpec)
		_, err := spec.CellCenters()
		a.ErrorIs(err, ErrInvalidGridSpec)
	}

	a.NoError(GridSpec{NX: 1, NY: 1, XSize: 0.5, YSize: 0.5}.Validate())
}

func TestGridSpecRect(t *testing.T) {
	a := assert.New(t)

	spec := GridSpec{NX: 2, NY: 2, XMin: 0, YMin: 0, XSize: 10, YSize: 10}
	r := spec.Rect()
	a.Equal(vec2d.T{-5, -5}, r.Min)
	a.Equal(vec2d.T{15, 15}, r.Max)
}

func TestGridSpecFromGeoReference(t *testing.T) {
	a := assert.New(t)

	georef := geo.NewGeoReference(vec2d.Rect{Min: vec2d.T{0, 0}, Max: vec2d.T{100, 50}}, epsg4326)
	spec, err := GridSpecFromGeoReference(10, 5, georef)
	a.NoError(err)
	a.Equal(10, spec.NX)
	a.Equal(5, spec.NY)
	a.InDelta(10.0, spec.XSize, 1e-12)
	a.InDelta(10.0, spec.YSize, 1e-12)
	// Centers sit half a pixel inside the box.
	a.InDelta(5.0, spec.XMin, 1e-12)
	a.InDelta(5.0, spec.YMin, 1e-12)

	_, err = GridSpecFromGeoReference(0, 5, georef)
	a.ErrorIs(err, ErrInvalidGridSpec)
}
