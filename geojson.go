package geostat

import (
	vec2d "github.com/flywave/go3d/float64/vec2"

	"github.com/flywave/go-geo"
	"github.com/flywave/go-geoid"
	"github.com/flywave/go-geom"
	"github.com/flywave/go-geom/general"
)

var epsg4326 geo.Proj

func init() {
	epsg4326 = geo.NewProj(4326)
}

// SamplesFromFeatureCollection flattens every geometry in the collection to
// sample points, reading the attribute value from the third coordinate.
// A non-nil srs differing from EPSG:4326 is reprojected.
func SamplesFromFeatureCollection(fc *geom.FeatureCollection, srs geo.Proj) ([]SamplePoint, error) {
	if fc == nil || len(fc.Features) == 0 {
		return nil, ErrNoSamples
	}

	ret := make([]SamplePoint, 0, 1000)
	add := func(x, y, v float64) {
		if srs != nil && !srs.Eq(epsg4326) {
			pos := srs.TransformTo(epsg4326, []vec2d.T{{x, y}})
			x, y = pos[0][0], pos[0][1]
		}
		ret = append(ret, SamplePoint{X: x, Y: y, Value: v})
	}

	for _, fea := range fc.Features {
		switch g := fea.Geometry.(type) {
		case *general.Point:
			add(g.X(), g.Y(), g.Data()[2])
		case *general.MultiPoint:
			for _, pos := range g.Points() {
				add(pos.X(), pos.Y(), pos.Data()[2])
			}
		case *general.LineString:
			for _, pos := range g.Subpoints() {
				add(pos.X(), pos.Y(), pos.Data()[2])
			}
		case *general.MultiLine:
			for _, li := range g.Lines() {
				for _, pos := range li.Subpoints() {
					add(pos.X(), pos.Y(), pos.Data()[2])
				}
			}
		case *general.Polygon:
			for _, sli := range g.Sublines() {
				for _, pos := range sli.Subpoints() {
					add(pos.X(), pos.Y(), pos.Data()[2])
				}
			}
		case *general.MultiPolygon:
			for _, poly := range g.Polygons() {
				for _, sli := range poly.Sublines() {
					for _, pos := range sli.Subpoints() {
						add(pos.X(), pos.Y(), pos.Data()[2])
					}
				}
			}
		}
	}

	if len(ret) == 0 {
		return nil, ErrNoSamples
	}
	return ret, nil
}

// ConvertHeights shifts sample values between vertical datums in place.
// HAE applies the constant offset; any geoid datum converts each value to
// ellipsoidal height through the geoid model. UNKNOWN is a no-op.
func ConvertHeights(samples []SamplePoint, datum geoid.VerticalDatum, offset float64) {
	if (datum == geoid.HAE && offset == 0) || datum == geoid.UNKNOWN {
		return
	}
	if datum == geoid.HAE {
		for i := range samples {
			samples[i].Value += offset
		}
		return
	}
	gid := geoid.NewGeoid(datum, false)
	for i := range samples {
		samples[i].Value = gid.ConvertHeight(samples[i].X, samples[i].Y, samples[i].Value, geoid.GEOIDTOELLIPSOID)
	}
}
