package geostat

import (
	vec2d "github.com/flywave/go3d/float64/vec2"
)

// SamplePoint is one conditioning datum: a location and its attribute value.
// Samples are immutable for the duration of a run; their order in the slice
// is the deterministic tie-breaker for equidistant neighbors.
type SamplePoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
}

func (s SamplePoint) pos() vec2d.T {
	return vec2d.T{s.X, s.Y}
}

// SampleBounds returns the bounding rect of the sample locations.
func SampleBounds(samples []SamplePoint) (vec2d.Rect, error) {
	if len(samples) == 0 {
		return vec2d.Rect{}, ErrNoSamples
	}
	r := vec2d.Rect{Min: vec2d.MaxVal, Max: vec2d.MinVal}
	for i := range samples {
		p := samples[i].pos()
		r.Extend(&p)
	}
	return r, nil
}
