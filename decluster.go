package geostat

import (
	"fmt"
)

// Decluster thins a dense sample set by averaging the samples that fall into
// each cell of a regular cellX by cellY partition of the data bounds. One
// averaged sample is emitted per occupied cell, preserving sweep order over
// the partition so the output is deterministic.
func Decluster(samples []SamplePoint, cellX, cellY float64) ([]SamplePoint, error) {
	if cellX <= 0 || cellY <= 0 {
		return nil, fmt.Errorf("%w: decluster cell %gx%g", ErrInvalidGridSpec, cellX, cellY)
	}
	bounds, err := SampleBounds(samples)
	if err != nil {
		return nil, err
	}

	nx := int((bounds.Max[0]-bounds.Min[0])/cellX) + 1
	ny := int((bounds.Max[1]-bounds.Min[1])/cellY) + 1

	type bucket struct {
		sx, sy, sv float64
		num        int
	}
	buckets := make([]bucket, nx*ny)

	for i := range samples {
		s := samples[i]
		cx := int((s.X - bounds.Min[0]) / cellX)
		cy := int((s.Y - bounds.Min[1]) / cellY)
		b := &buckets[cy*nx+cx]
		b.sx += s.X
		b.sy += s.Y
		b.sv += s.Value
		b.num++
	}

	out := make([]SamplePoint, 0, len(samples))
	for i := range buckets {
		b := &buckets[i]
		if b.num == 0 {
			continue
		}
		inv := 1 / float64(b.num)
		out = append(out, SamplePoint{X: b.sx * inv, Y: b.sy * inv, Value: b.sv * inv})
	}
	return out, nil
}
