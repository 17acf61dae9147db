package geostat

import (
	"fmt"
	"math"
)

// idwEpsilon damps the weight of near-coincident samples so the powered
// inverse distance never divides by zero. An exact zero-distance hit
// short-circuits before the epsilon matters.
const idwEpsilon = 1e-12

// IDW computes the inverse-distance-weighted estimate at (x, y) from the
// selected neighbors. Weights are 1/(d+eps)^power, normalized to sum to 1.
// A neighbor at exactly zero distance returns that sample's value.
func IDW(x, y, power float64, samples []SamplePoint, neighbors []Neighbor) (float64, error) {
	if len(neighbors) == 0 {
		return 0, ErrNoNeighbors
	}
	if power <= 0 {
		return 0, fmt.Errorf("%w: power=%g", ErrInvalidParams, power)
	}
	var sum, wsum float64
	for _, nb := range neighbors {
		if nb.Distance == 0 {
			return samples[nb.Index].Value, nil
		}
		w := 1 / math.Pow(nb.Distance+idwEpsilon, power)
		sum += w * samples[nb.Index].Value
		wsum += w
	}
	return sum / wsum, nil
}
