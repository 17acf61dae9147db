package geostat

import (
	"fmt"
	"math"
)

// Anisotropy parameterizes a direction-dependent range. Azimuth is the
// major-axis direction in degrees measured clockwise from north (+Y); Ratio
// is the minor/major range ratio in (0, 1]. The zero value is treated as
// isotropic by Model.Validate.
type Anisotropy struct {
	Azimuth float64 `json:"azimuth"`
	Ratio   float64 `json:"ratio"`
}

// Isotropic is the identity metric: effective distance equals Euclidean
// distance in every direction.
func Isotropic() Anisotropy {
	return Anisotropy{Ratio: 1}
}

func (a Anisotropy) Validate() error {
	if a.Ratio <= 0 || a.Ratio > 1 {
		return fmt.Errorf("%w: ratio=%g", ErrInvalidAnisotropy, a.Ratio)
	}
	return nil
}

// Distance returns the effective separation between two points: the
// separation vector is rotated into the major/minor frame and the minor
// component stretched by 1/Ratio, so that a range along the major axis is
// isotropic in the transformed space. Symmetric in its arguments.
func (a Anisotropy) Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	if a.Ratio == 1 {
		return math.Hypot(dx, dy)
	}
	rad := degToRad(a.Azimuth)
	sin, cos := math.Sincos(rad)
	major := dx*sin + dy*cos
	minor := dx*cos - dy*sin
	return math.Hypot(major, minor/a.Ratio)
}
