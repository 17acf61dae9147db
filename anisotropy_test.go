package geostat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnisotropicDistanceSymmetry(t *testing.T) {
	a := assert.New(t)

	an := Anisotropy{Azimuth: 30, Ratio: 0.4}
	pts := [][4]float64{
		{0, 0, 3, 4},
		{-2, 7, 5, -1},
		{1.5, 1.5, 1.5, 9},
	}
	for _, p := range pts {
		a.InDelta(an.Distance(p[0], p[1], p[2], p[3]), an.Distance(p[2], p[3], p[0], p[1]), 1e-12)
	}
}

func TestRatioOneIsEuclidean(t *testing.T) {
	a := assert.New(t)

	for _, az := range []float64{0, 17, 45, 90, 133, 270} {
		an := Anisotropy{Azimuth: az, Ratio: 1}
		a.InDelta(5.0, an.Distance(0, 0, 3, 4), 1e-12)
		a.InDelta(math.Hypot(7, 2), an.Distance(-1, -1, 6, 1), 1e-12)
	}
}

func TestMajorMinorAxes(t *testing.T) {
	a := assert.New(t)

	// Azimuth 0: major axis due north. A northward lag is unchanged, an
	// eastward lag is stretched by 1/ratio.
	an := Anisotropy{Azimuth: 0, Ratio: 0.5}
	a.InDelta(10.0, an.Distance(0, 0, 0, 10), 1e-12)
	a.InDelta(20.0, an.Distance(0, 0, 10, 0), 1e-12)

	// Azimuth 90: major axis due east.
	an = Anisotropy{Azimuth: 90, Ratio: 0.5}
	a.InDelta(10.0, an.Distance(0, 0, 10, 0), 1e-9)
	a.InDelta(20.0, an.Distance(0, 0, 0, 10), 1e-9)
}

func TestAnisotropyValidate(t *testing.T) {
	a := assert.New(t)

	a.NoError(Isotropic().Validate())
	a.NoError(Anisotropy{Azimuth: 120, Ratio: 0.25}.Validate())
	a.ErrorIs(Anisotropy{Ratio: 0}.Validate(), ErrInvalidAnisotropy)
	a.ErrorIs(Anisotropy{Ratio: -0.5}.Validate(), ErrInvalidAnisotropy)
	a.ErrorIs(Anisotropy{Ratio: 1.01}.Validate(), ErrInvalidAnisotropy)
}
