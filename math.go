package geostat

import (
	"math"
)

func degToRad(angle float64) float64 {
	return angle * math.Pi / 180
}

func pow2(x float64) float64 {
	return x * x
}

func pow3(x float64) float64 {
	return x * x * x
}
