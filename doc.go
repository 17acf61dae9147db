// Package geostat is a 2D geostatistical interpolation engine. It estimates
// a regular grid of values from scattered samples using inverse-distance
// weighting or ordinary kriging with a nested, anisotropic variogram model.
//
// The estimation core is a pure function of its inputs: the sample set,
// the variogram model and the grid spec are read-only for the duration of a
// run, and every cell is estimated independently, so the driver fans the
// grid out over a worker pool.
package geostat
