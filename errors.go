package geostat

import "errors"

// Setup errors abort a run before any estimation starts; ErrNoNeighbors and
// ErrSingularSystem are per-cell conditions that the driver records on the
// affected cell without stopping the run.
var (
	ErrInvalidGridSpec        = errors.New("geostat: invalid grid spec")
	ErrInvalidAnisotropy      = errors.New("geostat: invalid anisotropy")
	ErrInvalidStructureParams = errors.New("geostat: invalid variogram structure")
	ErrInvalidParams          = errors.New("geostat: invalid interpolation params")
	ErrNoSamples              = errors.New("geostat: no samples")
	ErrNoNeighbors            = errors.New("geostat: no neighbors in search")
	ErrEmptyNeighborhood      = errors.New("geostat: empty neighborhood")
	ErrSingularSystem         = errors.New("geostat: singular kriging system")
)
