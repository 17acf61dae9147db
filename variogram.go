package geostat

import (
	"fmt"
	"math"
)

// ModelType names a variogram structure shape.
type ModelType string

const (
	Nugget      ModelType = "nugget"
	Exponential ModelType = "exponential"
	Spherical   ModelType = "spherical"
	Gaussian    ModelType = "gaussian"
)

// Structure is one nested variogram component. Ranged structures carry their
// own anisotropy; a Nugget structure ignores Range and Anisotropy and
// contributes its partial sill at any non-zero separation.
type Structure struct {
	Type        ModelType  `json:"type"`
	PartialSill float64    `json:"sill"`
	Range       float64    `json:"range"`
	Anisotropy  Anisotropy `json:"anisotropy"`
}

func (s Structure) Validate() error {
	if s.PartialSill < 0 {
		return fmt.Errorf("%w: partial sill=%g", ErrInvalidStructureParams, s.PartialSill)
	}
	switch s.Type {
	case Nugget:
		return nil
	case Exponential, Spherical, Gaussian:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidStructureParams, s.Type)
	}
	if s.Range <= 0 {
		return fmt.Errorf("%w: range=%g", ErrInvalidStructureParams, s.Range)
	}
	return s.Anisotropy.Validate()
}

// shape evaluates the normalized variogram shape at d = effective/range.
// The exponential and gaussian forms use the practical-range convention:
// ~95% of the sill is reached at d = 1.
func (s Structure) shape(d float64) float64 {
	switch s.Type {
	case Exponential:
		return 1 - math.Exp(-3*d)
	case Spherical:
		if d >= 1 {
			return 1
		}
		return 1.5*d - 0.5*pow3(d)
	case Gaussian:
		return 1 - math.Exp(-3*pow2(d))
	}
	return 0
}

// Model is a nested variogram: a nugget plus an ordered sequence of ranged
// structures. The total sill is Nugget plus the sum of partial sills,
// typically 1.0 for a normal-score transformed variable.
type Model struct {
	Nugget     float64     `json:"nugget"`
	Structures []Structure `json:"structures"`
}

// NewModel builds and validates a model.
func NewModel(nugget float64, structures ...Structure) (*Model, error) {
	m := &Model{Nugget: nugget, Structures: structures}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks every structure. A zero-value Anisotropy on a ranged
// structure is normalized to isotropic rather than rejected.
func (m *Model) Validate() error {
	if m.Nugget < 0 {
		return fmt.Errorf("%w: nugget=%g", ErrInvalidStructureParams, m.Nugget)
	}
	for i := range m.Structures {
		s := &m.Structures[i]
		if s.Type != Nugget && s.Anisotropy == (Anisotropy{}) {
			s.Anisotropy = Isotropic()
		}
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Sill is the total variance the model approaches at large separation.
func (m *Model) Sill() float64 {
	sill := m.Nugget
	for i := range m.Structures {
		sill += m.Structures[i].PartialSill
	}
	return sill
}

// Gamma evaluates the semivariance for the separation between two points.
// Coincident points yield exactly 0 regardless of nugget.
func (m *Model) Gamma(x1, y1, x2, y2 float64) float64 {
	if x1 == x2 && y1 == y2 {
		return 0
	}
	g := m.Nugget
	for i := range m.Structures {
		s := &m.Structures[i]
		if s.Type == Nugget {
			g += s.PartialSill
			continue
		}
		h := s.Anisotropy.Distance(x1, y1, x2, y2)
		g += s.PartialSill * s.shape(h/s.Range)
	}
	return g
}

// Cov is the covariance counterpart, Sill() - Gamma(h). Coincident points
// yield exactly the total sill.
func (m *Model) Cov(x1, y1, x2, y2 float64) float64 {
	return m.Sill() - m.Gamma(x1, y1, x2, y2)
}
