package geostat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Prediction is one ordinary-kriging estimate. Variance is the model-based
// estimation variance; for a valid positive-definite model it lies in
// [0, total sill], and the driver flags values outside that range.
type Prediction struct {
	Value    float64
	Variance float64
}

// Kriging solves local ordinary-kriging systems against a fixed variogram
// model. It reuses scratch buffers between calls, so one instance must not
// be shared across goroutines; the driver gives each worker its own.
type Kriging struct {
	model *Model
	sill  float64

	a   *mat.Dense
	b   *mat.VecDense
	sol *mat.VecDense
	lu  mat.LU
	w   []float64
}

func NewKriging(model *Model) (*Kriging, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil model", ErrInvalidStructureParams)
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return &Kriging{model: model, sill: model.Sill()}, nil
}

// Sill returns the model's total sill.
func (k *Kriging) Sill() float64 {
	return k.sill
}

// Estimate predicts the value at (x, y) from the neighbor subset. The
// weights satisfy the unbiasedness constraint (they sum to 1), enforced by
// the Lagrange-augmented system.
func (k *Kriging) Estimate(x, y float64, samples []SamplePoint, neighbors []Neighbor) (Prediction, error) {
	if len(neighbors) == 0 {
		return Prediction{}, ErrEmptyNeighborhood
	}
	if len(neighbors) == 1 {
		// One datum is reproduced exactly with the simple-kriging variance;
		// the augmented system would double-count the Lagrange term here.
		sp := samples[neighbors[0].Index]
		return Prediction{
			Value:    sp.Value,
			Variance: k.sill - k.model.Cov(x, y, sp.X, sp.Y),
		}, nil
	}
	w, mu, err := k.weights(x, y, samples, neighbors)
	if err != nil {
		return Prediction{}, err
	}
	var value, reduction float64
	for i, nb := range neighbors {
		sp := samples[nb.Index]
		value += w[i] * sp.Value
		reduction += w[i] * k.model.Cov(x, y, sp.X, sp.Y)
	}
	return Prediction{Value: value, Variance: k.sill - reduction - mu}, nil
}

// weights solves the augmented system
//
//	[C 1; 1^T 0] [lambda; mu] = [c0; 1]
//
// where C is the neighbor covariance matrix and c0 the covariances to the
// estimation point. The returned slice is reused by the next call.
func (k *Kriging) weights(x, y float64, samples []SamplePoint, neighbors []Neighbor) ([]float64, float64, error) {
	n := len(neighbors)
	m := n + 1
	if k.a == nil || k.a.RawMatrix().Rows != m {
		k.a = mat.NewDense(m, m, nil)
		k.b = mat.NewVecDense(m, nil)
		k.sol = mat.NewVecDense(m, nil)
	}
	for i := 0; i < n; i++ {
		si := samples[neighbors[i].Index]
		k.a.Set(i, i, k.sill)
		for j := i + 1; j < n; j++ {
			sj := samples[neighbors[j].Index]
			c := k.model.Cov(si.X, si.Y, sj.X, sj.Y)
			k.a.Set(i, j, c)
			k.a.Set(j, i, c)
		}
		k.a.Set(i, n, 1)
		k.a.Set(n, i, 1)
		k.b.SetVec(i, k.model.Cov(x, y, si.X, si.Y))
	}
	k.a.Set(n, n, 0)
	k.b.SetVec(n, 1)

	// The augmented matrix is symmetric but indefinite, so LU with pivoting
	// rather than Cholesky. An exactly singular system (collocated
	// duplicates, degenerate model) surfaces as an infinite condition number
	// and fails the cell; a finite-condition warning still returns its
	// solution.
	k.lu.Factorize(k.a)
	if err := k.lu.SolveVecTo(k.sol, false, k.b); err != nil {
		cond, ok := err.(mat.Condition)
		if !ok || math.IsInf(float64(cond), 1) {
			return nil, 0, fmt.Errorf("%w: %v", ErrSingularSystem, err)
		}
	}
	if cap(k.w) < n {
		k.w = make([]float64, n)
	}
	w := k.w[:n]
	for i := 0; i < n; i++ {
		w[i] = k.sol.AtVec(i)
	}
	return w, k.sol.AtVec(n), nil
}
