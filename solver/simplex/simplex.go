// Package simplex solves continuous models with gonum's dense simplex
// method. It is the only backend with no cgo dependency, so it always
// builds, but it rejects models that carry integrality requirements.
package simplex

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/whoisorioki/linprog"
)

// Solver runs gonum's lp.Simplex on the standard-form conversion of a model.
// The zero value is ready to use.
type Solver struct {
	// Tol is the tolerance passed to lp.Simplex. Zero selects gonum's
	// default.
	Tol float64
}

// Solve solves the model with a zero-valued Solver.
func Solve(m *linprog.Model) (*linprog.Solution, error) {
	return Solver{}.Solve(m)
}

// Solve converts the model to standard form, runs the simplex method, and
// maps the outcome onto a Solution. Infeasible and unbounded problems are
// reported through the solution status, not through the error.
func (s Solver) Solve(m *linprog.Model) (*linprog.Solution, error) {
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "simplex")
	}
	if m.IsMIP() {
		return nil, errors.Errorf("simplex: model %s has integer variables, use a MILP backend", m.Name())
	}

	df, err := m.DenseForm()
	if err != nil {
		return nil, errors.Wrap(err, "simplex")
	}

	// lp.Simplex minimizes; flip the costs for maximization problems and
	// flip the optimum back below.
	c := append([]float64(nil), df.C...)
	if m.Direction() == linprog.Maximize {
		for i := range c {
			c[i] = -c[i]
		}
	}

	// lp.Convert compares its matrix arguments against untyped nil, so a
	// typed nil *mat.Dense must not be passed through directly.
	var g, a mat.Matrix
	if df.G != nil {
		g = df.G
	}
	if df.A != nil {
		a = df.A
	}
	cs, as, bs := lp.Convert(c, g, df.H, a, df.B)
	opt, xs, err := lp.Simplex(cs, as, bs, s.Tol, nil)
	switch err {
	case nil:
	case lp.ErrInfeasible:
		return linprog.NewSolution(m, linprog.StatusInfeasible, 0, nil)
	case lp.ErrUnbounded:
		return linprog.NewSolution(m, linprog.StatusUnbounded, 0, nil)
	default:
		return nil, errors.Wrapf(err, "simplex: solving model %s", m.Name())
	}

	// The standard-form vector is laid out as [xp, xn, slack]; the original
	// variables are xp - xn.
	n := m.NumVariables()
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = xs[i] - xs[n+i]
	}
	if m.Direction() == linprog.Maximize {
		opt = -opt
	}
	return linprog.NewSolution(m, linprog.StatusOptimal, opt, values)
}
