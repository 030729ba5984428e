// Package lpsolve solves LP and MILP models with the lp_solve library
// (branch-and-bound) through the golpa cgo bindings. The liblpsolve55
// shared library must be installed for this package to link.
package lpsolve

import (
	"context"
	"math"
	"strings"

	"github.com/costela/golpa"
	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/whoisorioki/linprog"
)

// Solve solves the model with lp_solve.
func Solve(m *linprog.Model) (*linprog.Solution, error) {
	return SolveContext(context.Background(), m)
}

// SolveContext solves the model with lp_solve. If the context is cancelled
// or times out while the branch-and-bound search is running, the search is
// aborted and the context error is returned.
func SolveContext(ctx context.Context, m *linprog.Model) (*linprog.Solution, error) {
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "lpsolve")
	}

	dir := golpa.Minimize
	if m.Direction() == linprog.Maximize {
		dir = golpa.Maximize
	}
	gm, err := golpa.NewModel(m.Name(), dir)
	if err != nil {
		return nil, errors.Wrapf(err, "lpsolve: creating model %s", m.Name())
	}

	vars := m.Variables()
	gvars := make([]*golpa.Variable, len(vars))
	for i, v := range vars {
		typ := golpa.ContinuousVariable
		switch v.Type() {
		case linprog.IntegerVariable:
			typ = golpa.IntegerVariable
		case linprog.BinaryVariable:
			typ = golpa.BinaryVariable
		}
		lower, upper := v.Bounds()
		gv, err := gm.AddDefinedVariable(v.Name(), typ, v.Cost(), lower, upper)
		if err != nil {
			return nil, errors.Wrapf(err, "lpsolve: adding variable %s", v.Name())
		}
		gvars[i] = gv
	}

	for _, c := range m.Constraints() {
		rowVars := make([]*golpa.Variable, len(c.Vars))
		for i, v := range c.Vars {
			rowVars[i] = gvars[v.Index()]
		}
		lower, upper := math.Inf(-1), math.Inf(1)
		switch c.Sense {
		case linprog.LessEq:
			upper = c.RHS
		case linprog.GreaterEq:
			lower = c.RHS
		case linprog.Equal:
			lower, upper = c.RHS, c.RHS
		}
		if err := gm.AddConstraint(lower, upper, rowVars, c.Coefs); err != nil {
			return nil, errors.Wrapf(err, "lpsolve: adding constraint %s", c.Name)
		}
	}

	res, err := gm.SolveWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrapf(err, "lpsolve: model %s aborted", m.Name())
		}
		// lp_solve reports infeasible/unbounded models through the solve
		// error rather than a result status.
		msg := err.Error()
		switch {
		case strings.Contains(msg, "infeasible"):
			return linprog.NewSolution(m, linprog.StatusInfeasible, 0, nil)
		case strings.Contains(msg, "unbounded"):
			return linprog.NewSolution(m, linprog.StatusUnbounded, 0, nil)
		default:
			return nil, errors.Wrapf(err, "lpsolve: solving model %s", m.Name())
		}
	}
	log.V(1).Infof("lpsolve: model %s finished with status %v", m.Name(), res.Status())

	if res.Status() != golpa.SolutionOptimal {
		return linprog.NewSolution(m, linprog.StatusNotSolved, 0, nil)
	}
	values := make([]float64, len(vars))
	for i, gv := range gvars {
		values[i] = res.Value(gv)
	}
	return linprog.NewSolution(m, linprog.StatusOptimal, res.ObjectiveValue(), values)
}
