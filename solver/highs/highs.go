// Package highs solves LP and MILP models with the HiGHS library
// (simplex and branch-and-cut) through the gohighs cgo bindings.
package highs

import (
	"math"

	gohighs "github.com/bartolsthoorn/gohighs/highs"
	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/whoisorioki/linprog"
)

// Solve maps the model onto a gohighs model, runs HiGHS, and folds the
// HiGHS model status into the unified solution status. Extra options are
// passed through to gohighs; solver output is off unless overridden.
func Solve(m *linprog.Model, opts ...gohighs.SolveOption) (*linprog.Solution, error) {
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "highs")
	}

	vars := m.Variables()
	hm := gohighs.Model{
		Maximize: m.Direction() == linprog.Maximize,
		ColCosts: make([]float64, len(vars)),
		ColLower: make([]float64, len(vars)),
		ColUpper: make([]float64, len(vars)),
	}
	for i, v := range vars {
		hm.ColCosts[i] = v.Cost()
		hm.ColLower[i], hm.ColUpper[i] = v.Bounds()
	}
	if m.IsMIP() {
		hm.VarTypes = make([]gohighs.VariableType, len(vars))
		for i, v := range vars {
			if v.Type() != linprog.ContinuousVariable {
				hm.VarTypes[i] = gohighs.Integer
			}
		}
	}

	for _, c := range m.Constraints() {
		row := make([]float64, len(vars))
		for i, v := range c.Vars {
			row[v.Index()] += c.Coefs[i]
		}
		switch c.Sense {
		case linprog.LessEq:
			hm.AddDenseRow(math.Inf(-1), row, c.RHS)
		case linprog.GreaterEq:
			hm.AddDenseRow(c.RHS, row, math.Inf(1))
		case linprog.Equal:
			hm.AddDenseRow(c.RHS, row, c.RHS)
		}
	}

	opts = append([]gohighs.SolveOption{gohighs.WithOutput(false)}, opts...)
	sol, err := hm.Solve(opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "highs: solving model %s", m.Name())
	}
	log.V(1).Infof("highs: model %s finished with status %s", m.Name(), sol.Status)

	switch {
	case sol.IsOptimal():
		return linprog.NewSolution(m, linprog.StatusOptimal, sol.Objective, sol.ColValues)
	case sol.Status == gohighs.ModelStatusInfeasible,
		sol.Status == gohighs.ModelStatusUnboundedOrInfeasible:
		return linprog.NewSolution(m, linprog.StatusInfeasible, 0, nil)
	case sol.Status == gohighs.ModelStatusUnbounded:
		return linprog.NewSolution(m, linprog.StatusUnbounded, 0, nil)
	default:
		return linprog.NewSolution(m, linprog.StatusNotSolved, 0, nil)
	}
}
