package problems

import (
	"math"

	"github.com/pkg/errors"

	"github.com/whoisorioki/linprog"
)

// ProductionBatches builds the integer product-mix problem.
//
// A plant produces two goods in whole batches only. A batch of the first
// earns 13 and needs 1 machine-hour and 5 labour-hours; a batch of the
// second earns 8 and needs 2 machine-hours and 2 labour-hours. Per day,
// 10 machine-hours and 20 labour-hours are available.
//
// The integer optimum is 2 batches of the first good and 4 of the second,
// earning 58. The LP relaxation lands at (2.5, 3.75) for 62.5, which is why
// the integrality requirement matters.
func ProductionBatches() (*linprog.Model, error) {
	m := linprog.NewModel("production_batches", linprog.Maximize)

	first, err := m.AddDefinedVariable("batches_a", linprog.IntegerVariable, 13, 0, math.Inf(1))
	if err != nil {
		return nil, errors.Wrap(err, "production batches")
	}
	second, err := m.AddDefinedVariable("batches_b", linprog.IntegerVariable, 8, 0, math.Inf(1))
	if err != nil {
		return nil, errors.Wrap(err, "production batches")
	}

	vars := []*linprog.Variable{first, second}
	if err := m.AddConstraint("machine_hours", vars, []float64{1, 2}, linprog.LessEq, 10); err != nil {
		return nil, errors.Wrap(err, "production batches")
	}
	if err := m.AddConstraint("labour_hours", vars, []float64{5, 2}, linprog.LessEq, 20); err != nil {
		return nil, errors.Wrap(err, "production batches")
	}
	return m, nil
}
