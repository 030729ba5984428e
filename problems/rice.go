package problems

import (
	"github.com/pkg/errors"

	"github.com/whoisorioki/linprog"
)

// RiceAllocation builds the crop allocation problem.
//
// A farm has 45 hectares available for two rice varieties. A hectare of the
// long-grain variety earns 15 (thousand shillings) and takes 2 units of
// labour; a hectare of the short-grain variety earns 12 and takes 1 unit.
// Only 60 units of labour are available for the season. How many hectares of
// each variety maximize earnings?
//
// The optimum plants 15 hectares of long grain and 30 of short grain for a
// profit of 585.
func RiceAllocation() (*linprog.Model, error) {
	m := linprog.NewModel("rice_allocation", linprog.Maximize)

	long, err := m.AddVariable("long_grain")
	if err != nil {
		return nil, errors.Wrap(err, "rice allocation")
	}
	long.SetObjectiveCoefficient(15)
	short, err := m.AddVariable("short_grain")
	if err != nil {
		return nil, errors.Wrap(err, "rice allocation")
	}
	short.SetObjectiveCoefficient(12)

	vars := []*linprog.Variable{long, short}
	if err := m.AddConstraint("land", vars, []float64{1, 1}, linprog.LessEq, 45); err != nil {
		return nil, errors.Wrap(err, "rice allocation")
	}
	if err := m.AddConstraint("labour", vars, []float64{2, 1}, linprog.LessEq, 60); err != nil {
		return nil, errors.Wrap(err, "rice allocation")
	}
	return m, nil
}
