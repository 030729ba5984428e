package problems

import (
	"github.com/pkg/errors"

	"github.com/whoisorioki/linprog"
)

// Knapsack builds the 0/1 knapsack problem.
//
// Three items with values 60, 100, and 120 weigh 10, 20, and 30 kilograms.
// The knapsack carries at most 50 kilograms; items cannot be split. Which
// items maximize the carried value?
//
// The optimum takes items 2 and 3 for a value of 220. The LP relaxation
// takes item 3 fractionally and reaches 240.
func Knapsack() (*linprog.Model, error) {
	items := []struct {
		name   string
		value  float64
		weight float64
	}{
		{"item_1", 60, 10},
		{"item_2", 100, 20},
		{"item_3", 120, 30},
	}
	const capacity = 50

	m := linprog.NewModel("knapsack", linprog.Maximize)
	vars := make([]*linprog.Variable, len(items))
	weights := make([]float64, len(items))
	for i, it := range items {
		v, err := m.AddDefinedVariable(it.name, linprog.BinaryVariable, it.value, 0, 1)
		if err != nil {
			return nil, errors.Wrap(err, "knapsack")
		}
		vars[i] = v
		weights[i] = it.weight
	}
	if err := m.AddConstraint("capacity", vars, weights, linprog.LessEq, capacity); err != nil {
		return nil, errors.Wrap(err, "knapsack")
	}
	return m, nil
}
