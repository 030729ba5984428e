package problems

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/whoisorioki/linprog"
)

// Transportation builds the distribution problem.
//
// Two plants supply three markets. Plant capacities are 40 and 45 units;
// market demands are 25, 30, and 30 units and must be met exactly. Shipping
// one unit costs:
//
//	          M1  M2  M3
//	plant 1    4   6   9
//	plant 2    5   3   7
//
// Which shipping plan meets all demand at minimum cost?
//
// The optimum ships 25+15 units from plant 1, 30+15 from plant 2, for a
// total cost of 430.
func Transportation() (*linprog.Model, error) {
	supply := []float64{40, 45}
	demand := []float64{25, 30, 30}
	cost := [][]float64{
		{4, 6, 9},
		{5, 3, 7},
	}

	m := linprog.NewModel("transportation", linprog.Minimize)

	// One shipment variable per plant/market pair.
	ship := make([][]*linprog.Variable, len(supply))
	for i := range supply {
		ship[i] = make([]*linprog.Variable, len(demand))
		for j := range demand {
			name := fmt.Sprintf("ship_p%d_m%d", i+1, j+1)
			v, err := m.AddVariable(name)
			if err != nil {
				return nil, errors.Wrap(err, "transportation")
			}
			v.SetObjectiveCoefficient(cost[i][j])
			ship[i][j] = v
		}
	}

	for i, cap := range supply {
		row := make([]*linprog.Variable, len(demand))
		coefs := make([]float64, len(demand))
		for j := range demand {
			row[j] = ship[i][j]
			coefs[j] = 1
		}
		name := fmt.Sprintf("supply_p%d", i+1)
		if err := m.AddConstraint(name, row, coefs, linprog.LessEq, cap); err != nil {
			return nil, errors.Wrap(err, "transportation")
		}
	}
	for j, want := range demand {
		col := make([]*linprog.Variable, len(supply))
		coefs := make([]float64, len(supply))
		for i := range supply {
			col[i] = ship[i][j]
			coefs[i] = 1
		}
		name := fmt.Sprintf("demand_m%d", j+1)
		if err := m.AddConstraint(name, col, coefs, linprog.Equal, want); err != nil {
			return nil, errors.Wrap(err, "transportation")
		}
	}
	return m, nil
}
