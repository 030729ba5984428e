package problems

import (
	"github.com/pkg/errors"

	"github.com/whoisorioki/linprog"
)

// FurnitureMix builds the manufacturing mix problem.
//
// A workshop makes tables (profit 100) and chairs (profit 85). A table uses
// 12 board-feet of timber, 9 finishing hours, and 30 minutes of assembly
// line time; a chair uses 24 board-feet, 5 finishing hours, and 30 minutes.
// Per week, 480 board-feet, 180 finishing hours, and 720 line minutes are
// available. What product mix maximizes profit?
//
// The optimum makes 15 tables and 9 chairs for a profit of 2265.
func FurnitureMix() (*linprog.Model, error) {
	products := []struct {
		name   string
		profit float64
	}{
		{"tables", 100},
		{"chairs", 85},
	}
	resources := []struct {
		name  string
		usage []float64
		avail float64
	}{
		{"timber", []float64{12, 24}, 480},
		{"finishing", []float64{9, 5}, 180},
		{"assembly", []float64{30, 30}, 720},
	}

	m := linprog.NewModel("furniture_mix", linprog.Maximize)
	vars := make([]*linprog.Variable, len(products))
	for i, p := range products {
		v, err := m.AddVariable(p.name)
		if err != nil {
			return nil, errors.Wrap(err, "furniture mix")
		}
		v.SetObjectiveCoefficient(p.profit)
		vars[i] = v
	}
	for _, r := range resources {
		if err := m.AddConstraint(r.name, vars, r.usage, linprog.LessEq, r.avail); err != nil {
			return nil, errors.Wrap(err, "furniture mix")
		}
	}
	return m, nil
}
