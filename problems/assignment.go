package problems

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/whoisorioki/linprog"
)

// WorkerAssignment builds the workforce assignment problem.
//
// Three workers must each take exactly one of three tasks, and every task
// must be covered. The hours each worker needs per task are:
//
//	          T1  T2  T3
//	worker 1   9   2   7
//	worker 2   6   4   3
//	worker 3   5   8   1
//
// Which assignment minimizes total hours?
//
// The optimum assigns worker 1 to T2, worker 2 to T1, and worker 3 to T3
// for a total of 9 hours.
func WorkerAssignment() (*linprog.Model, error) {
	hours := [][]float64{
		{9, 2, 7},
		{6, 4, 3},
		{5, 8, 1},
	}
	n := len(hours)

	m := linprog.NewModel("worker_assignment", linprog.Minimize)

	pick := make([][]*linprog.Variable, n)
	for i := range hours {
		pick[i] = make([]*linprog.Variable, n)
		for j := range hours[i] {
			name := fmt.Sprintf("assign_w%d_t%d", i+1, j+1)
			v, err := m.AddDefinedVariable(name, linprog.BinaryVariable, hours[i][j], 0, 1)
			if err != nil {
				return nil, errors.Wrap(err, "worker assignment")
			}
			pick[i][j] = v
		}
	}

	ones := []float64{1, 1, 1}
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("one_task_w%d", i+1)
		if err := m.AddConstraint(name, pick[i], ones, linprog.Equal, 1); err != nil {
			return nil, errors.Wrap(err, "worker assignment")
		}
	}
	for j := 0; j < n; j++ {
		col := []*linprog.Variable{pick[0][j], pick[1][j], pick[2][j]}
		name := fmt.Sprintf("one_worker_t%d", j+1)
		if err := m.AddConstraint(name, col, ones, linprog.Equal, 1); err != nil {
			return nil, errors.Wrap(err, "worker assignment")
		}
	}
	return m, nil
}
