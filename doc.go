/*
Package linprog provides declarative model-building glue for small linear
programming (LP) and mixed-integer linear programming (MILP) problems.

A model is a set of named decision variables with bounds and an optional
integrality requirement, a linear objective, and a handful of linear
constraints. The package does not solve anything itself: a finished model is
handed to one of the backends under solver/, which delegate the actual
optimization to an off-the-shelf engine (gonum's dense simplex, HiGHS, or
lp_solve) and report back a Solution with a status, an objective value, and
the value of every variable.

As an example, the model of the following problem:

	Maximize:
	  z = 15 x1 + 12 x2
	Subject to:
	  x1 +   x2 <= 45
	2 x1 +   x2 <= 60
	  x1, x2 >= 0

can be expressed like this:

	m := linprog.NewModel("rice", linprog.Maximize)
	x1, _ := m.AddVariable("x1")
	x1.SetObjectiveCoefficient(15)
	x2, _ := m.AddVariable("x2")
	x2.SetObjectiveCoefficient(12)
	m.AddConstraint("land", []*linprog.Variable{x1, x2}, []float64{1, 1}, linprog.LessEq, 45)
	m.AddConstraint("labour", []*linprog.Variable{x1, x2}, []float64{2, 1}, linprog.LessEq, 60)

	sol, err := simplex.Solve(m)
	if err != nil {
		// misuse or solver failure
	}
	fmt.Printf("status = %s, z = %f, x1 = %f\n", sol.Status, sol.Objective, sol.Value(x1))

The worked word problems shipped with this repository live in the problems
package; the cmd/linprog executable builds any of them, optionally prints the
model in CPLEX LP text format, solves it with a chosen backend, and prints
the resulting variable table.
*/
package linprog
