package lpsolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whoisorioki/linprog"
	"github.com/whoisorioki/linprog/problems"
)

const tol = 1e-6

func TestSolveRiceAllocation(t *testing.T) {
	m, err := problems.RiceAllocation()
	require.NoError(t, err)

	sol, err := Solve(m)
	require.NoError(t, err)
	require.Equal(t, linprog.StatusOptimal, sol.Status)
	assert.InDelta(t, 585, sol.Objective, tol)

	values := sol.VariableValues()
	assert.InDelta(t, 15, values["long_grain"], tol)
	assert.InDelta(t, 30, values["short_grain"], tol)
}

func TestSolveKnapsack(t *testing.T) {
	m, err := problems.Knapsack()
	require.NoError(t, err)

	sol, err := Solve(m)
	require.NoError(t, err)
	require.Equal(t, linprog.StatusOptimal, sol.Status)
	assert.InDelta(t, 220, sol.Objective, tol)
}

func TestSolveContext(t *testing.T) {
	m, err := problems.WorkerAssignment()
	require.NoError(t, err)

	sol, err := SolveContext(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, linprog.StatusOptimal, sol.Status)
	assert.InDelta(t, 9, sol.Objective, tol)
}

func TestSolveInfeasible(t *testing.T) {
	m := linprog.NewModel("test", linprog.Maximize)
	x, err := m.AddVariable("x")
	require.NoError(t, err)
	x.SetObjectiveCoefficient(1)
	require.NoError(t, m.AddConstraint("low", []*linprog.Variable{x}, []float64{1}, linprog.LessEq, 1))
	require.NoError(t, m.AddConstraint("high", []*linprog.Variable{x}, []float64{1}, linprog.GreaterEq, 2))

	sol, err := Solve(m)
	require.NoError(t, err)
	assert.Equal(t, linprog.StatusInfeasible, sol.Status)
}

func TestSolveRejectsEmptyModel(t *testing.T) {
	m := linprog.NewModel("empty", linprog.Maximize)
	_, err := Solve(m)
	assert.Error(t, err)
}
