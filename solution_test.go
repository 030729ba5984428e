package linprog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRiceModel(t *testing.T) (*Model, *Variable, *Variable) {
	t.Helper()
	m := NewModel("rice_allocation", Maximize)
	long, err := m.AddVariable("long_grain")
	require.NoError(t, err)
	short, err := m.AddVariable("short_grain")
	require.NoError(t, err)
	require.NoError(t, m.AddConstraint("land", []*Variable{long, short}, []float64{1, 1}, LessEq, 45))
	return m, long, short
}

func TestNewSolution(t *testing.T) {
	m, long, short := buildRiceModel(t)

	sol, err := NewSolution(m, StatusOptimal, 585, []float64{15, 30})
	require.NoError(t, err)

	assert.Equal(t, StatusOptimal, sol.Status)
	assert.Equal(t, 585.0, sol.Objective)
	assert.Equal(t, 15.0, sol.Value(long))
	assert.Equal(t, 30.0, sol.Value(short))
	assert.Equal(t, map[string]float64{"long_grain": 15, "short_grain": 30}, sol.VariableValues())
}

func TestNewSolutionNilValues(t *testing.T) {
	m, long, _ := buildRiceModel(t)

	sol, err := NewSolution(m, StatusInfeasible, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sol.Value(long))
}

func TestNewSolutionLengthMismatch(t *testing.T) {
	m, _, _ := buildRiceModel(t)
	_, err := NewSolution(m, StatusOptimal, 1, []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestSolutionValueForeignVariable(t *testing.T) {
	m, _, _ := buildRiceModel(t)
	sol, err := NewSolution(m, StatusOptimal, 585, []float64{15, 30})
	require.NoError(t, err)

	other := NewModel("other", Maximize)
	z, err := other.AddVariable("z")
	require.NoError(t, err)
	assert.Equal(t, 0.0, sol.Value(z))
}

func TestSolutionValuesAreCopied(t *testing.T) {
	m, long, _ := buildRiceModel(t)
	values := []float64{15, 30}
	sol, err := NewSolution(m, StatusOptimal, 585, values)
	require.NoError(t, err)

	values[0] = 99
	assert.Equal(t, 15.0, sol.Value(long))
}

func TestWriteTableOptimal(t *testing.T) {
	m, _, _ := buildRiceModel(t)
	sol, err := NewSolution(m, StatusOptimal, 585, []float64{15, 30})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, sol.WriteTable(&sb))
	out := sb.String()

	assert.Contains(t, out, "STATUS: optimal\n")
	assert.Contains(t, out, "OBJECTIVE FUNCTION = 585.000000\n")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "long_grain")
	assert.Contains(t, out, "15.000000")
	assert.Contains(t, out, "short_grain")
	assert.Contains(t, out, "30.000000")
}

func TestWriteTableNonOptimal(t *testing.T) {
	m, _, _ := buildRiceModel(t)
	sol, err := NewSolution(m, StatusInfeasible, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, "STATUS: infeasible\n", sol.String())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "not solved", StatusNotSolved.String())
	assert.Equal(t, "optimal", StatusOptimal.String())
	assert.Equal(t, "infeasible", StatusInfeasible.String())
	assert.Equal(t, "unbounded", StatusUnbounded.String())
}
