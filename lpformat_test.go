package linprog

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLPStringMaximize(t *testing.T) {
	m := NewModel("rice_allocation", Maximize)
	long, err := m.AddVariable("long_grain")
	require.NoError(t, err)
	long.SetObjectiveCoefficient(15)
	short, err := m.AddVariable("short_grain")
	require.NoError(t, err)
	short.SetObjectiveCoefficient(12)

	vars := []*Variable{long, short}
	require.NoError(t, m.AddConstraint("land", vars, []float64{1, 1}, LessEq, 45))
	require.NoError(t, m.AddConstraint("labour", vars, []float64{2, 1}, LessEq, 60))

	want := `\ Problem: rice_allocation
Maximize
 obj: 15 long_grain + 12 short_grain
Subject To
 land: 1 long_grain + 1 short_grain <= 45
 labour: 2 long_grain + 1 short_grain <= 60
End
`
	if diff := cmp.Diff(want, m.LPString()); diff != "" {
		t.Errorf("LPString mismatch (-want +got):\n%s", diff)
	}
}

func TestLPStringMixedIntegerAndBounds(t *testing.T) {
	m := NewModel("mixed", Minimize)
	x, err := m.AddDefinedVariable("x", ContinuousVariable, -2.5, math.Inf(-1), math.Inf(1))
	require.NoError(t, err)
	y, err := m.AddDefinedVariable("y", BinaryVariable, 3, 0, 1)
	require.NoError(t, err)
	n, err := m.AddDefinedVariable("n", IntegerVariable, 0, 2, 7)
	require.NoError(t, err)

	require.NoError(t, m.AddConstraint("", []*Variable{x, y}, []float64{1, -1}, GreaterEq, 4))
	require.NoError(t, m.AddConstraint("cap", []*Variable{n}, []float64{1}, Equal, 5))

	want := `\ Problem: mixed
Minimize
 obj: -2.5 x + 3 y
Subject To
 c0: 1 x - 1 y >= 4
 cap: 1 n = 5
Bounds
 x free
 2 <= n <= 7
Generals
 n
Binaries
 y
End
`
	if diff := cmp.Diff(want, m.LPString()); diff != "" {
		t.Errorf("LPString mismatch (-want +got):\n%s", diff)
	}
}

func TestLPStringZeroObjective(t *testing.T) {
	m := NewModel("feasibility", Minimize)
	x, err := m.AddVariable("x")
	require.NoError(t, err)
	require.NoError(t, m.AddConstraint("row", []*Variable{x}, []float64{1}, LessEq, 1))

	// LP format needs at least one objective term even when all costs are 0.
	want := `\ Problem: feasibility
Minimize
 obj: 0 x
Subject To
 row: 1 x <= 1
End
`
	if diff := cmp.Diff(want, m.LPString()); diff != "" {
		t.Errorf("LPString mismatch (-want +got):\n%s", diff)
	}
}
