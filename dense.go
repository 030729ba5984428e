package linprog

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DenseForm is the model flattened to the dense general form consumed by the
// gonum simplex backend:
//
//	minimize (or maximize) C^T x
//	s.t.                   G x <= H
//	                       A x  = B
//
// Variable bounds are folded into G as extra rows, including -x_i <= 0 rows
// for the default non-negativity, because the standard-form conversion
// downstream treats every variable as free. C carries the objective
// coefficients as authored; the direction is not applied here.
type DenseForm struct {
	C []float64
	G *mat.Dense
	H []float64
	A *mat.Dense
	B []float64
}

// DenseForm flattens the model. The column order matches Variables().
func (m *Model) DenseForm() (*DenseForm, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	n := len(m.vars)
	df := &DenseForm{C: make([]float64, n)}
	for i, v := range m.vars {
		df.C[i] = v.cost
	}

	var ineq, eq [][]float64
	var h, b []float64

	for _, c := range m.cons {
		row := make([]float64, n)
		for i, v := range c.Vars {
			row[v.index] += c.Coefs[i]
		}
		switch c.Sense {
		case LessEq:
			ineq = append(ineq, row)
			h = append(h, c.RHS)
		case GreaterEq:
			for i := range row {
				row[i] = -row[i]
			}
			ineq = append(ineq, row)
			h = append(h, -c.RHS)
		case Equal:
			eq = append(eq, row)
			b = append(b, c.RHS)
		}
	}

	// Bound rows. A finite upper bound u becomes x_i <= u; a lower bound l
	// becomes -x_i <= -l and is emitted even for l = 0.
	for i, v := range m.vars {
		if !math.IsInf(v.upper, 1) {
			row := make([]float64, n)
			row[i] = 1
			ineq = append(ineq, row)
			h = append(h, v.upper)
		}
		if !math.IsInf(v.lower, -1) {
			row := make([]float64, n)
			row[i] = -1
			ineq = append(ineq, row)
			h = append(h, -v.lower)
		}
	}

	if len(ineq) > 0 {
		df.G = stackRows(ineq, n)
		df.H = h
	}
	if len(eq) > 0 {
		df.A = stackRows(eq, n)
		df.B = b
	}
	return df, nil
}

func stackRows(rows [][]float64, n int) *mat.Dense {
	d := mat.NewDense(len(rows), n, nil)
	for i, row := range rows {
		d.SetRow(i, row)
	}
	return d
}
