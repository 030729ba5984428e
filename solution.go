package linprog

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Status is the outcome of a solve, unified across backends.
type Status int

const (
	StatusNotSolved Status = iota
	StatusOptimal
	StatusInfeasible
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusNotSolved:
		return "not solved"
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Solution holds the result returned by a backend for one model: a status,
// the objective value, and the value of every variable. Objective and the
// values are meaningful only when Status is StatusOptimal.
type Solution struct {
	Status    Status
	Objective float64

	model  *Model
	values []float64
}

// NewSolution builds a Solution for the given model. It is intended for
// backend implementations. values must either match the model's variable
// count or be nil (all zero, for infeasible/unbounded outcomes).
func NewSolution(m *Model, status Status, objective float64, values []float64) (*Solution, error) {
	if values == nil {
		values = make([]float64, len(m.vars))
	}
	if len(values) != len(m.vars) {
		return nil, errors.Errorf("model %s: %d solution values for %d variables", m.name, len(values), len(m.vars))
	}
	return &Solution{
		Status:    status,
		Objective: objective,
		model:     m,
		values:    append([]float64(nil), values...),
	}, nil
}

// Value returns the solution value of the variable, or 0 if the variable
// does not belong to the solved model.
func (s *Solution) Value(v *Variable) float64 {
	if !s.model.owns(v) {
		return 0
	}
	return s.values[v.index]
}

// VariableValues returns the solution as a map of variable name to value.
func (s *Solution) VariableValues() map[string]float64 {
	out := make(map[string]float64, len(s.values))
	for i, v := range s.model.vars {
		out[v.name] = s.values[i]
	}
	return out
}

// WriteTable prints the objective value, the status, and the variable list
// in a formatted manner.
func (s *Solution) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "STATUS: %s\n", s.Status); err != nil {
		return errors.Wrap(err, "writing solution table")
	}
	if s.Status != StatusOptimal {
		return nil
	}
	if _, err := fmt.Fprintf(w, "OBJECTIVE FUNCTION = %f\n\n", s.Objective); err != nil {
		return errors.Wrap(err, "writing solution table")
	}
	if _, err := fmt.Fprintf(w, "%6s  %-12s %15s\n", "INDEX", "NAME", "VALUE"); err != nil {
		return errors.Wrap(err, "writing solution table")
	}
	for i, v := range s.model.vars {
		if _, err := fmt.Fprintf(w, "%6d  %-12s %15f\n", i, v.name, s.values[i]); err != nil {
			return errors.Wrap(err, "writing solution table")
		}
	}
	return nil
}

func (s *Solution) String() string {
	var sb strings.Builder
	_ = s.WriteTable(&sb)
	return sb.String()
}
