package linprog

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Direction selects whether the objective function is minimized or maximized.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

func (d Direction) String() string {
	switch d {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// VarType is the integrality requirement of a decision variable.
type VarType int

const (
	ContinuousVariable VarType = iota
	IntegerVariable
	BinaryVariable
)

func (t VarType) String() string {
	switch t {
	case ContinuousVariable:
		return "continuous"
	case IntegerVariable:
		return "integer"
	case BinaryVariable:
		return "binary"
	default:
		return fmt.Sprintf("VarType(%d)", int(t))
	}
}

// Sense compares a constraint row against its right-hand side.
type Sense int

const (
	LessEq Sense = iota
	GreaterEq
	Equal
)

func (s Sense) String() string {
	switch s {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// Variable is a decision variable bound to the model that created it.
// Attempting to use a variable created in one model when building constraints
// for, or reading solutions of, a different model is rejected.
type Variable struct {
	model *Model
	index int
	name  string
	typ   VarType
	cost  float64
	lower float64
	upper float64
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// Type returns the integrality requirement of the variable.
func (v *Variable) Type() VarType { return v.typ }

// Cost returns the objective coefficient of the variable.
func (v *Variable) Cost() float64 { return v.cost }

// Bounds returns the lower and upper bound of the variable.
func (v *Variable) Bounds() (lower, upper float64) { return v.lower, v.upper }

// Index returns the position of the variable in its model.
func (v *Variable) Index() int { return v.index }

// SetObjectiveCoefficient sets the coefficient of the variable in the
// objective function.
func (v *Variable) SetObjectiveCoefficient(cost float64) { v.cost = cost }

// SetBounds sets the bounds of the variable. Use math.Inf to leave a side
// unbounded. Bounds of binary variables are fixed at [0, 1] and are not
// changed by this call.
func (v *Variable) SetBounds(lower, upper float64) error {
	if v.typ == BinaryVariable {
		return nil
	}
	if lower > upper {
		return errors.Errorf("variable %s: lower bound %g exceeds upper bound %g", v.name, lower, upper)
	}
	v.lower = lower
	v.upper = upper
	return nil
}

// SetType changes the integrality requirement of the variable. Switching to
// BinaryVariable forces the bounds to [0, 1].
func (v *Variable) SetType(typ VarType) {
	v.typ = typ
	if typ == BinaryVariable {
		v.lower = 0
		v.upper = 1
	}
}

// Constraint is a single linear row: the sum of Coefs[i]*Vars[i] compared
// against RHS with the given Sense.
type Constraint struct {
	Name  string
	Vars  []*Variable
	Coefs []float64
	Sense Sense
	RHS   float64
}

// Model is a linear or mixed-integer linear program under construction.
// All coefficients are literal and fixed at authoring time; the model holds
// no solver state and can be handed to any backend any number of times.
type Model struct {
	name string
	dir  Direction
	vars []*Variable
	cons []Constraint
}

// NewModel returns an empty model with the given name (purely informational)
// and optimization direction.
func NewModel(name string, dir Direction) *Model {
	return &Model{name: name, dir: dir}
}

// Name returns the name provided when the model was created.
func (m *Model) Name() string { return m.name }

// Direction returns the optimization direction of the model.
func (m *Model) Direction() Direction { return m.dir }

// NumVariables returns the number of decision variables in the model.
func (m *Model) NumVariables() int { return len(m.vars) }

// NumConstraints returns the number of constraint rows in the model.
func (m *Model) NumConstraints() int { return len(m.cons) }

// Variables returns a new slice with the model's variables. Changes to the
// slice are not reflected in the model.
func (m *Model) Variables() []*Variable {
	out := make([]*Variable, len(m.vars))
	copy(out, m.vars)
	return out
}

// Constraints returns a new slice with the model's constraint rows.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.cons))
	copy(out, m.cons)
	return out
}

// AddVariable adds a continuous decision variable with objective coefficient
// 0 and bounds [0, +Inf) and returns a reference to it. Word-problem
// quantities are non-negative unless stated otherwise, so that is the
// default. An empty name is replaced with a generated unique one.
func (m *Model) AddVariable(name string) (*Variable, error) {
	return m.AddDefinedVariable(name, ContinuousVariable, 0, 0, math.Inf(1))
}

// AddDefinedVariable adds a decision variable with all attributes passed as
// arguments. If typ is BinaryVariable the bounds are ignored and fixed at
// [0, 1]. An empty name is replaced with a generated unique one.
func (m *Model) AddDefinedVariable(name string, typ VarType, cost, lower, upper float64) (*Variable, error) {
	if name == "" {
		name = fmt.Sprintf("V%d", len(m.vars))
	}
	for _, v := range m.vars {
		if v.name == name {
			return nil, errors.Errorf("variable %s already exists in model %s", name, m.name)
		}
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return nil, errors.Errorf("variable %s: objective coefficient %g is not finite", name, cost)
	}
	v := &Variable{
		model: m,
		index: len(m.vars),
		name:  name,
		typ:   typ,
		cost:  cost,
		lower: lower,
		upper: upper,
	}
	if typ == BinaryVariable {
		v.lower = 0
		v.upper = 1
	} else if lower > upper {
		return nil, errors.Errorf("variable %s: lower bound %g exceeds upper bound %g", name, lower, upper)
	}
	m.vars = append(m.vars, v)
	return v, nil
}

// SetObjective defines the objective function as a slice of coefficients and
// a slice of their respective variables. E.g. an objective of the form
// 2x+3y is passed as SetObjective([]float64{2,3}, []*Variable{x,y}).
// Coefficients of variables not listed are left untouched.
func (m *Model) SetObjective(coefs []float64, vars []*Variable) error {
	if len(coefs) != len(vars) {
		return errors.Errorf("model %s: %d objective coefficients for %d variables", m.name, len(coefs), len(vars))
	}
	for i, v := range vars {
		if !m.owns(v) {
			return errors.Errorf("model %s: objective references a variable from another model", m.name)
		}
		if math.IsNaN(coefs[i]) || math.IsInf(coefs[i], 0) {
			return errors.Errorf("variable %s: objective coefficient %g is not finite", v.name, coefs[i])
		}
		v.cost = coefs[i]
	}
	return nil
}

// AddConstraint adds a constraint row to the model as a slice of variables,
// a slice of their respective coefficients, a sense, and a right-hand side.
func (m *Model) AddConstraint(name string, vars []*Variable, coefs []float64, sense Sense, rhs float64) error {
	if len(vars) == 0 {
		return errors.Errorf("constraint %s: no variables", name)
	}
	if len(vars) != len(coefs) {
		return errors.Errorf("constraint %s: %d coefficients for %d variables", name, len(coefs), len(vars))
	}
	if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
		return errors.Errorf("constraint %s: right-hand side %g is not finite", name, rhs)
	}
	for i, v := range vars {
		if !m.owns(v) {
			return errors.Errorf("constraint %s: variable at position %d belongs to another model", name, i)
		}
		if math.IsNaN(coefs[i]) || math.IsInf(coefs[i], 0) {
			return errors.Errorf("constraint %s: coefficient of %s is not finite", name, v.name)
		}
	}
	if name == "" {
		name = fmt.Sprintf("c%d", len(m.cons))
	}
	row := Constraint{
		Name:  name,
		Vars:  append([]*Variable(nil), vars...),
		Coefs: append([]float64(nil), coefs...),
		Sense: sense,
		RHS:   rhs,
	}
	m.cons = append(m.cons, row)
	return nil
}

// IsMIP reports whether any variable carries an integrality requirement,
// which decides between the LP and the MILP path of a backend.
func (m *Model) IsMIP() bool {
	for _, v := range m.vars {
		if v.typ != ContinuousVariable {
			return true
		}
	}
	return false
}

// Validate checks that the model is well formed enough to be handed to a
// backend: at least one variable and at least one constraint row.
func (m *Model) Validate() error {
	if len(m.vars) == 0 {
		return errors.Errorf("model %s has no variables", m.name)
	}
	if len(m.cons) == 0 {
		return errors.Errorf("model %s has no constraints", m.name)
	}
	return nil
}

func (m *Model) owns(v *Variable) bool {
	return v != nil && v.model == m && v.index < len(m.vars) && m.vars[v.index] == v
}
