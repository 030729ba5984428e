package linprog

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// WriteLP writes the model as CPLEX LP-format text. The export contains the
// objective, the constraint rows, the non-default bounds, and the Generals
// and Binaries sections for integer-constrained variables.
func (m *Model) WriteLP(w io.Writer) error {
	if _, err := io.WriteString(w, m.LPString()); err != nil {
		return errors.Wrapf(err, "writing LP format for model %s", m.name)
	}
	return nil
}

// LPString returns the model as CPLEX LP-format text.
func (m *Model) LPString() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\\ Problem: %s\n", m.name)
	if m.dir == Maximize {
		sb.WriteString("Maximize\n")
	} else {
		sb.WriteString("Minimize\n")
	}
	sb.WriteString(" obj:")
	wrote := false
	for _, v := range m.vars {
		if v.cost == 0 {
			continue
		}
		writeTerm(&sb, v.cost, v.name, !wrote)
		wrote = true
	}
	if !wrote && len(m.vars) > 0 {
		// LP format needs at least one term in the objective.
		writeTerm(&sb, 0, m.vars[0].name, true)
	}
	sb.WriteString("\n")

	sb.WriteString("Subject To\n")
	for _, c := range m.cons {
		fmt.Fprintf(&sb, " %s:", c.Name)
		for i, v := range c.Vars {
			writeTerm(&sb, c.Coefs[i], v.name, i == 0)
		}
		fmt.Fprintf(&sb, " %s %s\n", c.Sense, trimFloat(c.RHS))
	}

	var bounds, generals, binaries []string
	for _, v := range m.vars {
		switch v.typ {
		case BinaryVariable:
			binaries = append(binaries, v.name)
			continue
		case IntegerVariable:
			generals = append(generals, v.name)
		}
		if b, ok := boundLine(v); ok {
			bounds = append(bounds, b)
		}
	}
	if len(bounds) > 0 {
		sb.WriteString("Bounds\n")
		for _, b := range bounds {
			fmt.Fprintf(&sb, " %s\n", b)
		}
	}
	if len(generals) > 0 {
		sb.WriteString("Generals\n")
		for _, g := range generals {
			fmt.Fprintf(&sb, " %s\n", g)
		}
	}
	if len(binaries) > 0 {
		sb.WriteString("Binaries\n")
		for _, b := range binaries {
			fmt.Fprintf(&sb, " %s\n", b)
		}
	}
	sb.WriteString("End\n")
	return sb.String()
}

// boundLine renders the Bounds entry for the variable, or ok=false when the
// LP-format default [0, +inf) applies.
func boundLine(v *Variable) (string, bool) {
	loZero := v.lower == 0
	loInf := math.IsInf(v.lower, -1)
	upInf := math.IsInf(v.upper, 1)

	switch {
	case loZero && upInf:
		return "", false
	case loInf && upInf:
		return fmt.Sprintf("%s free", v.name), true
	case loInf:
		return fmt.Sprintf("-infinity <= %s <= %s", v.name, trimFloat(v.upper)), true
	case upInf:
		return fmt.Sprintf("%s <= %s", trimFloat(v.lower), v.name), true
	default:
		return fmt.Sprintf("%s <= %s <= %s", trimFloat(v.lower), v.name, trimFloat(v.upper)), true
	}
}

func writeTerm(sb *strings.Builder, coef float64, name string, first bool) {
	sign := "+"
	if coef < 0 || (first && math.Signbit(coef)) {
		sign = "-"
	}
	if first {
		if sign == "-" {
			fmt.Fprintf(sb, " -%s %s", trimFloat(math.Abs(coef)), name)
		} else {
			fmt.Fprintf(sb, " %s %s", trimFloat(coef), name)
		}
		return
	}
	fmt.Fprintf(sb, " %s %s %s", sign, trimFloat(math.Abs(coef)), name)
}

func trimFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
