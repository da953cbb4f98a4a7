package emissivity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notargets/emissview/solver"
)

// Names of the two synthesized solver-side expressions.
const (
	OverlayName = "overlay"
	FieldName   = "emiss"
)

// GroupName derives the register/identifier name for a group value:
// "e__" plus the value with its decimal point replaced by an underscore
// (0.8 -> e__0_8, 1.0 -> e__1_0). Distinct rounded values always map to
// distinct names, and the name is a valid expression-language identifier.
func GroupName(value float64) string {
	return "e__" + strings.ReplaceAll(formatValue(value), ".", "_")
}

// formatValue renders a group value with at least one decimal digit, so
// integral emissivities still produce distinct, dot-bearing names.
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// OverlayExpression counts, per cell, how many group regions claim it:
// IF(e__0_8,1,0)+IF(e__0_5,1,0)+...
func OverlayExpression(g *Groups) string {
	terms := make([]string, 0, g.Len())
	for _, v := range g.Values() {
		terms = append(terms, fmt.Sprintf("IF(%s,1,0)", GroupName(v)))
	}
	return strings.Join(terms, "+")
}

// FieldExpression is the effective-emissivity field. Each group contributes
// its value only where its region is selected AND the overlay count is below
// 2, which zeroes out cells claimed by more than one group where regions
// touch:
// IF(AND(overlay<2,e__0_8),0.8,0)+IF(AND(overlay<2,e__0_5),0.5,0)+...
func FieldExpression(g *Groups) string {
	terms := make([]string, 0, g.Len())
	for _, v := range g.Values() {
		terms = append(terms,
			fmt.Sprintf("IF(AND(%s<2,%s),%s,0)", OverlayName, GroupName(v), formatValue(v)))
	}
	return strings.Join(terms, "+")
}

// Synthesize materializes the grouping on the solver: one boundary cell
// register per group, then the overlay and field named expressions. The
// overlay must exist before the field expression referencing it is evaluated.
func Synthesize(g *Groups, registers solver.RegisterWriter,
	exprs solver.ExpressionWriter) error {
	if g.Len() == 0 {
		return fmt.Errorf("no radiating walls found: nothing to synthesize")
	}
	for _, v := range g.Values() {
		if err := registers.AddBoundaryRegister(GroupName(v), g.Walls(v)); err != nil {
			return err
		}
	}
	if err := exprs.AddNamedExpression(OverlayName, OverlayExpression(g)); err != nil {
		return err
	}
	return exprs.AddNamedExpression(FieldName, FieldExpression(g))
}
