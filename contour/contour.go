// Package contour creates the effective-emissivity contour plot on the
// solver's graphics subsystem.
package contour

import (
	"fmt"

	"github.com/notargets/emissview/emissivity"
	"github.com/notargets/emissview/solver"
)

const ObjectName = "contour_emissivity"

// Config is the fixed styling of the emissivity contour: filled, banded
// coloring over the black-body palette, cell values, short legend. The
// surfaces are the union of all grouped walls.
func Config(surfaces []string) solver.ContourConfig {
	return solver.ContourConfig{
		Field:      "expr:" + emissivity.FieldName,
		Filled:     true,
		Surfaces:   surfaces,
		Coloring:   "banded",
		NodeValues: false,
		ColorMap: solver.ColorMapConfig{
			Size:     10,
			Color:    "sequential-black-body",
			LogScale: false,
			Format:   "%0.2f",
			Length:   0.7,
			UserSkip: 0,
		},
	}
}

// Create builds the contour object over the grouping's walls and triggers an
// immediate render.
func Create(g *emissivity.Groups, graphics solver.GraphicsWriter) error {
	if g.Len() == 0 {
		return fmt.Errorf("no radiating walls found: nothing to plot")
	}
	if err := graphics.CreateContour(ObjectName, Config(g.AllWalls())); err != nil {
		return err
	}
	return graphics.DisplayContour(ObjectName)
}
