package emissivity

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/notargets/emissview/solver"
)

// Collect builds the emissivity grouping from the live session. Walls without
// an emissivity setting do not partake in radiation and are skipped. The
// session is only read here; registers and expressions are created later by
// Synthesize.
func Collect(boundaries solver.BoundaryReader, exprs solver.ExpressionReader,
	log *zap.Logger) (*Groups, error) {
	walls, err := boundaries.Walls()
	if err != nil {
		return nil, fmt.Errorf("reading wall boundaries: %w", err)
	}
	groups := NewGroups()
	for _, w := range walls {
		if w.Emissivity.Kind == solver.KindAbsent {
			log.Debug("wall doesn't partake in radiation", zap.String("wall", w.Name))
			continue
		}
		value, err := Normalize(w.Emissivity, exprs)
		if err != nil {
			return nil, fmt.Errorf("wall %q: %w", w.Name, err)
		}
		log.Debug("wall emissivity", zap.String("wall", w.Name), zap.Float64("e", value))
		groups.Add(value, w.Name)
	}
	return groups, nil
}
