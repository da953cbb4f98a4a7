// Package emissivity groups wall boundaries by their radiative emissivity and
// synthesizes the solver-side expressions that turn the grouping into a
// plottable effective-emissivity field.
package emissivity

// Groups partitions radiating walls by normalized emissivity value. Key order
// is first-seen order and wall order within a group follows the solver's zone
// enumeration, so everything derived from a grouping is reproducible run to
// run for the same case.
type Groups struct {
	order []float64
	walls map[float64][]string
}

func NewGroups() *Groups {
	return &Groups{walls: make(map[float64][]string)}
}

func (g *Groups) Add(value float64, wall string) {
	if _, ok := g.walls[value]; !ok {
		g.order = append(g.order, value)
	}
	g.walls[value] = append(g.walls[value], wall)
}

// Values returns the group keys in insertion order.
func (g *Groups) Values() []float64 {
	return g.order
}

func (g *Groups) Walls(value float64) []string {
	return g.walls[value]
}

// AllWalls returns the union of all grouped walls, group by group.
func (g *Groups) AllWalls() []string {
	var all []string
	for _, v := range g.order {
		all = append(all, g.walls[v]...)
	}
	return all
}

func (g *Groups) Len() int {
	return len(g.order)
}
