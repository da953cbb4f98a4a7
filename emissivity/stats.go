package emissivity

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a grouping: wall-count weighted statistics of the group
// emissivity values.
type Summary struct {
	Groups int
	Walls  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

func Summarize(g *Groups) (s Summary) {
	s.Groups = g.Len()
	if s.Groups == 0 {
		return
	}
	values := g.Values()
	weights := make([]float64, len(values))
	for i, v := range values {
		n := len(g.Walls(v))
		weights[i] = float64(n)
		s.Walls += n
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	s.Mean = stat.Mean(values, weights)
	if s.Walls > 1 {
		s.StdDev = stat.StdDev(values, weights)
	}
	return
}

func (s Summary) Print() {
	fmt.Printf("%8d\t\t= Emissivity groups\n", s.Groups)
	fmt.Printf("%8d\t\t= Radiating walls\n", s.Walls)
	fmt.Printf("%8.3f\t\t= Min emissivity\n", s.Min)
	fmt.Printf("%8.3f\t\t= Max emissivity\n", s.Max)
	fmt.Printf("%8.3f\t\t= Mean emissivity (wall weighted)\n", s.Mean)
	fmt.Printf("%8.3f\t\t= StdDev emissivity\n", s.StdDev)
}
