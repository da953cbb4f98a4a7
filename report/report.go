// Package report writes local summaries of an emissivity grouping, for
// inspection without a solver GUI: a CSV table of wall assignments and an
// HTML bar chart of group sizes.
package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/gocarina/gocsv"

	"github.com/notargets/emissview/emissivity"
)

type Row struct {
	Wall       string  `csv:"wall"`
	Group      string  `csv:"group"`
	Emissivity float64 `csv:"emissivity"`
}

// Rows flattens a grouping into one row per wall, group by group.
func Rows(g *emissivity.Groups) []Row {
	var rows []Row
	for _, v := range g.Values() {
		name := emissivity.GroupName(v)
		for _, wall := range g.Walls(v) {
			rows = append(rows, Row{Wall: wall, Group: name, Emissivity: v})
		}
	}
	return rows
}

func WriteCSV(g *emissivity.Groups, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV report %q: %w", path, err)
	}
	defer f.Close()
	if err = gocsv.MarshalFile(Rows(g), f); err != nil {
		return fmt.Errorf("writing CSV report %q: %w", path, err)
	}
	return nil
}

func WriteHTML(g *emissivity.Groups, path string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Walls per emissivity group",
			Subtitle: "grouped by normalized emissivity",
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "walls"}),
	)
	names := make([]string, 0, g.Len())
	data := make([]opts.BarData, 0, g.Len())
	for _, v := range g.Values() {
		names = append(names, emissivity.GroupName(v))
		data = append(data, opts.BarData{Value: len(g.Walls(v))})
	}
	bar.SetXAxis(names).AddSeries("walls", data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating HTML report %q: %w", path, err)
	}
	defer f.Close()
	if err = bar.Render(f); err != nil {
		return fmt.Errorf("rendering HTML report %q: %w", path, err)
	}
	return nil
}
