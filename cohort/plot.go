package cohort

import (
	"bytes"
	"errors"
	"os"

	"github.com/montanaflynn/stats"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/kareef928/teiko-project/celltype"
)

// RenderResponsePlot renders the per-population percentage distributions of
// the cohort, split by response group, to a PNG at path. Each observation is
// drawn as a dot offset left (responders) or right (non-responders) of its
// population's position, with the group median drawn as a horizontal bar.
func RenderResponsePlot(rows []Row, path string) error {
	if len(rows) == 0 {
		return errors.New("cohort: nothing to plot: the filtered cohort is empty")
	}

	popIndex := make(map[celltype.Population]float64, len(celltype.All))
	ticks := []chart.Tick{{Value: -0.5, Label: ""}}
	for i, pop := range celltype.All {
		popIndex[pop] = float64(i)
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: pop.Label()})
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(celltype.All)) - 0.5, Label: ""})

	series := []chart.Series{}

	for _, group := range []struct {
		response string
		name     string
		offset   float64
		color    chart.Style
	}{
		{"yes", "response: yes", -0.15, chart.Style{StrokeWidth: chart.Disabled, DotWidth: 4, DotColor: chart.ColorBlue}},
		{"no", "response: no", 0.15, chart.Style{StrokeWidth: chart.Disabled, DotWidth: 4, DotColor: chart.ColorRed}},
	} {
		var xs, ys []float64
		byPop := make(map[celltype.Population][]float64)

		for _, row := range rows {
			if row.Response != group.response {
				continue
			}
			xs = append(xs, popIndex[row.Population]+group.offset)
			ys = append(ys, row.Percentage)
			byPop[row.Population] = append(byPop[row.Population], row.Percentage)
		}

		if len(xs) == 0 {
			continue
		}

		series = append(series, chart.ContinuousSeries{
			Name:    group.name,
			XValues: xs,
			YValues: ys,
			Style:   group.color,
		})

		// One short horizontal bar per population at the group median.
		for _, pop := range celltype.All {
			values := byPop[pop]
			if len(values) == 0 {
				continue
			}

			median, err := stats.Median(values)
			if err != nil {
				return err
			}

			center := popIndex[pop] + group.offset
			series = append(series, chart.ContinuousSeries{
				XValues: []float64{center - 0.12, center + 0.12},
				YValues: []float64{median, median},
				Style:   chart.Style{StrokeWidth: 2, StrokeColor: group.color.DotColor},
			})
		}
	}

	graph := chart.Chart{
		Title:  "Relative Frequencies of each Cell Population by Response",
		Width:  1024,
		Height: 576,
		XAxis: chart.XAxis{
			Name:  "Cell Population",
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(celltype.All)) - 0.5},
		},
		YAxis: chart.YAxis{
			Name: "Relative Frequency (%)",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := buffer.WriteTo(outFile); err != nil {
		outFile.Close()
		return err
	}

	return outFile.Close()
}
