package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/jar0582/CSCE4600/Project1/sched"
)

var ErrNoRuns = errors.New("no runs to chart")

// Chart saves a grouped bar chart of the average waiting, turnaround and
// response times of every run. The image format follows the file extension.
func Chart(path string, runs []sched.Metrics) error {
	if len(runs) == 0 {
		return ErrNoRuns
	}

	p := plot.New()
	p.Title.Text = "Scheduling metrics"
	p.Y.Label.Text = "Time units"

	series := []struct {
		name  string
		value func(sched.Metrics) float64
	}{
		{"Avg waiting", func(m sched.Metrics) float64 { return m.AverageWaiting }},
		{"Avg turnaround", func(m sched.Metrics) float64 { return m.AverageTurnaround }},
		{"Avg response", func(m sched.Metrics) float64 { return m.AverageResponse }},
	}

	width := vg.Points(20)
	names := make([]string, len(runs))
	for i, m := range runs {
		names[i] = m.Discipline
	}

	for i, s := range series {
		values := make(plotter.Values, len(runs))
		for j, m := range runs {
			values[j] = s.value(m)
		}

		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return fmt.Errorf("%w: building %s bars", err, s.name)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = width * vg.Length(i-len(series)/2)

		p.Add(bars)
		p.Legend.Add(s.name, bars)
	}
	p.Legend.Top = true
	p.NominalX(names...)

	if err := p.Save(vg.Length(2+2*len(runs))*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("%w: saving chart", err)
	}
	return nil
}
