// Package report renders simulation results for people to read.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jar0582/CSCE4600/Project1/sched"
)

// Run writes the full report of one discipline: title, Gantt line, schedule
// table and the run totals.
func Run(w io.Writer, res sched.Result, m sched.Metrics) {
	Title(w, m.Discipline)
	Gantt(w, res.Timeline)
	Schedule(w, m)
	_, _ = fmt.Fprintf(w, "Total time: %d\n", m.TotalTime)
	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%%\n\n", m.Utilization*100)
}

// Title prints title between separator lines.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt prints one cell per executed slice; idle gaps get a "-" cell.
func Gantt(w io.Writer, timeline []sched.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	type cell struct {
		label string
		start int
	}
	var (
		cells []cell
		clock int
	)
	for _, s := range timeline {
		if s.Start > clock {
			cells = append(cells, cell{label: "-", start: clock})
		}
		label := "P" + string(s.ID)
		if s.Level > 0 {
			label = fmt.Sprintf("%s:Q%d", label, s.Level)
		}
		cells = append(cells, cell{label: label, start: s.Start})
		clock = s.Stop
	}

	_, _ = fmt.Fprint(w, "|")
	for _, c := range cells {
		padding := strings.Repeat(" ", max(0, 8-len(c.label))/2)
		_, _ = fmt.Fprint(w, padding, c.label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for _, c := range cells {
		_, _ = fmt.Fprint(w, c.start, "\t")
	}
	_, _ = fmt.Fprint(w, clock)
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Schedule prints the per-process table with the averages in the footer.
func Schedule(w io.Writer, m sched.Metrics) {
	rows := make([][]string, len(m.Processes))
	for i, p := range m.Processes {
		rows[i] = []string{
			"P" + string(p.ID),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.CompletionTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Response", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"",
		fmt.Sprintf("Average\n%.2f", m.AverageResponse),
		fmt.Sprintf("Average\n%.2f", m.AverageWaiting),
		fmt.Sprintf("Average\n%.2f", m.AverageTurnaround),
		""})
	table.Render()
}

// Comparison prints one row per discipline.
func Comparison(w io.Writer, runs []sched.Metrics) {
	rows := make([][]string, len(runs))
	for i, m := range runs {
		rows[i] = []string{
			m.Discipline,
			fmt.Sprint(m.TotalTime),
			fmt.Sprintf("%.2f%%", m.Utilization*100),
			fmt.Sprintf("%.2f", m.AverageWaiting),
			fmt.Sprintf("%.2f", m.AverageTurnaround),
			fmt.Sprintf("%.2f", m.AverageResponse),
		}
	}

	Title(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Discipline", "Total", "Utilization", "Avg Wait", "Avg Turnaround", "Avg Response"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.Render()
}
