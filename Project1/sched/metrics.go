package sched

type (
	// ProcessMetrics holds the per-process times of one run.
	ProcessMetrics struct {
		ID             rune
		ResponseTime   int
		WaitingTime    int
		TurnaroundTime int
		CompletionTime int
	}

	// Metrics is the reduction of one run.
	Metrics struct {
		Discipline        string
		Processes         []ProcessMetrics
		TotalTime         int
		IdleTime          int
		Utilization       float64
		AverageWaiting    float64
		AverageTurnaround float64
		AverageResponse   float64
	}
)

// Calculate computes per-process times and run averages. Averages are taken
// over the number of processes that actually finished.
func Calculate(r Result) Metrics {
	var (
		totalWait       float64
		totalTurnaround float64
		totalResponse   float64
		out             = Metrics{
			Discipline: r.Discipline,
			TotalTime:  r.TotalTime,
			IdleTime:   r.IdleTime,
			Processes:  make([]ProcessMetrics, 0, len(r.Finished)),
		}
	)

	for _, p := range r.Finished {
		pm := ProcessMetrics{
			ID:             p.ID,
			ResponseTime:   p.ResponseTime,
			WaitingTime:    p.CompletionTime - p.TotalBurst() - p.IncurredIO(),
			TurnaroundTime: p.CompletionTime,
			CompletionTime: p.CompletionTime,
		}
		totalWait += float64(pm.WaitingTime)
		totalTurnaround += float64(pm.TurnaroundTime)
		totalResponse += float64(pm.ResponseTime)
		out.Processes = append(out.Processes, pm)
	}

	if r.TotalTime > 0 {
		out.Utilization = float64(r.TotalTime-r.IdleTime) / float64(r.TotalTime)
	}
	if n := float64(len(out.Processes)); n > 0 {
		out.AverageWaiting = totalWait / n
		out.AverageTurnaround = totalTurnaround / n
		out.AverageResponse = totalResponse / n
	}
	return out
}
