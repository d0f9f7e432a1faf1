package sched

type fcfs struct{}

// FCFS is non-preemptive first-come, first-served over a single queue.
func FCFS() Discipline { return fcfs{} }

func (fcfs) Name() string { return "FCFS" }

func (fcfs) start(procs []*Process) dispatcher {
	r := &fcfsRun{}
	for _, p := range procs {
		r.queue.Enqueue(p)
	}
	r.queue.SortBy(ByArrival)
	return r
}

type fcfsRun struct {
	queue Queue
}

func (r *fcfsRun) empty() bool { return r.queue.Empty() }

func (r *fcfsRun) step(m *machine) {
	p, ok := r.queue.Dequeue()
	if !ok {
		return
	}
	// the front is the earliest arrival, so any gap before it is idle CPU
	m.idleUntil(p.ArrivalTime)
	m.dispatch(p, 0)
	m.execute(p, p.Remaining, 0)
	if m.finishSegment(p) {
		return
	}
	r.queue.Enqueue(p)
	r.queue.SortBy(ByArrival)
}
