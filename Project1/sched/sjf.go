package sched

type sjf struct{}

// SJF is non-preemptive shortest-next-burst-first. Ties go to the lower id.
func SJF() Discipline { return sjf{} }

func (sjf) Name() string { return "SJF" }

func (sjf) start(procs []*Process) dispatcher {
	r := &sjfRun{}
	for _, p := range procs {
		r.ready.Enqueue(p)
	}
	r.ready.SortBy(ByRemaining)
	return r
}

type sjfRun struct {
	ready Queue
	inIO  waitSet
}

func (r *sjfRun) empty() bool { return r.ready.Empty() && r.inIO.Len() == 0 }

func (r *sjfRun) step(m *machine) {
	p, ok := r.ready.Dequeue()
	if !ok {
		next, waiting := r.inIO.next()
		if !waiting {
			return
		}
		m.idleUntil(next.ArrivalTime)
		r.release(m.clock)
		return
	}

	m.dispatch(p, 0)
	m.execute(p, p.Remaining, 0)
	if !m.finishSegment(p) {
		r.inIO.add(p)
	}
	r.release(m.clock)
}

// release moves every process whose I/O is over into the ready queue.
func (r *sjfRun) release(t int) {
	for _, p := range r.inIO.releaseUntil(t) {
		r.ready.Enqueue(p)
	}
	r.ready.SortBy(ByRemaining)
}
