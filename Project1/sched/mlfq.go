package sched

import (
	"fmt"
	"log/slog"
)

// Queue levels of the multi-level feedback queue, highest priority first.
const (
	Level1 = 1 + iota
	Level2
	Level3
)

type mlfq struct {
	q1, q2 int
}

// MLFQ is a three level feedback queue: round-robin with quantum q1, then
// round-robin with quantum q2, then FCFS. A process that uses up its quantum
// is demoted one level; it is never promoted. A lower level segment is cut
// short as soon as a higher level process becomes ready.
func MLFQ(q1, q2 int) (Discipline, error) {
	if q1 <= 0 || q2 <= 0 {
		return nil, fmt.Errorf("%w: quanta must be positive, got q1=%d q2=%d", ErrInvalidQuantum, q1, q2)
	}
	return mlfq{q1: q1, q2: q2}, nil
}

func (d mlfq) Name() string { return fmt.Sprintf("MLFQ(q1=%d,q2=%d)", d.q1, d.q2) }

func (d mlfq) start(procs []*Process) dispatcher {
	r := &mlfqRun{quantum: [3]int{d.q1, d.q2, 0}}
	for _, p := range procs {
		p.PriorityLevel = Level1
		r.levels[0].Enqueue(p)
	}
	r.levels[0].SortBy(ByArrival)
	return r
}

type mlfqRun struct {
	levels [3]Queue
	// quantum per level; 0 means the segment runs until it ends.
	quantum [3]int
}

func (r *mlfqRun) queue(level int) *Queue { return &r.levels[level-1] }

func (r *mlfqRun) empty() bool {
	for i := range r.levels {
		if !r.levels[i].Empty() {
			return false
		}
	}
	return true
}

func (r *mlfqRun) step(m *machine) {
	for level := Level1; level <= Level3; level++ {
		q := r.queue(level)
		if front, ok := q.Peek(); ok && front.Ready(m.clock) {
			p, _ := q.Dequeue()
			r.run(m, p, level)
			return
		}
	}

	// nothing is ready: jump to the earliest front arrival
	next, found := 0, false
	for level := Level1; level <= Level3; level++ {
		if front, ok := r.queue(level).Peek(); ok && (!found || front.ArrivalTime < next) {
			next, found = front.ArrivalTime, true
		}
	}
	if found {
		m.idleUntil(next)
	}
}

// run gives the CPU to p, taken from the given level.
func (r *mlfqRun) run(m *machine, p *Process, level int) {
	m.dispatch(p, level)
	b := p.Remaining
	slice := b
	if q := r.quantum[level-1]; q > 0 && q < slice {
		slice = q
	}

	if at, ok := r.higherReadyBefore(level, m.clock+slice); ok {
		m.preempt(p, at-m.clock, level)
		r.requeue(p, level)
		return
	}

	if slice == b {
		m.execute(p, b, level)
		if !m.finishSegment(p) {
			r.requeue(p, level)
		}
		return
	}

	// quantum expired before the segment ended
	m.preempt(p, slice, level)
	m.log.Debug("demoted",
		slog.String("process", p.Name()),
		slog.Int("from", level),
		slog.Int("to", level+1),
	)
	r.requeue(p, level+1)
}

// higherReadyBefore returns the time before t at which the front of a level
// above the given one becomes ready. Levels are checked in priority order, so
// a qualifying Q1 front wins over an earlier Q2 front.
func (r *mlfqRun) higherReadyBefore(level, t int) (int, bool) {
	for above := Level1; above < level; above++ {
		if at, ok := r.queue(above).readyBefore(t); ok {
			return at, true
		}
	}
	return 0, false
}

func (r *mlfqRun) requeue(p *Process, level int) {
	p.PriorityLevel = level
	q := r.queue(level)
	q.Enqueue(p)
	q.SortBy(ByArrival)
}
