package sched

import "sort"

// Less orders two processes inside a queue.
type Less func(a, b *Process) bool

// ByArrival is the FCFS order: earliest arrival first, ascending id on ties.
func ByArrival(a, b *Process) bool {
	if a.ArrivalTime == b.ArrivalTime {
		return a.ID < b.ID
	}
	return a.ArrivalTime < b.ArrivalTime
}

// ByRemaining is the SJF order: shortest current segment first, ascending id on ties.
func ByRemaining(a, b *Process) bool {
	if a.Remaining == b.Remaining {
		return a.ID < b.ID
	}
	return a.Remaining < b.Remaining
}

// Queue is an ordered, reorderable FIFO of processes. A process belongs to at
// most one queue at a time.
type Queue struct {
	items []*Process
}

// Len is the number of queued processes.
func (q *Queue) Len() int { return len(q.items) }

// Empty reports whether the queue holds no process.
func (q *Queue) Empty() bool { return len(q.items) == 0 }

// Enqueue appends p at the back.
func (q *Queue) Enqueue(p *Process) {
	q.items = append(q.items, p)
}

// Dequeue removes the front process. The boolean is false when the queue is empty.
func (q *Queue) Dequeue() (*Process, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	p := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return p, true
}

// Peek returns the front process without removing it.
func (q *Queue) Peek() (*Process, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

// ReplaceOrder substitutes the content with sorted, which must be a
// permutation of the current content.
func (q *Queue) ReplaceOrder(sorted []*Process) {
	q.items = append(q.items[:0:0], sorted...)
}

// SortBy reorders the queue with a stable sort.
func (q *Queue) SortBy(less Less) {
	sorted := q.Items()
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	q.ReplaceOrder(sorted)
}

// Items returns a copy of the content in queue order.
func (q *Queue) Items() []*Process {
	return append([]*Process(nil), q.items...)
}

// readyBefore returns the arrival time of the front process when that process
// becomes ready strictly before t.
func (q *Queue) readyBefore(t int) (int, bool) {
	front, ok := q.Peek()
	if !ok || front.ArrivalTime >= t {
		return 0, false
	}
	return front.ArrivalTime, true
}
