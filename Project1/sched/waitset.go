package sched

import "container/heap"

// waitSet holds processes that are doing I/O, keyed by the time they become
// ready again. It is a min-heap, so the next process to return is at index 0.
type waitSet []*Process

func (w waitSet) Len() int { return len(w) }

func (w waitSet) Less(i, j int) bool { return ByArrival(w[i], w[j]) }

func (w waitSet) Swap(i, j int) { w[i], w[j] = w[j], w[i] }

func (w *waitSet) Push(x interface{}) {
	*w = append(*w, x.(*Process))
}

func (w *waitSet) Pop() interface{} {
	old := *w
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*w = old[0 : n-1]
	return item
}

func (w *waitSet) add(p *Process) { heap.Push(w, p) }

// next returns the process that leaves I/O first.
func (w waitSet) next() (*Process, bool) {
	if len(w) == 0 {
		return nil, false
	}
	return w[0], true
}

// releaseUntil removes every process ready at time t, earliest first.
func (w *waitSet) releaseUntil(t int) []*Process {
	var out []*Process
	for w.Len() > 0 && (*w)[0].ArrivalTime <= t {
		out = append(out, heap.Pop(w).(*Process))
	}
	return out
}
