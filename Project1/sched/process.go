package sched

import "fmt"

type (
	// Descriptor is one process of the workload as handed over by a loader.
	Descriptor struct {
		ID      rune
		Bursts  []int
		IOTimes []int
	}

	// Process is the schedulable unit. Only the step function of the run that
	// owns it mutates it.
	Process struct {
		ID             rune
		// Bursts and IOTimes are the workload as given and are never modified.
		Bursts         []int
		BurstIndex     int
		IOTimes        []int
		IOIndex        int
		// Remaining is what is left of Bursts[BurstIndex].
		Remaining      int
		ArrivalTime    int
		FirstExecution bool
		ResponseTime   int
		PriorityLevel  int
		// LevelTrace lists the distinct levels the process was dispatched at.
		LevelTrace     []int
		CompletionTime int
		Done           bool
	}
)

// Validate checks the arity and value rules a descriptor must satisfy.
func (d Descriptor) Validate() error {
	if len(d.Bursts) == 0 {
		return fmt.Errorf("%w: process %c has no CPU bursts", ErrMalformedRecord, d.ID)
	}
	if n := len(d.IOTimes); n != len(d.Bursts) && n != len(d.Bursts)-1 {
		return fmt.Errorf("%w: process %c has %d bursts but %d I/O times",
			ErrMalformedRecord, d.ID, len(d.Bursts), n)
	}
	for _, b := range d.Bursts {
		if b <= 0 {
			return fmt.Errorf("%w: process %c has non-positive burst %d", ErrMalformedRecord, d.ID, b)
		}
	}
	for _, io := range d.IOTimes {
		if io < 0 {
			return fmt.Errorf("%w: process %c has negative I/O time %d", ErrMalformedRecord, d.ID, io)
		}
	}
	return nil
}

// NewProcess builds a fresh process from d, ready at time 0 with its first
// burst as the current segment.
func NewProcess(d Descriptor) *Process {
	p := &Process{
		ID:             d.ID,
		Bursts:         append([]int(nil), d.Bursts...),
		IOTimes:        append([]int(nil), d.IOTimes...),
		FirstExecution: true,
	}
	if len(p.Bursts) > 0 {
		p.Remaining = p.Bursts[0]
	}
	return p
}

// Name is the label used in traces and reports.
func (p *Process) Name() string { return "P" + string(p.ID) }

// Ready reports whether the process may be dispatched at time t.
func (p *Process) Ready(t int) bool { return !p.Done && p.ArrivalTime <= t }

// TotalBurst is the sum of the CPU bursts as given in the workload.
func (p *Process) TotalBurst() int {
	var sum int
	for _, b := range p.Bursts {
		sum += b
	}
	return sum
}

// IncurredIO is the sum of the I/O waits the process actually went through.
func (p *Process) IncurredIO() int {
	var sum int
	for _, io := range p.IOTimes[:p.IOIndex] {
		sum += io
	}
	return sum
}
