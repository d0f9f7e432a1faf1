package sched

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
)

type (
	// Discipline is one of FCFS, SJF or MLFQ. Values are immutable; every call
	// to Simulate gets its own queues.
	Discipline interface {
		Name() string
		start(procs []*Process) dispatcher
	}

	// dispatcher is the per-run state of a discipline.
	dispatcher interface {
		// step performs one dispatch or one idle jump.
		step(m *machine)
		empty() bool
	}

	// TimeSlice is one executed segment.
	TimeSlice struct {
		ID    rune
		Start int
		Stop  int
		// Level is the MLFQ queue the segment ran from, 0 for other disciplines.
		Level int
	}

	// Result is what a finished run hands to the metrics calculator.
	Result struct {
		Discipline string
		Finished   []*Process
		TotalTime  int
		IdleTime   int
		Timeline   []TimeSlice
	}

	// Option configures a Simulate call.
	Option func(*machine)
)

// WithLogger sends a debug record for every scheduling step to l.
func WithLogger(l *slog.Logger) Option {
	return func(m *machine) { m.log = l }
}

// Simulate runs workload under d until every queue is empty.
func Simulate(d Discipline, workload []Descriptor, opts ...Option) (Result, error) {
	seen := make(map[rune]bool, len(workload))
	procs := make([]*Process, 0, len(workload))
	for _, desc := range workload {
		if err := desc.Validate(); err != nil {
			return Result{}, err
		}
		if seen[desc.ID] {
			return Result{}, fmt.Errorf("%w: duplicate process id %c", ErrMalformedRecord, desc.ID)
		}
		seen[desc.ID] = true
		procs = append(procs, NewProcess(desc))
	}

	m := &machine{log: discardLogger()}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(slog.String("discipline", d.Name()))

	run := d.start(procs)
	for !run.empty() {
		run.step(m)
	}

	sort.Slice(m.finished, func(i, j int) bool {
		return m.finished[i].ID < m.finished[j].ID
	})
	return Result{
		Discipline: d.Name(),
		Finished:   m.finished,
		TotalTime:  m.clock,
		IdleTime:   m.idle,
		Timeline:   m.timeline,
	}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// machine is the state every discipline shares: the clock, idle time, the
// finished list and the executed timeline.
type machine struct {
	clock    int
	idle     int
	finished []*Process
	timeline []TimeSlice
	log      *slog.Logger
}

// dispatch records the first-dispatch response time and the level trace.
func (m *machine) dispatch(p *Process, level int) {
	if p.FirstExecution {
		p.FirstExecution = false
		p.ResponseTime = m.clock
	}
	if level > 0 {
		p.PriorityLevel = level
		if n := len(p.LevelTrace); n == 0 || p.LevelTrace[n-1] != level {
			p.LevelTrace = append(p.LevelTrace, level)
		}
	}
	m.log.Debug("dispatch",
		slog.Int("time", m.clock),
		slog.String("process", p.Name()),
		slog.Int("remaining", p.Remaining),
		slog.Int("level", level),
	)
}

// execute runs p for n time units of its current segment.
func (m *machine) execute(p *Process, n, level int) {
	m.timeline = append(m.timeline, TimeSlice{ID: p.ID, Start: m.clock, Stop: m.clock + n, Level: level})
	m.clock += n
	p.Remaining -= n
}

// idleUntil moves the clock forward to t and accounts the gap as idle time.
func (m *machine) idleUntil(t int) {
	if t <= m.clock {
		return
	}
	m.log.Debug("idle", slog.Int("from", m.clock), slog.Int("until", t))
	m.idle += t - m.clock
	m.clock = t
}

// finishSegment is called once p's current segment has been fully executed.
// It either finishes p or sends it to its next I/O wait and reports whether
// p is done.
func (m *machine) finishSegment(p *Process) bool {
	p.BurstIndex++
	if p.BurstIndex >= len(p.Bursts) {
		p.Done = true
		p.CompletionTime = m.clock
		m.finished = append(m.finished, p)
		m.log.Debug("finished", slog.Int("time", m.clock), slog.String("process", p.Name()))
		return true
	}
	wait := p.IOTimes[p.IOIndex]
	p.IOIndex++
	p.Remaining = p.Bursts[p.BurstIndex]
	p.ArrivalTime = m.clock + wait
	m.log.Debug("io",
		slog.Int("time", m.clock),
		slog.String("process", p.Name()),
		slog.Int("until", p.ArrivalTime),
	)
	return false
}

// preempt stops p after n units of its segment; p becomes ready again at once.
func (m *machine) preempt(p *Process, n, level int) {
	m.execute(p, n, level)
	p.ArrivalTime = m.clock
	m.log.Debug("preempted",
		slog.Int("time", m.clock),
		slog.String("process", p.Name()),
		slog.Int("remaining", p.Remaining),
	)
}
