package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_FCFSScenario(t *testing.T) {
	res, err := Simulate(FCFS(), []Descriptor{
		{ID: 'A', Bursts: []int{5}},
		{ID: 'B', Bursts: []int{3}},
	})
	require.NoError(t, err)

	m := Calculate(res)
	assert.Equal(t, []ProcessMetrics{
		{ID: 'A', ResponseTime: 0, WaitingTime: 0, TurnaroundTime: 5, CompletionTime: 5},
		{ID: 'B', ResponseTime: 5, WaitingTime: 5, TurnaroundTime: 8, CompletionTime: 8},
	}, m.Processes)
	assert.Equal(t, 8, m.TotalTime)
	assert.InDelta(t, 1.0, m.Utilization, 1e-9)
	assert.InDelta(t, 2.5, m.AverageWaiting, 1e-9)
	assert.InDelta(t, 6.5, m.AverageTurnaround, 1e-9)
	assert.InDelta(t, 2.5, m.AverageResponse, 1e-9)
}

func TestCalculate_WaitingExcludesIncurredIO(t *testing.T) {
	res, err := Simulate(SJF(), []Descriptor{
		{ID: 'A', Bursts: []int{6}},
		{ID: 'B', Bursts: []int{2, 3}, IOTimes: []int{4}},
		{ID: 'C', Bursts: []int{3}},
	})
	require.NoError(t, err)

	m := Calculate(res)
	want := map[rune]int{'A': 5, 'B': 5, 'C': 2}
	for _, pm := range m.Processes {
		assert.Equal(t, want[pm.ID], pm.WaitingTime, "waiting of %c", pm.ID)
	}
}

func TestCalculate_MLFQScenario(t *testing.T) {
	res, err := Simulate(mustMLFQ(t, 4, 6), []Descriptor{{ID: 'A', Bursts: []int{10}}})
	require.NoError(t, err)

	m := Calculate(res)
	require.Len(t, m.Processes, 1)
	assert.Zero(t, m.Processes[0].WaitingTime)
	assert.Equal(t, 10, m.Processes[0].TurnaroundTime)
}

func TestCalculate_Utilization(t *testing.T) {
	res, err := Simulate(FCFS(), []Descriptor{{ID: 'A', Bursts: []int{2, 2}, IOTimes: []int{10}}})
	require.NoError(t, err)

	m := Calculate(res)
	assert.Equal(t, 10, m.IdleTime)
	assert.InDelta(t, 4.0/14.0, m.Utilization, 1e-9)
}

func TestCalculate_AveragesUseActualCount(t *testing.T) {
	for n := 1; n <= 9; n++ {
		workload := make([]Descriptor, n)
		for i := range workload {
			workload[i] = Descriptor{ID: rune('A' + i), Bursts: []int{2}}
		}
		res, err := Simulate(FCFS(), workload)
		require.NoError(t, err)

		m := Calculate(res)
		var wait, turnaround, response int
		for _, pm := range m.Processes {
			wait += pm.WaitingTime
			turnaround += pm.TurnaroundTime
			response += pm.ResponseTime
		}
		assert.InDelta(t, float64(wait)/float64(n), m.AverageWaiting, 1e-9, "n=%d", n)
		assert.InDelta(t, float64(turnaround)/float64(n), m.AverageTurnaround, 1e-9, "n=%d", n)
		assert.InDelta(t, float64(response)/float64(n), m.AverageResponse, 1e-9, "n=%d", n)
	}
}

func TestCalculate_EmptyRun(t *testing.T) {
	m := Calculate(Result{Discipline: "FCFS"})

	assert.Empty(t, m.Processes)
	assert.Zero(t, m.Utilization)
	assert.Zero(t, m.AverageWaiting)
}
