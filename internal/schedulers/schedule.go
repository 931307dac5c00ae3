// Package schedulers simulates uniprocessor CPU scheduling algorithms over a
// fixed set of processes and reports the resulting timeline and metrics.
//
// Every call works on its own copy of the input and shares no state with
// other calls, so simulations may run concurrently.
package schedulers

import (
	"math"
	"sync"

	"github.com/himanshuyadav71/schedulicious-process-flow/internal/core"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/palette"
)

// Schedule simulates algorithm over processes. quantum is only read by
// RoundRobin. Unknown algorithms run as FCFS.
//
// Processes without a color get a palette entry chosen by their index in
// processes. The caller's slice is not modified.
func Schedule(algorithm Algorithm, processes []Process, quantum int) (Result, error) {
	if algorithm == PriorityP {
		return Result{}, ErrNotImplemented
	}
	if err := validate(algorithm, processes, quantum); err != nil {
		return Result{}, err
	}

	prepared := withColors(processes)
	switch algorithm {
	case RoundRobin:
		return scheduleRoundRobin(prepared, quantum), nil
	case PriorityNP:
		return schedulePriorityNonPreemptive(prepared), nil
	case SJF:
		return scheduleShortestJobFirst(prepared), nil
	default:
		return scheduleFirstComeFirstServe(prepared), nil
	}
}

// Compare runs every implemented algorithm over the same processes. Priority
// scheduling is skipped unless every process carries a priority.
func Compare(processes []Process, quantum int) ([]Result, error) {
	algorithms := make([]Algorithm, 0, len(Implemented()))
	for _, a := range Implemented() {
		if a.RequiresPriority() && !allHavePriority(processes) {
			continue
		}
		algorithms = append(algorithms, a)
	}

	results := make([]Result, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, a := range algorithms {
		go func(i int, a Algorithm) {
			defer wg.Done()
			results[i], errs[i] = Schedule(a, processes, quantum)
		}(i, a)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func validate(algorithm Algorithm, processes []Process, quantum int) error {
	if len(processes) == 0 {
		return preconditionf("processes", -1, "at least one process is required")
	}
	if algorithm.RequiresQuantum() && quantum < 1 {
		return preconditionf("quantum", -1, "must be at least 1, got %d", quantum)
	}

	seen := make(map[string]int, len(processes))
	latest, totalBurst := 0, 0
	for i, p := range processes {
		if p.ID == "" {
			return preconditionf("id", i, "must not be empty")
		}
		if p.ID == core.IdleProcessID {
			return preconditionf("id", i, "%q is reserved for idle timeline blocks", p.ID)
		}
		if first, ok := seen[p.ID]; ok {
			return preconditionf("id", i, "duplicates processes[%d] id %q", first, p.ID)
		}
		seen[p.ID] = i

		if p.ArrivalTime < 0 {
			return preconditionf("arrival_time", i, "must not be negative, got %d", p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return preconditionf("burst_time", i, "must be positive, got %d", p.BurstTime)
		}
		if p.ArrivalTime > math.MaxInt-p.BurstTime {
			return preconditionf("arrival_time", i, "plus burst_time %d overflows", p.BurstTime)
		}
		if algorithm.RequiresPriority() && p.Priority == nil {
			return preconditionf("priority", i, "is required for %s scheduling", algorithm)
		}

		if totalBurst > math.MaxInt-p.BurstTime {
			return preconditionf("burst_time", i, "total burst time overflows")
		}
		totalBurst += p.BurstTime
		latest = max(latest, p.ArrivalTime)
	}
	// the schedule cannot end later than the last arrival plus all work
	if latest > math.MaxInt-totalBurst {
		return preconditionf("processes", -1, "schedule length overflows")
	}
	return nil
}

func withColors(processes []Process) []Process {
	out := make([]Process, len(processes))
	for i, p := range processes {
		if p.Color == "" {
			p.Color = palette.ProcessColor(i)
		}
		if p.Name == "" {
			p.Name = p.ID
		}
		if p.Priority != nil {
			v := *p.Priority
			p.Priority = &v
		}
		out[i] = p
	}
	return out
}

func allHavePriority(processes []Process) bool {
	for _, p := range processes {
		if p.Priority == nil {
			return false
		}
	}
	return true
}
