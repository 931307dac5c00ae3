package schedulers

import "github.com/himanshuyadav71/schedulicious-process-flow/internal/core"

// scheduleNonPreemptive repeatedly dispatches the ready job ordered first by
// less and runs it to completion. Jobs less cannot separate fall back to
// arrival order, then input order.
func scheduleNonPreemptive(processes []Process, algorithm Algorithm, less func(a, b *job) bool) Result {
	sim := newSimulation(processes)
	readyQueue := core.NewSelectionQueue(func(a, b *job) bool {
		switch {
		case less(a, b):
			return true
		case less(b, a):
			return false
		}
		return a.seq < b.seq
	})

	for !sim.finished() {
		sim.admit(readyQueue.Add)

		current, ok := readyQueue.RemoveFirst()
		if !ok {
			if !sim.idleUntilNextArrival() {
				break
			}
			continue
		}
		sim.run(current, current.remaining)
	}

	return sim.response(algorithm, 0)
}

func scheduleShortestJobFirst(processes []Process) Result {
	return scheduleNonPreemptive(processes, SJF, func(a, b *job) bool {
		return a.result.BurstTime < b.result.BurstTime
	})
}
