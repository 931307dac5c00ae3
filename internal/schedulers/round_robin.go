package schedulers

import "github.com/himanshuyadav71/schedulicious-process-flow/internal/core"

// scheduleRoundRobin time-slices the CPU among ready processes with a fixed
// quantum. Processes that arrive while a slice runs are queued ahead of the
// process that slice preempted.
func scheduleRoundRobin(processes []Process, timeQuantum int) Result {
	sim := newSimulation(processes)
	roundRobinQueue := core.NewProcessQueue[*job]()

	for !sim.finished() {
		sim.admit(roundRobinQueue.AddToEnd)

		current, ok := roundRobinQueue.RemoveFromTop()
		if !ok {
			if !sim.idleUntilNextArrival() {
				break
			}
			continue
		}

		sim.run(current, min(timeQuantum, current.remaining))

		// arrivals during the slice go first
		sim.admit(roundRobinQueue.AddToEnd)
		if current.remaining > 0 {
			roundRobinQueue.AddToEnd(current)
		}
	}

	return sim.response(RoundRobin, timeQuantum)
}
