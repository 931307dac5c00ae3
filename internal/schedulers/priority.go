package schedulers

// schedulePriorityNonPreemptive dispatches the ready process with the lowest
// priority value. A running process is never interrupted by later arrivals.
func schedulePriorityNonPreemptive(processes []Process) Result {
	return scheduleNonPreemptive(processes, PriorityNP, func(a, b *job) bool {
		return *a.result.Priority < *b.result.Priority
	})
}
