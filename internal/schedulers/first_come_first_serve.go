package schedulers

// scheduleFirstComeFirstServe runs processes to completion in arrival order,
// ties kept in input order.
func scheduleFirstComeFirstServe(processes []Process) Result {
	sim := newSimulation(processes)

	for _, j := range sim.jobs {
		// gap between the last completion and this arrival
		sim.cpu.IdleUntil(j.result.ArrivalTime)
		sim.run(j, j.remaining)
	}
	sim.next = len(sim.jobs)

	return sim.response(FCFS, 0)
}
