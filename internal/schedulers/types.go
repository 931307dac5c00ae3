package schedulers

import (
	"strings"

	"github.com/himanshuyadav71/schedulicious-process-flow/internal/core"
)

// Algorithm selects a scheduling policy.
type Algorithm string

const (
	FCFS       Algorithm = "FCFS"
	SJF        Algorithm = "SJF"
	RoundRobin Algorithm = "RoundRobin"
	PriorityNP Algorithm = "PriorityNP"
	// PriorityP is preemptive priority scheduling. It is part of the
	// selector surface but Schedule rejects it with ErrNotImplemented.
	PriorityP Algorithm = "PriorityP"
)

// Implemented lists the algorithms Schedule can run, in display order.
func Implemented() []Algorithm {
	return []Algorithm{FCFS, SJF, RoundRobin, PriorityNP}
}

// ParseAlgorithm maps a user supplied selector to an Algorithm. Matching is
// case-insensitive and accepts a few common spellings. Unrecognized values
// return FCFS and false.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "first-come-first-serve", "first_come_first_serve":
		return FCFS, true
	case "sjf", "shortest-job-first", "shortest_job_first":
		return SJF, true
	case "roundrobin", "round-robin", "round_robin", "rr":
		return RoundRobin, true
	case "prioritynp", "priority", "priority-np", "priority_np":
		return PriorityNP, true
	case "priorityp", "priority-p", "priority_p":
		return PriorityP, true
	default:
		return FCFS, false
	}
}

// RequiresPriority reports whether the algorithm reads Process.Priority.
func (a Algorithm) RequiresPriority() bool {
	return a == PriorityNP || a == PriorityP
}

// RequiresQuantum reports whether the algorithm reads the time quantum.
func (a Algorithm) RequiresQuantum() bool {
	return a == RoundRobin
}

// Process is a caller supplied process record.
type Process struct {
	ID          string
	Name        string
	ArrivalTime int
	BurstTime   int
	// Priority is only read by priority scheduling. Lower values run first.
	Priority *int
	Color    string
}

// ProcessResult is a process with the timings computed by a simulation.
type ProcessResult struct {
	Process
	StartTime      int
	FinishTime     int
	ResponseTime   int
	WaitingTime    int
	TurnaroundTime int
}

func (p ProcessResult) Waiting() int    { return p.WaitingTime }
func (p ProcessResult) Response() int   { return p.ResponseTime }
func (p ProcessResult) TurnAround() int { return p.TurnaroundTime }

// Result is everything one simulation run produces.
type Result struct {
	Algorithm Algorithm
	// Quantum is the time slice used, or 0 for algorithms without one.
	Quantum   int
	Processes []ProcessResult
	Timeline  []core.Block

	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	AverageResponseTime   float64
	CpuUtilization        float64
	Throughput            float64

	TotalExecutionTime int
	IdleTime           int
}
