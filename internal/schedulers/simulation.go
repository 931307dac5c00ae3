package schedulers

import (
	"sort"

	"github.com/himanshuyadav71/schedulicious-process-flow/internal/core"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/palette"
)

// job is the simulation's private, mutable view of one process.
type job struct {
	// seq is the position in arrival order, ties kept in input order.
	seq       int
	result    ProcessResult
	remaining int
	started   bool
}

// simulation holds the state shared by every algorithm: the CPU clock and
// timeline, and the arrival-ordered list of jobs not yet admitted.
type simulation struct {
	cpu  *core.CPU
	jobs []*job
	next int
	done int
}

func newSimulation(processes []Process) *simulation {
	jobs := make([]*job, len(processes))
	for i, p := range processes {
		jobs[i] = &job{result: ProcessResult{Process: p}, remaining: p.BurstTime}
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].result.ArrivalTime < jobs[j].result.ArrivalTime
	})
	for i, j := range jobs {
		j.seq = i
	}
	return &simulation{cpu: core.NewCPU(palette.Idle()), jobs: jobs}
}

// admit hands every job that has arrived by now to add, in arrival order.
func (s *simulation) admit(add func(*job)) {
	for s.next < len(s.jobs) && s.jobs[s.next].result.ArrivalTime <= s.cpu.Now() {
		add(s.jobs[s.next])
		s.next++
	}
}

// idleUntilNextArrival records an idle gap up to the next pending arrival.
// It returns false when nothing is left to arrive.
func (s *simulation) idleUntilNextArrival() bool {
	if s.next >= len(s.jobs) {
		return false
	}
	s.cpu.IdleUntil(s.jobs[s.next].result.ArrivalTime)
	return true
}

func (s *simulation) finished() bool {
	return s.done == len(s.jobs)
}

// run executes j for d time units, recording its first dispatch and its
// completion when the remaining time reaches zero.
func (s *simulation) run(j *job, d int) {
	p := &j.result
	start, end := s.cpu.Execute(p.ID, p.Name, p.Color, d)
	if !j.started {
		j.started = true
		p.StartTime = start
		p.ResponseTime = start - p.ArrivalTime
	}

	j.remaining -= d
	if j.remaining > 0 {
		return
	}
	p.FinishTime = end
	p.TurnaroundTime = end - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	s.done++
}

func (s *simulation) processDetails() []ProcessResult {
	out := make([]ProcessResult, len(s.jobs))
	for i, j := range s.jobs {
		out[i] = j.result
	}
	return out
}
