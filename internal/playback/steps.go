// Package playback replays a computed schedule one time unit at a time.
package playback

import (
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/core"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/schedulers"
)

// ExecutionStep is the state of the system at the start of time unit Time.
type ExecutionStep struct {
	Time int `json:"time"`
	// ActiveProcess is empty while the CPU idles.
	ActiveProcess       string         `json:"active_process,omitempty"`
	RemainingBurstTimes map[string]int `json:"remaining_burst_times"`
	WaitingProcesses    []string       `json:"waiting_processes"`
	CompletedProcesses  []string       `json:"completed_processes"`
}

// Steps expands a result into one step per time unit in [0, total).
func Steps(res schedulers.Result) []ExecutionStep {
	steps := make([]ExecutionStep, 0, res.TotalExecutionTime)
	executed := make(map[string]int, len(res.Processes))

	b := 0
	for t := 0; t < res.TotalExecutionTime; t++ {
		for b < len(res.Timeline) && res.Timeline[b].EndTime <= t {
			b++
		}
		active := ""
		if b < len(res.Timeline) && !res.Timeline[b].Idle() {
			active = res.Timeline[b].ProcessID
		}

		step := ExecutionStep{
			Time:                t,
			ActiveProcess:       active,
			RemainingBurstTimes: make(map[string]int, len(res.Processes)),
			WaitingProcesses:    make([]string, 0),
			CompletedProcesses:  make([]string, 0),
		}
		for _, p := range res.Processes {
			step.RemainingBurstTimes[p.ID] = p.BurstTime - executed[p.ID]
			switch {
			case p.FinishTime <= t:
				step.CompletedProcesses = append(step.CompletedProcesses, p.ID)
			case p.ArrivalTime <= t && p.ID != active:
				step.WaitingProcesses = append(step.WaitingProcesses, p.ID)
			}
		}
		steps = append(steps, step)

		if active != "" {
			executed[active]++
		}
	}
	return steps
}

// ActiveAt returns the timeline block covering time t.
func ActiveAt(timeline []core.Block, t int) (core.Block, bool) {
	for _, b := range timeline {
		if b.StartTime <= t && t < b.EndTime {
			return b, true
		}
	}
	return core.Block{}, false
}
