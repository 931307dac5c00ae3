package requests

import (
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/palette"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/schedulers"
)

type Process struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
}

// ScheduleRequest is the body of a scheduling call and the layout of a
// workload file. Algorithm and Quantum may be left empty to use defaults.
type ScheduleRequest struct {
	Algorithm string    `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Quantum   int       `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Steps     bool      `json:"steps,omitempty" yaml:"-"`
	Processes []Process `json:"processes" yaml:"processes"`
}

// ToProcesses converts the request's processes for the scheduler, rejecting
// colors that are not hex triplets.
func (r ScheduleRequest) ToProcesses() ([]schedulers.Process, error) {
	out := make([]schedulers.Process, len(r.Processes))
	for i, p := range r.Processes {
		color := p.Color
		if color != "" {
			normalized, err := palette.Normalize(color)
			if err != nil {
				return nil, &schedulers.PreconditionError{Field: "color", Index: i, Message: err.Error()}
			}
			color = normalized
		}
		out[i] = schedulers.Process{
			ID:          p.ID,
			Name:        p.Name,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
			Color:       color,
		}
	}
	return out, nil
}

// FromProcesses is the inverse of ToProcesses.
func FromProcesses(processes []schedulers.Process) []Process {
	out := make([]Process, len(processes))
	for i, p := range processes {
		out[i] = Process{
			ID:          p.ID,
			Name:        p.Name,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
			Color:       p.Color,
		}
	}
	return out
}
