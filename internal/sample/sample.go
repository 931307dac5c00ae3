// Package sample provides the demo workload.
package sample

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/palette"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/schedulers"
)

type entry struct {
	name                     string
	arrival, burst, priority int
}

var processes = []entry{
	{"P1", 0, 5, 1},
	{"P2", 1, 3, 2},
	{"P3", 2, 8, 1},
	{"P4", 3, 2, 3},
	{"P5", 4, 4, 2},
}

// Processes returns the five sample processes. IDs are regenerated on every
// call so repeated loads never collide.
func Processes() []schedulers.Process {
	out := make([]schedulers.Process, len(processes))
	for i, s := range processes {
		priority := s.priority
		out[i] = schedulers.Process{
			ID:          fmt.Sprintf("sample-%s-%s", uuid.NewString()[:8], s.name),
			Name:        s.name,
			ArrivalTime: s.arrival,
			BurstTime:   s.burst,
			Priority:    &priority,
			Color:       palette.ProcessColor(i),
		}
	}
	return out
}
