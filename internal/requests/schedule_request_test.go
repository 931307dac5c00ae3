package requests

import (
	"errors"
	"testing"

	"github.com/himanshuyadav71/schedulicious-process-flow/internal/schedulers"
)

func TestToProcesses(t *testing.T) {
	p := 2
	req := ScheduleRequest{Processes: []Process{
		{ID: "a", Name: "A", ArrivalTime: 1, BurstTime: 4, Priority: &p, Color: "#ABCDEF"},
		{ID: "b", Name: "B", BurstTime: 1},
	}}

	got, err := req.ToProcesses()
	if err != nil {
		t.Fatalf("ToProcesses error: %v", err)
	}
	if got[0].Color != "#abcdef" {
		t.Errorf("color = %q, want normalized #abcdef", got[0].Color)
	}
	if got[0].Priority == nil || *got[0].Priority != 2 || got[1].Priority != nil {
		t.Errorf("priorities not carried over: %+v", got)
	}
	if got[1].Color != "" {
		t.Errorf("empty color became %q", got[1].Color)
	}

	back := FromProcesses(got)
	if back[0].ID != "a" || back[0].ArrivalTime != 1 || back[0].BurstTime != 4 {
		t.Errorf("FromProcesses = %+v", back[0])
	}
}

func TestToProcesses_InvalidColor(t *testing.T) {
	req := ScheduleRequest{Processes: []Process{{ID: "a", BurstTime: 1}, {ID: "b", BurstTime: 1, Color: "bg-process-p1"}}}

	_, err := req.ToProcesses()
	var pe *schedulers.PreconditionError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *PreconditionError", err)
	}
	if pe.Field != "color" || pe.Index != 1 {
		t.Errorf("error = %+v, want color at index 1", pe)
	}
}
