package responses

import (
	"errors"

	"github.com/himanshuyadav71/schedulicious-process-flow/internal/core"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/playback"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/schedulers"
)

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	Name           string `json:"name"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       *int   `json:"priority,omitempty"`
	Color          string `json:"color"`
	StartTime      int    `json:"start_time"`
	FinishTime     int    `json:"finish_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string                   `json:"algorithm"`
	Quantum               int                      `json:"quantum,omitempty"`
	TotalTime             int                      `json:"total_time"`
	IdleTime              int                      `json:"idle_time"`
	AverageWaitingTime    float64                  `json:"average_waiting_time"`
	AverageResponseTime   float64                  `json:"average_response_time"`
	AverageTurnAroundTime float64                  `json:"average_turn_around_time"`
	CpuUtilization        float64                  `json:"cpu_utilization"`
	CpuThroughput         float64                  `json:"cpu_throughput"`
	Timeline              []core.Block             `json:"timeline"`
	Details               []ProcessResponse        `json:"details"`
	Steps                 []playback.ExecutionStep `json:"steps,omitempty"`
}

func NewScheduleResponse(res schedulers.Result, withSteps bool) ScheduleResponse {
	details := make([]ProcessResponse, len(res.Processes))
	for i, p := range res.Processes {
		details[i] = ProcessResponse{
			ProcessId:      p.ID,
			Name:           p.Name,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			Color:          p.Color,
			StartTime:      p.StartTime,
			FinishTime:     p.FinishTime,
			ResponseTime:   p.ResponseTime,
			TurnAroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
		}
	}

	response := ScheduleResponse{
		Algorithm:             string(res.Algorithm),
		Quantum:               res.Quantum,
		TotalTime:             res.TotalExecutionTime,
		IdleTime:              res.IdleTime,
		AverageWaitingTime:    res.AverageWaitingTime,
		AverageResponseTime:   res.AverageResponseTime,
		AverageTurnAroundTime: res.AverageTurnaroundTime,
		CpuUtilization:        res.CpuUtilization,
		CpuThroughput:         res.Throughput,
		Timeline:              res.Timeline,
		Details:               details,
	}
	if withSteps {
		response.Steps = playback.Steps(res)
	}
	return response
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Index *int   `json:"index,omitempty"`
}

// NewErrorResponse describes err for an API client, exposing the offending
// field when err is a precondition failure.
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: err.Error()}
	var pe *schedulers.PreconditionError
	if errors.As(err, &pe) {
		resp.Field = pe.Field
		if pe.Index >= 0 {
			idx := pe.Index
			resp.Index = &idx
		}
	}
	return resp
}
