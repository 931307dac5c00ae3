package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/himanshuyadav71/schedulicious-process-flow/config"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/logging"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/requests"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/responses"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return NewApp(NewSchedulerHandlerImpl(config.Default(), logging.Discard()))
}

func do(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func twoProcesses() []requests.Process {
	return []requests.Process{
		{ID: "A", Name: "A", ArrivalTime: 0, BurstTime: 5},
		{ID: "B", Name: "B", ArrivalTime: 1, BurstTime: 3},
	}
}

func TestSchedule_RoundRobin(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/api/v1/schedule", requests.ScheduleRequest{
		Algorithm: "RoundRobin",
		Quantum:   2,
		Steps:     true,
		Processes: twoProcesses(),
	})
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}

	var resp responses.ScheduleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Algorithm != "RoundRobin" || resp.TotalTime != 8 || len(resp.Timeline) != 5 {
		t.Errorf("response = %+v", resp)
	}
	if len(resp.Steps) != 8 {
		t.Errorf("got %d steps, want 8", len(resp.Steps))
	}
}

func TestSchedule_DefaultsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = "rr"
	cfg.RoundRobinTimeQuantum = 4
	app := NewApp(NewSchedulerHandlerImpl(cfg, logging.Discard()))

	status, body := do(t, app, http.MethodPost, "/api/v1/schedule", requests.ScheduleRequest{Processes: twoProcesses()})
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}
	var resp responses.ScheduleResponse
	json.Unmarshal(body, &resp)
	if resp.Algorithm != "RoundRobin" || resp.Quantum != 4 {
		t.Errorf("algorithm/quantum = %s/%d, want RoundRobin/4", resp.Algorithm, resp.Quantum)
	}
}

func TestFixedAlgorithmRoutes(t *testing.T) {
	app := newTestApp(t)
	p1, p2 := 2, 1
	processes := twoProcesses()
	processes[0].Priority = &p1
	processes[1].Priority = &p2

	tests := []struct {
		path, algorithm string
	}{
		{"/api/v1/fcfs", "FCFS"},
		{"/api/v1/rr", "RoundRobin"},
		{"/api/v1/sjf", "SJF"},
		{"/api/v1/priority", "PriorityNP"},
	}
	for _, tt := range tests {
		status, body := do(t, app, http.MethodPost, tt.path, requests.ScheduleRequest{Processes: processes})
		if status != http.StatusOK {
			t.Errorf("%s status = %d, body = %s", tt.path, status, body)
			continue
		}
		var resp responses.ScheduleResponse
		json.Unmarshal(body, &resp)
		if resp.Algorithm != tt.algorithm {
			t.Errorf("%s algorithm = %s, want %s", tt.path, resp.Algorithm, tt.algorithm)
		}
	}
}

func TestSchedule_Errors(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		field  string
	}{
		{"malformed body", "/api/v1/fcfs", "{not json", http.StatusBadRequest, ""},
		{"empty processes", "/api/v1/fcfs", requests.ScheduleRequest{}, http.StatusBadRequest, "processes"},
		{"missing priority", "/api/v1/priority", requests.ScheduleRequest{Processes: twoProcesses()}, http.StatusBadRequest, "priority"},
		{"negative quantum", "/api/v1/rr", requests.ScheduleRequest{Quantum: -1, Processes: twoProcesses()}, http.StatusBadRequest, "quantum"},
		{"bad color", "/api/v1/fcfs", requests.ScheduleRequest{Processes: []requests.Process{{ID: "a", BurstTime: 1, Color: "blue"}}}, http.StatusBadRequest, "color"},
		{"preemptive priority", "/api/v1/schedule", requests.ScheduleRequest{Algorithm: "PriorityP", Processes: twoProcesses()}, http.StatusNotImplemented, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, http.MethodPost, tt.path, tt.body)
			if status != tt.status {
				t.Fatalf("status = %d, want %d, body = %s", status, tt.status, body)
			}
			var resp responses.ErrorResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				t.Fatalf("decode error body: %v (%s)", err, body)
			}
			if resp.Error == "" {
				t.Error("error message missing")
			}
			if resp.Field != tt.field {
				t.Errorf("field = %q, want %q", resp.Field, tt.field)
			}
		})
	}
}

func TestSchedule_UnknownAlgorithmFallsBack(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/api/v1/schedule", requests.ScheduleRequest{Algorithm: "lottery", Processes: twoProcesses()})
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}
	var resp responses.ScheduleResponse
	json.Unmarshal(body, &resp)
	if resp.Algorithm != "FCFS" {
		t.Errorf("algorithm = %s, want FCFS", resp.Algorithm)
	}
}

func TestAllAlgorithms(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/api/v1/all", requests.ScheduleRequest{Processes: twoProcesses()})
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}
	var resp []responses.ScheduleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// no priorities in the request, so priority scheduling is skipped
	if len(resp) != 3 {
		t.Errorf("got %d results, want 3", len(resp))
	}
}

func TestSample(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodGet, "/api/v1/sample", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}
	var resp requests.ScheduleRequest
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Processes) != 5 || resp.Processes[0].Name != "P1" {
		t.Errorf("sample = %+v", resp.Processes)
	}
}
