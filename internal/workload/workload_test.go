package workload

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/himanshuyadav71/schedulicious-process-flow/internal/requests"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "w.yaml", `
algorithm: rr
quantum: 3
processes:
  - id: a
    name: A
    arrival_time: 0
    burst_time: 5
    priority: 2
  - id: b
    name: B
    arrival_time: 1
    burst_time: 3
    color: "#ff0000"
`)
	req, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if req.Algorithm != "rr" || req.Quantum != 3 {
		t.Errorf("algorithm/quantum = %q/%d", req.Algorithm, req.Quantum)
	}
	if len(req.Processes) != 2 || req.Processes[1].BurstTime != 3 || req.Processes[1].Color != "#ff0000" {
		t.Errorf("processes = %+v", req.Processes)
	}
	if req.Processes[0].Priority == nil || *req.Processes[0].Priority != 2 || req.Processes[1].Priority != nil {
		t.Errorf("priorities = %v, %v", req.Processes[0].Priority, req.Processes[1].Priority)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "w.json", `{"processes":[{"id":"a","name":"A","arrival_time":2,"burst_time":4}]}`)
	req, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(req.Processes) != 1 || req.Processes[0].ArrivalTime != 2 {
		t.Errorf("processes = %+v", req.Processes)
	}
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "w.csv", "id,name,arrival_time,burst_time,priority\na,A,0,5,1\nb,B,1,3,\nc,C,2,2\n")
	req, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(req.Processes) != 3 {
		t.Fatalf("got %d processes, want 3", len(req.Processes))
	}
	if *req.Processes[0].Priority != 1 || req.Processes[1].Priority != nil || req.Processes[2].Priority != nil {
		t.Errorf("priorities parsed wrong: %+v", req.Processes)
	}
}

func TestLoad_CSVTrimsFields(t *testing.T) {
	path := writeFile(t, "w.csv", "id, name, arrival_time, burst_time\n a , A ,0 , 5 \nb,B,1\t,3,2 \n")
	req, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(req.Processes) != 2 {
		t.Fatalf("got %d processes, want 2", len(req.Processes))
	}
	a, b := req.Processes[0], req.Processes[1]
	if a.ID != "a" || a.Name != "A" || a.ArrivalTime != 0 || a.BurstTime != 5 {
		t.Errorf("first row = %+v", a)
	}
	if b.ArrivalTime != 1 || b.Priority == nil || *b.Priority != 2 {
		t.Errorf("second row = %+v", b)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name, file, content, want string
	}{
		{"bad arrival", "w.csv", "a,A,x,5\n", "arrival_time"},
		{"short row", "w.csv", "a,A,0\n", "expected 4 or 5 columns"},
		{"bad yaml", "w.yaml", "processes: [", "parse workload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}

	if _, err := Load("workload.txt"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	p := 3
	req := requests.ScheduleRequest{Processes: []requests.Process{
		{ID: "a", Name: "A", ArrivalTime: 0, BurstTime: 2, Priority: &p},
		{ID: "b", Name: "B", ArrivalTime: 4, BurstTime: 1},
	}}

	for _, format := range []Format{FormatYAML, FormatJSON, FormatCSV} {
		var buf bytes.Buffer
		if err := Encode(&buf, req, format); err != nil {
			t.Fatalf("Encode(%s) error: %v", format, err)
		}
		got, err := Decode(&buf, format)
		if err != nil {
			t.Fatalf("Decode(%s) error: %v", format, err)
		}
		if len(got.Processes) != 2 || got.Processes[1].ArrivalTime != 4 || *got.Processes[0].Priority != 3 {
			t.Errorf("%s round trip = %+v", format, got.Processes)
		}
	}
}
