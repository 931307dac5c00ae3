// Package workload reads and writes process lists from files.
//
// YAML and JSON files hold a requests.ScheduleRequest document. CSV files
// hold one process per row: id,name,arrival_time,burst_time[,priority], with
// an optional header row.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/himanshuyadav71/schedulicious-process-flow/internal/requests"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

var ErrUnknownFormat = errors.New("unknown workload format")

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads a workload file, choosing the decoder by extension.
func Load(path string) (requests.ScheduleRequest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return requests.ScheduleRequest{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequest{}, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	req, err := Decode(f, format)
	if err != nil {
		return requests.ScheduleRequest{}, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

func Decode(r io.Reader, format Format) (requests.ScheduleRequest, error) {
	switch format {
	case FormatYAML, FormatJSON:
		// JSON documents are valid YAML.
		var req requests.ScheduleRequest
		if err := yaml.NewDecoder(r).Decode(&req); err != nil {
			return requests.ScheduleRequest{}, fmt.Errorf("parse workload: %w", err)
		}
		return req, nil
	case FormatCSV:
		processes, err := decodeCSV(r)
		if err != nil {
			return requests.ScheduleRequest{}, err
		}
		return requests.ScheduleRequest{Processes: processes}, nil
	default:
		return requests.ScheduleRequest{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func decodeCSV(r io.Reader) ([]requests.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}
	if len(rows) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), "id") {
		rows = rows[1:]
	}

	processes := make([]requests.Process, 0, len(rows))
	for i, row := range rows {
		line := i + 1
		if len(row) < 4 || len(row) > 5 {
			return nil, fmt.Errorf("row %d: expected 4 or 5 columns, got %d", line, len(row))
		}
		for j := range row {
			row[j] = strings.TrimSpace(row[j])
		}
		p := requests.Process{ID: row[0], Name: row[1]}
		if p.ArrivalTime, err = strconv.Atoi(row[2]); err != nil {
			return nil, fmt.Errorf("row %d: arrival_time: %w", line, err)
		}
		if p.BurstTime, err = strconv.Atoi(row[3]); err != nil {
			return nil, fmt.Errorf("row %d: burst_time: %w", line, err)
		}
		if len(row) == 5 && row[4] != "" {
			priority, err := strconv.Atoi(row[4])
			if err != nil {
				return nil, fmt.Errorf("row %d: priority: %w", line, err)
			}
			p.Priority = &priority
		}
		processes = append(processes, p)
	}
	return processes, nil
}

// Encode writes req in the given format.
func Encode(w io.Writer, req requests.ScheduleRequest, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(req); err != nil {
			return fmt.Errorf("encode workload: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		return encodeJSON(w, req)
	case FormatCSV:
		return encodeCSV(w, req.Processes)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func encodeCSV(w io.Writer, processes []requests.Process) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "name", "arrival_time", "burst_time", "priority"}); err != nil {
		return err
	}
	for _, p := range processes {
		priority := ""
		if p.Priority != nil {
			priority = strconv.Itoa(*p.Priority)
		}
		row := []string{p.ID, p.Name, strconv.Itoa(p.ArrivalTime), strconv.Itoa(p.BurstTime), priority}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
