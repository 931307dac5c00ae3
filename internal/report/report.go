// Package report renders scheduling results as plain text.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/core"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/schedulers"
	"github.com/olekukonko/tablewriter"
)

// unitWidth is the number of columns one time unit occupies in the chart.
const unitWidth = 3

// Number formats a statistic with at most two decimals.
func Number(f float64) string {
	// FtoaWithDigits truncates, so round first
	return humanize.FtoaWithDigits(math.Round(f*100)/100, 2)
}

type cell struct {
	start, width int // start is the column of the left border
}

func layout(timeline []core.Block) []cell {
	cells := make([]cell, len(timeline))
	col := 0
	for i, b := range timeline {
		width := max(b.Duration()*unitWidth, len(b.Name)+2)
		cells[i] = cell{start: col, width: width}
		col += width + 1
	}
	return cells
}

// Gantt writes the timeline as a bar with segment widths proportional to
// block durations and the block boundaries underneath.
func Gantt(w io.Writer, timeline []core.Block) error {
	cells := layout(timeline)

	var bar, axis strings.Builder
	bar.WriteString("|")
	if len(timeline) > 0 {
		axis.WriteString(strconv.Itoa(timeline[0].StartTime))
	}
	for i, b := range timeline {
		bar.WriteString(center(b.Name, cells[i].width))
		bar.WriteString("|")

		end := strconv.Itoa(b.EndTime)
		border := cells[i].start + cells[i].width + 1
		axis.WriteString(strings.Repeat(" ", max(border-axis.Len(), 1)))
		axis.WriteString(end)
	}

	_, err := fmt.Fprintf(w, "Gantt chart\n%s\n%s\n", bar.String(), axis.String())
	return err
}

// Cursor returns a line with a marker under time t of the chart Gantt draws.
func Cursor(timeline []core.Block, t int) string {
	cells := layout(timeline)
	for i, b := range timeline {
		if t < b.StartTime || t >= b.EndTime {
			continue
		}
		offset := (t - b.StartTime) * cells[i].width / b.Duration()
		return strings.Repeat(" ", cells[i].start+1+offset) + "^"
	}
	if n := len(cells); n > 0 {
		return strings.Repeat(" ", cells[n-1].start+cells[n-1].width+1) + "^"
	}
	return "^"
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Processes writes the per-process timing table.
func Processes(w io.Writer, res schedulers.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Priority", "Arrival", "Burst", "Start", "Finish", "Response", "Waiting", "Turnaround"})
	for _, p := range res.Processes {
		priority := "-"
		if p.Priority != nil {
			priority = strconv.Itoa(*p.Priority)
		}
		table.Append([]string{
			p.ID,
			p.Name,
			priority,
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.StartTime),
			strconv.Itoa(p.FinishTime),
			strconv.Itoa(p.ResponseTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.TurnaroundTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "", "Average",
		Number(res.AverageResponseTime),
		Number(res.AverageWaitingTime),
		Number(res.AverageTurnaroundTime)})
	table.Render()
}

// Statistics writes the aggregate figures of one run.
func Statistics(w io.Writer, res schedulers.Result) error {
	title := string(res.Algorithm)
	if res.Quantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, res.Quantum)
	}
	_, err := fmt.Fprintf(w,
		"%s\n"+
			"  average waiting time:    %s\n"+
			"  average turnaround time: %s\n"+
			"  average response time:   %s\n"+
			"  cpu utilization:         %s%%\n"+
			"  throughput:              %s processes/unit\n"+
			"  total time:              %d (idle %d)\n",
		title,
		Number(res.AverageWaitingTime),
		Number(res.AverageTurnaroundTime),
		Number(res.AverageResponseTime),
		Number(res.CpuUtilization),
		Number(res.Throughput),
		res.TotalExecutionTime, res.IdleTime)
	return err
}

// Full writes the chart, the process table and the statistics.
func Full(w io.Writer, res schedulers.Result) error {
	if err := Gantt(w, res.Timeline); err != nil {
		return err
	}
	fmt.Fprintln(w)
	Processes(w, res)
	fmt.Fprintln(w)
	return Statistics(w, res)
}

// Comparison writes one row of statistics per result.
func Comparison(w io.Writer, results []schedulers.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Waiting", "Avg Turnaround", "Avg Response", "CPU %", "Throughput", "Total"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, res := range results {
		name := string(res.Algorithm)
		if res.Quantum > 0 {
			name = fmt.Sprintf("%s q=%d", name, res.Quantum)
		}
		table.Append([]string{
			name,
			Number(res.AverageWaitingTime),
			Number(res.AverageTurnaroundTime),
			Number(res.AverageResponseTime),
			Number(res.CpuUtilization),
			Number(res.Throughput),
			strconv.Itoa(res.TotalExecutionTime),
		})
	}
	table.Render()
}
