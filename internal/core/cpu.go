package core

// IdleProcessID marks timeline blocks during which no process was runnable.
const IdleProcessID = "idle"

// IdleName is the display name of idle blocks.
const IdleName = "Idle"

// Block is one Gantt chart entry: the half-open interval [Start, End) and the
// process that occupied the CPU during it.
type Block struct {
	ProcessID string `json:"process_id"`
	Name      string `json:"name"`
	StartTime int    `json:"start_time"`
	EndTime   int    `json:"end_time"`
	Color     string `json:"color"`
}

// Idle reports whether the block is an idle gap.
func (b Block) Idle() bool {
	return b.ProcessID == IdleProcessID
}

// Duration is the number of time units covered by the block.
func (b Block) Duration() int {
	return b.EndTime - b.StartTime
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is a single simulated core. It owns the clock and records every
// interval it spends executing or idling, so the timeline it produces is
// contiguous from time 0.
type CPU struct {
	clock     int
	idleColor string
	timeline  []Block
	metric    CpuMetric
}

func NewCPU(idleColor string) *CPU {
	return &CPU{idleColor: idleColor, timeline: make([]Block, 0)}
}

// Now returns the current simulated time.
func (c *CPU) Now() int {
	return c.clock
}

// IdleUntil advances the clock to t, recording an idle block for the gap.
// It does nothing when t is not in the future.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.timeline = append(c.timeline, Block{
		ProcessID: IdleProcessID,
		Name:      IdleName,
		StartTime: c.clock,
		EndTime:   t,
		Color:     c.idleColor,
	})
	c.metric.IdleTime += t - c.clock
	c.metric.TotalTime = t
	c.clock = t
}

// Execute runs a process for d time units starting now and returns the
// interval it occupied.
func (c *CPU) Execute(processID, name, color string, d int) (start, end int) {
	start, end = c.clock, c.clock+d
	c.timeline = append(c.timeline, Block{
		ProcessID: processID,
		Name:      name,
		StartTime: start,
		EndTime:   end,
		Color:     color,
	})
	c.metric.UtilizationTime += d
	c.metric.TotalTime = end
	c.clock = end
	return start, end
}

// Timeline returns a copy of the recorded blocks.
func (c *CPU) Timeline() []Block {
	out := make([]Block, len(c.timeline))
	copy(out, c.timeline)
	return out
}

func (c *CPU) Metric() CpuMetric {
	return c.metric
}
