package cli

import (
	"fmt"

	"github.com/himanshuyadav71/schedulicious-process-flow/internal/report"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/requests"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/schedulers"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/workload"
	"github.com/spf13/cobra"
)

// runOptions are the flags shared by commands that simulate one algorithm.
type runOptions struct {
	algorithm string
	quantum   int
}

func (o *runOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.algorithm, "algorithm", "a", "", "Algorithm: fcfs, sjf, rr, priority (default from workload, then config)")
	cmd.Flags().IntVarP(&o.quantum, "quantum", "q", 0, "Round Robin time quantum (default from workload, then config)")
}

// resolve picks the algorithm and quantum: flags win over the workload file,
// which wins over configuration.
func (o *runOptions) resolve(req requests.ScheduleRequest) (schedulers.Algorithm, int) {
	name := cfg.Algorithm
	if req.Algorithm != "" {
		name = req.Algorithm
	}
	if o.algorithm != "" {
		name = o.algorithm
	}
	algorithm, ok := schedulers.ParseAlgorithm(name)
	if !ok {
		logger.Warn("unknown algorithm, falling back to FCFS", "algorithm", name)
	}
	return algorithm, resolveQuantum(o.quantum, req)
}

func resolveQuantum(flag int, req requests.ScheduleRequest) int {
	switch {
	case flag != 0:
		return flag
	case req.Quantum != 0:
		return req.Quantum
	default:
		return cfg.RoundRobinTimeQuantum
	}
}

// simulate loads a workload file and runs one algorithm over it.
func simulate(path string, opts *runOptions) (schedulers.Result, error) {
	req, err := workload.Load(path)
	if err != nil {
		return schedulers.Result{}, err
	}
	processes, err := req.ToProcesses()
	if err != nil {
		return schedulers.Result{}, err
	}

	algorithm, quantum := opts.resolve(req)
	logger.Debug("running simulation", "algorithm", algorithm, "quantum", quantum, "processes", len(processes))

	res, err := schedulers.Schedule(algorithm, processes, quantum)
	if err != nil {
		return schedulers.Result{}, fmt.Errorf("schedule %s: %w", algorithm, err)
	}
	for _, p := range res.Processes {
		logger.Debug("process completed", "pid", p.ID, "start", p.StartTime, "finish", p.FinishTime)
	}
	return res, nil
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <workload-file>",
		Short: "Simulate one algorithm and print the Gantt chart and statistics",
		Long: `Reads a workload file (.yaml, .yml, .json or .csv) and simulates the selected
algorithm over it. CSV rows are id,name,arrival_time,burst_time[,priority].`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := simulate(args[0], opts)
			if err != nil {
				return err
			}
			logger.Info("simulation complete", "algorithm", res.Algorithm, "total_time", res.TotalExecutionTime)
			return report.Full(cmd.OutOrStdout(), res)
		},
	}

	opts.bind(cmd)
	return cmd
}
