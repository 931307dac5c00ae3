package cli

import (
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/report"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/schedulers"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/workload"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var quantum int

	cmd := &cobra.Command{
		Use:   "compare <workload-file>",
		Short: "Run every algorithm over a workload and compare their statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := workload.Load(args[0])
			if err != nil {
				return err
			}
			processes, err := req.ToProcesses()
			if err != nil {
				return err
			}

			results, err := schedulers.Compare(processes, resolveQuantum(quantum, req))
			if err != nil {
				return err
			}
			logger.Info("compared algorithms", "processes", len(processes), "algorithms", len(results))
			report.Comparison(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round Robin time quantum (default from workload, then config)")
	return cmd
}
