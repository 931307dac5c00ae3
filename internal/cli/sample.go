package cli

import (
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/requests"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/sample"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/workload"
	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the sample workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := requests.ScheduleRequest{Processes: requests.FromProcesses(sample.Processes())}
			return workload.Encode(cmd.OutOrStdout(), req, workload.Format(format))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml, json, csv)")
	return cmd
}
