package schedulers

import (
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/core"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/util"
)

func generateResponse(algorithm Algorithm, quantum int, processDetails []ProcessResult, cpu *core.CPU) Result {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)

	metric := cpu.Metric()
	var throughput float64
	if metric.TotalTime > 0 {
		throughput = float64(len(processDetails)) / float64(metric.TotalTime)
	}

	return Result{
		Algorithm:             algorithm,
		Quantum:               quantum,
		Processes:             processDetails,
		Timeline:              cpu.Timeline(),
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnaroundTime: averageTurnAroundTime,
		AverageResponseTime:   averageResponseTime,
		CpuUtilization:        util.Percent(metric.TotalTime-metric.IdleTime, metric.TotalTime),
		Throughput:            throughput,
		TotalExecutionTime:    metric.TotalTime,
		IdleTime:              metric.IdleTime,
	}
}

func (s *simulation) response(algorithm Algorithm, quantum int) Result {
	return generateResponse(algorithm, quantum, s.processDetails(), s.cpu)
}
