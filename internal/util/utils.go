package util

// Timing is the per-process view CalculateAverage needs.
type Timing interface {
	Waiting() int
	Response() int
	TurnAround() int
}

// CalculateAverage returns the arithmetic means of the waiting, response and
// turnaround times. Callers must not pass an empty slice.
func CalculateAverage[T Timing](processDetails []T) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	var waitingTimeSum, responseTimeSum, turnAroundTimeSum int

	for _, process := range processDetails {
		waitingTimeSum += process.Waiting()
		responseTimeSum += process.Response()
		turnAroundTimeSum += process.TurnAround()
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageResponseTime = float64(responseTimeSum) / processCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / processCount
	return
}

// Percent returns part/whole*100, or 0 when whole is 0.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
