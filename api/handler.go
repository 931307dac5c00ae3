package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/himanshuyadav71/schedulicious-process-flow/config"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/requests"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/responses"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/sample"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/schedulers"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	PriorityNonPreemptive(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Sample(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger.With("component", "api")}
}

// Schedule runs the algorithm named in the request body, or the configured
// default when none is given.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	request, err := s.parse(ctx)
	if err != nil {
		return err
	}

	name := request.Algorithm
	if name == "" {
		name = s.config.Algorithm
	}
	algorithm, ok := schedulers.ParseAlgorithm(name)
	if !ok {
		s.logger.Warn("unknown algorithm, falling back to FCFS", "algorithm", name)
	}
	return s.run(ctx, algorithm, request)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.fixed(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.fixed(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.fixed(ctx, schedulers.SJF)
}

func (s *SchedulerHandlerImpl) PriorityNonPreemptive(ctx *fiber.Ctx) error {
	return s.fixed(ctx, schedulers.PriorityNP)
}

// AllAlgorithms runs every implemented algorithm over the same processes.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parse(ctx)
	if err != nil {
		return err
	}
	processes, err := request.ToProcesses()
	if err != nil {
		return s.fail(ctx, err)
	}

	results, err := schedulers.Compare(processes, s.quantum(request))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]responses.ScheduleResponse, len(results))
	for i, res := range results {
		response[i] = responses.NewScheduleResponse(res, request.Steps)
	}
	s.logger.Info("compared algorithms", "processes", len(processes), "algorithms", len(results))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Sample(ctx *fiber.Ctx) error {
	return ctx.JSON(requests.ScheduleRequest{Processes: requests.FromProcesses(sample.Processes())})
}

func (s *SchedulerHandlerImpl) fixed(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parse(ctx)
	if err != nil {
		return err
	}
	return s.run(ctx, algorithm, request)
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, algorithm schedulers.Algorithm, request requests.ScheduleRequest) error {
	processes, err := request.ToProcesses()
	if err != nil {
		return s.fail(ctx, err)
	}

	quantum := 0
	if algorithm.RequiresQuantum() {
		quantum = s.quantum(request)
	}
	result, err := schedulers.Schedule(algorithm, processes, quantum)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.logger.Info("simulation complete",
		"algorithm", result.Algorithm,
		"processes", len(result.Processes),
		"total_time", result.TotalExecutionTime,
		"cpu_utilization", result.CpuUtilization)
	return ctx.JSON(responses.NewScheduleResponse(result, request.Steps))
}

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Debug("rejecting request body", "error", err)
		return request, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	return request, nil
}

// quantum falls back to the configured time quantum when the request leaves
// it unset.
func (s *SchedulerHandlerImpl) quantum(request requests.ScheduleRequest) int {
	if request.Quantum == 0 {
		return s.config.RoundRobinTimeQuantum
	}
	return request.Quantum
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, schedulers.ErrPrecondition):
		status = fiber.StatusBadRequest
	case errors.Is(err, schedulers.ErrNotImplemented):
		status = fiber.StatusNotImplemented
	}
	s.logger.Warn("can not process request", "status", status, "error", err)
	return ctx.Status(status).JSON(responses.NewErrorResponse(err))
}
