package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/responses"
)

// NewApp builds the fiber application serving the scheduling API.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "schedsim",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/schedule", handler.Schedule)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.PriorityNonPreemptive)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/sample", handler.Sample)
	}

	return app
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}
