package controller

import (
	"github.com/gofiber/fiber/v2"

	"tux-be/internal/pkg/serverutils"
	"tux-be/internal/service"
	"tux-be/pkg/uxspec"
)

type IRequirementsController interface {
	RegisterRoutes(r fiber.Router)
	Process(ctx *fiber.Ctx) error
	Validate(ctx *fiber.Ctx) error
}

type requirementsController struct {
	service service.IRequirementsService
}

func NewRequirementsController(service service.IRequirementsService) IRequirementsController {
	return &requirementsController{service: service}
}

func (c *requirementsController) RegisterRoutes(r fiber.Router) {
	r.Post("/process-requirements", c.Process)
	r.Post("/validate-requirements", c.Validate)
}

func (c *requirementsController) Process(ctx *fiber.Ctx) error {
	var req uxspec.Requirements
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Process(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

// Validate accepts incomplete records on purpose: completeness reporting is
// the service's job, so no struct-tag validation runs here.
func (c *requirementsController) Validate(ctx *fiber.Ctx) error {
	var req uxspec.Requirements
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Validate(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}
