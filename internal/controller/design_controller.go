package controller

import (
	"github.com/gofiber/fiber/v2"

	"tux-be/internal/dto"
	"tux-be/internal/pkg/serverutils"
	"tux-be/internal/service"
)

type IDesignController interface {
	RegisterRoutes(r fiber.Router)
	GenerateDesign(ctx *fiber.Ctx) error
}

type designController struct {
	service service.IDesignService
}

func NewDesignController(service service.IDesignService) IDesignController {
	return &designController{service: service}
}

func (c *designController) RegisterRoutes(r fiber.Router) {
	r.Post("/generate-design", c.GenerateDesign)
}

// GenerateDesign never hard-fails on model unavailability: the service
// degrades to a synthesized specification tagged with source=fallback.
func (c *designController) GenerateDesign(ctx *fiber.Ctx) error {
	var req dto.GenerateDesignRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GenerateDesign(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}
