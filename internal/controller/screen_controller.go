package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tux-be/internal/dto"
	"tux-be/internal/pkg/serverutils"
	"tux-be/internal/service"
)

type IScreenController interface {
	RegisterRoutes(r fiber.Router)
	GenerateLayout(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type screenController struct {
	service service.IDesignService
}

func NewScreenController(service service.IDesignService) IScreenController {
	return &screenController{service: service}
}

func (c *screenController) RegisterRoutes(r fiber.Router) {
	r.Post("/generate-layout", c.GenerateLayout)
	r.Get("/screens/:id", c.Show)
}

func (c *screenController) GenerateLayout(ctx *fiber.Ctx) error {
	var req dto.GenerateLayoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GenerateLayout(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *screenController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid mockup id"))
	}

	res, err := c.service.GetMockup(id)
	if err != nil {
		if errors.Is(err, service.ErrMockupNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}
