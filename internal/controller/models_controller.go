package controller

import (
	"github.com/gofiber/fiber/v2"

	"tux-be/internal/service"
)

type IModelsController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type modelsController struct {
	service service.IDesignService
}

func NewModelsController(service service.IDesignService) IModelsController {
	return &modelsController{service: service}
}

func (c *modelsController) RegisterRoutes(r fiber.Router) {
	r.Get("/models", c.List)
}

func (c *modelsController) List(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.ListModels())
}
