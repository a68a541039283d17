package controller

import (
	"github.com/gofiber/fiber/v2"

	"tux-be/internal/service"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	service service.IDesignService
}

func NewHealthController(service service.IDesignService) IHealthController {
	return &healthController{service: service}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/health", c.Health)
}

func (c *healthController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message": "Welcome to TUX API - AI-Powered UX Design Generator",
		"version": "1.0.0",
		"status":  "active",
	})
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Health())
}
