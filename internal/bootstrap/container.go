package bootstrap

import (
	"log"
	"os"
	"time"

	"github.com/patrickmn/go-cache"

	"tux-be/internal/config"
	"tux-be/internal/controller"
	"tux-be/internal/pkg/logger"
	"tux-be/internal/service"
	"tux-be/pkg/llm/factory"
	"tux-be/pkg/llm/huggingface"
	"tux-be/pkg/llm/together"
	"tux-be/pkg/uxspec/generator"
)

type Container struct {
	// Controllers
	RequirementsController controller.IRequirementsController
	DesignController       controller.IDesignController
	ScreenController       controller.IScreenController
	ModelsController       controller.IModelsController
	HealthController       controller.IHealthController

	// Exposed for main.go to flush on shutdown
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Providers
	togetherProvider := together.New(cfg.Keys.Together, cfg.Providers.TogetherBaseURL)
	hfProvider := huggingface.New(cfg.Keys.HuggingFace, cfg.Providers.HuggingFaceBaseURL)
	routerProvider := factory.NewRouter(togetherProvider, hfProvider)
	log.Printf("[INFO] LLM providers wired (together configured: %v, huggingface configured: %v)",
		cfg.Keys.Together != "", cfg.Keys.HuggingFace != "")

	gen := generator.New(routerProvider, log.New(os.Stdout, "[uxspec] ", log.LstdFlags))

	// 3. Mockup Store (process-memory only, TTL-bound)
	mockupTTL := time.Duration(cfg.Mockup.TTLMinutes) * time.Minute
	mockupStore := cache.New(mockupTTL, 10*time.Minute)

	// 4. Services
	requirementsService := service.NewRequirementsService(sysLogger)
	designService := service.NewDesignService(
		gen,
		mockupStore,
		sysLogger,
		cfg.Keys.Together != "",
		cfg.Keys.HuggingFace != "",
	)

	// 5. Controllers
	return &Container{
		RequirementsController: controller.NewRequirementsController(requirementsService),
		DesignController:       controller.NewDesignController(designService),
		ScreenController:       controller.NewScreenController(designService),
		ModelsController:       controller.NewModelsController(designService),
		HealthController:       controller.NewHealthController(designService),
		Logger:                 sysLogger,
	}
}
