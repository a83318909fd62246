package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tabla-fidelizacion/internal/application/usecase"
	"github.com/jhoicas/tabla-fidelizacion/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	Log        *logger.Logger
	AppName    string
}

// NewApp construye la app Fiber del backend simulado con middlewares y rutas.
func NewApp(deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:               deps.AppName,
		DisableStartupMessage: true,
		// /api/clientes y /api/clientes/ son la misma ruta
		StrictRouting: false,
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	api.Get("/clientes", customerHandler.List)
	api.Get("/tipos-documento", customerHandler.DocumentTypes)
	api.Get("/download", customerHandler.Download)
	api.Get("/download-csv", customerHandler.DownloadCSV)
}
