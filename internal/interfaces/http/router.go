package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/bi-inventario/internal/application/analytics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *appanalytics.DashboardUseCase
	Session     SessionConfig
	Title       string
}

// Router registra la página del dashboard y la API. Todas las rutas pasan por
// SessionMiddleware: el archivo cargado pertenece a la sesión del navegador.
func Router(app *fiber.App, deps RouterDeps) {
	session := SessionMiddleware(deps.Session)

	// Página HTML
	page := NewPageHandler(deps.DashboardUC, deps.Title)
	app.Get("/", session, page.Index)
	app.Post("/upload", session, page.Upload)
	app.Post("/reset", session, page.Reset)

	// API JSON y exportaciones
	api := app.Group("/api/dashboard", session)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Post("/upload", dashboardHandler.Upload)
	api.Get("/", dashboardHandler.Get)
	api.Delete("/", dashboardHandler.Reset)
	api.Get("/charts/:name.:ext", dashboardHandler.Chart)
	api.Get("/export.csv", dashboardHandler.ExportCSV)
	api.Get("/export.pdf", dashboardHandler.ExportPDF)
}
