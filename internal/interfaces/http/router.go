package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/logs"
	"github.com/jhoicas/almacen-api/internal/application/materials"
	"github.com/jhoicas/almacen-api/internal/application/stats"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	MaterialsUC *materials.UseCase
	LogsUC      *logs.UseCase
	DashboardUC *stats.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Operaciones destructivas solo para admin
	admin := RequireRole(entity.RoleAdmin)

	// Materials (protegido)
	materialsGroup := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialsUC)
	logHandler := NewLogHandler(deps.LogsUC)
	materialsGroup.Get("/", materialHandler.List)
	materialsGroup.Post("/reset", admin, materialHandler.Reset)
	materialsGroup.Get("/:code", materialHandler.Get)
	materialsGroup.Delete("/:code", admin, materialHandler.Delete)
	materialsGroup.Get("/:code/transactions", logHandler.BinTransactions)

	// Entradas y salidas (protegido)
	actionsGroup := protected.Group("/actions")
	actionHandler := NewActionHandler(deps.InventoryUC)
	actionsGroup.Post("/entry", actionHandler.Entry)
	actionsGroup.Post("/issue", actionHandler.Issue)

	// Logs (protegido)
	logsGroup := protected.Group("/logs")
	logsGroup.Get("/", logHandler.List)
	logsGroup.Delete("/", admin, logHandler.Clear)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/stats", dashboardHandler.GetStats)
}
