package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-tienda/internal/application/auth"
	"github.com/jhoicas/catalogo-tienda/internal/application/importer"
	"github.com/jhoicas/catalogo-tienda/internal/domain/entity"
	"github.com/jhoicas/catalogo-tienda/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Importer      Importer
	ImportOptions importer.Options
	JWTSecret     string
	Logger        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Importación: requiere Bearer Token de administrador o gerente
	importHandler := NewImportHandler(deps.Importer, deps.ImportOptions, deps.Logger)
	imports := api.Group("/imports",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(string(entity.RoleAdmin), string(entity.RoleManager)),
	)
	imports.Post("/", importHandler.Run)
}
