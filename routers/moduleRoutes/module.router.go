package moduleRoutes

import (
	contentController "lmsweb/controllers/content"
	moduleController "lmsweb/controllers/modules"
	"lmsweb/middleware"
	contentValidator "lmsweb/validators/content"
	moduleValidator "lmsweb/validators/module"

	"github.com/gofiber/fiber/v2"
)

// SetupModuleRoutes sets up the catalog, module and content routes
func SetupModuleRoutes(app *fiber.App, modules *moduleController.Controller, content *contentController.Controller) {
	moduleGroup := app.Group("/modules", middleware.SessionMiddleware)

	// Catalog and detail
	moduleGroup.Get("/", moduleValidator.CatalogQuery(), modules.Catalog)
	moduleGroup.Get("/my-modules", middleware.RequireInstructor, modules.MyModules)
	moduleGroup.Get("/:id", moduleValidator.ModuleID(), modules.Detail)

	// Module management (instructor only)
	moduleGroup.Post("/", middleware.RequireInstructor, moduleValidator.CreateModule(), modules.Create)
	moduleGroup.Delete("/:id", middleware.RequireInstructor, moduleValidator.ModuleID(), modules.Delete)

	// Content
	moduleGroup.Post("/:id/content", middleware.RequireInstructor, moduleValidator.ModuleID(), contentValidator.ContentFormValidator(), content.AddContent)
	moduleGroup.Get("/:id/content/:contentId", moduleValidator.ModuleID(), moduleValidator.ContentID(), modules.ViewContent)
}
