package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"catalogapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; all business logic lives in the injected services.
//
// Registration order is load-bearing in two places: /users/me must come
// before /users/:id, and the literal /items/... routes must come before
// the /items/:id family, or the parameter routes swallow them.
func RegisterRoutes(app *fiber.App, db *sql.DB, catalogSvc service.CatalogService, fileSvc service.FileService) {
	app.Get("/", Root())

	// Health endpoint checks DB connectivity only
	app.Get("/health", HealthCheck(db))
	// Backward-compatible simple liveness probe
	app.Get("/healthz", LivenessProbe())

	app.Get("/users", ListUsers())
	app.Get("/users/me", CurrentUser())
	app.Get("/users/:id", GetUser())
	app.Get("/users/:uid/items/:id", UserItem())

	app.Get("/models/:name", GetModel())

	app.Get("/items", ListItems(catalogSvc))
	app.Post("/items", CreateItem(catalogSvc))
	app.Post("/items/compute", ComputeItem())
	app.Post("/items/embedded", CreateEmbeddedItem())
	app.Get("/items/validated", ValidatedItems())
	app.Get("/items/search", SearchItems(catalogSvc))
	app.Get("/items/search/strict", SearchItemsStrict(catalogSvc))
	app.Get("/items/:id", GetItem())
	app.Get("/items/:id/details", ItemDetails())
	app.Put("/items/:id", UpdateItem(catalogSvc))
	app.Put("/items/:id/details", UpdateItemDetails())

	app.Get("/files/+", DescribeFile(fileSvc))
	app.Put("/files/+", UploadFile(fileSvc))
	app.Delete("/files/+", DeleteFile(fileSvc))
}
