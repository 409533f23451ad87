package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"docsearch/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when the catalog is not database-backed. Dates in search filters
// are interpreted in loc.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, previews PreviewManager, loc *time.Location) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	docs := app.Group("/documents")
	docs.Get("/", SearchDocuments(docSvc, loc))
	docs.Post("/", UploadDocument())
	docs.Get("/:id", GetDocument(docSvc))
	docs.Get("/:id/open", OpenDocument(docSvc))

	pv := app.Group("/previews")
	pv.Post("/", OpenPreview(docSvc, previews))
	pv.Get("/:id", GetPreview(previews))
	pv.Post("/:id/reload", ReloadPreview(previews))
	pv.Put("/:id/page", SetPreviewPage(previews))
	pv.Put("/:id/zoom", SetPreviewZoom(previews))
	pv.Delete("/:id", ClosePreview(previews))
}
