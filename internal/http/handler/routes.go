package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"sitedocs/internal/service"
)

// RegisterRoutes attaches the health and document routes. loc is the zone used for
// date-only filter bounds.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, loc *time.Location) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	docs := app.Group("/documents")
	docs.Get("/", ListDocuments(docSvc, loc))
	// Fixed paths go before /:id.
	docs.Get("/stats", DocumentStats(docSvc, loc))
	docs.Get("/groups", GroupDocuments(docSvc, loc))
	docs.Get("/export", ExportDocuments(docSvc, loc))
	docs.Post("/exports", PublishExport(docSvc, loc))
	docs.Get("/:id", GetDocument(docSvc))
	docs.Get("/:id/related", GetRelatedDocuments(docSvc))
}
