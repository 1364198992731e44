package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sitedocs/internal/model"
	"sitedocs/internal/service"
)

// filterError answers a query-string parse failure.
func filterError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidSortField):
		return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", "invalid sort_by")
	case errors.Is(err, model.ErrInvalidSortOrder):
		return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", "invalid sort_order")
	case errors.Is(err, model.ErrInvalidDateRange):
		return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", "invalid date range")
	default:
		return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", "invalid filter")
	}
}

// ListDocuments returns a filtered, sorted page of documents.
//
// @Summary  List documents
// @Tags     documents
// @Produce  json
// @Param    search        query  string  false  "Case-insensitive text search"
// @Param    categories    query  string  false  "Comma-separated category ids"
// @Param    status        query  string  false  "Comma-separated statuses"
// @Param    uploaded_by   query  string  false  "Comma-separated uploader ids"
// @Param    tags          query  string  false  "Comma-separated tags (any match)"
// @Param    from          query  string  false  "Created at or after (RFC3339 or YYYY-MM-DD)"
// @Param    to            query  string  false  "Created at or before (RFC3339 or YYYY-MM-DD)"
// @Param    has_comments  query  bool    false  "Current version has comments"
// @Param    confidential  query  bool    false  "Confidential flag"
// @Param    sort_by       query  string  false  "name, date, created, modified, size, status or category"
// @Param    sort_order    query  string  false  "asc or desc"
// @Param    limit         query  int     false  "Page size"  default(10)
// @Param    offset        query  int     false  "Page offset"  default(0)
// @Success  200  {object}  service.DocumentListResult
// @Failure  400  {object}  errorPayload
// @Failure  500  {object}  errorPayload
// @Router   /documents [get]
func ListDocuments(svc service.DocumentService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, code, err := parsePage(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, code, "invalid pagination")
		}
		filter, err := parseFilter(c, loc)
		if err != nil {
			return filterError(c, err)
		}

		res, err := svc.List(c.UserContext(), filter, limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetDocument returns one document.
//
// @Summary  Get document
// @Tags     documents
// @Produce  json
// @Param    id   path  string  true  "Document id (UUID)"
// @Success  200  {object}  model.Document
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Router   /documents/{id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// GetRelatedDocuments returns the related documents of one document, bucketed by relation.
//
// @Summary  Related documents
// @Tags     documents
// @Produce  json
// @Param    id   path  string  true  "Document id (UUID)"
// @Success  200  {object}  model.RelatedDocuments
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Router   /documents/{id}/related [get]
func GetRelatedDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Related(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GroupDocuments buckets the filtered documents.
//
// @Summary  Group documents
// @Tags     documents
// @Produce  json
// @Param    group_by  query  string  false  "category, status, date or user"  default(category)
// @Success  200  {array}   model.DocumentGroup
// @Failure  400  {object}  errorPayload
// @Router   /documents/groups [get]
func GroupDocuments(svc service.DocumentService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		by, err := model.ParseGroupBy(c.Query("group_by"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_GROUP_BY", "invalid group_by")
		}
		filter, err := parseFilter(c, loc)
		if err != nil {
			return filterError(c, err)
		}

		groups, err := svc.Groups(c.UserContext(), filter, by)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(groups)
	}
}

// DocumentStats summarizes the filtered documents.
//
// @Summary  Document statistics
// @Tags     documents
// @Produce  json
// @Success  200  {object}  model.DocumentStats
// @Failure  400  {object}  errorPayload
// @Router   /documents/stats [get]
func DocumentStats(svc service.DocumentService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c, loc)
		if err != nil {
			return filterError(c, err)
		}
		stats, err := svc.Stats(c.UserContext(), filter)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}

// ExportDocuments downloads the filtered documents as CSV or JSON.
//
// @Summary  Export documents
// @Tags     exports
// @Produce  text/csv
// @Produce  json
// @Param    format  query  string  false  "csv, json or xlsx"  default(csv)
// @Success  200
// @Failure  400  {object}  errorPayload
// @Failure  501  {object}  errorPayload
// @Router   /documents/export [get]
func ExportDocuments(svc service.DocumentService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		format, err := model.ParseExportFormat(c.Query("format"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FORMAT", "invalid format")
		}
		filter, err := parseFilter(c, loc)
		if err != nil {
			return filterError(c, err)
		}

		res, err := svc.Export(c.UserContext(), filter, format)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Set(fiber.HeaderContentType, res.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.Filename))
		return c.Send(res.Content)
	}
}

// PublishExport stores an export in object storage and returns a download link.
//
// @Summary  Publish export
// @Tags     exports
// @Produce  json
// @Param    format  query  string  false  "csv, json or xlsx"  default(csv)
// @Success  201  {object}  service.PublishedExport
// @Failure  400  {object}  errorPayload
// @Failure  501  {object}  errorPayload
// @Router   /documents/exports [post]
func PublishExport(svc service.DocumentService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		format, err := model.ParseExportFormat(c.Query("format"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FORMAT", "invalid format")
		}
		filter, err := parseFilter(c, loc)
		if err != nil {
			return filterError(c, err)
		}

		res, err := svc.PublishExport(c.UserContext(), filter, format)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
