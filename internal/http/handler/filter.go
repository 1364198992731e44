package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"sitedocs/internal/model"
)

var errInvalidFilter = errors.New("invalid filter")

// parseFilter reads a DocumentFilter from the query string. List parameters are
// comma separated; from and to follow model.ParseDateRange in loc.
func parseFilter(c *fiber.Ctx, loc *time.Location) (model.DocumentFilter, error) {
	f := model.DocumentFilter{
		Search:     strings.TrimSpace(c.Query("search")),
		Categories: splitList(c.Query("categories")),
		Status:     splitList(c.Query("status")),
		UploadedBy: splitList(c.Query("uploaded_by")),
		Tags:       splitList(c.Query("tags")),
	}

	var err error
	if f.HasComments, err = parseOptionalBool(c.Query("has_comments")); err != nil {
		return f, fmt.Errorf("%w: has_comments", errInvalidFilter)
	}
	if f.Confidential, err = parseOptionalBool(c.Query("confidential")); err != nil {
		return f, fmt.Errorf("%w: confidential", errInvalidFilter)
	}
	if f.SortBy, err = model.ParseSortField(c.Query("sort_by")); err != nil {
		return f, err
	}
	if f.SortOrder, err = model.ParseSortOrder(c.Query("sort_order")); err != nil {
		return f, err
	}
	if f.DateRange, err = model.ParseDateRange(c.Query("from"), c.Query("to"), loc); err != nil {
		return f, err
	}
	return f, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseOptionalBool(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

const maxPageLimit = 1000

var errPageRange = errors.New("page parameter out of range")

// parsePage reads limit and offset. Missing values fall back to 10 and 0.
// limit may not exceed maxPageLimit and offset may not be negative.
func parsePage(c *fiber.Ctx) (limit, offset int, code string, err error) {
	if limit, err = strconv.Atoi(c.Query("limit", "10")); err != nil {
		return 0, 0, "INVALID_LIMIT", err
	}
	if limit > maxPageLimit {
		return 0, 0, "INVALID_LIMIT", fmt.Errorf("%w: limit %d", errPageRange, limit)
	}
	if offset, err = strconv.Atoi(c.Query("offset", "0")); err != nil {
		return 0, 0, "INVALID_OFFSET", err
	}
	if offset < 0 {
		return 0, 0, "INVALID_OFFSET", fmt.Errorf("%w: offset %d", errPageRange, offset)
	}
	return limit, offset, "", nil
}
