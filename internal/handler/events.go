package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Marcob7/uitjes-backend/internal/metrics"
	"github.com/Marcob7/uitjes-backend/internal/repository"
)

// EventHandler serves the public events listing and detail endpoints.
type EventHandler struct {
	Events *repository.EventRepo
}

func NewEventHandler(events *repository.EventRepo) *EventHandler {
	return &EventHandler{Events: events}
}

// eventListResp is the paginated envelope of the events listing.
type eventListResp struct {
	Count      int64                 `json:"count"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
	NextOffset *int                  `json:"next_offset"`
	HasMore    bool                  `json:"has_more"`
	Results    []repository.EventRow `json:"results"`
}

// List handles GET /v1/events.
//
// Query params:
//   - city=apeldoorn (city slug)
//   - free=1
//   - when=tonight|weekend
//   - q=search term (title, description or venue name)
//   - from=YYYY-MM-DD / to=YYYY-MM-DD (on the start date)
//   - ongoing=1 (only undated) or ongoing=0 (hide undated)
//   - limit / offset (default 20/0, limit clamped to [1,100])
func (h *EventHandler) List(c echo.Context) error {
	q := repository.EventSearchQuery{
		CitySlug: strings.TrimSpace(c.QueryParam("city")),
		FreeOnly: c.QueryParam("free") == "1",
		Q:        strings.TrimSpace(c.QueryParam("q")),
		DateFrom: strings.TrimSpace(c.QueryParam("from")),
		DateTo:   strings.TrimSpace(c.QueryParam("to")),
		When:     strings.TrimSpace(c.QueryParam("when")),
		Now:      time.Now(),
	}
	switch c.QueryParam("ongoing") {
	case "1":
		v := true
		q.Ongoing = &v
	case "0":
		v := false
		q.Ongoing = &v
	}
	q.Limit, q.Offset = parseLimitOffset(c.QueryParam("limit"), c.QueryParam("offset"))

	metrics.EventQueries.Inc()

	results, total, err := h.Events.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error"})
	}

	resp := eventListResp{
		Count:   total,
		Limit:   q.Limit,
		Offset:  q.Offset,
		Results: results,
	}
	next := q.Offset + q.Limit
	if int64(next) < total {
		resp.HasMore = true
		resp.NextOffset = &next
	}
	return c.JSON(http.StatusOK, resp)
}

// Detail handles GET /v1/events/:id.
func (h *EventHandler) Detail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Not found"})
	}
	row, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error"})
	}
	return c.JSON(http.StatusOK, row)
}

// parseLimitOffset applies the pagination defaults and bounds: limit 20
// clamped to [1,100], offset 0 clamped to >= 0.  Parse failures fall
// back to the defaults silently rather than erroring.
func parseLimitOffset(limitStr, offsetStr string) (int, int) {
	limit := 20
	if limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil {
			limit = n
		}
	}
	offset := 0
	if offsetStr != "" {
		if n, err := strconv.Atoi(offsetStr); err == nil {
			offset = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
