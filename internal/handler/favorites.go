package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Marcob7/uitjes-backend/internal/middleware"
	"github.com/Marcob7/uitjes-backend/internal/repository"
)

// FavoriteHandler serves the authenticated favorites endpoints.
type FavoriteHandler struct {
	Favorites *repository.FavoriteRepo
	Events    *repository.EventRepo
}

func NewFavoriteHandler(favorites *repository.FavoriteRepo, events *repository.EventRepo) *FavoriteHandler {
	return &FavoriteHandler{Favorites: favorites, Events: events}
}

type favoriteResp struct {
	ID        uint64    `json:"id"`
	EventID   uint64    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

type addFavoriteReq struct {
	EventID uint64 `json:"event_id"`
}

// List handles GET /v1/favorites: the caller's favorites newest-first.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	favs, err := h.Favorites.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error"})
	}
	out := make([]favoriteResp, 0, len(favs))
	for _, f := range favs {
		out = append(out, favoriteResp{ID: f.ID, EventID: f.EventID, CreatedAt: f.CreatedAt})
	}
	return c.JSON(http.StatusOK, out)
}

// Add handles POST /v1/favorites/add.  Adding is idempotent: a repeat
// for the same event answers 200 with the existing association instead
// of erroring; a fresh add answers 201.
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req addFavoriteReq
	if err := c.Bind(&req); err != nil || req.EventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "event_id is required"})
	}

	ctx := c.Request().Context()
	exists, err := h.Events.Exists(ctx, req.EventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error"})
	}
	if !exists {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Event not found"})
	}

	_, created, err := h.Favorites.GetOrCreate(ctx, userID, req.EventID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error"})
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, echo.Map{"event_id": req.EventID, "created": created})
}

// Remove handles DELETE /v1/favorites/:event_id.  Deleting a favorite
// that does not exist is a success; the endpoint always answers 204.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 64)
	if err != nil {
		return c.NoContent(http.StatusNoContent)
	}
	if err := h.Favorites.Delete(c.Request().Context(), userID, eventID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error"})
	}
	return c.NoContent(http.StatusNoContent)
}

// FavoriteEvents handles GET /v1/favorites/events: the caller's
// favorites dereferenced to full event payloads, newest-favorited first.
func (h *FavoriteHandler) FavoriteEvents(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	rows, err := h.Favorites.ListEventsByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error"})
	}
	return c.JSON(http.StatusOK, rows)
}
