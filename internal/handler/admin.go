package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Marcob7/uitjes-backend/internal/model"
	"github.com/Marcob7/uitjes-backend/internal/repository"
	"github.com/Marcob7/uitjes-backend/internal/utils"
)

// AdminHandler holds the administrative surface.  The import job refuses
// unknown city slugs, so cities need a creation endpoint somewhere; this
// is it, gated to the ADMIN role.
type AdminHandler struct {
	Cities *repository.CityRepo
}

func NewAdminHandler(cities *repository.CityRepo) *AdminHandler {
	return &AdminHandler{Cities: cities}
}

type createCityReq struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type cityResp struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CreateCity handles POST /v1/cities.  The slug defaults to the
// slugified name when omitted.
func (h *AdminHandler) CreateCity(c echo.Context) error {
	var req createCityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	slug := utils.Slugify(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slug required"})
	}

	city := model.City{Name: req.Name, Slug: slug}
	if err := h.Cities.Create(c.Request().Context(), &city); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slug already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create city failed"})
	}
	return c.JSON(http.StatusCreated, cityResp{ID: city.ID, Name: city.Name, Slug: city.Slug})
}

// ListCities handles GET /v1/cities (public).
func (h *AdminHandler) ListCities(c echo.Context) error {
	cities, err := h.Cities.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database_error"})
	}
	out := make([]cityResp, 0, len(cities))
	for _, city := range cities {
		out = append(out, cityResp{ID: city.ID, Name: city.Name, Slug: city.Slug})
	}
	return c.JSON(http.StatusOK, out)
}
