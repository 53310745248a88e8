package handler

import (
	"log/slog"
	"net/http"

	"placehub/internal/delivery/http/response"
	"placehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for geospatial search handlers.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		uc:     uc,
		logger: logger,
	}
}

// RadiusSearch handles ?lat=&lon=&radius= searches over published places.
// Parameters pass through raw; the search core owns numeric validation.
func (h *SearchHandler) RadiusSearch(c echo.Context) error {
	input := &usecase.RadiusSearchInput{
		Lat:    c.QueryParam("lat"),
		Lon:    c.QueryParam("lon"),
		Radius: c.QueryParam("radius"),
		Page:   parsePage(c),
	}

	places, err := h.uc.RadiusSearch(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlacePayloads(places), "")
}

// BBoxSearch handles ?in_bbox=&lat=&lon= searches over published places.
func (h *SearchHandler) BBoxSearch(c echo.Context) error {
	input := &usecase.BBoxSearchInput{
		BBox: c.QueryParam("in_bbox"),
		Lat:  c.QueryParam("lat"),
		Lon:  c.QueryParam("lon"),
		Page: parsePage(c),
	}

	places, err := h.uc.BBoxSearch(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlacePayloads(places), "")
}
