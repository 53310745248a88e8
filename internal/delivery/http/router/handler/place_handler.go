// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"placehub/internal/delivery/http/middleware"
	"placehub/internal/delivery/http/response"
	domainerrors "placehub/internal/domain/errors"
	"placehub/internal/domain/service"
	"placehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaceHandler holds dependencies for place-related handlers.
type PlaceHandler struct {
	uc     usecase.PlaceUsecase
	logger *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler, injected by Fx.
func NewPlaceHandler(uc usecase.PlaceUsecase, logger *slog.Logger) *PlaceHandler {
	return &PlaceHandler{
		uc:     uc,
		logger: logger,
	}
}

// createPlaceRequest is the JSON body for place submission. The location may
// arrive as a GeoJSON Point or as flat longitude/latitude fields.
type createPlaceRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Location    *GeoJSONPoint `json:"location"`
	Longitude   float64       `json:"longitude"`
	Latitude    float64       `json:"latitude"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	Country     string        `json:"country"`
}

// CreatePlace handles place submission. Accepts JSON, or multipart form data
// when the submission carries a photo.
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	requester := middleware.RequesterFrom(c)

	input, err := h.bindCreateInput(c)
	if err != nil {
		return err
	}

	place, err := h.uc.CreatePlace(c.Request().Context(), requester, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPlacePayload(place), "Place submitted for moderation")
}

// GetPlace handles retrieval of a single place.
func (h *PlaceHandler) GetPlace(c echo.Context) error {
	requester := middleware.RequesterFrom(c)

	id, err := parsePlaceID(c)
	if err != nil {
		return err
	}

	place, err := h.uc.GetPlace(c.Request().Context(), requester, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlacePayload(place), "")
}

// ListPlaces handles the visibility-aware place listing.
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	requester := middleware.RequesterFrom(c)

	places, err := h.uc.ListPlaces(c.Request().Context(), requester, parsePage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlacePayloads(places), "")
}

// UpdatePlace handles partial updates by owners and moderators.
func (h *PlaceHandler) UpdatePlace(c echo.Context) error {
	requester := middleware.RequesterFrom(c)

	id, err := parsePlaceID(c)
	if err != nil {
		return err
	}

	// Bind into a value so an empty body reaches the usecase as an empty
	// update instead of a nil pointer.
	var input usecase.UpdatePlaceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid place update input")
	}

	place, err := h.uc.UpdatePlace(c.Request().Context(), requester, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlacePayload(place), "Place updated")
}

// DeletePlace handles soft deletion. The place transitions to archived and
// the response carries no body.
func (h *PlaceHandler) DeletePlace(c echo.Context) error {
	requester := middleware.RequesterFrom(c)

	id, err := parsePlaceID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeletePlace(c.Request().Context(), requester, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadPhoto handles the multipart photo replacement endpoint.
func (h *PlaceHandler) UploadPhoto(c echo.Context) error {
	requester := middleware.RequesterFrom(c)

	id, err := parsePlaceID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return domainerrors.ErrInvalidPhoto.WithDetails("the photo file is missing")
	}

	photo, err := readPhotoUpload(fileHeader)
	if err != nil {
		return errors.WithStack(err)
	}

	place, err := h.uc.UploadPhoto(c.Request().Context(), requester, id, photo)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlacePayload(place), "Photo updated")
}

// moderateRequest is the body of the moderation decision endpoint.
type moderateRequest struct {
	Decision string `json:"decision"`
}

// ModeratePlace handles a moderator's publish/reject decision.
func (h *PlaceHandler) ModeratePlace(c echo.Context) error {
	requester := middleware.RequesterFrom(c)

	id, err := parsePlaceID(c)
	if err != nil {
		return err
	}

	var req moderateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}

	place, err := h.uc.ModeratePlace(c.Request().Context(), requester, id, usecase.ModerateDecision(req.Decision))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlacePayload(place), "Moderation decision applied")
}

// ListModerationQueue handles the moderator queue listing, oldest first.
func (h *PlaceHandler) ListModerationQueue(c echo.Context) error {
	requester := middleware.RequesterFrom(c)

	places, err := h.uc.ListModerationQueue(c.Request().Context(), requester, parsePage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlacePayloads(places), "")
}

// ListArchived handles the admin-only archived listing.
func (h *PlaceHandler) ListArchived(c echo.Context) error {
	requester := middleware.RequesterFrom(c)

	places, err := h.uc.ListArchived(c.Request().Context(), requester, parsePage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlacePayloads(places), "")
}

// bindCreateInput reads a submission from either a JSON body or a multipart
// form with an optional photo file.
func (h *PlaceHandler) bindCreateInput(c echo.Context) (*usecase.CreatePlaceInput, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return h.bindMultipartCreate(c)
	}

	var req createPlaceRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid place input")
	}

	input := &usecase.CreatePlaceInput{
		Name:        req.Name,
		Description: req.Description,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
	}
	if req.Location != nil {
		input.Longitude = req.Location.Coordinates[0]
		input.Latitude = req.Location.Coordinates[1]
	}

	return input, nil
}

func (h *PlaceHandler) bindMultipartCreate(c echo.Context) (*usecase.CreatePlaceInput, error) {
	lat, err := strconv.ParseFloat(c.FormValue("latitude"), 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails("the latitude field must be numeric")
	}
	lon, err := strconv.ParseFloat(c.FormValue("longitude"), 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails("the longitude field must be numeric")
	}

	input := &usecase.CreatePlaceInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Longitude:   lon,
		Latitude:    lat,
		Address:     c.FormValue("address"),
		City:        c.FormValue("city"),
		Country:     c.FormValue("country"),
	}

	if fileHeader, err := c.FormFile("photo"); err == nil {
		photo, err := readPhotoUpload(fileHeader)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		input.Photo = photo
	}

	return input, nil
}

// readPhotoUpload drains the multipart file into a PhotoUpload.
func readPhotoUpload(fileHeader *multipart.FileHeader) (*service.PhotoUpload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}

	return &service.PhotoUpload{
		Filename: fileHeader.Filename,
		Data:     data,
	}, nil
}

// parsePlaceID reads the :id path parameter.
func parsePlaceID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid place ID")
	}

	return id, nil
}

// parsePage reads limit/offset query parameters. Non-numeric values fall back
// to the defaults.
func parsePage(c echo.Context) usecase.Page {
	var page usecase.Page
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		page.Limit = limit
	}
	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		page.Offset = offset
	}

	return page
}
