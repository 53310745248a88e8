package handler

import (
	"net/http"
	"testing"

	domainerrors "placehub/internal/domain/errors"
	mockUC "placehub/internal/mocks/usecase"
	"placehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchHandler_RadiusSearch_PassesRawParams(t *testing.T) {
	uc := mockUC.NewMockSearchUsecase(t)
	h := NewSearchHandler(uc, testLogger())

	uc.EXPECT().
		RadiusSearch(mock.Anything, mock.AnythingOfType("*usecase.RadiusSearchInput")).
		Return(nil, nil)

	c, rec := newPlaceContext(http.MethodGet, "/places/search/radius?lat=50.0617&lon=19.9373&radius=2&limit=5", "")

	err := h.RadiusSearch(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	input := uc.Calls[0].Arguments.Get(1).(*usecase.RadiusSearchInput)
	assert.Equal(t, "50.0617", input.Lat)
	assert.Equal(t, "19.9373", input.Lon)
	assert.Equal(t, "2", input.Radius)
	assert.Equal(t, 5, input.Page.Limit)
}

func TestSearchHandler_RadiusSearch_MissingParamsPropagate(t *testing.T) {
	uc := mockUC.NewMockSearchUsecase(t)
	h := NewSearchHandler(uc, testLogger())

	uc.EXPECT().
		RadiusSearch(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrMissingCoordinates)

	c, _ := newPlaceContext(http.MethodGet, "/places/search/radius", "")

	err := h.RadiusSearch(c)

	assert.True(t, errors.Is(err, domainerrors.ErrMissingCoordinates))
}

func TestSearchHandler_BBoxSearch_PassesRawParams(t *testing.T) {
	uc := mockUC.NewMockSearchUsecase(t)
	h := NewSearchHandler(uc, testLogger())

	uc.EXPECT().
		BBoxSearch(mock.Anything, mock.AnythingOfType("*usecase.BBoxSearchInput")).
		Return(nil, nil)

	c, rec := newPlaceContext(http.MethodGet, "/places/search/bbox?in_bbox=19.90,50.03,19.98,50.08&lat=50.0617&lon=19.9373", "")

	err := h.BBoxSearch(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	input := uc.Calls[0].Arguments.Get(1).(*usecase.BBoxSearchInput)
	assert.Equal(t, "19.90,50.03,19.98,50.08", input.BBox)
	assert.Equal(t, "50.0617", input.Lat)
	assert.Equal(t, "19.9373", input.Lon)
}
