package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "placehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/places", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newErrorContext(t)

	m.HandleHTTPError(domainerrors.ErrPlaceNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"PLACE_NOT_FOUND"`)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestErrorMiddleware_AppErrorWithDetailsAndStack(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newErrorContext(t)
	err := errors.WithStack(domainerrors.ErrInvalidRadius.WithDetails("radius must be between 0 and 1000 km"))

	m.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INVALID_RADIUS"`)
	assert.Contains(t, rec.Body.String(), "radius must be between 0 and 1000 km")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newErrorContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"HTTP_ERROR"`)
}

func TestErrorMiddleware_UnknownErrorIsInternal(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newErrorContext(t)

	m.HandleHTTPError(errors.New("connection reset"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INTERNAL_ERROR"`)
	assert.NotContains(t, rec.Body.String(), "connection reset", "internal details never leak to clients")
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newErrorContext(t)
	_ = c.NoContent(http.StatusNoContent)

	m.HandleHTTPError(domainerrors.ErrPlaceNotFound, c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
