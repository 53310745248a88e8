package handler

import (
	"log/slog"
	"net/http"

	"placehub/internal/delivery/http/middleware"
	"placehub/internal/delivery/http/response"
	domainerrors "placehub/internal/domain/errors"
	"placehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	// Bind into a value so an empty body reaches the usecase as zero-valued
	// input instead of a nil pointer.
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	profile, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile, "User registered successfully")
}

// Login handles the login request and issues a token pair.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	tokens, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokens, "Login successful")
}

// GetProfile handles the request for the current account's profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	requester := middleware.RequesterFrom(c)
	if !requester.Authenticated {
		return domainerrors.ErrUnauthorized
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), requester.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateProfile handles partial updates of the current account's name fields.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	requester := middleware.RequesterFrom(c)
	if !requester.Authenticated {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), requester.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated")
}

// ChangePassword handles the password change request.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	requester := middleware.RequesterFrom(c)
	if !requester.Authenticated {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	if err := h.uc.ChangePassword(c.Request().Context(), requester.ID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password changed successfully"}, "Password changed")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
