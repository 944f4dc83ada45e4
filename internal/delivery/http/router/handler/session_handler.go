package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler hands the hosted-auth session to the core.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SignInRequest carries the access token issued by the auth provider.
type SignInRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// SignIn handles POST /session
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.sessionUC.SignIn(c.Request().Context(), req.AccessToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// GetSession handles GET /session. Data is null when signed out.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sessionUC.CurrentUser())
}

// SignOut handles DELETE /session; RequireSession runs first.
func (h *SessionHandler) SignOut(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "LOGIN_REQUIRED", "Sign in to continue")
	}

	h.sessionUC.SignOut(c.Request().Context())
	h.logger.InfoContext(c.Request().Context(), "Signed out from bridge", slog.String("user_id", user.ID.String()))

	return c.NoContent(http.StatusNoContent)
}
