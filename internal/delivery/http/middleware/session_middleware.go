package middleware

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const keyUser = "user"

// SessionMiddleware guards routes that only make sense with a signed-in user.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessionUC usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{sessionUC: sessionUC}
}

// RequireSession rejects the request with LOGIN_REQUIRED when nobody is signed in.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := m.sessionUC.CurrentUser()
		if user == nil {
			return domainerrors.ErrLoginRequired
		}

		c.Set(keyUser, user)

		return next(c)
	}
}

// GetUser returns the user stored by RequireSession.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(keyUser).(*entity.User)

	return user, ok && user != nil
}
