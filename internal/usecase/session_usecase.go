package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionUsecase starts and ends the hosted-auth session of this process.
type SessionUsecase interface {
	// SignIn verifies an access token issued by the auth provider and makes
	// its subject the current user.
	SignIn(ctx context.Context, accessToken string) (*entity.User, error)

	// SignOut ends the current session. It is a no-op when signed out.
	SignOut(ctx context.Context)

	CurrentUser() *entity.User
}
