// Package auth adapts the hosted authentication provider's session tokens to
// the domain AuthProvider.
package auth

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionClaims are the claims the hosted provider puts into its access tokens.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionAuth holds the current session and fans out sign-in/sign-out transitions.
type SessionAuth struct {
	secret []byte
	logger *slog.Logger

	mu        sync.RWMutex
	user      *entity.User
	listeners map[uint64]func(entity.AuthChange)
	nextID    uint64
}

var _ service.AuthProvider = (*SessionAuth)(nil)

// NewSessionAuth creates the session holder. Tokens are verified with secretKey.access.
func NewSessionAuth(cfg *config.Config, logger *slog.Logger) (*SessionAuth, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("session token secret must be provided")
	}

	return &SessionAuth{
		secret:    []byte(cfg.SecretKey.Access),
		logger:    logger.With("component", "session_auth"),
		listeners: make(map[uint64]func(entity.AuthChange)),
	}, nil
}

// SignIn verifies an access token and makes its subject the current user.
func (a *SessionAuth) SignIn(ctx context.Context, token string) (*entity.User, error) {
	user, err := a.parse(token)
	if err != nil {
		a.logger.WarnContext(ctx, "Rejected session token", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidSessionToken.WrapMessage(err.Error())
	}

	a.mu.Lock()
	a.user = user
	a.mu.Unlock()

	a.logger.InfoContext(ctx, "Session started", slog.String("user_id", user.ID.String()))
	a.emit(entity.AuthChange{Event: entity.AuthEventSignedIn, User: user})

	return user, nil
}

// SignOut ends the current session. It is a no-op without one.
func (a *SessionAuth) SignOut(ctx context.Context) {
	a.mu.Lock()
	previous := a.user
	a.user = nil
	a.mu.Unlock()

	if previous == nil {
		return
	}

	a.logger.InfoContext(ctx, "Session ended", slog.String("user_id", previous.ID.String()))
	a.emit(entity.AuthChange{Event: entity.AuthEventSignedOut})
}

func (a *SessionAuth) CurrentUser() *entity.User {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.user == nil {
		return nil
	}
	user := *a.user

	return &user
}

func (a *SessionAuth) OnAuthStateChange(listener func(entity.AuthChange)) func() {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = listener
	a.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.listeners, id)
			a.mu.Unlock()
		})
	}
}

func (a *SessionAuth) parse(token string) (*entity.User, error) {
	claims := &sessionClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()); err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid subject %q", claims.Subject)
	}

	return &entity.User{ID: userID, Email: claims.Email}, nil
}

// emit calls listeners in registration order outside the lock.
func (a *SessionAuth) emit(change entity.AuthChange) {
	a.mu.RLock()
	ids := make([]uint64, 0, len(a.listeners))
	for id := range a.listeners {
		ids = append(ids, id)
	}
	a.mu.RUnlock()

	slices.Sort(ids)

	for _, id := range ids {
		a.mu.RLock()
		listener, ok := a.listeners[id]
		a.mu.RUnlock()
		if ok {
			listener(change)
		}
	}
}
