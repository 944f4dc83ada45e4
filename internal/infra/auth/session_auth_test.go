package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestSessionAuth(t *testing.T) *SessionAuth {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	auth, err := NewSessionAuth(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return auth
}

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestNewSessionAuth_RequiresSecret(t *testing.T) {
	_, err := NewSessionAuth(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestSessionAuth_SignInAndOut(t *testing.T) {
	auth := newTestSessionAuth(t)
	userID := uuid.New()

	var changes []entity.AuthChange
	unsubscribe := auth.OnAuthStateChange(func(change entity.AuthChange) {
		changes = append(changes, change)
	})
	defer unsubscribe()

	token := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "eater@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	user, err := auth.SignIn(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "eater@example.com", user.Email)
	require.NotNil(t, auth.CurrentUser())
	assert.Equal(t, userID, auth.CurrentUser().ID)

	auth.SignOut(context.Background())
	assert.Nil(t, auth.CurrentUser())

	// Signing out twice emits once.
	auth.SignOut(context.Background())

	require.Len(t, changes, 2)
	assert.Equal(t, entity.AuthEventSignedIn, changes[0].Event)
	assert.Equal(t, userID, changes[0].User.ID)
	assert.Equal(t, entity.AuthEventSignedOut, changes[1].Event)
	assert.Nil(t, changes[1].User)
}

func TestSessionAuth_RejectsInvalidTokens(t *testing.T) {
	valid := jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(time.Hour).Unix()}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: signToken(t, jwt.SigningMethodHS256, "other_secret", valid)},
		{name: "wrong algorithm", token: signToken(t, jwt.SigningMethodHS512, testSecret, valid)},
		{name: "expired", token: signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
			"sub": uuid.NewString(), "exp": time.Now().Add(-time.Minute).Unix(),
		})},
		{name: "missing expiry", token: signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": uuid.NewString()})},
		{name: "subject not a uuid", token: signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
			"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix(),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := newTestSessionAuth(t)
			notified := false
			auth.OnAuthStateChange(func(entity.AuthChange) { notified = true })

			_, err := auth.SignIn(context.Background(), tt.token)
			require.ErrorIs(t, err, domainerrors.ErrInvalidSessionToken)
			assert.Nil(t, auth.CurrentUser())
			assert.False(t, notified)
		})
	}
}

func TestSessionAuth_Unsubscribe(t *testing.T) {
	auth := newTestSessionAuth(t)

	calls := 0
	unsubscribe := auth.OnAuthStateChange(func(entity.AuthChange) { calls++ })
	unsubscribe()
	unsubscribe()

	token := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"sub": uuid.NewString(), "exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := auth.SignIn(context.Background(), token)
	require.NoError(t, err)
	assert.Zero(t, calls)
}
