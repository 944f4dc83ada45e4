package service

import "storefront/internal/domain/entity"

// AuthProvider exposes the hosted authentication state.
type AuthProvider interface {
	// CurrentUser returns the signed-in user or nil.
	CurrentUser() *entity.User

	// OnAuthStateChange registers a listener for sign-in/sign-out transitions
	// and returns a function that removes it.
	OnAuthStateChange(listener func(entity.AuthChange)) (unsubscribe func())
}
