package app

import (
	"errors"
	"fmt"
)

var (
	// ErrLoginRequired is returned when an operation needs a signed-in user.
	ErrLoginRequired = errors.New("login required")

	// ErrForbidden is returned when the signed-in user's role does not
	// permit the operation.
	ErrForbidden = errors.New("not permitted for this account role")
)

// RequireAuth fails with ErrLoginRequired when no valid session exists. The
// operation name is carried in the message so the user knows what was
// blocked.
func (a *App) RequireAuth(operation string) error {
	if !a.Session.IsAuthenticated() {
		return fmt.Errorf("%s: %w", operation, ErrLoginRequired)
	}
	return nil
}

// RequireRole fails when the session is missing or the user holds none of
// the given roles.
func (a *App) RequireRole(operation string, roles ...string) error {
	if err := a.RequireAuth(operation); err != nil {
		return err
	}
	if !a.Session.HasAnyRole(roles...) {
		return fmt.Errorf("%s: %w", operation, ErrForbidden)
	}
	return nil
}
