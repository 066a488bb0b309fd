package auth

import (
	"errors"
	"fmt"

	"github.com/BellaCucina/bistro-backend/internal/utils"
)

var (
	// ErrInvalidCredentials hides whether the username or the password was
	// wrong, to avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateUsername is user-actionable and reported distinctly.
	ErrDuplicateUsername = errors.New("username already taken")
	ErrUserNotFound      = errors.New("user not found")
	// ErrSessionNotFound wraps utils.ErrNoIdentity so the identity middleware
	// can tell "no such session" apart from a storage failure.
	ErrSessionNotFound = fmt.Errorf("%w: session not found", utils.ErrNoIdentity)
	// ErrStorage wraps any failure reaching the database; callers surface it
	// as a generic internal error.
	ErrStorage = errors.New("storage error")
)
