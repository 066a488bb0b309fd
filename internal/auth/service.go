package auth

import (
	"errors"

	"github.com/BellaCucina/bistro-backend/internal/db"
	"github.com/BellaCucina/bistro-backend/internal/utils"
)

// UserStore is the credential-store surface the service needs. *Store
// implements it; tests substitute mocks.
type UserStore interface {
	FindByUsername(username string) (User, error)
	FindByID(id string) (User, error)
	CreateUser(username, plaintext string, role utils.Role) (User, error)
	UpdatePassword(userID, hashedPassword string) error
}

// SessionStore owns session rows and the 30-day expiry policy.
type SessionStore interface {
	CreateSession(userID string) (Session, error)
	FindSession(id string) (Session, error)
	DestroySession(id string) error
}

// Service is the auth gate: login/register/logout state transitions plus
// session-to-identity resolution. It holds no per-request state, so one
// instance serves all requests.
type Service struct {
	users    UserStore
	sessions SessionStore
}

func NewService(users UserStore, sessions SessionStore) *Service {
	return &Service{users: users, sessions: sessions}
}

// DefaultService wires a Service against the shared database handle.
func DefaultService() *Service {
	store := NewStore(db.DB)
	return NewService(store, store)
}

// Login verifies credentials and attaches a fresh session. Unknown usernames
// and wrong passwords produce the identical ErrInvalidCredentials.
func (s *Service) Login(username, password string) (PublicUser, Session, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, ErrUserNotFound) {
		return PublicUser{}, Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return PublicUser{}, Session{}, err
	}

	if !VerifyPassword(password, user.HashedPassword) {
		return PublicUser{}, Session{}, ErrInvalidCredentials
	}

	session, err := s.sessions.CreateSession(user.UserID)
	if err != nil {
		return PublicUser{}, Session{}, err
	}
	return user.Public(), session, nil
}

// Register creates an account with the default role and logs it in.
func (s *Service) Register(username, password string) (PublicUser, Session, error) {
	user, err := s.users.CreateUser(username, password, utils.RoleUser)
	if err != nil {
		return PublicUser{}, Session{}, err
	}

	session, err := s.sessions.CreateSession(user.UserID)
	if err != nil {
		return PublicUser{}, Session{}, err
	}
	return user.Public(), session, nil
}

// Logout clears the session. Calling it twice, or with no session at all,
// is not an error.
func (s *Service) Logout(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.DestroySession(sessionID)
}

// IdentityBySession resolves a session identifier to an identity. Expired
// sessions and sessions whose user no longer resolves report
// ErrSessionNotFound so the caller degrades to anonymous instead of failing
// the request. Role is read fresh here, so promotions take effect on the
// next request.
func (s *Service) IdentityBySession(sessionID string) (utils.Identity, error) {
	session, err := s.sessions.FindSession(sessionID)
	if err != nil {
		return utils.Identity{}, err
	}
	if session.Expired() {
		return utils.Identity{}, ErrSessionNotFound
	}

	user, err := s.users.FindByID(session.UserID)
	if errors.Is(err, ErrUserNotFound) {
		return utils.Identity{}, ErrSessionNotFound
	}
	if err != nil {
		return utils.Identity{}, err
	}

	return utils.Identity{
		UserID:   user.UserID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// ChangePassword re-verifies the current password before storing the new
// credential.
func (s *Service) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if !VerifyPassword(currentPassword, user.HashedPassword) {
		return ErrInvalidCredentials
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(userID, hashed)
}
