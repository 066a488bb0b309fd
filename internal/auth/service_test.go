package auth_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/BellaCucina/bistro-backend/internal/auth"
	"github.com/BellaCucina/bistro-backend/internal/utils"
	"github.com/google/uuid"
)

// mockUserStore implements auth.UserStore in memory.
type mockUserStore struct {
	byUsername map[string]*auth.User
	createErr  error
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{byUsername: make(map[string]*auth.User)}
}

func (m *mockUserStore) FindByUsername(username string) (auth.User, error) {
	if u, ok := m.byUsername[username]; ok {
		return *u, nil
	}
	return auth.User{}, auth.ErrUserNotFound
}

func (m *mockUserStore) FindByID(id string) (auth.User, error) {
	for _, u := range m.byUsername {
		if u.UserID == id {
			return *u, nil
		}
	}
	return auth.User{}, auth.ErrUserNotFound
}

func (m *mockUserStore) CreateUser(username, plaintext string, role utils.Role) (auth.User, error) {
	if m.createErr != nil {
		return auth.User{}, m.createErr
	}
	if _, ok := m.byUsername[username]; ok {
		return auth.User{}, auth.ErrDuplicateUsername
	}
	hashed, err := auth.HashPassword(plaintext)
	if err != nil {
		return auth.User{}, err
	}
	user := &auth.User{
		UserID:         uuid.NewString(),
		Username:       username,
		HashedPassword: hashed,
		Role:           role,
	}
	m.byUsername[username] = user
	return *user, nil
}

func (m *mockUserStore) UpdatePassword(userID, hashedPassword string) error {
	for _, u := range m.byUsername {
		if u.UserID == userID {
			u.HashedPassword = hashedPassword
			return nil
		}
	}
	return auth.ErrUserNotFound
}

// mockSessionStore implements auth.SessionStore in memory.
type mockSessionStore struct {
	sessions map[string]auth.Session
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]auth.Session)}
}

func (m *mockSessionStore) CreateSession(userID string) (auth.Session, error) {
	session := auth.Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(auth.SessionLifetime),
	}
	m.sessions[session.SessionID] = session
	return session, nil
}

func (m *mockSessionStore) FindSession(id string) (auth.Session, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return auth.Session{}, auth.ErrSessionNotFound
}

func (m *mockSessionStore) DestroySession(id string) error {
	delete(m.sessions, id)
	return nil
}

func newTestService() (*auth.Service, *mockUserStore, *mockSessionStore) {
	users := newMockUserStore()
	sessions := newMockSessionStore()
	return auth.NewService(users, sessions), users, sessions
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, _ := newTestService()

	registered, _, err := svc.Register("chef1", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registered.Role != utils.RoleUser {
		t.Errorf("expected default role %q, got %q", utils.RoleUser, registered.Role)
	}

	loggedIn, session, err := svc.Login("chef1", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.UserID != registered.UserID {
		t.Errorf("expected same user ID across register and login")
	}
	if session.SessionID == "" {
		t.Error("expected login to create a session")
	}
}

// TestPublicUserOmitsCredential verifies the serialized PublicUser carries no
// password material.
func TestPublicUserOmitsCredential(t *testing.T) {
	svc, _, _ := newTestService()

	user, _, err := svc.Register("chef1", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	body, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	lowered := strings.ToLower(string(body))
	if strings.Contains(lowered, "password") || strings.Contains(lowered, "hash") {
		t.Errorf("PublicUser serialization leaks credential material: %s", body)
	}
}

// TestLoginInvalidCredentialsIndistinguishable verifies that an unknown
// username and a wrong password yield the identical error value.
func TestLoginInvalidCredentialsIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService()

	if _, _, err := svc.Register("chef1", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, errUnknown := svc.Login("nobody", "secret123")
	_, _, errWrongPass := svc.Login("chef1", "wrong-password")

	if !errors.Is(errUnknown, auth.ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPass, auth.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if errUnknown != errWrongPass {
		t.Error("expected the same error value for both failure modes")
	}
}

// TestRegisterDuplicatePreservesCredential verifies a duplicate registration
// fails and leaves the original account's credential untouched.
func TestRegisterDuplicatePreservesCredential(t *testing.T) {
	svc, users, _ := newTestService()

	if _, _, err := svc.Register("chef1", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	originalHash := users.byUsername["chef1"].HashedPassword

	_, _, err := svc.Register("chef1", "different-pass")
	if !errors.Is(err, auth.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	if users.byUsername["chef1"].HashedPassword != originalHash {
		t.Error("duplicate registration altered the stored credential")
	}
	if _, _, err := svc.Login("chef1", "secret123"); err != nil {
		t.Errorf("original credentials stopped working after duplicate attempt: %v", err)
	}
}

func TestLogoutIdempotent(t *testing.T) {
	svc, _, _ := newTestService()

	_, session, err := svc.Register("chef1", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.Logout(session.SessionID); err != nil {
		t.Fatalf("first logout: %v", err)
	}
	if err := svc.Logout(session.SessionID); err != nil {
		t.Errorf("second logout should be a no-op, got %v", err)
	}
	if err := svc.Logout(""); err != nil {
		t.Errorf("logout with no session should be a no-op, got %v", err)
	}

	if _, err := svc.IdentityBySession(session.SessionID); err == nil {
		t.Error("expected no identity after logout")
	}
}

func TestIdentityBySessionExpired(t *testing.T) {
	svc, _, sessions := newTestService()

	_, session, err := svc.Register("chef1", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Manually expire the session.
	expired := sessions.sessions[session.SessionID]
	expired.ExpiresAt = time.Now().Add(-time.Hour)
	sessions.sessions[session.SessionID] = expired

	if _, err := svc.IdentityBySession(session.SessionID); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound for expired session, got %v", err)
	}
}

// TestIdentityBySessionDeletedUser verifies a session whose user no longer
// resolves degrades to anonymous instead of erroring differently.
func TestIdentityBySessionDeletedUser(t *testing.T) {
	svc, users, _ := newTestService()

	_, session, err := svc.Register("chef1", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	delete(users.byUsername, "chef1")

	if _, err := svc.IdentityBySession(session.SessionID); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound for deleted user, got %v", err)
	}
}

// The middleware keys its anonymous-degradation branch on utils.ErrNoIdentity;
// ErrSessionNotFound must satisfy it so missing sessions stay anonymous while
// storage failures do not.
func TestSessionNotFoundIsNoIdentity(t *testing.T) {
	if !errors.Is(auth.ErrSessionNotFound, utils.ErrNoIdentity) {
		t.Error("ErrSessionNotFound does not wrap utils.ErrNoIdentity")
	}
	if errors.Is(auth.ErrStorage, utils.ErrNoIdentity) {
		t.Error("ErrStorage must not wrap utils.ErrNoIdentity")
	}
}

// TestIdentityBySessionRoleIsFresh verifies a role promotion is visible on
// the next resolution without a new login.
func TestIdentityBySessionRoleIsFresh(t *testing.T) {
	svc, users, _ := newTestService()

	_, session, err := svc.Register("chef1", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	ident, err := svc.IdentityBySession(session.SessionID)
	if err != nil {
		t.Fatalf("IdentityBySession: %v", err)
	}
	if ident.Role != utils.RoleUser {
		t.Fatalf("expected role user, got %q", ident.Role)
	}

	users.byUsername["chef1"].Role = utils.RoleAdmin

	ident, err = svc.IdentityBySession(session.SessionID)
	if err != nil {
		t.Fatalf("IdentityBySession after promotion: %v", err)
	}
	if ident.Role != utils.RoleAdmin {
		t.Errorf("expected promoted role on next resolution, got %q", ident.Role)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestService()

	user, _, err := svc.Register("chef1", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.ChangePassword(user.UserID, "wrong", "newsecret1"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}

	if err := svc.ChangePassword(user.UserID, "secret123", "newsecret1"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, _, err := svc.Login("chef1", "secret123"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Error("old password still works after change")
	}
	if _, _, err := svc.Login("chef1", "newsecret1"); err != nil {
		t.Errorf("new password does not work: %v", err)
	}
}
