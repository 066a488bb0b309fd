package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/BellaCucina/bistro-backend/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the GORM-backed credential and session store. The unique index on
// usernames is the race-safe authority for registration; the pre-insert
// lookup in CreateUser only exists to give a friendly error on the common
// path.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindByUsername(username string) (User, error) {
	var user User
	err := s.db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return user, nil
}

func (s *Store) FindByID(id string) (User, error) {
	var user User
	err := s.db.First(&user, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return user, nil
}

func (s *Store) CreateUser(username, plaintext string, role utils.Role) (User, error) {
	var existing User
	if err := s.db.First(&existing, "username = ?", username).Error; err == nil {
		return User{}, ErrDuplicateUsername
	}

	hashed, err := HashPassword(plaintext)
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	user := User{
		UserID:         uuid.NewString(),
		Username:       username,
		HashedPassword: hashed,
		Role:           role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return User{}, ErrDuplicateUsername
		}
		return User{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return user, nil
}

func (s *Store) UpdatePassword(userID, hashedPassword string) error {
	err := s.db.Model(&User{}).Where("user_id = ?", userID).
		Update("hashed_password", hashedPassword).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

func (s *Store) CreateSession(userID string) (Session, error) {
	session := Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(SessionLifetime),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return session, nil
}

func (s *Store) FindSession(id string) (Session, error) {
	var session Session
	err := s.db.First(&session, "session_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return session, nil
}

// DestroySession is idempotent: deleting a session that is already gone is
// not an error.
func (s *Store) DestroySession(id string) error {
	err := s.db.Where("session_id = ?", id).Delete(&Session{}).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
