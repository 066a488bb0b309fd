package auth

import (
	"time"

	"github.com/BellaCucina/bistro-backend/internal/utils"
)

// SessionLifetime is the absolute session lifetime. Expiry is not extended
// by activity.
const SessionLifetime = 30 * 24 * time.Hour

type Session struct {
	SessionID string    `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"index;not null" json:"-"`
	CreatedAt time.Time `json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"-"`
}

func (s Session) Expired() bool {
	return s.ExpiresAt.Before(time.Now())
}

type User struct {
	UserID         string     `gorm:"primaryKey" json:"user_id"`
	Username       string     `gorm:"uniqueIndex;not null" json:"username"`
	HashedPassword string     `json:"-"`
	Role           utils.Role `gorm:"type:text;default:'user'" json:"role"`
	CreatedAt      time.Time  `json:"-"`
}

// PublicUser is the client-safe view of a User: the stored credential is
// not present at all, so it can never leak through serialization.
type PublicUser struct {
	UserID   string     `json:"user_id"`
	Username string     `json:"username"`
	Role     utils.Role `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		UserID:   u.UserID,
		Username: u.Username,
		Role:     u.Role,
	}
}

func (Session) TableName() string { return "app_auth.sessions" }
func (User) TableName() string    { return "app_auth.users" }
