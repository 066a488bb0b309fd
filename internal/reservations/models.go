package reservations

import (
	"time"

	"github.com/google/uuid"
)

// Status is the reservation workflow state. Pending reservations can be
// confirmed or cancelled; confirmed ones completed or cancelled; cancelled
// and completed are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the workflow allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

type Reservation struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GuestName  string    `gorm:"not null" json:"guest_name"`
	Email      string    `gorm:"not null" json:"email"`
	Phone      string    `json:"phone"`
	PartySize  int       `gorm:"not null" json:"party_size"`
	ReservedAt time.Time `gorm:"not null;index" json:"reserved_at"`
	Notes      string    `json:"notes"`
	Status     Status    `gorm:"type:text;default:'pending';index" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Reservation) TableName() string { return "reservations.reservations" }
