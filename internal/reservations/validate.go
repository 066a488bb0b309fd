package reservations

import (
	"net/mail"
	"strings"
	"time"
)

const (
	minPartySize = 1
	maxPartySize = 12
	maxNotesLen  = 500
)

// IntakeRequest is the public reservation form payload.
type IntakeRequest struct {
	GuestName  string    `json:"guest_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	PartySize  int       `json:"party_size"`
	ReservedAt time.Time `json:"reserved_at"`
	Notes      string    `json:"notes"`
}

// ValidateIntake returns a user-facing message for the first problem found,
// or "" when the request is acceptable.
func ValidateIntake(req IntakeRequest, now time.Time) string {
	if strings.TrimSpace(req.GuestName) == "" {
		return "Guest name is required"
	}
	if req.Email == "" {
		return "Email is required"
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "Email is not valid"
	}
	if req.PartySize < minPartySize || req.PartySize > maxPartySize {
		return "Party size must be between 1 and 12"
	}
	if req.ReservedAt.IsZero() {
		return "Reservation time is required"
	}
	if !req.ReservedAt.After(now) {
		return "Reservation time must be in the future"
	}
	if len(req.Notes) > maxNotesLen {
		return "Notes are too long"
	}
	return ""
}
