package reservations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/BellaCucina/bistro-backend/internal/db"
	"github.com/BellaCucina/bistro-backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IntakeHandler accepts the public reservation form. New reservations always
// start pending; staff confirm them from the back office.
func IntakeHandler(w http.ResponseWriter, r *http.Request) {
	var req IntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := ValidateIntake(req, time.Now()); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	reservation := Reservation{
		ID:         uuid.New(),
		GuestName:  strings.TrimSpace(req.GuestName),
		Email:      req.Email,
		Phone:      req.Phone,
		PartySize:  req.PartySize,
		ReservedAt: req.ReservedAt,
		Notes:      req.Notes,
		Status:     StatusPending,
	}
	if err := db.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, reservation)
}

// ListHandler returns reservations for the back office, optionally filtered
// by ?status= and ?date=YYYY-MM-DD (the day of the reservation).
func ListHandler(w http.ResponseWriter, r *http.Request) {
	query := db.DB.Order("reserved_at")

	if status := r.URL.Query().Get("status"); status != "" {
		if !Status(status).Valid() {
			utils.RespondError(w, http.StatusBadRequest, "Unknown status")
			return
		}
		query = query.Where("status = ?", status)
	}

	if date := r.URL.Query().Get("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("reserved_at >= ? AND reserved_at < ?", day, day.AddDate(0, 0, 1))
	}

	var reservations []Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, reservations)
}

// UpdateStatusHandler moves a reservation through the workflow. Terminal
// states are immutable.
func UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid reservation ID")
		return
	}

	var input struct {
		Status Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !input.Status.Valid() {
		utils.RespondError(w, http.StatusBadRequest, "Unknown status")
		return
	}

	var reservation Reservation
	err = db.DB.First(&reservation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Reservation not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !reservation.Status.CanTransitionTo(input.Status) {
		utils.RespondError(w, http.StatusConflict, "Illegal status transition")
		return
	}

	if err := db.DB.Model(&reservation).Update("status", input.Status).Error; err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, reservation)
}

func DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid reservation ID")
		return
	}

	result := db.DB.Where("id = ?", id).Delete(&Reservation{})
	if result.Error != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
