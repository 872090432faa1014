package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/roadready/roadready-backend/internal/auth"
	"github.com/roadready/roadready-backend/internal/booking"
	"github.com/roadready/roadready-backend/internal/states"
)

const dateLayout = "2006-01-02"

// GET /api/appointments/slots/{state}/{date}
func SlotsHandler(store booking.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := strings.ToUpper(chi.URLParam(r, "state"))
		date := chi.URLParam(r, "date")
		if !states.Valid(state) {
			writeErr(w, http.StatusBadRequest, "Invalid state code")
			return
		}
		if _, err := time.Parse(dateLayout, date); err != nil {
			writeErr(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		booked, err := store.BookedSlots(r.Context(), state, date)
		if err != nil {
			serverError(w, "booked slots", err)
			return
		}
		available := booking.Available(booked)
		writeJSON(w, http.StatusOK, map[string]any{
			"date":           date,
			"state":          state,
			"availableSlots": available,
			"totalSlots":     len(booking.SlotGrid()),
			"bookedSlots":    len(booked),
		})
	}
}

type bookRequest struct {
	State           string           `json:"state" validate:"required"`
	Location        booking.Location `json:"location" validate:"required"`
	AppointmentType string           `json:"appointmentType" validate:"required"`
	ScheduledDate   string           `json:"scheduledDate" validate:"required"`
	TimeSlot        string           `json:"timeSlot" validate:"required"`
	Notes           string           `json:"notes"`
}

// POST /api/appointments/book
func BookHandler(store booking.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		req.State = strings.ToUpper(req.State)
		if err := validate.Struct(req); err != nil || req.Location.Name == "" {
			writeErr(w, http.StatusBadRequest, "Please provide all required fields")
			return
		}
		if !states.Valid(req.State) {
			writeErr(w, http.StatusBadRequest, "Invalid state code")
			return
		}
		if !booking.ValidType(req.AppointmentType) {
			writeErr(w, http.StatusBadRequest, "Invalid appointment type")
			return
		}
		if _, err := time.Parse(dateLayout, req.ScheduledDate); err != nil {
			writeErr(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		if !booking.ValidSlot(req.TimeSlot) {
			writeErr(w, http.StatusBadRequest, "Invalid time slot")
			return
		}

		appt, err := store.Book(r.Context(), booking.Appointment{
			ID:              uuid.NewString(),
			UserID:          auth.SubjectFromContext(r.Context()),
			State:           req.State,
			Location:        req.Location,
			AppointmentType: req.AppointmentType,
			ScheduledDate:   req.ScheduledDate,
			TimeSlot:        req.TimeSlot,
			Notes:           req.Notes,
		})
		if errors.Is(err, booking.ErrSlotTaken) {
			writeErr(w, http.StatusBadRequest, "This time slot is already booked")
			return
		}
		if err != nil {
			serverError(w, "book appointment", err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"message":     "Appointment booked successfully",
			"appointment": appt,
		})
	}
}

// GET /api/appointments/my-appointments
func MyAppointmentsHandler(store booking.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appts, err := store.ByUser(r.Context(), auth.SubjectFromContext(r.Context()))
		if err != nil {
			serverError(w, "list appointments", err)
			return
		}
		today := time.Now().Format(dateLayout)
		upcoming := 0
		for _, a := range appts {
			// Date strings compare lexically in calendar order.
			if a.ScheduledDate >= today && a.Status.Active() {
				upcoming++
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"appointments": appts,
			"total":        len(appts),
			"upcoming":     upcoming,
		})
	}
}

// PATCH /api/appointments/{appointmentID}/cancel
func CancelAppointmentHandler(store booking.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "appointmentID")
		appt, err := store.Cancel(r.Context(), id, auth.SubjectFromContext(r.Context()))
		switch {
		case errors.Is(err, booking.ErrNotFound):
			writeErr(w, http.StatusNotFound, "Appointment not found")
			return
		case errors.Is(err, booking.ErrAlreadyCancelled):
			writeErr(w, http.StatusBadRequest, "Appointment is already cancelled")
			return
		case errors.Is(err, booking.ErrCancelCompleted):
			writeErr(w, http.StatusBadRequest, "Cannot cancel a completed appointment")
			return
		case err != nil:
			serverError(w, "cancel appointment", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message":     "Appointment cancelled successfully",
			"appointment": appt,
		})
	}
}
