package booking

import "errors"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

// Active statuses hold their slot; everything else frees it (or never held
// one). Completed and no-show bookings are historical and intentionally
// still excluded from the grid only via status filtering at query time.
func (s Status) Active() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

var AppointmentTypes = []string{"written-test", "road-test", "renewal", "replacement"}

func ValidType(t string) bool {
	for _, v := range AppointmentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Location is snapshotted onto the appointment at booking time, not kept as
// a reference, so later edits to the office tables never rewrite history.
type Location struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

type Appointment struct {
	ID               string   `json:"id"`
	UserID           string   `json:"-"`
	State            string   `json:"state"`
	Location         Location `json:"location"`
	AppointmentType  string   `json:"appointmentType"`
	ScheduledDate    string   `json:"scheduledDate"` // YYYY-MM-DD, treated as an opaque calendar-day key
	TimeSlot         string   `json:"timeSlot"`      // HH:MM, half-hour grid
	Status           Status   `json:"status"`
	Notes            string   `json:"notes"`
	ConfirmationCode string   `json:"confirmationNumber"`
	CreatedAt        int64    `json:"createdAt,omitempty"`
}

var (
	ErrSlotTaken        = errors.New("this time slot is already booked")
	ErrNotFound         = errors.New("appointment not found")
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrCancelCompleted  = errors.New("cannot cancel a completed appointment")
)

// CancelCheck validates the cancel transition against the status machine.
// scheduled and confirmed may cancel; terminal states may not.
func CancelCheck(s Status) error {
	switch s {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrCancelCompleted
	default:
		return nil
	}
}
