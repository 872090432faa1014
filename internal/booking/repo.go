package booking

import "context"

type Store interface {
	// Book pre-checks the (state, date, slot) cell and inserts the
	// appointment. Two racing bookings can both pass the pre-check; the
	// partial unique slot index decides the winner and the loser gets
	// ErrSlotTaken, same as the pre-check path. Confirmation-code
	// collisions are retried with a fresh code.
	Book(ctx context.Context, a Appointment) (Appointment, error)

	// BookedSlots returns the time slots held by active (scheduled or
	// confirmed) appointments for a (state, date) cell.
	BookedSlots(ctx context.Context, state, date string) ([]string, error)

	ByUser(ctx context.Context, userID string) ([]Appointment, error)

	// Cancel transitions an appointment owned by userID to cancelled.
	// ErrNotFound covers both unknown and not-owned IDs; ErrAlreadyCancelled
	// and ErrCancelCompleted guard the terminal states.
	Cancel(ctx context.Context, id, userID string) (Appointment, error)
}
