package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/roadready/roadready-backend/internal/db"
)

// codeRetries bounds regeneration when a confirmation code collides with an
// existing row.
const codeRetries = 5

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(dbh *sql.DB) *SQLStore { return &SQLStore{db: dbh} }

func (s *SQLStore) Book(ctx context.Context, a Appointment) (Appointment, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM appointments
		WHERE state=$1 AND scheduled_date=$2 AND time_slot=$3 AND status IN ('scheduled','confirmed')`,
		a.State, a.ScheduledDate, a.TimeSlot).Scan(&one)
	if err == nil {
		return Appointment{}, ErrSlotTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Appointment{}, err
	}

	a.Status = StatusScheduled
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().Unix()
	}
	for i := 0; i < codeRetries; i++ {
		a.ConfirmationCode = NewConfirmationCode()
		_, err = s.db.ExecContext(ctx, `INSERT INTO appointments
			(id,user_id,state,location_name,location_address,location_city,location_zip,
			 appointment_type,scheduled_date,time_slot,status,notes,confirmation_code,created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
			a.ID, a.UserID, a.State, a.Location.Name, a.Location.Address, a.Location.City, a.Location.ZipCode,
			a.AppointmentType, a.ScheduledDate, a.TimeSlot, a.Status, a.Notes, a.ConfirmationCode, a.CreatedAt)
		if err == nil {
			return a, nil
		}
		if db.IsUniqueViolation(err) {
			if isCodeCollision(err) {
				continue
			}
			// The slot index fired: a concurrent booking won the race
			// between our pre-check and this insert.
			return Appointment{}, ErrSlotTaken
		}
		return Appointment{}, err
	}
	return Appointment{}, fmt.Errorf("confirmation code collision persisted: %w", err)
}

func (s *SQLStore) BookedSlots(ctx context.Context, state, date string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT time_slot FROM appointments
		WHERE state=$1 AND scheduled_date=$2 AND status IN ('scheduled','confirmed')`, state, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, err
		}
		out = append(out, slot)
	}
	return out, rows.Err()
}

func (s *SQLStore) ByUser(ctx context.Context, userID string) ([]Appointment, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,user_id,state,location_name,location_address,location_city,location_zip,
			appointment_type,scheduled_date,time_slot,status,notes,confirmation_code,created_at
		FROM appointments WHERE user_id=$1 ORDER BY scheduled_date, time_slot`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) Cancel(ctx context.Context, id, userID string) (Appointment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,user_id,state,location_name,location_address,location_city,location_zip,
			appointment_type,scheduled_date,time_slot,status,notes,confirmation_code,created_at
		FROM appointments WHERE id=$1 AND user_id=$2`, id, userID)
	a, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Appointment{}, ErrNotFound
	}
	if err != nil {
		return Appointment{}, err
	}
	if err := CancelCheck(a.Status); err != nil {
		return Appointment{}, err
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE appointments SET status=$1 WHERE id=$2`, StatusCancelled, id); err != nil {
		return Appointment{}, err
	}
	a.Status = StatusCancelled
	return a, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.UserID, &a.State, &a.Location.Name, &a.Location.Address, &a.Location.City, &a.Location.ZipCode,
		&a.AppointmentType, &a.ScheduledDate, &a.TimeSlot, &a.Status, &a.Notes, &a.ConfirmationCode, &a.CreatedAt)
	if err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func isCodeCollision(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName == "idx_appointments_code"
	}
	return strings.Contains(err.Error(), "confirmation_code")
}
