package booking

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// memoryStore mirrors the SQL store's behavior, including the slot and
// confirmation-code uniqueness rules, for handler tests.
type memoryStore struct {
	mu      sync.Mutex
	byID    map[string]*Appointment
	codes   map[string]struct{}
	newCode func() string
}

func NewInMemoryStore() Store {
	return &memoryStore{
		byID:    map[string]*Appointment{},
		codes:   map[string]struct{}{},
		newCode: NewConfirmationCode,
	}
}

func (m *memoryStore) Book(_ context.Context, a Appointment) (Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.byID {
		if ex.State == a.State && ex.ScheduledDate == a.ScheduledDate && ex.TimeSlot == a.TimeSlot && ex.Status.Active() {
			return Appointment{}, ErrSlotTaken
		}
	}
	a.Status = StatusScheduled
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().Unix()
	}
	assigned := false
	for i := 0; i < codeRetries; i++ {
		a.ConfirmationCode = m.newCode()
		if _, dup := m.codes[a.ConfirmationCode]; !dup {
			assigned = true
			break
		}
	}
	if !assigned {
		return Appointment{}, errors.New("confirmation code collision persisted")
	}
	m.codes[a.ConfirmationCode] = struct{}{}
	cp := a
	m.byID[a.ID] = &cp
	return a, nil
}

func (m *memoryStore) BookedSlots(_ context.Context, state, date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []string{}
	for _, a := range m.byID {
		if a.State == state && a.ScheduledDate == date && a.Status.Active() {
			out = append(out, a.TimeSlot)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *memoryStore) ByUser(_ context.Context, userID string) ([]Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Appointment{}
	for _, a := range m.byID {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledDate != out[j].ScheduledDate {
			return out[i].ScheduledDate < out[j].ScheduledDate
		}
		return out[i].TimeSlot < out[j].TimeSlot
	})
	return out, nil
}

func (m *memoryStore) Cancel(_ context.Context, id, userID string) (Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok || a.UserID != userID {
		return Appointment{}, ErrNotFound
	}
	if err := CancelCheck(a.Status); err != nil {
		return Appointment{}, err
	}
	a.Status = StatusCancelled
	return *a, nil
}
