package prep

import (
	"context"
	"sort"
	"sync"
)

// memoryStore backs handler tests and keyless local runs.
type memoryStore struct {
	mu       sync.RWMutex
	tests    map[string]Test
	attempts map[string][]Attempt // userID -> attempts
}

func NewInMemoryStore() Store {
	return &memoryStore{
		tests:    map[string]Test{},
		attempts: map[string][]Attempt{},
	}
}

func (m *memoryStore) PutTest(_ context.Context, t Test) error {
	if err := t.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tests[t.ID] = t
	return nil
}

func (m *memoryStore) ListTestsByState(_ context.Context, state string) ([]Test, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Test{}
	for _, t := range m.tests {
		if t.State != state || !t.IsActive {
			continue
		}
		cp := t
		cp.Questions = sanitizedQuestions(t.Questions)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

func (m *memoryStore) GetTest(ctx context.Context, id string) (Test, error) {
	t, err := m.GetTestWithKey(ctx, id)
	if err != nil {
		return Test{}, err
	}
	t.Questions = sanitizedQuestions(t.Questions)
	return t, nil
}

func (m *memoryStore) GetTestWithKey(_ context.Context, id string) (Test, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tests[id]
	if !ok {
		return Test{}, ErrTestNotFound
	}
	return t, nil
}

func (m *memoryStore) RecordAttempt(_ context.Context, a Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[a.UserID] = append(m.attempts[a.UserID], a)
	return nil
}

func (m *memoryStore) AttemptsByUser(_ context.Context, userID string) ([]Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	src := m.attempts[userID]
	out := make([]Attempt, 0, len(src))
	for _, a := range src {
		if t, ok := m.tests[a.TestID]; ok {
			a.TestTitle, a.TestState = t.Title, t.State
			a.TestCategory, a.TestDifficulty = t.Category, t.Difficulty
		}
		out = append(out, a)
	}
	return out, nil
}

func sanitizedQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	for i := range out {
		out[i].CorrectAnswer = nil
	}
	return out
}
