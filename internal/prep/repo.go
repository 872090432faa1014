package prep

import (
	"context"
	"errors"
)

var ErrTestNotFound = errors.New("test not found")

type Store interface {
	PutTest(ctx context.Context, t Test) error

	// ListTestsByState and GetTest return student-safe copies: answer keys
	// stripped, inactive tests hidden from listings.
	ListTestsByState(ctx context.Context, state string) ([]Test, error)
	GetTest(ctx context.Context, id string) (Test, error)

	// GetTestWithKey keeps the answer keys. Grading only; never serialized
	// to a client before submission.
	GetTestWithKey(ctx context.Context, id string) (Test, error)

	// RecordAttempt appends one attempt row. The caller computes the full
	// result first, so this single write is the only mutation of a
	// submission.
	RecordAttempt(ctx context.Context, a Attempt) error
	AttemptsByUser(ctx context.Context, userID string) ([]Attempt, error)
}
