package prep

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(dbh *sql.DB) *SQLStore { return &SQLStore{db: dbh} }

func (s *SQLStore) PutTest(ctx context.Context, t Test) error {
	if err := t.Validate(); err != nil {
		return err
	}
	qj, err := json.Marshal(t.Questions)
	if err != nil {
		return err
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = time.Now().Unix()
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO tests (id,title,state,category,description,difficulty,passing_score,time_limit_min,is_active,questions_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, state=EXCLUDED.state, category=EXCLUDED.category,
			description=EXCLUDED.description, difficulty=EXCLUDED.difficulty, passing_score=EXCLUDED.passing_score,
			time_limit_min=EXCLUDED.time_limit_min, is_active=EXCLUDED.is_active, questions_json=EXCLUDED.questions_json`,
		t.ID, t.Title, t.State, t.Category, t.Description, t.Difficulty,
		t.PassingScore, t.TimeLimitMin, t.IsActive, string(qj), t.CreatedAt)
	return err
}

func (s *SQLStore) ListTestsByState(ctx context.Context, state string) ([]Test, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,title,state,category,description,difficulty,passing_score,time_limit_min,is_active,questions_json,created_at
		FROM tests WHERE state=$1 AND is_active=$2 ORDER BY created_at`, state, true)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Test{}
	for rows.Next() {
		t, err := scanTest(rows)
		if err != nil {
			return nil, err
		}
		stripKeys(&t)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetTest(ctx context.Context, id string) (Test, error) {
	t, err := s.GetTestWithKey(ctx, id)
	if err != nil {
		return Test{}, err
	}
	stripKeys(&t)
	return t, nil
}

func (s *SQLStore) GetTestWithKey(ctx context.Context, id string) (Test, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,state,category,description,difficulty,passing_score,time_limit_min,is_active,questions_json,created_at
		FROM tests WHERE id=$1`, id)
	t, err := scanTest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Test{}, ErrTestNotFound
	}
	if err != nil {
		return Test{}, err
	}
	return t, nil
}

func (s *SQLStore) RecordAttempt(ctx context.Context, a Attempt) error {
	aj, err := json.Marshal(a.Answers)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO attempts (id,user_id,test_id,score,passed,answers_json,completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.UserID, a.TestID, a.Score, a.Passed, string(aj), a.CompletedAt)
	return err
}

func (s *SQLStore) AttemptsByUser(ctx context.Context, userID string) ([]Attempt, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT a.id,a.user_id,a.test_id,a.score,a.passed,a.answers_json,a.completed_at,
			t.title,t.state,t.category,t.difficulty
		FROM attempts a JOIN tests t ON t.id=a.test_id
		WHERE a.user_id=$1 ORDER BY a.completed_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Attempt{}
	for rows.Next() {
		var a Attempt
		var aj string
		if err := rows.Scan(&a.ID, &a.UserID, &a.TestID, &a.Score, &a.Passed, &aj, &a.CompletedAt,
			&a.TestTitle, &a.TestState, &a.TestCategory, &a.TestDifficulty); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(aj), &a.Answers); err != nil {
			return nil, fmt.Errorf("attempt %s: decode answers: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTest(row rowScanner) (Test, error) {
	var t Test
	var qj string
	if err := row.Scan(&t.ID, &t.Title, &t.State, &t.Category, &t.Description, &t.Difficulty,
		&t.PassingScore, &t.TimeLimitMin, &t.IsActive, &qj, &t.CreatedAt); err != nil {
		return Test{}, err
	}
	if err := json.Unmarshal([]byte(qj), &t.Questions); err != nil {
		return Test{}, err
	}
	return t, nil
}

func stripKeys(t *Test) {
	for i := range t.Questions {
		t.Questions[i].CorrectAnswer = nil
	}
}
