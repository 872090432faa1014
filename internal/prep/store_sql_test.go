package prep

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/roadready/roadready-backend/internal/db"
)

func newSQLStoreForTest(t *testing.T) (*SQLStore, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Keep the single connection alive so the memory DB survives the test.
	dbh.SetMaxOpenConns(1)
	t.Cleanup(func() { dbh.Close() })

	if _, err := dbh.ExecContext(ctx, `INSERT INTO users (id,email,password_hash,first_name,last_name,state,created_at)
		VALUES ('u1','u1@example.com','x','Sam','Lee','CA',0)`); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewSQLStore(dbh), dbh
}

func TestSQLStore_SanitizedReads(t *testing.T) {
	ctx := context.Background()
	store, _ := newSQLStoreForTest(t)
	zero, two := 0, 2
	if err := store.PutTest(ctx, Test{
		ID: "t1", Title: "CA Practice", State: "CA", Category: "practice",
		Difficulty: "medium", PassingScore: 80, IsActive: true,
		Questions: []Question{
			{Question: "q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: &zero},
			{Question: "q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: &two},
		},
	}); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetTest(ctx, "t1")
	if err != nil {
		t.Fatal(err)
	}
	for i, q := range got.Questions {
		if q.CorrectAnswer != nil {
			t.Errorf("GetTest leaked answer key on question %d", i)
		}
	}

	full, err := store.GetTestWithKey(ctx, "t1")
	if err != nil {
		t.Fatal(err)
	}
	// Index 0 must survive the round trip distinctly from "stripped".
	if full.Questions[0].CorrectAnswer == nil || *full.Questions[0].CorrectAnswer != 0 {
		t.Errorf("key 0 lost: %+v", full.Questions[0].CorrectAnswer)
	}
	if full.Questions[1].CorrectAnswer == nil || *full.Questions[1].CorrectAnswer != 2 {
		t.Errorf("key 2 lost: %+v", full.Questions[1].CorrectAnswer)
	}

	list, err := store.ListTestsByState(ctx, "CA")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Questions[0].CorrectAnswer != nil {
		t.Errorf("listing wrong: %+v", list)
	}

	if _, err := store.GetTest(ctx, "ghost"); !errors.Is(err, ErrTestNotFound) {
		t.Errorf("unknown test err = %v", err)
	}
}

func TestSQLStore_ListFiltersInactive(t *testing.T) {
	ctx := context.Background()
	store, _ := newSQLStoreForTest(t)
	one := 1
	q := []Question{{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: &one}}
	if err := store.PutTest(ctx, Test{ID: "on", State: "TX", Title: "on", Category: "practice", IsActive: true, Questions: q}); err != nil {
		t.Fatal(err)
	}
	if err := store.PutTest(ctx, Test{ID: "off", State: "TX", Title: "off", Category: "practice", IsActive: false, Questions: q}); err != nil {
		t.Fatal(err)
	}

	list, err := store.ListTestsByState(ctx, "TX")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != "on" {
		t.Errorf("inactive test listed: %+v", list)
	}
}

func TestSQLStore_AttemptsJoinTestMeta(t *testing.T) {
	ctx := context.Background()
	store, _ := newSQLStoreForTest(t)
	one := 1
	if err := store.PutTest(ctx, Test{
		ID: "t1", State: "FL", Title: "FL Mock", Category: "mock", Difficulty: "hard", IsActive: true,
		Questions: []Question{{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: &one}},
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordAttempt(ctx, Attempt{
		ID: "a1", UserID: "u1", TestID: "t1", Score: 100, Passed: true,
		Answers: []AnswerRecord{{QuestionIndex: 0, SelectedAnswer: 1, IsCorrect: true}}, CompletedAt: 10,
	}); err != nil {
		t.Fatal(err)
	}

	attempts, err := store.AttemptsByUser(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(attempts) != 1 {
		t.Fatalf("len = %d", len(attempts))
	}
	a := attempts[0]
	if a.TestTitle != "FL Mock" || a.TestState != "FL" || a.TestCategory != "mock" || a.TestDifficulty != "hard" {
		t.Errorf("join meta missing: %+v", a)
	}
	if len(a.Answers) != 1 || a.Answers[0].SelectedAnswer != 1 {
		t.Errorf("answers lost in round trip: %v", a.Answers)
	}
}

func TestSQLStore_AttemptsCorruptAnswersError(t *testing.T) {
	ctx := context.Background()
	store, dbh := newSQLStoreForTest(t)
	one := 1
	if err := store.PutTest(ctx, Test{
		ID: "t1", State: "CA", Title: "T", Category: "practice", IsActive: true,
		Questions: []Question{{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: &one}},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := dbh.ExecContext(ctx, `INSERT INTO attempts (id,user_id,test_id,score,passed,answers_json,completed_at)
		VALUES ('a1','u1','t1',50,0,'not-json',0)`); err != nil {
		t.Fatal(err)
	}

	if _, err := store.AttemptsByUser(ctx, "u1"); err == nil {
		t.Fatal("corrupt answers_json silently accepted")
	} else if !strings.Contains(err.Error(), "a1") {
		t.Errorf("error does not name the attempt: %v", err)
	}
}
