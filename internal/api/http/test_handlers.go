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
	"github.com/roadready/roadready-backend/internal/prep"
	"github.com/roadready/roadready-backend/internal/states"
)

// GET /api/tests/state/{state}
func ListTestsByStateHandler(store prep.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := strings.ToUpper(chi.URLParam(r, "state"))
		if !states.Valid(state) {
			writeErr(w, http.StatusBadRequest, "Invalid state code")
			return
		}
		tests, err := store.ListTestsByState(r.Context(), state)
		if err != nil {
			serverError(w, "list tests", err)
			return
		}
		writeJSON(w, http.StatusOK, tests)
	}
}

// GET /api/tests/{testID}
func GetTestHandler(store prep.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := store.GetTest(r.Context(), chi.URLParam(r, "testID"))
		if errors.Is(err, prep.ErrTestNotFound) {
			writeErr(w, http.StatusNotFound, "Test not found")
			return
		}
		if err != nil {
			serverError(w, "get test", err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

type submitRequest struct {
	Answers []prep.SubmittedAnswer `json:"answers"`
}

// POST /api/tests/{testID}/submit
//
// The full result is computed before the single attempt insert, so a
// submission is either recorded whole or not at all.
func SubmitTestHandler(store prep.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		t, err := store.GetTestWithKey(r.Context(), chi.URLParam(r, "testID"))
		if errors.Is(err, prep.ErrTestNotFound) {
			writeErr(w, http.StatusNotFound, "Test not found")
			return
		}
		if err != nil {
			serverError(w, "load test", err)
			return
		}

		result := prep.Score(t, req.Answers)

		attempt := prep.Attempt{
			ID:          uuid.NewString(),
			UserID:      auth.SubjectFromContext(r.Context()),
			TestID:      t.ID,
			Score:       result.Score,
			Passed:      result.Passed,
			Answers:     prep.CompactAnswers(result.Answers),
			CompletedAt: time.Now().Unix(),
		}
		if err := store.RecordAttempt(r.Context(), attempt); err != nil {
			serverError(w, "record attempt", err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// GET /api/tests/user/history
func TestHistoryHandler(store prep.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attempts, err := store.AttemptsByUser(r.Context(), auth.SubjectFromContext(r.Context()))
		if err != nil {
			serverError(w, "list attempts", err)
			return
		}
		summary := prep.Summarize(attempts)
		writeJSON(w, http.StatusOK, map[string]any{
			"testScores":   attempts,
			"totalTests":   summary.TotalTests,
			"passedTests":  summary.PassedTests,
			"averageScore": summary.AverageScore,
		})
	}
}
