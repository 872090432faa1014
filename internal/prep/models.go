package prep

import "fmt"

// Unanswered is the sentinel selected-answer value for questions the
// learner skipped (or never sent).
const Unanswered = -1

type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	// Pointer so student-facing reads can strip the key entirely while
	// index 0 stays representable.
	CorrectAnswer *int   `json:"correctAnswer,omitempty"`
	Explanation   string `json:"explanation"`
}

type Test struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	State        string     `json:"state"`
	Category     string     `json:"category"` // practice|mock|official
	Description  string     `json:"description"`
	Difficulty   string     `json:"difficulty"` // easy|medium|hard
	PassingScore int        `json:"passingScore"`
	TimeLimitMin int        `json:"timeLimit"`
	IsActive     bool       `json:"isActive"`
	Questions    []Question `json:"questions"`
	CreatedAt    int64      `json:"createdAt,omitempty"`
}

// Validate enforces the authoring invariants before a test is written:
// exactly four options per question and a correct index inside them.
func (t Test) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("test title required")
	}
	for i, q := range t.Questions {
		if len(q.Options) != 4 {
			return fmt.Errorf("question %d: must have exactly 4 options, got %d", i, len(q.Options))
		}
		if q.CorrectAnswer == nil {
			return fmt.Errorf("question %d: missing correct answer", i)
		}
		if *q.CorrectAnswer < 0 || *q.CorrectAnswer > 3 {
			return fmt.Errorf("question %d: correct answer index %d out of range", i, *q.CorrectAnswer)
		}
	}
	return nil
}

// SubmittedAnswer is one entry of a learner submission, looked up by
// question index so gaps and reordering are tolerated.
type SubmittedAnswer struct {
	QuestionIndex  int `json:"questionIndex"`
	SelectedAnswer int `json:"selectedAnswer"`
}

// AnswerDetail is the per-question feedback returned to the learner right
// after submission. It includes the key, which is fine post-submit.
type AnswerDetail struct {
	QuestionIndex  int      `json:"questionIndex"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	SelectedAnswer int      `json:"selectedAnswer"`
	CorrectAnswer  int      `json:"correctAnswer"`
	IsCorrect      bool     `json:"isCorrect"`
	Explanation    string   `json:"explanation"`
}

// AnswerRecord is the compact per-question form persisted with an attempt.
type AnswerRecord struct {
	QuestionIndex  int  `json:"questionIndex"`
	SelectedAnswer int  `json:"selectedAnswer"`
	IsCorrect      bool `json:"isCorrect"`
}

type ScoreResult struct {
	Score          int            `json:"score"`
	Passed         bool           `json:"passed"`
	PassingScore   int            `json:"passingScore"`
	TotalQuestions int            `json:"totalQuestions"`
	CorrectAnswers int            `json:"correctAnswers"`
	Answers        []AnswerDetail `json:"answers"`
}

// Attempt is one completed submission. Attempts are insert-only; retakes
// append new rows.
type Attempt struct {
	ID          string         `json:"id"`
	UserID      string         `json:"-"`
	TestID      string         `json:"testId"`
	Score       int            `json:"score"`
	Passed      bool           `json:"passed"`
	Answers     []AnswerRecord `json:"answers"`
	CompletedAt int64          `json:"completedAt"`

	// Joined test metadata, filled on history reads.
	TestTitle      string `json:"testTitle,omitempty"`
	TestState      string `json:"testState,omitempty"`
	TestCategory   string `json:"testCategory,omitempty"`
	TestDifficulty string `json:"testDifficulty,omitempty"`
}
