package prep

import "testing"

func mkTest(passing int, correct ...int) Test {
	qs := make([]Question, len(correct))
	for i, c := range correct {
		cc := c
		qs[i] = Question{
			Question:      "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: &cc,
		}
	}
	return Test{ID: "t1", Title: "T", State: "CA", Category: "practice",
		PassingScore: passing, IsActive: true, Questions: qs}
}

func answers(selected ...int) []SubmittedAnswer {
	out := make([]SubmittedAnswer, len(selected))
	for i, s := range selected {
		out[i] = SubmittedAnswer{QuestionIndex: i, SelectedAnswer: s}
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		test    Test
		answers []SubmittedAnswer
		score   int
		passed  bool
		correct int
	}{
		{name: "all correct", test: mkTest(80, 2, 1, 1), answers: answers(2, 1, 1), score: 100, passed: true, correct: 3},
		{name: "two of three", test: mkTest(80, 2, 1, 1), answers: answers(2, 1, 0), score: 67, passed: false, correct: 2},
		{name: "none correct", test: mkTest(80, 2, 1, 1), answers: answers(0, 0, 0), score: 0, passed: false, correct: 0},
		{name: "empty submission", test: mkTest(80, 2, 1, 1), answers: nil, score: 0, passed: false, correct: 0},
		{name: "zero questions", test: mkTest(80), answers: nil, score: 0, passed: false, correct: 0},
		{name: "low threshold passes", test: mkTest(50, 0, 1), answers: answers(0, 3), score: 50, passed: true, correct: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.test, tc.answers)
			if got.Score != tc.score {
				t.Errorf("score = %d, want %d", got.Score, tc.score)
			}
			if got.Passed != tc.passed {
				t.Errorf("passed = %v, want %v", got.Passed, tc.passed)
			}
			if got.CorrectAnswers != tc.correct {
				t.Errorf("correctAnswers = %d, want %d", got.CorrectAnswers, tc.correct)
			}
			if got.TotalQuestions != len(tc.test.Questions) {
				t.Errorf("totalQuestions = %d, want %d", got.TotalQuestions, len(tc.test.Questions))
			}
			if got.PassingScore != tc.test.PassingScore {
				t.Errorf("passingScore = %d, want %d", got.PassingScore, tc.test.PassingScore)
			}
			if len(got.Answers) != len(tc.test.Questions) {
				t.Fatalf("answers len = %d, want %d", len(got.Answers), len(tc.test.Questions))
			}
		})
	}
}

func TestScore_OutOfOrderAndMissing(t *testing.T) {
	test := mkTest(80, 2, 1, 1)
	// Only the last question is answered, and it arrives first.
	got := Score(test, []SubmittedAnswer{{QuestionIndex: 2, SelectedAnswer: 1}})
	if got.CorrectAnswers != 1 {
		t.Fatalf("correctAnswers = %d, want 1", got.CorrectAnswers)
	}
	if got.Answers[0].SelectedAnswer != Unanswered || got.Answers[1].SelectedAnswer != Unanswered {
		t.Errorf("missing entries should be unanswered, got %+v", got.Answers[:2])
	}
	if !got.Answers[2].IsCorrect {
		t.Errorf("answered question should be correct")
	}
	if got.Score != 33 {
		t.Errorf("score = %d, want 33", got.Score)
	}
}

func TestScore_UnansweredSentinelNeverCorrect(t *testing.T) {
	test := mkTest(80, 0)
	got := Score(test, []SubmittedAnswer{{QuestionIndex: 0, SelectedAnswer: Unanswered}})
	if got.CorrectAnswers != 0 {
		t.Fatalf("sentinel counted as correct")
	}
}

func TestCompactAnswers(t *testing.T) {
	test := mkTest(80, 2, 1)
	res := Score(test, answers(2, 0))
	compact := CompactAnswers(res.Answers)
	if len(compact) != 2 {
		t.Fatalf("len = %d, want 2", len(compact))
	}
	if !compact[0].IsCorrect || compact[1].IsCorrect {
		t.Errorf("correctness flags wrong: %+v", compact)
	}
	if compact[1].SelectedAnswer != 0 {
		t.Errorf("selectedAnswer = %d, want 0", compact[1].SelectedAnswer)
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(nil)
	if got.TotalTests != 0 || got.PassedTests != 0 || got.AverageScore != 0 {
		t.Fatalf("empty summary = %+v", got)
	}

	got = Summarize([]Attempt{
		{Score: 100, Passed: true},
		{Score: 67, Passed: false},
		{Score: 0, Passed: false},
	})
	if got.TotalTests != 3 || got.PassedTests != 1 {
		t.Fatalf("summary = %+v", got)
	}
	if got.AverageScore != 56 { // round(167/3)
		t.Errorf("averageScore = %d, want 56", got.AverageScore)
	}
}

func TestValidate(t *testing.T) {
	ok := mkTest(80, 1)
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid test rejected: %v", err)
	}

	three := mkTest(80, 1)
	three.Questions[0].Options = three.Questions[0].Options[:3]
	if err := three.Validate(); err == nil {
		t.Error("3-option question accepted")
	}

	high := mkTest(80, 4)
	if err := high.Validate(); err == nil {
		t.Error("out-of-range answer index accepted")
	}

	missing := mkTest(80, 1)
	missing.Questions[0].CorrectAnswer = nil
	if err := missing.Validate(); err == nil {
		t.Error("missing answer key accepted")
	}
}
