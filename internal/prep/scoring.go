package prep

import "math"

// Score grades a submission against a test's answer key. The test must be
// loaded with keys intact (GetTestWithKey); this never runs on a
// client-sanitized copy.
//
// Iteration follows the test's stored question order. Submissions are looked
// up by question index, so missing or out-of-order entries are treated as
// unanswered. Aggregate score is round-to-nearest of correct/total*100; a
// zero-question test scores 0 and does not pass.
func Score(t Test, answers []SubmittedAnswer) ScoreResult {
	selected := make(map[int]int, len(answers))
	for _, a := range answers {
		selected[a.QuestionIndex] = a.SelectedAnswer
	}

	result := ScoreResult{
		PassingScore:   t.PassingScore,
		TotalQuestions: len(t.Questions),
		Answers:        make([]AnswerDetail, 0, len(t.Questions)),
	}

	for i, q := range t.Questions {
		sel, ok := selected[i]
		if !ok {
			sel = Unanswered
		}
		correct := q.CorrectAnswer != nil && sel == *q.CorrectAnswer
		if correct {
			result.CorrectAnswers++
		}
		key := Unanswered
		if q.CorrectAnswer != nil {
			key = *q.CorrectAnswer
		}
		result.Answers = append(result.Answers, AnswerDetail{
			QuestionIndex:  i,
			Question:       q.Question,
			Options:        q.Options,
			SelectedAnswer: sel,
			CorrectAnswer:  key,
			IsCorrect:      correct,
			Explanation:    q.Explanation,
		})
	}

	if result.TotalQuestions > 0 {
		result.Score = int(math.Round(float64(result.CorrectAnswers) / float64(result.TotalQuestions) * 100))
		result.Passed = result.Score >= t.PassingScore
	}
	return result
}

// CompactAnswers reduces detailed feedback to the persisted attempt form.
func CompactAnswers(details []AnswerDetail) []AnswerRecord {
	out := make([]AnswerRecord, 0, len(details))
	for _, d := range details {
		out = append(out, AnswerRecord{
			QuestionIndex:  d.QuestionIndex,
			SelectedAnswer: d.SelectedAnswer,
			IsCorrect:      d.IsCorrect,
		})
	}
	return out
}

// HistorySummary aggregates a learner's attempt list for the history view.
type HistorySummary struct {
	TotalTests   int `json:"totalTests"`
	PassedTests  int `json:"passedTests"`
	AverageScore int `json:"averageScore"`
}

func Summarize(attempts []Attempt) HistorySummary {
	s := HistorySummary{TotalTests: len(attempts)}
	if len(attempts) == 0 {
		return s
	}
	sum := 0
	for _, a := range attempts {
		sum += a.Score
		if a.Passed {
			s.PassedTests++
		}
	}
	s.AverageScore = int(math.Round(float64(sum) / float64(len(attempts))))
	return s
}
