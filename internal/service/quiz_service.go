package service

import (
	"fmt"
	"math"

	"lms_backend/internal/model"
	"lms_backend/internal/util"
)

// QuizGrade is the outcome of grading one answer set. Pass or fail is a
// separate policy decision, see IsPassing.
type QuizGrade struct {
	PointsEarned   int `json:"pointsEarned"`
	PointsPossible int `json:"pointsPossible"`
	Percentage     int `json:"percentage"`
}

// ValidateQuizDefinition checks an authored quiz. Every offending question is
// reported, not just the first, so the author can fix the whole quiz in one
// pass.
func ValidateQuizDefinition(questions []model.QuizQuestion, passingScore int, timeLimit *int) error {
	ve := &util.ValidationError{}

	if passingScore < 0 || passingScore > 100 {
		ve.Add("quizPassingScore", "must be between 0 and 100, got %d", passingScore)
	}
	if timeLimit != nil && *timeLimit <= 0 {
		ve.Add("quizTimeLimit", "must be a positive number of minutes or omitted")
	}

	seen := make(map[int]bool, len(questions))
	for i, q := range questions {
		field := fmt.Sprintf("quizQuestions[%d]", i)
		if q.Question == "" {
			ve.Add(field, "question text is required")
		}
		if len(q.Options) != model.QuizOptionCount {
			ve.Add(field, "must have exactly %d options, got %d", model.QuizOptionCount, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= model.QuizOptionCount {
			ve.Add(field, "correct_answer index must be between 0 and %d, got %d", model.QuizOptionCount-1, q.CorrectAnswer)
		}
		if q.Points <= 0 {
			ve.Add(field, "points must be a positive integer, got %d", q.Points)
		}
		if seen[q.ID] {
			ve.Add(field, "duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
	}

	return ve.OrNil()
}

// GradeQuiz scores an answer set against the question list. Unanswered
// questions score zero. A quiz with no questions is vacuously passed at 100%.
// The function never consults the clock; time limits are the caller's policy.
func GradeQuiz(questions []model.QuizQuestion, answers map[int]int) QuizGrade {
	earned := 0
	possible := 0

	for _, q := range questions {
		possible += q.Points
		if selected, ok := answers[q.ID]; ok && selected == q.CorrectAnswer {
			earned += q.Points
		}
	}

	percentage := 100
	if possible > 0 {
		percentage = int(math.Round(float64(earned) / float64(possible) * 100))
	}

	return QuizGrade{
		PointsEarned:   earned,
		PointsPossible: possible,
		Percentage:     percentage,
	}
}

// IsPassing reports whether a percentage score meets the pass threshold.
func IsPassing(percentage, passingScore int) bool {
	return percentage >= passingScore
}

// StripQuizAnswers returns a copy of a quiz lesson with the correct answer
// indexes removed, for serving questions to learners.
func StripQuizAnswers(lesson *model.Lesson) *model.Lesson {
	clean := *lesson
	clean.QuizQuestions = make([]model.QuizQuestion, len(lesson.QuizQuestions))
	for i, q := range lesson.QuizQuestions {
		q.CorrectAnswer = -1
		clean.QuizQuestions[i] = q
	}
	return &clean
}
