package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []model.QuizQuestion {
	return []model.QuizQuestion{
		{ID: 1, Question: "What is 2+2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: 1, Points: 10},
		{ID: 2, Question: "Capital of France?", Options: []string{"Berlin", "Madrid", "Paris", "Rome"}, CorrectAnswer: 2, Points: 20},
		{ID: 3, Question: "Largest planet?", Options: []string{"Earth", "Mars", "Jupiter", "Venus"}, CorrectAnswer: 2, Points: 30},
	}
}

func TestGradeQuizAllCorrect(t *testing.T) {
	grade := GradeQuiz(sampleQuestions(), map[int]int{1: 1, 2: 2, 3: 2})

	assert.Equal(t, 60, grade.PointsEarned)
	assert.Equal(t, 60, grade.PointsPossible)
	assert.Equal(t, 100, grade.Percentage)
}

func TestGradeQuizPartial(t *testing.T) {
	// first question right (10 of 60), rounds to 17
	grade := GradeQuiz(sampleQuestions(), map[int]int{1: 1, 2: 0, 3: 0})

	assert.Equal(t, 10, grade.PointsEarned)
	assert.Equal(t, 17, grade.Percentage)
}

func TestGradeQuizUnansweredScoreZero(t *testing.T) {
	grade := GradeQuiz(sampleQuestions(), map[int]int{})

	assert.Equal(t, 0, grade.PointsEarned)
	assert.Equal(t, 60, grade.PointsPossible)
	assert.Equal(t, 0, grade.Percentage)
}

func TestGradeQuizUnknownAnswerIDsIgnored(t *testing.T) {
	grade := GradeQuiz(sampleQuestions(), map[int]int{99: 1, 1: 1})

	assert.Equal(t, 10, grade.PointsEarned)
}

func TestGradeQuizNoQuestionsIsVacuousPass(t *testing.T) {
	grade := GradeQuiz(nil, map[int]int{})

	assert.Equal(t, 0, grade.PointsPossible)
	assert.Equal(t, 100, grade.Percentage)
	assert.True(t, IsPassing(grade.Percentage, 70))
}

func TestIsPassing(t *testing.T) {
	assert.True(t, IsPassing(70, 70))
	assert.True(t, IsPassing(100, 70))
	assert.False(t, IsPassing(69, 70))
	assert.True(t, IsPassing(0, 0))
}

func TestValidateQuizDefinitionValid(t *testing.T) {
	limit := 30
	assert.NoError(t, ValidateQuizDefinition(sampleQuestions(), 70, &limit))
	assert.NoError(t, ValidateQuizDefinition(sampleQuestions(), 70, nil))
}

func TestValidateQuizDefinitionCollectsAllViolations(t *testing.T) {
	questions := []model.QuizQuestion{
		{ID: 1, Question: "", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0, Points: 10},
		{ID: 2, Question: "q2", Options: []string{"a", "b"}, CorrectAnswer: 5, Points: 0},
		{ID: 1, Question: "q3", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1, Points: 10},
	}

	err := ValidateQuizDefinition(questions, 150, nil)
	require.Error(t, err)

	ve, ok := util.AsValidation(err)
	require.True(t, ok)

	// empty text, wrong option count, bad index, non-positive points,
	// duplicate id, and the out-of-range passing score
	assert.Len(t, ve.Violations, 6)

	fields := make(map[string]int)
	for _, v := range ve.Violations {
		fields[v.Field]++
	}
	assert.Equal(t, 1, fields["quizPassingScore"])
	assert.Equal(t, 1, fields["quizQuestions[0]"])
	assert.Equal(t, 3, fields["quizQuestions[1]"])
	assert.Equal(t, 1, fields["quizQuestions[2]"])
}

func TestValidateQuizDefinitionTimeLimit(t *testing.T) {
	zero := 0
	negative := -5

	err := ValidateQuizDefinition(sampleQuestions(), 70, &zero)
	assert.Error(t, err)

	err = ValidateQuizDefinition(sampleQuestions(), 70, &negative)
	assert.Error(t, err)
}

func TestStripQuizAnswers(t *testing.T) {
	lesson := &model.Lesson{
		ContentType:   model.ContentQuiz,
		QuizQuestions: sampleQuestions(),
	}

	clean := StripQuizAnswers(lesson)

	for _, q := range clean.QuizQuestions {
		assert.Equal(t, -1, q.CorrectAnswer)
	}
	// the original is untouched
	assert.Equal(t, 1, lesson.QuizQuestions[0].CorrectAnswer)
}
