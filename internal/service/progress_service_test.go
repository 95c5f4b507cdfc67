package service

import (
	"testing"

	"lms_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0, ProgressPercent(0, 10))
	assert.Equal(t, 50, ProgressPercent(5, 10))
	assert.Equal(t, 100, ProgressPercent(10, 10))
	// 2 of 3 rounds to 67
	assert.Equal(t, 67, ProgressPercent(2, 3))
	assert.Equal(t, 33, ProgressPercent(1, 3))
}

func TestProgressPercentNoPublishedLessons(t *testing.T) {
	assert.Equal(t, 0, ProgressPercent(0, 0))
	// stale progress rows against unpublished lessons never yield progress
	assert.Equal(t, 0, ProgressPercent(5, 0))
}

func TestCanAccessLessonFreePreview(t *testing.T) {
	lesson := &model.Lesson{IsFreePreview: true}

	assert.True(t, CanAccessLesson(lesson, false, model.Member))
	assert.True(t, CanAccessLesson(lesson, false, ""))
}

func TestCanAccessLessonRequiresEnrollment(t *testing.T) {
	lesson := &model.Lesson{IsFreePreview: false}

	assert.False(t, CanAccessLesson(lesson, false, model.Member))
	assert.True(t, CanAccessLesson(lesson, true, model.Member))
}

func TestCanAccessLessonAdminBypass(t *testing.T) {
	lesson := &model.Lesson{IsFreePreview: false}

	assert.True(t, CanAccessLesson(lesson, false, model.Admin))
	assert.True(t, CanAccessLesson(lesson, false, model.SuperAdmin))
}

// A learner scoring 40 of 60 points on a 70%-threshold quiz fails at 67%,
// then passes a retake with a perfect score.
func TestQuizFailThenPassScenario(t *testing.T) {
	questions := sampleQuestions()

	firstTry := GradeQuiz(questions, map[int]int{1: 1, 3: 2}) // 40 of 60
	assert.Equal(t, 67, firstTry.Percentage)
	assert.False(t, IsPassing(firstTry.Percentage, 70))

	retake := GradeQuiz(questions, map[int]int{1: 1, 2: 2, 3: 2})
	assert.Equal(t, 100, retake.Percentage)
	assert.True(t, IsPassing(retake.Percentage, 70))
}
