package service

import (
	"testing"

	"lms_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestValidateLessonContentVideo(t *testing.T) {
	assert.NoError(t, ValidateLessonContent(&model.Lesson{
		ContentType:          model.ContentVideo,
		VideoURL:             "https://cdn.example.com/v/1.mp4",
		VideoDurationMinutes: 12,
	}))

	assert.Error(t, ValidateLessonContent(&model.Lesson{ContentType: model.ContentVideo}))
	assert.Error(t, ValidateLessonContent(&model.Lesson{
		ContentType:          model.ContentVideo,
		VideoURL:             "https://cdn.example.com/v/1.mp4",
		VideoDurationMinutes: -1,
	}))
}

func TestValidateLessonContentText(t *testing.T) {
	assert.NoError(t, ValidateLessonContent(&model.Lesson{
		ContentType: model.ContentText,
		Content:     strptr("# Welcome"),
	}))

	// empty body is an accepted placeholder
	assert.NoError(t, ValidateLessonContent(&model.Lesson{
		ContentType: model.ContentText,
		Content:     strptr(""),
	}))

	assert.Error(t, ValidateLessonContent(&model.Lesson{ContentType: model.ContentText}))
}

func TestValidateLessonContentQuiz(t *testing.T) {
	assert.NoError(t, ValidateLessonContent(&model.Lesson{
		ContentType:      model.ContentQuiz,
		QuizQuestions:    sampleQuestions(),
		QuizPassingScore: 70,
	}))

	assert.Error(t, ValidateLessonContent(&model.Lesson{
		ContentType: model.ContentQuiz,
		QuizQuestions: []model.QuizQuestion{
			{ID: 1, Question: "q", Options: []string{"a", "b"}, CorrectAnswer: 0, Points: 10},
		},
		QuizPassingScore: 70,
	}))
}

func TestValidateLessonContentUnknownType(t *testing.T) {
	assert.Error(t, ValidateLessonContent(&model.Lesson{ContentType: "podcast"}))
}

func TestNormalizeQuestionsDefaultsPoints(t *testing.T) {
	questions := NormalizeQuestions([]model.QuizQuestion{
		{ID: 1, Question: "q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
		{ID: 2, Question: "q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1, Points: 25},
	})

	assert.Equal(t, model.DefaultQuestionPoints, questions[0].Points)
	assert.Equal(t, 25, questions[1].Points)
}
