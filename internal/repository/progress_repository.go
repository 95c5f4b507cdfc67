package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndLesson(userID, lessonID uint) (*model.LessonProgress, error) {
	var p model.LessonProgress
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert writes the single live progress record per (user, lesson),
// overwriting any prior one. The composite unique index keeps concurrent
// submissions from producing duplicates.
func (r *ProgressRepository) Upsert(p *model.LessonProgress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed", "completed_at", "last_score", "quiz_passed", "updated_at",
		}),
	}).Create(p).Error
}

// ListForCourse returns all of a user's progress rows for lessons of one course.
func (r *ProgressRepository) ListForCourse(userID, courseID uint) ([]model.LessonProgress, error) {
	var rows []model.LessonProgress
	err := r.DB.
		Joins("JOIN lessons ON lessons.id = lesson_progress.lesson_id").
		Where("lesson_progress.user_id = ? AND lessons.course_id = ?", userID, courseID).
		Find(&rows).Error
	return rows, err
}

// CountCompletedPublished counts completed progress records against the
// course's published lessons, the numerator of course progress.
func (r *ProgressRepository) CountCompletedPublished(userID, courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Joins("JOIN lessons ON lessons.id = lesson_progress.lesson_id").
		Where("lesson_progress.user_id = ? AND lesson_progress.completed = ? AND lessons.course_id = ? AND lessons.is_published = ?",
			userID, true, courseID, true).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CreateAttempt(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *ProgressRepository) ListAttempts(userID, lessonID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Order("submitted_at desc").Find(&attempts).Error
	return attempts, err
}
