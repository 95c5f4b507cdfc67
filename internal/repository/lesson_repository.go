package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) FindByCourseAndID(courseID, lessonID uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Where("id = ? AND course_id = ?", lessonID, courseID).First(&lesson).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// ListByCourse returns lessons in catalog order: position ascending with
// creation order breaking ties, so reordering stays stable.
func (r *LessonRepository) ListByCourse(courseID uint, publishedOnly bool) ([]model.Lesson, error) {
	var lessons []model.Lesson
	query := r.DB.Where("course_id = ?", courseID)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Order("position asc, created_at asc, id asc").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) NextPosition(courseID uint) (int, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).Where("course_id = ?", courseID).Count(&count).Error
	return int(count), err
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ?", id).Delete(&model.LessonProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", id).Delete(&model.QuizAttempt{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Lesson{}, id).Error
	})
}

// UpdatePositions persists a validated permutation as the new ordering.
func (r *LessonRepository) UpdatePositions(courseID uint, orderedIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&model.Lesson{}).
				Where("id = ? AND course_id = ?", id, courseID).
				Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
