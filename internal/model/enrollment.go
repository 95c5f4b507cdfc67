package model

import (
	"time"
)

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
)

// Enrollment links a user to a course. The composite unique index is the
// authority for the at-most-one-enrollment invariant; the application never
// takes locks around it.
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID         uint             `gorm:"uniqueIndex:idx_user_course;type:bigint unsigned;not null" json:"userId"`
	CourseID       uint             `gorm:"uniqueIndex:idx_user_course;type:bigint unsigned;not null" json:"courseId"`
	Status         EnrollmentStatus `gorm:"type:enum('active','completed');default:'active'" json:"status"`
	EnrolledAt     time.Time        `json:"enrolledAt"`
	CompletedAt    *time.Time       `json:"completedAt,omitempty"`
	LastAccessedAt *time.Time       `json:"lastAccessedAt,omitempty"`
	User           *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course         *Course          `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// LessonProgress is the single live progress record per (user, lesson).
// Resubmission overwrites it; attempt history lives in QuizAttempt.
type LessonProgress struct {
	BaseModel
	UserID      uint       `gorm:"uniqueIndex:idx_user_lesson;type:bigint unsigned;not null" json:"userId"`
	LessonID    uint       `gorm:"uniqueIndex:idx_user_lesson;type:bigint unsigned;not null" json:"lessonId"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// quiz lessons only: outcome of the last attempt
	LastScore  *int  `json:"lastScore,omitempty"` // percentage 0-100
	QuizPassed *bool `json:"quizPassed,omitempty"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

// QuizAttempt is an append-only audit of quiz submissions. Course progress is
// never derived from it.
type QuizAttempt struct {
	BaseModel
	UserID         uint        `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	LessonID       uint        `gorm:"index;type:bigint unsigned;not null" json:"lessonId"`
	Answers        map[int]int `gorm:"serializer:json;type:json" json:"answers"`
	Score          int         `gorm:"not null" json:"score"` // percentage 0-100
	PointsEarned   int         `gorm:"default:0" json:"pointsEarned"`
	PointsPossible int         `gorm:"default:0" json:"pointsPossible"`
	Passed         bool        `gorm:"default:false" json:"passed"`
	SubmittedAt    time.Time   `json:"submittedAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
