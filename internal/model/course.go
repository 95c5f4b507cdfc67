package model

import (
	"time"
)

type DifficultyLevel string

const (
	Beginner     DifficultyLevel = "beginner"
	Intermediate DifficultyLevel = "intermediate"
	Advanced     DifficultyLevel = "advanced"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title            string          `gorm:"size:255;not null" json:"title"`
	Slug             string          `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description      string          `gorm:"type:text" json:"description"`
	ShortDescription string          `gorm:"size:500" json:"shortDescription"`
	ThumbnailURL     string          `gorm:"size:500" json:"thumbnailUrl"`
	PreviewVideoURL  string          `gorm:"size:500" json:"previewVideoUrl"`
	DifficultyLevel  DifficultyLevel `gorm:"type:enum('beginner','intermediate','advanced');default:'beginner'" json:"difficultyLevel"`
	Category         string          `gorm:"size:100" json:"category"`
	Tags             []string        `gorm:"serializer:json;type:json" json:"tags"`
	Requirements     []string        `gorm:"serializer:json;type:json" json:"requirements"`
	LearningOutcomes []string        `gorm:"serializer:json;type:json" json:"learningOutcomes"`
	IsFree           bool            `gorm:"default:true" json:"isFree"`
	Price            float64         `gorm:"default:0" json:"price"`
	IsPublished      bool            `gorm:"default:false" json:"isPublished"`
	IsFeatured       bool            `gorm:"default:false" json:"isFeatured"`
	PublishedAt      *time.Time      `json:"publishedAt,omitempty"`
	CreatorID        uint            `gorm:"index;type:bigint unsigned" json:"creatorId"`
	Creator          *User           `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Lessons          []Lesson        `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
