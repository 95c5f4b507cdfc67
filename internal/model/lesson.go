package model

type ContentType string

const (
	ContentVideo ContentType = "video"
	ContentText  ContentType = "text"
	ContentQuiz  ContentType = "quiz"
)

// QuizOptionCount is the fixed number of answer options per question.
const QuizOptionCount = 4

// DefaultQuestionPoints is used when a question is authored without a point value.
const DefaultQuestionPoints = 10

// QuizQuestion is one entry of a quiz lesson's question list, stored as part
// of the lesson's JSON payload. IDs are assigned at authoring time and must be
// unique within the quiz.
type QuizQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Points        int      `json:"points"`
}

// swagger:model Lesson
type Lesson struct {
	BaseModel
	CourseID    uint        `gorm:"index;type:bigint unsigned;not null" json:"courseId"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Slug        string      `gorm:"size:255;index;not null" json:"slug"`
	Description string      `gorm:"type:text" json:"description"`
	ContentType ContentType `gorm:"type:enum('video','text','quiz');default:'video'" json:"contentType"`

	// video payload
	VideoURL             string `gorm:"size:500" json:"videoUrl,omitempty"`
	VideoDurationMinutes int    `gorm:"default:0" json:"videoDurationMinutes"`

	// text payload
	Content *string `gorm:"type:text" json:"content,omitempty"`

	// quiz payload
	QuizQuestions    []QuizQuestion `gorm:"serializer:json;type:json" json:"quizQuestions,omitempty"`
	QuizPassingScore int            `gorm:"default:70" json:"quizPassingScore"`
	QuizTimeLimit    *int           `json:"quizTimeLimit,omitempty"` // minutes, nil = unlimited

	Attachments []string `gorm:"serializer:json;type:json" json:"attachments,omitempty"`

	Position      int    `gorm:"column:position;default:0;index" json:"position"`
	Section       string `gorm:"size:100" json:"section"`
	IsPublished   bool   `gorm:"default:false" json:"isPublished"`
	IsFreePreview bool   `gorm:"default:false" json:"isFreePreview"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// MaxScore is the sum of all question point values; zero for non-quiz lessons.
func (l *Lesson) MaxScore() int {
	total := 0
	for _, q := range l.QuizQuestions {
		total += q.Points
	}
	return total
}
