package service

import (
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
	CourseRepo *repository.CourseRepository
}

func NewLessonService(lessonRepo *repository.LessonRepository, courseRepo *repository.CourseRepository) *LessonService {
	return &LessonService{LessonRepo: lessonRepo, CourseRepo: courseRepo}
}

type LessonRequest struct {
	Title                string               `json:"title" binding:"required"`
	Description          string               `json:"description"`
	ContentType          model.ContentType    `json:"contentType"`
	Content              *string              `json:"content"`
	VideoURL             string               `json:"videoUrl"`
	VideoDurationMinutes int                  `json:"videoDurationMinutes"`
	Section              string               `json:"section"`
	IsFreePreview        bool                 `json:"isFreePreview"`
	IsPublished          *bool                `json:"isPublished"`
	Attachments          []string             `json:"attachments"`
	QuizQuestions        []model.QuizQuestion `json:"quizQuestions"`
	QuizPassingScore     *int                 `json:"quizPassingScore"`
	QuizTimeLimit        *int                 `json:"quizTimeLimit"`
}

// NormalizeQuestions fills in defaulted point values before validation.
func NormalizeQuestions(questions []model.QuizQuestion) []model.QuizQuestion {
	for i := range questions {
		if questions[i].Points == 0 {
			questions[i].Points = model.DefaultQuestionPoints
		}
	}
	return questions
}

// ValidateLessonContent checks that a lesson's payload matches its declared
// content type. Pure; no side effects on the candidate record.
func ValidateLessonContent(lesson *model.Lesson) error {
	switch lesson.ContentType {
	case model.ContentVideo:
		if lesson.VideoURL == "" {
			return util.NewValidationError("videoUrl", "video lessons require a source URL")
		}
		if lesson.VideoDurationMinutes < 0 {
			return util.NewValidationError("videoDurationMinutes", "duration cannot be negative")
		}
		return nil
	case model.ContentText:
		// an empty body is a legal placeholder, a missing one is not
		if lesson.Content == nil {
			return util.NewValidationError("content", "text lessons require a content body")
		}
		return nil
	case model.ContentQuiz:
		return ValidateQuizDefinition(lesson.QuizQuestions, lesson.QuizPassingScore, lesson.QuizTimeLimit)
	default:
		return util.NewValidationError("contentType", "unknown content type %q", lesson.ContentType)
	}
}

func (s *LessonService) CreateLesson(courseID uint, req LessonRequest) (*model.Lesson, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return nil, err
	}

	position, err := s.LessonRepo.NextPosition(courseID)
	if err != nil {
		return nil, err
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = model.ContentVideo
	}
	passingScore := 70
	if req.QuizPassingScore != nil {
		passingScore = *req.QuizPassingScore
	}

	lesson := &model.Lesson{
		CourseID:             courseID,
		Title:                req.Title,
		Slug:                 util.Slugify(req.Title),
		Description:          req.Description,
		ContentType:          contentType,
		Content:              req.Content,
		VideoURL:             req.VideoURL,
		VideoDurationMinutes: req.VideoDurationMinutes,
		Section:              req.Section,
		IsFreePreview:        req.IsFreePreview,
		Attachments:          req.Attachments,
		QuizQuestions:        NormalizeQuestions(req.QuizQuestions),
		QuizPassingScore:     passingScore,
		QuizTimeLimit:        req.QuizTimeLimit,
		Position:             position,
	}
	if req.IsPublished != nil {
		lesson.IsPublished = *req.IsPublished
	}

	if err := ValidateLessonContent(lesson); err != nil {
		return nil, err
	}

	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) UpdateLesson(courseID, lessonID uint, req LessonRequest) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByCourseAndID(courseID, lessonID)
	if err != nil {
		return nil, err
	}

	lesson.Title = req.Title
	lesson.Slug = util.Slugify(req.Title)
	lesson.Description = req.Description
	if req.ContentType != "" {
		lesson.ContentType = req.ContentType
	}
	lesson.Content = req.Content
	lesson.VideoURL = req.VideoURL
	lesson.VideoDurationMinutes = req.VideoDurationMinutes
	lesson.Section = req.Section
	lesson.IsFreePreview = req.IsFreePreview
	if req.IsPublished != nil {
		lesson.IsPublished = *req.IsPublished
	}
	if req.Attachments != nil {
		lesson.Attachments = req.Attachments
	}
	if req.QuizQuestions != nil {
		lesson.QuizQuestions = NormalizeQuestions(req.QuizQuestions)
	}
	if req.QuizPassingScore != nil {
		lesson.QuizPassingScore = *req.QuizPassingScore
	}
	lesson.QuizTimeLimit = req.QuizTimeLimit

	if err := ValidateLessonContent(lesson); err != nil {
		return nil, err
	}

	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) GetLesson(courseID, lessonID uint) (*model.Lesson, error) {
	return s.LessonRepo.FindByCourseAndID(courseID, lessonID)
}

func (s *LessonService) DeleteLesson(courseID, lessonID uint) error {
	lesson, err := s.LessonRepo.FindByCourseAndID(courseID, lessonID)
	if err != nil {
		return err
	}
	return s.LessonRepo.Delete(lesson.ID)
}
