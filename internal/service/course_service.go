package service

import (
	"context"
	"encoding/json"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const featuredCoursesCacheKey = "courses:featured"

type CourseService struct {
	CourseRepo *repository.CourseRepository
	LessonRepo *repository.LessonRepository
	Redis      *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, lessonRepo *repository.LessonRepository, rdb *redis.Client) *CourseService {
	return &CourseService{CourseRepo: courseRepo, LessonRepo: lessonRepo, Redis: rdb}
}

type CourseRequest struct {
	Title            string                `json:"title" binding:"required"`
	Description      string                `json:"description"`
	ShortDescription string                `json:"shortDescription"`
	ThumbnailURL     string                `json:"thumbnailUrl"`
	PreviewVideoURL  string                `json:"previewVideoUrl"`
	DifficultyLevel  model.DifficultyLevel `json:"difficultyLevel"`
	Category         string                `json:"category"`
	Tags             []string              `json:"tags"`
	Requirements     []string              `json:"requirements"`
	LearningOutcomes []string              `json:"learningOutcomes"`
	IsFree           *bool                 `json:"isFree"`
	Price            float64               `json:"price"`
	IsPublished      *bool                 `json:"isPublished"`
	IsFeatured       *bool                 `json:"isFeatured"`
}

// CourseView is a course with its derived counts filled in. The counts are
// recomputed from enrollments and lessons on every read (never stored), so
// they cannot drift under concurrent writes.
type CourseView struct {
	model.Course
	TotalLessons  int `json:"totalLessons"`
	EnrolledCount int `json:"enrolledCount"`
}

// LessonSection groups consecutive catalog lessons under their free-text
// section label, in first-seen order.
type LessonSection struct {
	Section string         `json:"section"`
	Lessons []model.Lesson `json:"lessons"`
}

func validateCourseRequest(req *CourseRequest) error {
	ve := &util.ValidationError{}
	switch req.DifficultyLevel {
	case "", model.Beginner, model.Intermediate, model.Advanced:
	default:
		ve.Add("difficultyLevel", "must be beginner, intermediate or advanced")
	}
	if req.Price < 0 {
		ve.Add("price", "cannot be negative")
	}
	return ve.OrNil()
}

func (s *CourseService) view(course *model.Course) (*CourseView, error) {
	lessons, err := s.CourseRepo.CountLessons(course.ID, true)
	if err != nil {
		return nil, err
	}
	enrolled, err := s.CourseRepo.CountEnrollments(course.ID)
	if err != nil {
		return nil, err
	}
	return &CourseView{Course: *course, TotalLessons: int(lessons), EnrolledCount: int(enrolled)}, nil
}

func (s *CourseService) CreateCourse(creatorID uint, req CourseRequest) (*CourseView, error) {
	if err := validateCourseRequest(&req); err != nil {
		return nil, err
	}

	difficulty := req.DifficultyLevel
	if difficulty == "" {
		difficulty = model.Beginner
	}
	isFree := true
	if req.IsFree != nil {
		isFree = *req.IsFree
	}

	course := &model.Course{
		Title:            req.Title,
		Slug:             util.UniqueSlug(util.Slugify(req.Title), s.CourseRepo.SlugExists),
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		ThumbnailURL:     req.ThumbnailURL,
		PreviewVideoURL:  req.PreviewVideoURL,
		DifficultyLevel:  difficulty,
		Category:         req.Category,
		Tags:             req.Tags,
		Requirements:     req.Requirements,
		LearningOutcomes: req.LearningOutcomes,
		IsFree:           isFree,
		Price:            req.Price,
		CreatorID:        creatorID,
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	s.invalidateFeatured()
	return &CourseView{Course: *course}, nil
}

func (s *CourseService) UpdateCourse(id uint, req CourseRequest) (*CourseView, error) {
	if err := validateCourseRequest(&req); err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != course.Title {
		course.Slug = util.UniqueSlug(util.Slugify(req.Title), func(slug string) bool {
			existing, err := s.CourseRepo.FindBySlug(slug)
			return err == nil && existing.ID != course.ID
		})
	}
	course.Title = req.Title
	course.Description = req.Description
	course.ShortDescription = req.ShortDescription
	course.ThumbnailURL = req.ThumbnailURL
	course.PreviewVideoURL = req.PreviewVideoURL
	if req.DifficultyLevel != "" {
		course.DifficultyLevel = req.DifficultyLevel
	}
	course.Category = req.Category
	if req.Tags != nil {
		course.Tags = req.Tags
	}
	if req.Requirements != nil {
		course.Requirements = req.Requirements
	}
	if req.LearningOutcomes != nil {
		course.LearningOutcomes = req.LearningOutcomes
	}
	if req.IsFree != nil {
		course.IsFree = *req.IsFree
	}
	course.Price = req.Price
	if req.IsPublished != nil {
		if *req.IsPublished && course.PublishedAt == nil {
			now := time.Now()
			course.PublishedAt = &now
		}
		course.IsPublished = *req.IsPublished
	}
	if req.IsFeatured != nil {
		course.IsFeatured = *req.IsFeatured
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	s.invalidateFeatured()
	return s.view(course)
}

func (s *CourseService) GetCourse(id uint, includeUnpublished bool) (*CourseView, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished && !includeUnpublished {
		// drafts are invisible to visitors, not merely forbidden
		return nil, gorm.ErrRecordNotFound
	}
	return s.view(course)
}

func (s *CourseService) ListCourses(filter repository.CourseFilter, page, limit int) ([]CourseView, int64, error) {
	courses, total, err := s.CourseRepo.List(filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	views := make([]CourseView, 0, len(courses))
	for i := range courses {
		v, err := s.view(&courses[i])
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *v)
	}
	return views, total, nil
}

// FeaturedCourses serves the homepage strip, cached in redis for a minute.
func (s *CourseService) FeaturedCourses(ctx context.Context, limit int) ([]CourseView, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, featuredCoursesCacheKey).Result(); err == nil {
			var views []CourseView
			if json.Unmarshal([]byte(cached), &views) == nil {
				if len(views) > limit {
					views = views[:limit]
				}
				return views, nil
			}
		}
	}

	views, _, err := s.ListCourses(repository.CourseFilter{PublishedOnly: true, FeaturedOnly: true}, 1, limit)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(views); err == nil {
			s.Redis.Set(ctx, featuredCoursesCacheKey, payload, time.Minute)
		}
	}
	return views, nil
}

func (s *CourseService) invalidateFeatured() {
	if s.Redis != nil {
		s.Redis.Del(context.Background(), featuredCoursesCacheKey)
	}
}

func (s *CourseService) DeleteCourse(id uint) error {
	if _, err := s.CourseRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.CourseRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateFeatured()
	return nil
}

// GroupBySection arranges already-ordered lessons into sections, preserving
// the order each section label first appears. Unlabeled lessons fall into a
// leading unnamed section.
func GroupBySection(lessons []model.Lesson) []LessonSection {
	var sections []LessonSection
	index := make(map[string]int)

	for _, lesson := range lessons {
		pos, ok := index[lesson.Section]
		if !ok {
			pos = len(sections)
			index[lesson.Section] = pos
			sections = append(sections, LessonSection{Section: lesson.Section})
		}
		sections[pos].Lessons = append(sections[pos].Lessons, lesson)
	}
	return sections
}

// OrderedLessons returns the course's lessons in catalog order, grouped by
// section. Unpublished lessons, and unpublished courses, are hidden unless
// the caller asks for the admin view. Full lesson records come back, so this
// is for admin use; visitors get CourseOutline.
func (s *CourseService) OrderedLessons(courseID uint, includeUnpublished bool) ([]LessonSection, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished && !includeUnpublished {
		return nil, gorm.ErrRecordNotFound
	}
	lessons, err := s.LessonRepo.ListByCourse(courseID, !includeUnpublished)
	if err != nil {
		return nil, err
	}
	return GroupBySection(lessons), nil
}

// LessonOutline is the catalog-facing projection of a lesson. It carries no
// lesson payload: no content body, video URL, attachments or quiz answer key.
// Payloads are served by the lesson endpoint, which enforces access.
type LessonOutline struct {
	ID                   uint              `json:"id"`
	Title                string            `json:"title"`
	Slug                 string            `json:"slug"`
	Description          string            `json:"description"`
	ContentType          model.ContentType `json:"contentType"`
	Section              string            `json:"section"`
	Position             int               `json:"position"`
	VideoDurationMinutes int               `json:"videoDurationMinutes"`
	QuestionCount        int               `json:"questionCount"`
	IsFreePreview        bool              `json:"isFreePreview"`
}

type OutlineSection struct {
	Section string          `json:"section"`
	Lessons []LessonOutline `json:"lessons"`
}

func outlineOf(lesson model.Lesson) LessonOutline {
	return LessonOutline{
		ID:                   lesson.ID,
		Title:                lesson.Title,
		Slug:                 lesson.Slug,
		Description:          lesson.Description,
		ContentType:          lesson.ContentType,
		Section:              lesson.Section,
		Position:             lesson.Position,
		VideoDurationMinutes: lesson.VideoDurationMinutes,
		QuestionCount:        len(lesson.QuizQuestions),
		IsFreePreview:        lesson.IsFreePreview,
	}
}

// OutlineSections projects grouped lessons onto their outline fields.
func OutlineSections(sections []LessonSection) []OutlineSection {
	out := make([]OutlineSection, len(sections))
	for i, sec := range sections {
		o := OutlineSection{Section: sec.Section, Lessons: make([]LessonOutline, len(sec.Lessons))}
		for j, lesson := range sec.Lessons {
			o.Lessons[j] = outlineOf(lesson)
		}
		out[i] = o
	}
	return out
}

// CourseOutline is the published course structure served to visitors.
func (s *CourseService) CourseOutline(courseID uint) ([]OutlineSection, error) {
	sections, err := s.OrderedLessons(courseID, false)
	if err != nil {
		return nil, err
	}
	return OutlineSections(sections), nil
}

// ValidateReorder checks that proposed is an exact permutation of current:
// nothing added, dropped or duplicated.
func ValidateReorder(current, proposed []uint) error {
	ve := &util.ValidationError{}
	if len(proposed) != len(current) {
		ve.Add("lessonIds", "expected %d lesson ids, got %d", len(current), len(proposed))
	}

	existing := make(map[uint]bool, len(current))
	for _, id := range current {
		existing[id] = true
	}

	seen := make(map[uint]bool, len(proposed))
	for _, id := range proposed {
		if !existing[id] {
			ve.Add("lessonIds", "lesson %d does not belong to this course", id)
		}
		if seen[id] {
			ve.Add("lessonIds", "lesson %d appears more than once", id)
		}
		seen[id] = true
	}
	for _, id := range current {
		if !seen[id] {
			ve.Add("lessonIds", "lesson %d is missing from the new order", id)
		}
	}

	return ve.OrNil()
}

// ReorderLessons applies a full permutation of the course's lesson ids as the
// new ordering. An invalid permutation leaves the stored order untouched.
func (s *CourseService) ReorderLessons(courseID uint, newOrder []uint) error {
	lessons, err := s.LessonRepo.ListByCourse(courseID, false)
	if err != nil {
		return err
	}

	current := make([]uint, len(lessons))
	for i, l := range lessons {
		current[i] = l.ID
	}

	if err := ValidateReorder(current, newOrder); err != nil {
		return err
	}

	return s.LessonRepo.UpdatePositions(courseID, newOrder)
}
