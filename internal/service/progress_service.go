package service

import (
	"errors"
	"math"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type ProgressService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	ProgressRepo   *repository.ProgressRepository
	LessonRepo     *repository.LessonRepository
	CourseRepo     *repository.CourseRepository
}

func NewProgressService(enrollmentRepo *repository.EnrollmentRepository, progressRepo *repository.ProgressRepository,
	lessonRepo *repository.LessonRepository, courseRepo *repository.CourseRepository) *ProgressService {
	return &ProgressService{
		EnrollmentRepo: enrollmentRepo,
		ProgressRepo:   progressRepo,
		LessonRepo:     lessonRepo,
		CourseRepo:     courseRepo,
	}
}

// LessonStatus is one row of a course progress report.
type LessonStatus struct {
	LessonID    uint              `json:"lessonId"`
	Title       string            `json:"title"`
	ContentType model.ContentType `json:"contentType"`
	Section     string            `json:"section"`
	Completed   bool              `json:"completed"`
	Locked      bool              `json:"locked"`
	LastScore   *int              `json:"lastScore,omitempty"`
	QuizPassed  *bool             `json:"quizPassed,omitempty"`
}

type CourseProgressReport struct {
	CourseID         uint           `json:"courseId"`
	ProgressPercent  int            `json:"progressPercent"`
	CompletedLessons int            `json:"completedLessons"`
	TotalLessons     int            `json:"totalLessons"`
	Lessons          []LessonStatus `json:"lessons"`
}

type EnrollmentView struct {
	model.Enrollment
	ProgressPercent int `json:"progressPercent"`
}

type QuizResult struct {
	Score           int  `json:"score"`
	PointsEarned    int  `json:"pointsEarned"`
	PointsPossible  int  `json:"pointsPossible"`
	Passed          bool `json:"passed"`
	LessonCompleted bool `json:"lessonCompleted"`
}

// Enroll registers the user on a published course. A second enrollment in the
// same course reports a conflict rather than creating a duplicate.
func (s *ProgressService) Enroll(userID, courseID uint) (*model.Enrollment, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished {
		return nil, util.ErrCourseUnavailable
	}

	if _, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     model.EnrollmentActive,
		EnrolledAt: time.Now(),
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		// the unique index catches the race the lookup above cannot
		if util.IsDuplicateKey(err) {
			return nil, util.ErrAlreadyEnrolled
		}
		return nil, err
	}

	monitoring.EnrollmentCounter.Inc()
	return enrollment, nil
}

func (s *ProgressService) Unenroll(userID, courseID uint) error {
	if _, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotEnrolled
		}
		return err
	}
	return s.EnrollmentRepo.Delete(userID, courseID)
}

func (s *ProgressService) IsEnrolled(userID, courseID uint) (bool, error) {
	_, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// CanAccessLesson decides whether a user may open a lesson's content: free
// previews are open to everyone, everything else needs an enrollment or an
// admin role.
func CanAccessLesson(lesson *model.Lesson, enrolled bool, role model.UserRole) bool {
	if lesson.IsFreePreview {
		return true
	}
	if role == model.Admin || role == model.SuperAdmin {
		return true
	}
	return enrolled
}

// AuthorizeLesson loads a lesson and checks the caller may view its content.
// userID 0 means an anonymous visitor.
func (s *ProgressService) AuthorizeLesson(userID uint, role model.UserRole, courseID, lessonID uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByCourseAndID(courseID, lessonID)
	if err != nil {
		return nil, err
	}
	if !lesson.IsPublished && role != model.Admin && role != model.SuperAdmin {
		return nil, gorm.ErrRecordNotFound
	}

	enrolled := false
	if userID != 0 {
		enrolled, err = s.IsEnrolled(userID, courseID)
		if err != nil {
			return nil, err
		}
	}
	if !CanAccessLesson(lesson, enrolled, role) {
		return nil, util.ErrPermissionDenied
	}
	return lesson, nil
}

// ProgressPercent computes course progress as completed published lessons over
// all published lessons, rounded to the nearest whole percent. A course with
// no published lessons is 0% regardless of stored progress rows.
func ProgressPercent(completed, published int) int {
	if published <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(published) * 100))
}

func (s *ProgressService) courseProgress(userID, courseID uint) (percent, completed, published int, err error) {
	publishedCount, err := s.CourseRepo.CountLessons(courseID, true)
	if err != nil {
		return 0, 0, 0, err
	}
	completedCount, err := s.ProgressRepo.CountCompletedPublished(userID, courseID)
	if err != nil {
		return 0, 0, 0, err
	}
	return ProgressPercent(int(completedCount), int(publishedCount)), int(completedCount), int(publishedCount), nil
}

// RecordCompletion marks a video or text lesson as completed. Quiz lessons
// only complete through SubmitQuiz.
func (s *ProgressService) RecordCompletion(userID uint, role model.UserRole, courseID, lessonID uint) error {
	lesson, err := s.AuthorizeLesson(userID, role, courseID, lessonID)
	if err != nil {
		return err
	}
	if lesson.ContentType == model.ContentQuiz {
		return util.NewValidationError("lessonId", "quiz lessons are completed by submitting the quiz")
	}
	if enrolled, err := s.IsEnrolled(userID, courseID); err != nil {
		return err
	} else if !enrolled {
		return util.ErrNotEnrolled
	}

	now := time.Now()
	if err := s.ProgressRepo.Upsert(&model.LessonProgress{
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   true,
		CompletedAt: &now,
	}); err != nil {
		return err
	}
	return s.refreshEnrollmentStatus(userID, courseID)
}

// SubmitQuiz grades the submission, appends it to the attempt audit, and
// updates the live progress record. The lesson completes only on a pass, but
// the latest score is stored either way so a failing retake after a pass shows
// the new score without un-completing the lesson.
func (s *ProgressService) SubmitQuiz(userID uint, role model.UserRole, courseID, lessonID uint, answers map[int]int) (*QuizResult, error) {
	lesson, err := s.AuthorizeLesson(userID, role, courseID, lessonID)
	if err != nil {
		return nil, err
	}
	if lesson.ContentType != model.ContentQuiz {
		return nil, util.ErrNotAQuiz
	}
	if enrolled, err := s.IsEnrolled(userID, courseID); err != nil {
		return nil, err
	} else if !enrolled {
		return nil, util.ErrNotEnrolled
	}

	grade := GradeQuiz(lesson.QuizQuestions, answers)
	passed := IsPassing(grade.Percentage, lesson.QuizPassingScore)
	now := time.Now()

	if err := s.ProgressRepo.CreateAttempt(&model.QuizAttempt{
		UserID:         userID,
		LessonID:       lessonID,
		Answers:        answers,
		Score:          grade.Percentage,
		PointsEarned:   grade.PointsEarned,
		PointsPossible: grade.PointsPossible,
		Passed:         passed,
		SubmittedAt:    now,
	}); err != nil {
		return nil, err
	}

	progress := &model.LessonProgress{
		UserID:     userID,
		LessonID:   lessonID,
		LastScore:  &grade.Percentage,
		QuizPassed: &passed,
	}
	completed := passed
	if !passed {
		// a prior pass keeps the lesson completed
		if prior, err := s.ProgressRepo.FindByUserAndLesson(userID, lessonID); err == nil && prior.Completed {
			completed = true
			progress.CompletedAt = prior.CompletedAt
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	progress.Completed = completed
	if passed {
		progress.CompletedAt = &now
	}
	if err := s.ProgressRepo.Upsert(progress); err != nil {
		return nil, err
	}
	if err := s.refreshEnrollmentStatus(userID, courseID); err != nil {
		return nil, err
	}

	outcome := "failed"
	if passed {
		outcome = "passed"
	}
	monitoring.QuizSubmissionCounter.WithLabelValues(outcome).Inc()

	return &QuizResult{
		Score:           grade.Percentage,
		PointsEarned:    grade.PointsEarned,
		PointsPossible:  grade.PointsPossible,
		Passed:          passed,
		LessonCompleted: completed,
	}, nil
}

// refreshEnrollmentStatus flips the enrollment to completed when progress
// reaches 100%, and back to active when new published lessons push it below.
func (s *ProgressService) refreshEnrollmentStatus(userID, courseID uint) error {
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	percent, _, published, err := s.courseProgress(userID, courseID)
	if err != nil {
		return err
	}

	done := published > 0 && percent >= 100
	switch {
	case done && enrollment.Status != model.EnrollmentCompleted:
		now := time.Now()
		enrollment.Status = model.EnrollmentCompleted
		enrollment.CompletedAt = &now
	case !done && enrollment.Status == model.EnrollmentCompleted:
		enrollment.Status = model.EnrollmentActive
		enrollment.CompletedAt = nil
	default:
		return nil
	}
	return s.EnrollmentRepo.Update(enrollment)
}

// Report assembles the per-lesson progress view for an enrolled user. With
// sequential unlocking enabled, a lesson is locked until every earlier lesson
// in catalog order is completed; free previews are never locked.
func (s *ProgressService) Report(userID, courseID uint, sequential bool) (*CourseProgressReport, error) {
	if enrolled, err := s.IsEnrolled(userID, courseID); err != nil {
		return nil, err
	} else if !enrolled {
		return nil, util.ErrNotEnrolled
	}

	lessons, err := s.LessonRepo.ListByCourse(courseID, true)
	if err != nil {
		return nil, err
	}
	rows, err := s.ProgressRepo.ListForCourse(userID, courseID)
	if err != nil {
		return nil, err
	}
	byLesson := make(map[uint]*model.LessonProgress, len(rows))
	for i := range rows {
		byLesson[rows[i].LessonID] = &rows[i]
	}

	report := &CourseProgressReport{CourseID: courseID, TotalLessons: len(lessons)}
	allPriorDone := true
	for _, lesson := range lessons {
		status := LessonStatus{
			LessonID:    lesson.ID,
			Title:       lesson.Title,
			ContentType: lesson.ContentType,
			Section:     lesson.Section,
		}
		if p, ok := byLesson[lesson.ID]; ok {
			status.Completed = p.Completed
			status.LastScore = p.LastScore
			status.QuizPassed = p.QuizPassed
		}
		if sequential && !allPriorDone && !lesson.IsFreePreview {
			status.Locked = true
		}
		if status.Completed {
			report.CompletedLessons++
		} else {
			allPriorDone = false
		}
		report.Lessons = append(report.Lessons, status)
	}
	report.ProgressPercent = ProgressPercent(report.CompletedLessons, report.TotalLessons)
	return report, nil
}

// MyEnrollments lists the user's enrollments with per-course progress attached.
func (s *ProgressService) MyEnrollments(userID uint) ([]EnrollmentView, error) {
	enrollments, err := s.EnrollmentRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	views := make([]EnrollmentView, 0, len(enrollments))
	for _, e := range enrollments {
		percent, _, _, err := s.courseProgress(userID, e.CourseID)
		if err != nil {
			return nil, err
		}
		if course, err := s.CourseRepo.FindByID(e.CourseID); err == nil {
			e.Course = course
		}
		views = append(views, EnrollmentView{Enrollment: e, ProgressPercent: percent})
	}
	return views, nil
}

// Attempts returns the user's quiz attempt history for a lesson, newest first.
func (s *ProgressService) Attempts(userID, courseID, lessonID uint) ([]model.QuizAttempt, error) {
	if _, err := s.LessonRepo.FindByCourseAndID(courseID, lessonID); err != nil {
		return nil, err
	}
	return s.ProgressRepo.ListAttempts(userID, lessonID)
}
