package service

import (
	"encoding/json"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGroupBySectionPreservesFirstSeenOrder(t *testing.T) {
	lessons := []model.Lesson{
		{Title: "intro", Section: "Basics"},
		{Title: "setup", Section: "Basics"},
		{Title: "loops", Section: "Control Flow"},
		{Title: "recap", Section: "Basics"},
		{Title: "funcs", Section: "Control Flow"},
	}

	sections := GroupBySection(lessons)

	require.Len(t, sections, 2)
	assert.Equal(t, "Basics", sections[0].Section)
	assert.Equal(t, "Control Flow", sections[1].Section)
	assert.Len(t, sections[0].Lessons, 3)
	assert.Len(t, sections[1].Lessons, 2)
	// within a section, incoming order is kept
	assert.Equal(t, "intro", sections[0].Lessons[0].Title)
	assert.Equal(t, "recap", sections[0].Lessons[2].Title)
}

func TestGroupBySectionUnlabeled(t *testing.T) {
	lessons := []model.Lesson{
		{Title: "a", Section: ""},
		{Title: "b", Section: "Extras"},
		{Title: "c", Section: ""},
	}

	sections := GroupBySection(lessons)

	require.Len(t, sections, 2)
	assert.Equal(t, "", sections[0].Section)
	assert.Len(t, sections[0].Lessons, 2)
}

func TestGroupBySectionEmpty(t *testing.T) {
	assert.Empty(t, GroupBySection(nil))
}

func TestValidateReorderAcceptsPermutation(t *testing.T) {
	current := []uint{1, 2, 3, 4}

	assert.NoError(t, ValidateReorder(current, []uint{4, 3, 2, 1}))
	assert.NoError(t, ValidateReorder(current, []uint{1, 2, 3, 4}))
}

func TestValidateReorderRejectsMissing(t *testing.T) {
	err := ValidateReorder([]uint{1, 2, 3}, []uint{1, 2})
	require.Error(t, err)

	ve, ok := util.AsValidation(err)
	require.True(t, ok)
	assert.NotEmpty(t, ve.Violations)
}

func TestValidateReorderRejectsForeignID(t *testing.T) {
	err := ValidateReorder([]uint{1, 2, 3}, []uint{1, 2, 99})
	require.Error(t, err)
}

func TestValidateReorderRejectsDuplicate(t *testing.T) {
	err := ValidateReorder([]uint{1, 2, 3}, []uint{1, 2, 2})
	require.Error(t, err)
}

func TestValidateReorderEmptyCourse(t *testing.T) {
	assert.NoError(t, ValidateReorder(nil, nil))
	assert.Error(t, ValidateReorder(nil, []uint{1}))
}

func TestValidateCourseRequest(t *testing.T) {
	assert.NoError(t, validateCourseRequest(&CourseRequest{Title: "Go Basics"}))
	assert.NoError(t, validateCourseRequest(&CourseRequest{Title: "Go Basics", DifficultyLevel: model.Advanced}))
	assert.Error(t, validateCourseRequest(&CourseRequest{Title: "Go Basics", DifficultyLevel: "expert"}))
	assert.Error(t, validateCourseRequest(&CourseRequest{Title: "Go Basics", Price: -1}))
}

func newMockCourseService(t *testing.T) (*CourseService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, cleanup := newMockDB(t)
	svc := NewCourseService(repository.NewCourseRepository(db), repository.NewLessonRepository(db), nil)
	return svc, mock, cleanup
}

func TestOutlineSectionsOmitLessonPayloads(t *testing.T) {
	content := "full article body"
	lessons := []model.Lesson{
		{Title: "Watch", Section: "Basics", ContentType: model.ContentVideo, VideoURL: "https://cdn/v.mp4", VideoDurationMinutes: 8},
		{Title: "Read", Section: "Basics", ContentType: model.ContentText, Content: &content},
		{Title: "Quiz", Section: "Wrap-up", ContentType: model.ContentQuiz, QuizQuestions: []model.QuizQuestion{
			{ID: 1, Question: "q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 2, Points: 10},
		}},
	}

	outline := OutlineSections(GroupBySection(lessons))

	require.Len(t, outline, 2)
	assert.Equal(t, "Basics", outline[0].Section)
	assert.Equal(t, 8, outline[0].Lessons[0].VideoDurationMinutes)
	assert.Equal(t, 1, outline[1].Lessons[0].QuestionCount)

	// the serialized catalog payload must never leak lesson bodies or the
	// quiz answer key
	payload, err := json.Marshal(outline)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "correct_answer")
	assert.NotContains(t, string(payload), "quizQuestions")
	assert.NotContains(t, string(payload), "videoUrl")
	assert.NotContains(t, string(payload), "full article body")
}

func TestGetCourseHidesDraftsFromVisitors(t *testing.T) {
	svc, mock, cleanup := newMockCourseService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `courses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_published"}).AddRow(7, "Draft", false))

	_, err := svc.GetCourse(7, false)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCourseOutlineHidesDraftCourses(t *testing.T) {
	svc, mock, cleanup := newMockCourseService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `courses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_published"}).AddRow(7, "Draft", false))

	_, err := svc.CourseOutline(7)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
