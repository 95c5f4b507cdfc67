package service

import (
	"errors"
	"testing"
	"time"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newMockDB opens a gorm connection over a sqlmock database so service flows
// can be exercised without a real MySQL.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB.Close()
	}
	return db, mock, cleanup
}

func newMockProgressService(t *testing.T) (*ProgressService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, cleanup := newMockDB(t)
	svc := NewProgressService(
		repository.NewEnrollmentRepository(db),
		repository.NewProgressRepository(db),
		repository.NewLessonRepository(db),
		repository.NewCourseRepository(db),
	)
	return svc, mock, cleanup
}

func publishedCourseRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "is_published"}).
		AddRow(7, "Go Basics", true)
}

func enrollmentRow(status model.EnrollmentStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "course_id", "status", "enrolled_at"}).
		AddRow(1, 3, 7, string(status), time.Now())
}

func TestEnrollCreatesEnrollment(t *testing.T) {
	svc, mock, cleanup := newMockProgressService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `courses`").WillReturnRows(publishedCourseRow())
	mock.ExpectQuery("SELECT (.+) FROM `enrollments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `enrollments`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	enrollment, err := svc.Enroll(3, 7)

	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentActive, enrollment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollTwiceReportsConflict(t *testing.T) {
	svc, mock, cleanup := newMockProgressService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `courses`").WillReturnRows(publishedCourseRow())
	mock.ExpectQuery("SELECT (.+) FROM `enrollments`").
		WillReturnRows(enrollmentRow(model.EnrollmentActive))

	_, err := svc.Enroll(3, 7)

	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollRaceHitsUniqueIndex(t *testing.T) {
	svc, mock, cleanup := newMockProgressService(t)
	defer cleanup()

	// lookup sees nothing, a concurrent enrollment wins the insert
	mock.ExpectQuery("SELECT (.+) FROM `courses`").WillReturnRows(publishedCourseRow())
	mock.ExpectQuery("SELECT (.+) FROM `enrollments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `enrollments`").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '3-7' for key 'idx_user_course'"))
	mock.ExpectRollback()

	_, err := svc.Enroll(3, 7)

	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollUnpublishedCourse(t *testing.T) {
	svc, mock, cleanup := newMockProgressService(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `courses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_published"}).AddRow(7, false))

	_, err := svc.Enroll(3, 7)

	assert.ErrorIs(t, err, util.ErrCourseUnavailable)
}

const quizQuestionsJSON = `[` +
	`{"id":1,"question":"q1","options":["a","b","c","d"],"correct_answer":0,"points":10},` +
	`{"id":2,"question":"q2","options":["a","b","c","d"],"correct_answer":1,"points":10},` +
	`{"id":3,"question":"q3","options":["a","b","c","d"],"correct_answer":2,"points":10}]`

func quizLessonRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "course_id", "title", "content_type", "is_published",
		"is_free_preview", "quiz_questions", "quiz_passing_score",
	}).AddRow(11, 7, "Final Quiz", "quiz", true, false, quizQuestionsJSON, 70)
}

// expectSubmitQuiz queues the query choreography one SubmitQuiz call runs:
// lesson load, two enrollment checks, attempt insert, prior-progress lookup
// for failing grades, progress upsert, then the enrollment status refresh.
func expectSubmitQuiz(mock sqlmock.Sqlmock, passing bool, prior *sqlmock.Rows,
	enrollStatus model.EnrollmentStatus, completedCount int, expectStatusUpdate bool) {

	mock.ExpectQuery("SELECT (.+) FROM `lessons`").WillReturnRows(quizLessonRow())
	mock.ExpectQuery("SELECT (.+) FROM `enrollments`").WillReturnRows(enrollmentRow(enrollStatus))
	mock.ExpectQuery("SELECT (.+) FROM `enrollments`").WillReturnRows(enrollmentRow(enrollStatus))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `quiz_attempts`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if !passing {
		mock.ExpectQuery("SELECT (.+) FROM `lesson_progress`").WillReturnRows(prior)
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `lesson_progress`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT (.+) FROM `enrollments`").WillReturnRows(enrollmentRow(enrollStatus))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `lessons`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `lesson_progress`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(completedCount))

	if expectStatusUpdate {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `enrollments`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
	}
}

func TestSubmitQuizFailingScoreDoesNotComplete(t *testing.T) {
	svc, mock, cleanup := newMockProgressService(t)
	defer cleanup()

	// 2 of 3 correct at 10 points each: 67%, below the 70 threshold
	noPrior := sqlmock.NewRows([]string{"id"})
	expectSubmitQuiz(mock, false, noPrior, model.EnrollmentActive, 2, false)

	result, err := svc.SubmitQuiz(3, model.Member, 7, 11, map[int]int{1: 0, 2: 1, 3: 0})

	require.NoError(t, err)
	assert.Equal(t, 67, result.Score)
	assert.False(t, result.Passed)
	assert.False(t, result.LessonCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitQuizRetryToFullScoreCompletesCourse(t *testing.T) {
	svc, mock, cleanup := newMockProgressService(t)
	defer cleanup()

	// all correct: 100%, third completed lesson of three flips the enrollment
	expectSubmitQuiz(mock, true, nil, model.EnrollmentActive, 3, true)

	result, err := svc.SubmitQuiz(3, model.Member, 7, 11, map[int]int{1: 0, 2: 1, 3: 2})

	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Passed)
	assert.True(t, result.LessonCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitQuizFailAfterPassKeepsCompletion(t *testing.T) {
	svc, mock, cleanup := newMockProgressService(t)
	defer cleanup()

	completedAt := time.Now().Add(-time.Hour)
	prior := sqlmock.NewRows([]string{"id", "user_id", "lesson_id", "completed", "completed_at"}).
		AddRow(5, 3, 11, true, completedAt)
	expectSubmitQuiz(mock, false, prior, model.EnrollmentCompleted, 3, false)

	result, err := svc.SubmitQuiz(3, model.Member, 7, 11, map[int]int{1: 3, 2: 3, 3: 3})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
	// the earlier pass keeps the lesson completed
	assert.True(t, result.LessonCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
