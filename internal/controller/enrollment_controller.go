package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	ProgressService *service.ProgressService
}

func NewEnrollmentController(progressService *service.ProgressService) *EnrollmentController {
	return &EnrollmentController{ProgressService: progressService}
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 400 {object} util.Response "Course not available"
// @Failure 409 {object} util.Response "Already enrolled"
// @Router /api/courses/{id}/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	enrollment, err := c.ProgressService.Enroll(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, enrollment)
}

// Unenroll godoc
// @Summary Leave a course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "Not enrolled"
// @Router /api/courses/{id}/enroll [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ProgressService.Unenroll(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// MyEnrollments godoc
// @Summary The current user's enrollments with progress
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.EnrollmentView}
// @Router /api/my/enrollments [get]
func (c *EnrollmentController) MyEnrollments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	views, err := c.ProgressService.MyEnrollments(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// CourseProgress godoc
// @Summary Per-lesson progress for an enrolled course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param sequential query bool false "Lock lessons until earlier ones are completed"
// @Success 200 {object} util.Response{data=service.CourseProgressReport}
// @Failure 403 {object} util.Response "Not enrolled"
// @Router /api/courses/{id}/progress [get]
func (c *EnrollmentController) CourseProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	report, err := c.ProgressService.Report(claims.UserID,
		util.MustParseUint(ctx.Param("id")), ctx.Query("sequential") == "true")
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// CompleteLesson godoc
// @Summary Mark a video or text lesson completed
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Quiz lessons complete through submission"
// @Failure 403 {object} util.Response "Not enrolled"
// @Router /api/courses/{id}/lessons/{lessonId}/complete [post]
func (c *EnrollmentController) CompleteLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.ProgressService.RecordCompletion(claims.UserID, claims.Role,
		util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("lessonId")))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type QuizSubmission struct {
	Answers map[int]int `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for grading
// @Description Grades the submission, records the attempt, and completes the lesson on a pass.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Param body body QuizSubmission true "Question id to selected option index"
// @Success 200 {object} util.Response{data=service.QuizResult}
// @Failure 400 {object} util.Response "Lesson is not a quiz"
// @Failure 403 {object} util.Response "Not enrolled"
// @Router /api/courses/{id}/lessons/{lessonId}/quiz [post]
func (c *EnrollmentController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req QuizSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ProgressService.SubmitQuiz(claims.UserID, claims.Role,
		util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("lessonId")), req.Answers)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// QuizAttempts godoc
// @Summary The current user's attempt history for a quiz lesson
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} util.Response{data=[]model.QuizAttempt}
// @Router /api/courses/{id}/lessons/{lessonId}/attempts [get]
func (c *EnrollmentController) QuizAttempts(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.ProgressService.Attempts(claims.UserID,
		util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("lessonId")))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}
