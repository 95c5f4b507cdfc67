package controller

import (
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService   *service.LessonService
	ProgressService *service.ProgressService
}

func NewLessonController(lessonService *service.LessonService, progressService *service.ProgressService) *LessonController {
	return &LessonController{LessonService: lessonService, ProgressService: progressService}
}

// GetLesson godoc
// @Summary Get a lesson's content
// @Description Requires enrollment unless the lesson is a free preview or the caller is an admin. Quiz answers are stripped for non-admins.
// @Tags lessons
// @Produce json
// @Param id path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 403 {object} util.Response "Not enrolled"
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/lessons/{lessonId} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	var userID uint
	role := model.Member
	if claims != nil {
		userID = claims.UserID
		role = claims.Role
	}

	lesson, err := c.ProgressService.AuthorizeLesson(userID, role,
		util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("lessonId")))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	if lesson.ContentType == model.ContentQuiz && role != model.Admin && role != model.SuperAdmin {
		lesson = service.StripQuizAnswers(lesson)
	}
	util.Success(ctx, lesson)
}

// CreateLesson godoc
// @Summary Add a lesson to a course
// @Tags admin-lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param body body service.LessonRequest true "Lesson data"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 400 {object} util.Response "Content invalid for its type"
// @Router /api/admin/courses/{id}/lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.CreateLesson(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// UpdateLesson godoc
// @Summary Update a lesson
// @Tags admin-lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Param body body service.LessonRequest true "Lesson data"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id}/lessons/{lessonId} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.UpdateLesson(
		util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("lessonId")), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary Delete a lesson
// @Tags admin-lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id}/lessons/{lessonId} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	if err := c.LessonService.DeleteLesson(
		util.MustParseUint(ctx.Param("id")), util.MustParseUint(ctx.Param("lessonId"))); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
