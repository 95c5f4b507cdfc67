package controller

import (
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

func isAdminRequest(ctx *gin.Context) bool {
	claims := util.GetUserFromContext(ctx)
	return claims != nil && (claims.Role == model.Admin || claims.Role == model.SuperAdmin)
}

// ListCourses godoc
// @Summary List courses
// @Description Public catalog listing. Admins see drafts as well.
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param category query string false "Filter by category"
// @Param difficulty query string false "Filter by difficulty"
// @Param featured query bool false "Featured courses only"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	filter := repository.CourseFilter{
		Category:      ctx.Query("category"),
		Difficulty:    model.DifficultyLevel(ctx.Query("difficulty")),
		PublishedOnly: !isAdminRequest(ctx),
		FeaturedOnly:  ctx.Query("featured") == "true",
	}

	courses, total, err := c.CourseService.ListCourses(filter, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: courses, Total: total, Page: page, Limit: limit})
}

// FeaturedCourses godoc
// @Summary Featured courses for the homepage
// @Tags courses
// @Produce json
// @Param limit query int false "Maximum courses to return"
// @Success 200 {object} util.Response{data=[]service.CourseView}
// @Router /api/courses/featured [get]
func (c *CourseController) FeaturedCourses(ctx *gin.Context) {
	_, limit := util.ParsePagination("", ctx.Query("limit"))

	courses, err := c.CourseService.FeaturedCourses(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Get one course with derived counts
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response{data=service.CourseView}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.CourseService.GetCourse(util.MustParseUint(ctx.Param("id")), isAdminRequest(ctx))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// GetCourseLessons godoc
// @Summary Course outline grouped by section
// @Description Lessons in catalog order. Visitors get outline fields only;
// @Description full lesson records and drafts are served to admins.
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response{data=[]service.OutlineSection}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/lessons [get]
func (c *CourseController) GetCourseLessons(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if isAdminRequest(ctx) {
		sections, err := c.CourseService.OrderedLessons(id, true)
		if err != nil {
			util.FromError(ctx, err)
			return
		}
		util.Success(ctx, sections)
		return
	}

	outline, err := c.CourseService.CourseOutline(id)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, outline)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags admin-courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CourseRequest true "Course data"
// @Success 201 {object} util.Response{data=service.CourseView}
// @Failure 400 {object} util.Response
// @Router /api/admin/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(claims.UserID, req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags admin-courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param body body service.CourseRequest true "Course data"
// @Success 200 {object} util.Response{data=service.CourseView}
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.UpdateCourse(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary Delete a course and everything under it
// @Tags admin-courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.CourseService.DeleteCourse(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type ReorderRequest struct {
	LessonIDs []uint `json:"lessonIds" binding:"required"`
}

// ReorderLessons godoc
// @Summary Reorder a course's lessons
// @Description Accepts the complete new ordering of the course's lesson ids.
// @Tags admin-courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param body body ReorderRequest true "New lesson order"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Not an exact permutation"
// @Router /api/admin/courses/{id}/reorder [put]
func (c *CourseController) ReorderLessons(ctx *gin.Context) {
	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.CourseService.ReorderLessons(util.MustParseUint(ctx.Param("id")), req.LessonIDs); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
