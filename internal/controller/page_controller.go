package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PageController struct {
	PageService *service.PageService
}

func NewPageController(pageService *service.PageService) *PageController {
	return &PageController{PageService: pageService}
}

// ListPages godoc
// @Summary List pages
// @Description Public listing of published pages; admins see drafts too.
// @Tags pages
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Page}
// @Router /api/pages [get]
func (c *PageController) ListPages(ctx *gin.Context) {
	pages, err := c.PageService.ListPages(!isAdminRequest(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pages)
}

// Navigation godoc
// @Summary Pages for the site menu
// @Tags pages
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Page}
// @Router /api/pages/navigation [get]
func (c *PageController) Navigation(ctx *gin.Context) {
	pages, err := c.PageService.Navigation()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pages)
}

// LandingPage godoc
// @Summary The designated landing page
// @Tags pages
// @Produce json
// @Success 200 {object} util.Response{data=model.Page}
// @Failure 404 {object} util.Response "No landing page designated"
// @Router /api/pages/landing [get]
func (c *PageController) LandingPage(ctx *gin.Context) {
	page, err := c.PageService.LandingPage()
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, page)
}

// GetPageBySlug godoc
// @Summary Get a published page by slug
// @Tags pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} util.Response{data=model.Page}
// @Failure 404 {object} util.Response
// @Router /api/pages/{slug} [get]
func (c *PageController) GetPageBySlug(ctx *gin.Context) {
	page, err := c.PageService.GetPublishedBySlug(ctx.Param("slug"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, page)
}

// CreatePage godoc
// @Summary Create a page
// @Tags admin-pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.PageRequest true "Page data"
// @Success 201 {object} util.Response{data=model.Page}
// @Router /api/admin/pages [post]
func (c *PageController) CreatePage(ctx *gin.Context) {
	var req service.PageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	page, err := c.PageService.CreatePage(req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, page)
}

// GetPage godoc
// @Summary Get a page by id, drafts included
// @Tags admin-pages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Page ID"
// @Success 200 {object} util.Response{data=model.Page}
// @Failure 404 {object} util.Response
// @Router /api/admin/pages/{id} [get]
func (c *PageController) GetPage(ctx *gin.Context) {
	page, err := c.PageService.GetPage(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, page)
}

// UpdatePage godoc
// @Summary Update a page
// @Tags admin-pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Page ID"
// @Param body body service.PageRequest true "Page data"
// @Success 200 {object} util.Response{data=model.Page}
// @Failure 404 {object} util.Response
// @Router /api/admin/pages/{id} [put]
func (c *PageController) UpdatePage(ctx *gin.Context) {
	var req service.PageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	page, err := c.PageService.UpdatePage(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, page)
}

// DeletePage godoc
// @Summary Delete a page
// @Tags admin-pages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Page ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/pages/{id} [delete]
func (c *PageController) DeletePage(ctx *gin.Context) {
	if err := c.PageService.DeletePage(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
