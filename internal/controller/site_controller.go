package controller

import (
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SiteController struct {
	SiteService *service.SiteService
}

func NewSiteController(siteService *service.SiteService) *SiteController {
	return &SiteController{SiteService: siteService}
}

// GetConfig godoc
// @Summary Get the site configuration
// @Description Public endpoint; the frontend fetches it on every page render.
// @Tags site
// @Produce json
// @Success 200 {object} util.Response{data=model.SiteConfig}
// @Router /api/site/config [get]
func (c *SiteController) GetConfig(ctx *gin.Context) {
	cfg, err := c.SiteService.GetConfig(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, cfg)
}

// UpdateConfig godoc
// @Summary Replace the site configuration
// @Tags admin-site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.SiteConfig true "Full configuration"
// @Success 200 {object} util.Response{data=model.SiteConfig}
// @Failure 400 {object} util.Response "Invalid colors or homepage items"
// @Router /api/admin/site/config [put]
func (c *SiteController) UpdateConfig(ctx *gin.Context) {
	var incoming model.SiteConfig
	if err := ctx.ShouldBindJSON(&incoming); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cfg, err := c.SiteService.UpdateConfig(ctx.Request.Context(), &incoming)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, cfg)
}
