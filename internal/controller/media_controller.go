package controller

import (
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	MediaService *service.MediaService
}

func NewMediaController(mediaService *service.MediaService) *MediaController {
	return &MediaController{MediaService: mediaService}
}

// Upload godoc
// @Summary Upload a file to the media library
// @Description Accepts images, videos and PDFs. Videos are probed for duration and get a thumbnail.
// @Tags admin-media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Param folder formData string false "Target folder"
// @Param altText formData string false "Alt text"
// @Param caption formData string false "Caption"
// @Success 201 {object} util.Response{data=model.MediaFile}
// @Failure 400 {object} util.Response "Unsupported file type or too large"
// @Router /api/admin/media [post]
func (c *MediaController) Upload(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	media, err := c.MediaService.Upload(ctx.Request.Context(), claims.UserID, header, service.UploadRequest{
		Folder:  ctx.PostForm("folder"),
		AltText: ctx.PostForm("altText"),
		Caption: ctx.PostForm("caption"),
	})
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Created(ctx, media)
}

// ListFiles godoc
// @Summary List media library files
// @Tags admin-media
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param folder query string false "Filter by folder"
// @Param type query string false "Filter by file type (image, video, document)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/media [get]
func (c *MediaController) ListFiles(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	files, total, err := c.MediaService.ListFiles(ctx.Query("folder"), model.MediaType(ctx.Query("type")), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: files, Total: total, Page: page, Limit: limit})
}

// GetFile godoc
// @Summary Get one media file record
// @Tags admin-media
// @Produce json
// @Security BearerAuth
// @Param id path int true "Media ID"
// @Success 200 {object} util.Response{data=model.MediaFile}
// @Failure 404 {object} util.Response
// @Router /api/admin/media/{id} [get]
func (c *MediaController) GetFile(ctx *gin.Context) {
	media, err := c.MediaService.GetFile(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, media)
}

// UpdateFile godoc
// @Summary Update a media file's metadata
// @Tags admin-media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Media ID"
// @Param body body service.UpdateMediaRequest true "Metadata fields"
// @Success 200 {object} util.Response{data=model.MediaFile}
// @Failure 404 {object} util.Response
// @Router /api/admin/media/{id} [put]
func (c *MediaController) UpdateFile(ctx *gin.Context) {
	var req service.UpdateMediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	media, err := c.MediaService.UpdateFile(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, media)
}

// DeleteFile godoc
// @Summary Delete a media file and its stored object
// @Tags admin-media
// @Produce json
// @Security BearerAuth
// @Param id path int true "Media ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/media/{id} [delete]
func (c *MediaController) DeleteFile(ctx *gin.Context) {
	if err := c.MediaService.DeleteFile(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
