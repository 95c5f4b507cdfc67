package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	ContactService *service.ContactService
}

func NewContactController(contactService *service.ContactService) *ContactController {
	return &ContactController{ContactService: contactService}
}

// Submit godoc
// @Summary Submit a contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param body body service.ContactRequest true "Contact form data"
// @Success 201 {object} util.Response{data=model.ContactInquiry}
// @Failure 400 {object} util.Response
// @Router /api/contact [post]
func (c *ContactController) Submit(ctx *gin.Context) {
	var req service.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	inquiry, err := c.ContactService.Submit(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, inquiry)
}

// ListInquiries godoc
// @Summary List contact inquiries
// @Tags admin-contact
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param unread query bool false "Unread only"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/inquiries [get]
func (c *ContactController) ListInquiries(ctx *gin.Context) {
	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	inquiries, total, err := c.ContactService.ListInquiries(ctx.Query("unread") == "true", page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: inquiries, Total: total, Page: page, Limit: limit})
}

// UnreadCount godoc
// @Summary Count of unread inquiries, for the admin badge
// @Tags admin-contact
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/admin/inquiries/unread-count [get]
func (c *ContactController) UnreadCount(ctx *gin.Context) {
	count, err := c.ContactService.UnreadCount()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"count": count})
}

// GetInquiry godoc
// @Summary Get one inquiry and mark it read
// @Tags admin-contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Success 200 {object} util.Response{data=model.ContactInquiry}
// @Failure 404 {object} util.Response
// @Router /api/admin/inquiries/{id} [get]
func (c *ContactController) GetInquiry(ctx *gin.Context) {
	inquiry, err := c.ContactService.MarkRead(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, inquiry)
}

type ReplyRequest struct {
	Notes string `json:"notes"`
}

// MarkReplied godoc
// @Summary Mark an inquiry as replied
// @Tags admin-contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Param body body ReplyRequest false "Reply notes"
// @Success 200 {object} util.Response{data=model.ContactInquiry}
// @Failure 404 {object} util.Response
// @Router /api/admin/inquiries/{id}/reply [put]
func (c *ContactController) MarkReplied(ctx *gin.Context) {
	var req ReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	inquiry, err := c.ContactService.MarkReplied(util.MustParseUint(ctx.Param("id")), req.Notes)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, inquiry)
}

// DeleteInquiry godoc
// @Summary Delete an inquiry
// @Tags admin-contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inquiry ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/inquiries/{id} [delete]
func (c *ContactController) DeleteInquiry(ctx *gin.Context) {
	if err := c.ContactService.DeleteInquiry(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
