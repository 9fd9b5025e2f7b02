package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/response"
	"github.com/meinwort/meinwort-go/services"
	"github.com/meinwort/meinwort-go/utils"
)

type CommentHandler struct {
	svc *services.CommentService
}

func NewCommentHandler(svc *services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// ListComments godoc
// @Summary List a petition's comments
// @Tags comments
// @Produce json
// @Param id path uint true "Petition ID"
// @Success 200 {array} dto.CommentView
// @Router /petitions/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid petition id"})
		return
	}

	views, err := h.svc.ListComments(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// AddComment godoc
// @Summary Comment on a published petition
// @Tags comments
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Petition ID"
// @Param content formData string true "Comment text"
// @Success 201 {object} models.PetitionComment
// @Failure 404 {object} response.ErrorResponse
// @Router /petitions/{id}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid petition id"})
		return
	}

	var input dto.CreateCommentInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.svc.AddComment(uid, id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPetitionNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "petition not found"})
		case errors.Is(err, services.ErrPetitionNotPublished):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// LikeComment godoc
// @Summary Like a comment
// @Tags comments
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Comment ID"
// @Success 201 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Already liked"
// @Router /comments/{id}/like [post]
func (h *CommentHandler) LikeComment(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid comment id"})
		return
	}

	if err := h.svc.LikeComment(uid, id); err != nil {
		switch {
		case errors.Is(err, services.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "comment not found"})
		case errors.Is(err, services.ErrAlreadyLiked):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "comment already liked"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "comment liked"})
}

// Report godoc
// @Summary Report a petition or comment
// @Tags reports
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param target_type formData string true "Target type (petition or comment)"
// @Param target_id formData uint true "Target ID"
// @Param reason formData string true "Reason"
// @Param details formData string false "Details"
// @Success 201 {object} models.Report
// @Failure 400 {object} response.ErrorResponse
// @Router /reports [post]
func (h *CommentHandler) Report(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input dto.CreateReportInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.svc.ReportContent(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, report)
}
