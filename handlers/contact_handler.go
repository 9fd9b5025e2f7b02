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

type ContactHandler struct {
	svc *services.ContactService
}

func NewContactHandler(svc *services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit godoc
// @Summary Submit a contact request
// @Tags contact
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param subject formData string true "Subject"
// @Param message formData string true "Message"
// @Success 201 {object} models.ContactRequest
// @Failure 400 {object} response.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var input dto.ContactInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.svc.SubmitRequest(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, request)
}

// List godoc
// @Summary List contact requests
// @Tags contact
// @Security BearerAuth
// @Produce json
// @Param unprocessed query bool false "Only unprocessed requests"
// @Success 200 {array} models.ContactRequest
// @Router /moderation/contact [get]
func (h *ContactHandler) List(c *gin.Context) {
	onlyUnprocessed := c.Query("unprocessed") == "true"
	requests, err := h.svc.ListRequests(onlyUnprocessed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// MarkProcessed godoc
// @Summary Mark a contact request as processed
// @Tags contact
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Contact request ID"
// @Success 200 {object} models.ContactRequest
// @Failure 404 {object} response.ErrorResponse
// @Router /moderation/contact/{id}/processed [post]
func (h *ContactHandler) MarkProcessed(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid contact request id"})
		return
	}

	request, err := h.svc.MarkProcessed(id)
	if err != nil {
		if errors.Is(err, services.ErrContactRequestNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "contact request not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, request)
}
