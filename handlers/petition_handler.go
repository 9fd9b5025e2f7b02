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

type PetitionHandler struct {
	svc       *services.PetitionService
	signature *services.SignatureService
}

func NewPetitionHandler(svc *services.PetitionService, signature *services.SignatureService) *PetitionHandler {
	return &PetitionHandler{svc: svc, signature: signature}
}

// ListPetitions godoc
// @Summary List published petitions
// @Tags petitions
// @Produce json
// @Param category query string false "Category filter"
// @Param type query string false "Petition type filter"
// @Param location query string false "Location filter"
// @Param q query string false "Title/description search"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.PetitionView
// @Failure 500 {object} response.ErrorResponse
// @Router /petitions [get]
func (h *PetitionHandler) ListPetitions(c *gin.Context) {
	var filter dto.PetitionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	views, err := h.svc.ListPublished(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetPetition godoc
// @Summary Get a published petition
// @Tags petitions
// @Produce json
// @Param id path uint true "Petition ID"
// @Success 200 {object} dto.PetitionView
// @Failure 404 {object} response.ErrorResponse
// @Router /petitions/{id} [get]
func (h *PetitionHandler) GetPetition(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid petition id"})
		return
	}

	view, err := h.svc.GetPublished(id)
	if err != nil {
		if errors.Is(err, services.ErrPetitionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "petition not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// MyPetitions godoc
// @Summary List the authenticated user's petitions
// @Tags petitions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.PetitionView
// @Router /petitions/mine [get]
func (h *PetitionHandler) MyPetitions(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	views, err := h.svc.ListByCreator(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListSignatures godoc
// @Summary List a petition's signatures (creator only)
// @Tags petitions
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Petition ID"
// @Success 200 {array} models.Signature
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /petitions/{id}/signatures [get]
func (h *PetitionHandler) ListSignatures(c *gin.Context) {
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

	signatures, err := h.signature.ListForCreator(uid, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPetitionNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "petition not found"})
		case errors.Is(err, services.ErrNotAllowed):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "only the creator can view signatures"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, signatures)
}

// PendingPetitions godoc
// @Summary List petitions awaiting review
// @Tags moderation
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Petition
// @Router /moderation/petitions [get]
func (h *PetitionHandler) PendingPetitions(c *gin.Context) {
	petitions, err := h.svc.ListPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, petitions)
}

// Publish godoc
// @Summary Publish a pending petition
// @Tags moderation
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Petition ID"
// @Success 200 {object} models.Petition
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Petition is not pending"
// @Router /moderation/petitions/{id}/publish [post]
func (h *PetitionHandler) Publish(c *gin.Context) {
	h.moderate(c, func(id uint) (any, error) {
		return h.svc.PublishPetition(c, id)
	})
}

// Reject godoc
// @Summary Reject a pending petition
// @Tags moderation
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Petition ID"
// @Param reason formData string false "Rejection reason"
// @Success 200 {object} models.Petition
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Petition is not pending"
// @Router /moderation/petitions/{id}/reject [post]
func (h *PetitionHandler) Reject(c *gin.Context) {
	var input dto.ModerationInput
	_ = c.ShouldBind(&input)
	reason := ""
	if input.Reason != nil {
		reason = *input.Reason
	}
	h.moderate(c, func(id uint) (any, error) {
		return h.svc.RejectPetition(c, id, reason)
	})
}

// Close godoc
// @Summary Close a published petition
// @Tags moderation
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Petition ID"
// @Success 200 {object} models.Petition
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Petition is not published"
// @Router /moderation/petitions/{id}/close [post]
func (h *PetitionHandler) Close(c *gin.Context) {
	h.moderate(c, func(id uint) (any, error) {
		return h.svc.ClosePetition(c, id)
	})
}

func (h *PetitionHandler) moderate(c *gin.Context, fn func(id uint) (any, error)) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid petition id"})
		return
	}

	result, err := fn(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPetitionNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "petition not found"})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// SavePetition godoc
// @Summary Bookmark a petition
// @Tags saved
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Petition ID"
// @Success 201 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Already saved"
// @Router /petitions/{id}/save [post]
func (h *PetitionHandler) SavePetition(c *gin.Context) {
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

	if err := h.svc.SavePetition(uid, id); err != nil {
		switch {
		case errors.Is(err, services.ErrPetitionNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "petition not found"})
		case errors.Is(err, services.ErrAlreadySaved):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "petition already saved"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "petition saved"})
}

// UnsavePetition godoc
// @Summary Remove a bookmark
// @Tags saved
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Petition ID"
// @Success 200 {object} response.MessageResponse
// @Router /petitions/{id}/save [delete]
func (h *PetitionHandler) UnsavePetition(c *gin.Context) {
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

	if err := h.svc.UnsavePetition(uid, id); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "petition unsaved"})
}

// SavedPetitions godoc
// @Summary List the authenticated user's bookmarked petitions
// @Tags saved
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.PetitionView
// @Router /petitions/saved [get]
func (h *PetitionHandler) SavedPetitions(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	views, err := h.svc.ListSaved(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}
