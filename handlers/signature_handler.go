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

type SignatureHandler struct {
	svc *services.SignatureService
}

func NewSignatureHandler(svc *services.SignatureService) *SignatureHandler {
	return &SignatureHandler{svc: svc}
}

// Sign godoc
// @Summary Sign a petition
// @Tags signatures
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Petition ID"
// @Param first_name formData string true "First name"
// @Param last_name formData string true "Last name"
// @Param email formData string true "Email"
// @Param comment formData string false "Comment"
// @Param agreed_to_terms formData bool true "Privacy consent"
// @Success 201 {object} models.Signature
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Already signed with this email"
// @Router /petitions/{id}/sign [post]
func (h *SignatureHandler) Sign(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid petition id"})
		return
	}

	var input dto.SignInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	signature, err := h.svc.SignPetition(id, input, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConsentRequired):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrPetitionNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "petition not found"})
		case errors.Is(err, services.ErrPetitionNotPublished):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrAlreadySigned):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "you have already signed this petition"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, signature)
}

// Count godoc
// @Summary Get a petition's verified signature count
// @Tags signatures
// @Produce json
// @Param id path uint true "Petition ID"
// @Success 200 {object} map[string]int64
// @Router /petitions/{id}/signatures/count [get]
func (h *SignatureHandler) Count(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid petition id"})
		return
	}

	count, err := h.svc.CountVerified(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
