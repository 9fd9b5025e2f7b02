package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/response"
	"github.com/meinwort/meinwort-go/services"
	"github.com/meinwort/meinwort-go/utils"
)

type WizardHandler struct {
	wizard   *services.WizardService
	petition *services.PetitionService
}

func NewWizardHandler(wizard *services.WizardService, petition *services.PetitionService) *WizardHandler {
	return &WizardHandler{wizard: wizard, petition: petition}
}

func draftView(draft models.PetitionDraft, restored bool) dto.DraftView {
	steps := services.StepsFor(draft.PetitionType)
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = string(s)
	}
	return dto.DraftView{PetitionDraft: draft, Steps: names, Restored: restored}
}

// GetDraft godoc
// @Summary Restore the wizard draft
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DraftView
// @Failure 401 {object} response.ErrorResponse
// @Router /wizard/draft [get]
func (h *WizardHandler) GetDraft(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	draft, restored := h.wizard.LoadDraft(uid)
	c.JSON(http.StatusOK, draftView(draft, restored))
}

// SaveDraft godoc
// @Summary Save the wizard draft
// @Tags wizard
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param petition_type formData string false "Petition type (lokal, national, weltweit)"
// @Param location formData string false "Location (local petitions)"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param goal formData int false "Signature goal"
// @Param category formData string false "Category"
// @Param target_institution formData string false "Target institution"
// @Param phone_number formData string false "Phone number"
// @Param current_step formData int false "Current step position"
// @Success 200 {object} dto.DraftView
// @Failure 400 {object} response.ErrorResponse
// @Router /wizard/draft [put]
func (h *WizardHandler) SaveDraft(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input dto.DraftInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	draft, err := h.wizard.SaveDraft(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, draftView(draft, true))
}

// NextStep godoc
// @Summary Advance the wizard one step
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DraftView
// @Failure 422 {object} response.ErrorResponse "Current step incomplete"
// @Router /wizard/next [post]
func (h *WizardHandler) NextStep(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	draft, err := h.wizard.Next(uid)
	if err != nil {
		if isStepValidationError(err) {
			c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, draftView(draft, true))
}

// PrevStep godoc
// @Summary Go back one wizard step
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DraftView
// @Router /wizard/back [post]
func (h *WizardHandler) PrevStep(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	draft, err := h.wizard.Back(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, draftView(draft, true))
}

// DiscardDraft godoc
// @Summary Discard the wizard draft
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /wizard/draft [delete]
func (h *WizardHandler) DiscardDraft(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.wizard.ClearDraft(uid); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "draft discarded"})
}

// Submit godoc
// @Summary Submit the petition for review
// @Tags wizard
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param images formData file false "Petition images (max 5, JPG/PNG/WEBP, 5MB each)"
// @Success 201 {object} models.Petition
// @Failure 400 {object} response.ErrorResponse "Invalid images"
// @Failure 422 {object} response.ErrorResponse "Draft incomplete"
// @Router /wizard/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	draft, restored := h.wizard.LoadDraft(uid)
	if !restored {
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: "no draft to submit"})
		return
	}

	var set services.AttachmentSet
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files, err := readUploadedFiles(form.File["images"])
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		if err := set.AddFiles(files); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
	}

	petition, err := h.petition.SubmitPetition(c.Request.Context(), uid, draft, set.Items(), nil)
	if err != nil {
		if isStepValidationError(err) || errors.Is(err, services.ErrDraftIncomplete) {
			c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, petition)
}

func readUploadedFiles(headers []*multipart.FileHeader) ([]services.UploadedFile, error) {
	files := make([]services.UploadedFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, services.UploadedFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}

func isStepValidationError(err error) bool {
	return errors.Is(err, services.ErrPetitionTypeRequired) ||
		errors.Is(err, services.ErrLocationRequired) ||
		errors.Is(err, services.ErrTitleRequired) ||
		errors.Is(err, services.ErrDescriptionRequired)
}
