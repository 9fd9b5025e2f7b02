package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/response"
	"github.com/meinwort/meinwort-go/services"
	"github.com/meinwort/meinwort-go/utils"
)

type GroupHandler struct {
	svc *services.GroupService
}

func NewGroupHandler(svc *services.GroupService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

// ListGroups godoc
// @Summary List all groups
// @Tags groups
// @Produce json
// @Success 200 {array} dto.GroupDTO
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.svc.ListGroups()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetGroup godoc
// @Summary Get a group
// @Tags groups
// @Produce json
// @Param id path uint true "Group ID"
// @Success 200 {object} models.Group
// @Failure 404 {object} response.ErrorResponse
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid group id"})
		return
	}

	group, err := h.svc.GetGroup(id)
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "group not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, group)
}

// CreateGroup godoc
// @Summary Create a group
// @Tags groups
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Group name"
// @Param description formData string false "Description"
// @Param logo formData file false "Logo image"
// @Success 201 {object} models.Group
// @Failure 400 {object} response.ErrorResponse
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input dto.CreateGroupInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var logo *services.PendingAttachment
	if header, err := c.FormFile("logo"); err == nil {
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}

		var set services.AttachmentSet
		if err := set.AddFiles([]services.UploadedFile{{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}}); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		logo = &set.Items()[0]
	}

	group, err := h.svc.CreateGroup(c.Request.Context(), uid, input, logo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, group)
}

// JoinGroup godoc
// @Summary Join a group
// @Tags groups
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Group ID"
// @Success 201 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Already a member"
// @Router /groups/{id}/join [post]
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	uid, gid, ok := h.memberParams(c)
	if !ok {
		return
	}

	if err := h.svc.JoinGroup(gid, uid); err != nil {
		switch {
		case errors.Is(err, services.ErrGroupNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "group not found"})
		case errors.Is(err, services.ErrAlreadyMember):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "already a member"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "joined group"})
}

// LeaveGroup godoc
// @Summary Leave a group
// @Tags groups
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Group ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Not a member"
// @Router /groups/{id}/leave [post]
func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	uid, gid, ok := h.memberParams(c)
	if !ok {
		return
	}

	if err := h.svc.LeaveGroup(gid, uid); err != nil {
		if errors.Is(err, services.ErrNotMember) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "not a member"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "left group"})
}

// ListMembers godoc
// @Summary List a group's members
// @Tags groups
// @Produce json
// @Param id path uint true "Group ID"
// @Success 200 {array} models.GroupMember
// @Router /groups/{id}/members [get]
func (h *GroupHandler) ListMembers(c *gin.Context) {
	gid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid group id"})
		return
	}

	members, err := h.svc.ListMembers(gid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

// AttachPetition godoc
// @Summary Link a published petition to the group
// @Tags groups
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Group ID"
// @Param petition_id formData uint true "Petition ID"
// @Success 201 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 404 {object} response.ErrorResponse
// @Router /groups/{id}/petitions [post]
func (h *GroupHandler) AttachPetition(c *gin.Context) {
	uid, gid, ok := h.memberParams(c)
	if !ok {
		return
	}

	var input dto.AttachPetitionInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.AttachPetition(gid, uid, input.PetitionID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotMember):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "not a member"})
		case errors.Is(err, services.ErrPetitionNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "petition not found"})
		case errors.Is(err, services.ErrPetitionNotPublished):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "petition linked"})
}

// GroupPetitions godoc
// @Summary List the group's petitions
// @Tags groups
// @Produce json
// @Param id path uint true "Group ID"
// @Success 200 {array} dto.PetitionView
// @Router /groups/{id}/petitions [get]
func (h *GroupHandler) GroupPetitions(c *gin.Context) {
	gid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid group id"})
		return
	}

	views, err := h.svc.ListGroupPetitions(gid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

// PostMessage godoc
// @Summary Post a message to the group chat
// @Tags groups
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Group ID"
// @Param content formData string true "Message text"
// @Success 201 {object} models.GroupMessage
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Router /groups/{id}/messages [post]
func (h *GroupHandler) PostMessage(c *gin.Context) {
	uid, gid, ok := h.memberParams(c)
	if !ok {
		return
	}

	var input dto.GroupMessageInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	message, err := h.svc.PostMessage(gid, uid, input)
	if err != nil {
		if errors.Is(err, services.ErrNotMember) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "not a member"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, message)
}

// ListMessages godoc
// @Summary List the group's chat messages
// @Tags groups
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Group ID"
// @Param limit query int false "Max messages (newest first)"
// @Success 200 {array} models.GroupMessage
// @Router /groups/{id}/messages [get]
func (h *GroupHandler) ListMessages(c *gin.Context) {
	gid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid group id"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	messages, err := h.svc.ListMessages(gid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *GroupHandler) memberParams(c *gin.Context) (uid, gid uint, ok bool) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return 0, 0, false
	}
	gid, err = utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid group id"})
		return 0, 0, false
	}
	return uid, gid, true
}
