package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"github.com/meinwort/meinwort-go/storage"
	"github.com/meinwort/meinwort-go/websocket"
	"gorm.io/gorm"
)

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrAlreadyMember = errors.New("already a member of this group")
	ErrNotMember     = errors.New("not a member of this group")
)

type GroupService struct {
	Repos *repositories.Repos
	Store storage.Store
	Hub   *websocket.Hub
}

func NewGroupService(repos *repositories.Repos, store storage.Store, hub *websocket.Hub) *GroupService {
	return &GroupService{Repos: repos, Store: store, Hub: hub}
}

// CreateGroup creates the group, uploads the optional logo, and enrolls the
// creator as its first member with the owner role.
func (s *GroupService) CreateGroup(ctx context.Context, uid uint, input dto.CreateGroupInput, logo *PendingAttachment) (models.Group, error) {
	group := models.Group{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   uid,
	}

	if logo != nil {
		objectName := fmt.Sprintf("group-logos/%s%s", uuid.NewString(), imageExt(*logo))
		url, err := s.Store.Upload(ctx, objectName, logo.ContentType, bytes.NewReader(logo.Data), int64(len(logo.Data)))
		if err != nil {
			return models.Group{}, fmt.Errorf("upload group logo: %w", err)
		}
		group.LogoURL = &url
	}

	if err := s.Repos.Group.CreateGroup(&group); err != nil {
		return models.Group{}, err
	}

	member := models.GroupMember{GID: group.GID, UID: uid, Role: "owner"}
	if err := s.Repos.Group.AddMember(&member); err != nil {
		return models.Group{}, err
	}

	return group, nil
}

// ListGroups returns all groups decorated with derived member and petition
// counts. Two count queries per group.
func (s *GroupService) ListGroups() ([]dto.GroupDTO, error) {
	groups, err := s.Repos.Group.ListGroups()
	if err != nil {
		return nil, err
	}

	views := make([]dto.GroupDTO, 0, len(groups))
	for _, group := range groups {
		members, err := s.Repos.Group.CountMembers(group.GID)
		if err != nil {
			return nil, err
		}
		petitions, err := s.Repos.Group.CountGroupPetitions(group.GID)
		if err != nil {
			return nil, err
		}
		views = append(views, dto.GroupDTO{
			GID:           group.GID,
			Name:          group.Name,
			Description:   group.Description,
			LogoURL:       group.LogoURL,
			CreatedBy:     group.CreatedBy,
			MemberCount:   members,
			PetitionCount: petitions,
		})
	}
	return views, nil
}

func (s *GroupService) GetGroup(id uint) (models.Group, error) {
	group, err := s.Repos.Group.GetGroupByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Group{}, ErrGroupNotFound
		}
		return models.Group{}, err
	}
	return group, nil
}

// JoinGroup enrolls the user. A duplicate membership surfaces
// ErrAlreadyMember, distinct from generic failure.
func (s *GroupService) JoinGroup(gid, uid uint) error {
	if _, err := s.GetGroup(gid); err != nil {
		return err
	}

	err := s.Repos.Group.AddMember(&models.GroupMember{GID: gid, UID: uid, Role: "member"})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyMember
		}
		return err
	}
	return nil
}

func (s *GroupService) LeaveGroup(gid, uid uint) error {
	if _, err := s.Repos.Group.GetMember(gid, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotMember
		}
		return err
	}
	return s.Repos.Group.RemoveMember(gid, uid)
}

func (s *GroupService) ListMembers(gid uint) ([]models.GroupMember, error) {
	return s.Repos.Group.ListMembers(gid)
}

// AttachPetition links a published petition to the group. Members only.
func (s *GroupService) AttachPetition(gid, uid, pid uint) error {
	if _, err := s.Repos.Group.GetMember(gid, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotMember
		}
		return err
	}

	petition, err := s.Repos.Petition.GetPetitionByID(pid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPetitionNotFound
		}
		return err
	}
	if petition.Status != string(models.PetitionStatusPublished) {
		return ErrPetitionNotPublished
	}

	return s.Repos.Group.AttachPetition(&models.GroupPetition{GID: gid, PID: pid})
}

// ListGroupPetitions returns the group's petitions with derived signature
// counts.
func (s *GroupService) ListGroupPetitions(gid uint) ([]dto.PetitionView, error) {
	ids, err := s.Repos.Group.ListGroupPetitionIDs(gid)
	if err != nil {
		return nil, err
	}
	petitions, err := s.Repos.Petition.ListPetitionsByIDs(ids)
	if err != nil {
		return nil, err
	}

	views := make([]dto.PetitionView, 0, len(petitions))
	for _, petition := range petitions {
		count, err := s.Repos.Signature.CountVerified(petition.PID)
		if err != nil {
			return nil, err
		}
		ratio, reached := Progress(count, petition.Goal)
		views = append(views, dto.PetitionView{
			Petition:       petition,
			SignatureCount: count,
			Progress:       ratio,
			GoalReached:    reached,
		})
	}
	return views, nil
}

// PostMessage stores a chat message and broadcasts it on the group's feed.
// Members only.
func (s *GroupService) PostMessage(gid, uid uint, input dto.GroupMessageInput) (models.GroupMessage, error) {
	if _, err := s.Repos.Group.GetMember(gid, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.GroupMessage{}, ErrNotMember
		}
		return models.GroupMessage{}, err
	}

	message := models.GroupMessage{GID: gid, UID: uid, Content: input.Content}
	if err := s.Repos.Group.CreateMessage(&message); err != nil {
		return models.GroupMessage{}, err
	}

	if s.Hub != nil {
		s.Hub.Publish(websocket.ChatKey(gid), websocket.ChatMessage{
			GroupID:   gid,
			UserID:    uid,
			Content:   message.Content,
			CreatedAt: message.CreatedAt,
		})
	}

	return message, nil
}

func (s *GroupService) ListMessages(gid uint, limit int) ([]models.GroupMessage, error) {
	return s.Repos.Group.ListMessages(gid, limit)
}
