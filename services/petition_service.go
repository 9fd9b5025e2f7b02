package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"github.com/meinwort/meinwort-go/storage"
	"github.com/meinwort/meinwort-go/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPetitionNotFound     = errors.New("petition not found")
	ErrPetitionNotPublished = errors.New("petition is not published")
	ErrDraftIncomplete      = errors.New("draft is missing required fields")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrAlreadySaved         = errors.New("petition already saved")
)

// ProgressFunc receives the submission progress in percent. Uploads occupy
// the 10-50 band, record creation bumps to 60 and completion to 100.
type ProgressFunc func(percent int)

type PetitionService struct {
	Repos *repositories.Repos
	Store storage.Store
}

func NewPetitionService(repos *repositories.Repos, store storage.Store) *PetitionService {
	return &PetitionService{Repos: repos, Store: store}
}

// SubmitPetition runs the submission pipeline: sequential image uploads in
// attachment order, then a single petition insert with status pending. Any
// failure aborts the remaining steps and leaves the draft intact so the user
// can retry; already uploaded objects are not removed.
func (s *PetitionService) SubmitPetition(ctx context.Context, uid uint, draft models.PetitionDraft, attachments []PendingAttachment, progress ProgressFunc) (models.Petition, error) {
	if progress == nil {
		progress = func(int) {}
	}

	if err := validateDraftForSubmission(draft); err != nil {
		return models.Petition{}, err
	}

	var imageURLs []string
	if len(attachments) > 0 {
		progress(10)
		batch := time.Now().UnixMilli()
		for i, att := range attachments {
			objectName := fmt.Sprintf("%d/%d_%d%s", uid, batch, i, imageExt(att))
			url, err := s.Store.Upload(ctx, objectName, att.ContentType, bytes.NewReader(att.Data), int64(len(att.Data)))
			if err != nil {
				return models.Petition{}, fmt.Errorf("upload image %d: %w", i, err)
			}
			imageURLs = append(imageURLs, url)
			progress(10 + ((i+1)*40)/len(attachments))
		}
	}

	progress(60)

	petition := models.Petition{
		Title:        draft.Title,
		Description:  draft.Description,
		Goal:         draft.Goal,
		Category:     draft.Category,
		CreatorID:    uid,
		Status:       string(models.PetitionStatusPending),
		PetitionType: draft.PetitionType,
	}
	if draft.Goal == 0 {
		petition.Goal = DefaultGoal
	}
	if draft.TargetInstitution != "" {
		petition.TargetInstitution = &draft.TargetInstitution
	}
	if draft.PhoneNumber != "" {
		petition.PhoneNumber = &draft.PhoneNumber
	}
	if draft.PetitionType == string(models.PetitionTypeLocal) {
		location := draft.Location
		petition.Location = &location
	}
	if len(imageURLs) > 0 {
		first := imageURLs[0]
		petition.ImageURL = &first
		encoded, err := json.Marshal(imageURLs)
		if err != nil {
			return models.Petition{}, err
		}
		petition.Images = datatypes.JSON(encoded)
	}

	if err := s.Repos.Petition.CreatePetition(&petition); err != nil {
		return models.Petition{}, err
	}

	progress(100)

	if err := s.Repos.Draft.ClearDraft(uid); err != nil {
		log.Printf("Error clearing draft for user %d after submission: %v", uid, err)
	}

	return petition, nil
}

func validateDraftForSubmission(draft models.PetitionDraft) error {
	if draft.PetitionType == "" {
		return ErrPetitionTypeRequired
	}
	if draft.PetitionType == string(models.PetitionTypeLocal) && draft.Location == "" {
		return ErrLocationRequired
	}
	if draft.Title == "" {
		return ErrTitleRequired
	}
	if draft.Description == "" {
		return ErrDescriptionRequired
	}
	if draft.Category == "" {
		return ErrDraftIncomplete
	}
	return nil
}

func imageExt(att PendingAttachment) string {
	if ext := path.Ext(att.Filename); ext != "" {
		return ext
	}
	switch att.ContentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// ListPublished returns published petitions matching the filter, each
// decorated with its verified signature count. One count query per petition.
func (s *PetitionService) ListPublished(filter dto.PetitionFilter) ([]dto.PetitionView, error) {
	petitions, err := s.Repos.Petition.ListPetitions(repositories.PetitionQuery{
		Status:       string(models.PetitionStatusPublished),
		Category:     filter.Category,
		PetitionType: filter.PetitionType,
		Location:     filter.Location,
		Search:       filter.Search,
		Limit:        filter.Limit,
		Offset:       filter.Offset,
	})
	if err != nil {
		return nil, err
	}
	return s.decorate(petitions)
}

// GetPublished loads one published petition with its derived count.
func (s *PetitionService) GetPublished(id uint) (dto.PetitionView, error) {
	petition, err := s.Repos.Petition.GetPetitionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PetitionView{}, ErrPetitionNotFound
		}
		return dto.PetitionView{}, err
	}
	if petition.Status != string(models.PetitionStatusPublished) {
		return dto.PetitionView{}, ErrPetitionNotFound
	}

	views, err := s.decorate([]models.Petition{petition})
	if err != nil {
		return dto.PetitionView{}, err
	}
	return views[0], nil
}

func (s *PetitionService) ListByCreator(uid uint) ([]dto.PetitionView, error) {
	petitions, err := s.Repos.Petition.ListPetitionsByCreator(uid)
	if err != nil {
		return nil, err
	}
	return s.decorate(petitions)
}

func (s *PetitionService) ListPending() ([]models.Petition, error) {
	return s.Repos.Petition.ListPetitions(repositories.PetitionQuery{
		Status: string(models.PetitionStatusPending),
	})
}

func (s *PetitionService) decorate(petitions []models.Petition) ([]dto.PetitionView, error) {
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

// PublishPetition moves a pending petition to published. Moderator only;
// the transition is audited.
func (s *PetitionService) PublishPetition(c *gin.Context, id uint) (models.Petition, error) {
	return s.transition(c, id, "publish", string(models.PetitionStatusPending), string(models.PetitionStatusPublished), "")
}

// RejectPetition moves a pending petition to rejected.
func (s *PetitionService) RejectPetition(c *gin.Context, id uint, reason string) (models.Petition, error) {
	return s.transition(c, id, "reject", string(models.PetitionStatusPending), string(models.PetitionStatusRejected), reason)
}

// ClosePetition moves a published petition to closed.
func (s *PetitionService) ClosePetition(c *gin.Context, id uint) (models.Petition, error) {
	return s.transition(c, id, "close", string(models.PetitionStatusPublished), string(models.PetitionStatusClosed), "")
}

func (s *PetitionService) transition(c *gin.Context, id uint, action, from, to, reason string) (models.Petition, error) {
	petition, err := s.Repos.Petition.GetPetitionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Petition{}, ErrPetitionNotFound
		}
		return models.Petition{}, err
	}
	if petition.Status != from {
		return models.Petition{}, ErrInvalidTransition
	}

	old := petition
	petition.Status = to
	if to == string(models.PetitionStatusPublished) {
		now := time.Now()
		petition.PublishedAt = &now
	}

	if err := s.Repos.Petition.UpdatePetition(&petition); err != nil {
		return models.Petition{}, err
	}

	utils.LogAuditWithConsole(c, action, "petition",
		strconv.FormatUint(uint64(petition.PID), 10),
		old, petition, reason, s.Repos.Audit)

	return petition, nil
}

// SavePetition bookmarks a petition for the user.
func (s *PetitionService) SavePetition(uid, pid uint) error {
	if _, err := s.Repos.Petition.GetPetitionByID(pid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPetitionNotFound
		}
		return err
	}

	err := s.Repos.Saved.Save(&models.SavedPetition{UID: uid, PID: pid})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadySaved
		}
		return err
	}
	return nil
}

func (s *PetitionService) UnsavePetition(uid, pid uint) error {
	return s.Repos.Saved.Unsave(uid, pid)
}

func (s *PetitionService) IsSaved(uid, pid uint) (bool, error) {
	return s.Repos.Saved.IsSaved(uid, pid)
}

func (s *PetitionService) ListSaved(uid uint) ([]dto.PetitionView, error) {
	ids, err := s.Repos.Saved.ListSavedPetitionIDs(uid)
	if err != nil {
		return nil, err
	}
	petitions, err := s.Repos.Petition.ListPetitionsByIDs(ids)
	if err != nil {
		return nil, err
	}
	return s.decorate(petitions)
}
