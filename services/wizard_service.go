package services

import (
	"errors"
	"log"

	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"gorm.io/gorm"
)

const DefaultGoal = 5000

// WizardService owns the draft lifecycle: restore on mount, save on every
// mutation, step navigation, and clearing after submission.
type WizardService struct {
	Repos *repositories.Repos
}

func NewWizardService(repos *repositories.Repos) *WizardService {
	return &WizardService{Repos: repos}
}

func blankDraft(uid uint) models.PetitionDraft {
	return models.PetitionDraft{UID: uid, Goal: DefaultGoal, CurrentStep: 1}
}

// LoadDraft restores the user's draft. A missing or unreadable draft falls
// back to a blank wizard rather than failing; the second return value tells
// the caller whether anything was restored.
func (s *WizardService) LoadDraft(uid uint) (models.PetitionDraft, bool) {
	draft, err := s.Repos.Draft.LoadDraft(uid)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error loading draft for user %d: %v", uid, err)
		}
		return blankDraft(uid), false
	}
	if draft.Goal == 0 {
		draft.Goal = DefaultGoal
	}
	if draft.CurrentStep == 0 {
		draft.CurrentStep = 1
	}
	return draft, true
}

// SaveDraft merges the input into the stored draft and persists it whenever
// any tracked field is non-empty. An entirely empty form is not persisted.
func (s *WizardService) SaveDraft(uid uint, input dto.DraftInput) (models.PetitionDraft, error) {
	draft, _ := s.LoadDraft(uid)

	draft.PetitionType = input.PetitionType
	draft.Location = input.Location
	draft.Title = input.Title
	draft.Description = input.Description
	draft.Category = input.Category
	draft.TargetInstitution = input.TargetInstitution
	draft.PhoneNumber = input.PhoneNumber
	if input.Goal != 0 {
		draft.Goal = input.Goal
	}
	if input.CurrentStep != 0 {
		draft.CurrentStep = input.CurrentStep
	}

	if !draftHasContent(draft) {
		return draft, nil
	}

	if err := s.Repos.Draft.SaveDraft(&draft); err != nil {
		return models.PetitionDraft{}, err
	}
	return draft, nil
}

// Next validates the current step and advances the persisted draft. On a
// validation failure the stored step is unchanged and the error is returned
// for the caller to surface.
func (s *WizardService) Next(uid uint) (models.PetitionDraft, error) {
	draft, _ := s.LoadDraft(uid)

	if err := AdvanceDraft(&draft); err != nil {
		return draft, err
	}

	if err := s.Repos.Draft.SaveDraft(&draft); err != nil {
		return models.PetitionDraft{}, err
	}
	return draft, nil
}

// Back retreats the persisted draft one step.
func (s *WizardService) Back(uid uint) (models.PetitionDraft, error) {
	draft, _ := s.LoadDraft(uid)

	RetreatDraft(&draft)

	if err := s.Repos.Draft.SaveDraft(&draft); err != nil {
		return models.PetitionDraft{}, err
	}
	return draft, nil
}

func (s *WizardService) ClearDraft(uid uint) error {
	return s.Repos.Draft.ClearDraft(uid)
}

func draftHasContent(draft models.PetitionDraft) bool {
	return draft.PetitionType != "" ||
		draft.Location != "" ||
		draft.Title != "" ||
		draft.Description != "" ||
		draft.Category != "" ||
		draft.TargetInstitution != "" ||
		draft.PhoneNumber != ""
}
