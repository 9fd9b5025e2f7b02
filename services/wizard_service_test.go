package services

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"github.com/meinwort/meinwort-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupWizardServiceMocks(t *testing.T) (*WizardService, *mock_repositories.MockDraftRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockDraft := mock_repositories.NewMockDraftRepo(ctrl)
	repos := &repositories.Repos{
		Draft: mockDraft,
	}
	svc := NewWizardService(repos)
	return svc, mockDraft
}

// --------------------- LoadDraft ---------------------
func TestLoadDraft_Restored(t *testing.T) {
	svc, mockDraft := setupWizardServiceMocks(t)

	stored := models.PetitionDraft{UID: 1, PetitionType: "lokal", Location: "Berlin", CurrentStep: 3, Goal: 5000}
	mockDraft.EXPECT().LoadDraft(uint(1)).Return(stored, nil)

	draft, restored := svc.LoadDraft(1)
	assert.True(t, restored)
	assert.Equal(t, stored, draft)
}

func TestLoadDraft_MissingFallsBackToBlank(t *testing.T) {
	svc, mockDraft := setupWizardServiceMocks(t)

	mockDraft.EXPECT().LoadDraft(uint(1)).Return(models.PetitionDraft{}, gorm.ErrRecordNotFound)

	draft, restored := svc.LoadDraft(1)
	assert.False(t, restored)
	assert.Equal(t, uint(1), draft.UID)
	assert.Equal(t, 1, draft.CurrentStep)
	assert.Equal(t, DefaultGoal, draft.Goal)
}

func TestLoadDraft_UnreadableFailsOpen(t *testing.T) {
	svc, mockDraft := setupWizardServiceMocks(t)

	mockDraft.EXPECT().LoadDraft(uint(1)).Return(models.PetitionDraft{}, errors.New("connection refused"))

	draft, restored := svc.LoadDraft(1)
	assert.False(t, restored)
	assert.Equal(t, 1, draft.CurrentStep)
}

// --------------------- SaveDraft ---------------------
func TestSaveDraft_PersistsMergedState(t *testing.T) {
	svc, mockDraft := setupWizardServiceMocks(t)

	mockDraft.EXPECT().LoadDraft(uint(1)).Return(models.PetitionDraft{}, gorm.ErrRecordNotFound)
	mockDraft.EXPECT().SaveDraft(gomock.Any()).DoAndReturn(func(draft *models.PetitionDraft) error {
		assert.Equal(t, uint(1), draft.UID)
		assert.Equal(t, "lokal", draft.PetitionType)
		assert.Equal(t, "Berlin", draft.Location)
		assert.Equal(t, DefaultGoal, draft.Goal)
		return nil
	})

	draft, err := svc.SaveDraft(1, dto.DraftInput{PetitionType: "lokal", Location: "Berlin"})
	assert.NoError(t, err)
	assert.Equal(t, "lokal", draft.PetitionType)
}

func TestSaveDraft_EmptyFormNotPersisted(t *testing.T) {
	svc, mockDraft := setupWizardServiceMocks(t)

	// no SaveDraft expectation: an entirely empty form must not hit the store
	mockDraft.EXPECT().LoadDraft(uint(1)).Return(models.PetitionDraft{}, gorm.ErrRecordNotFound)

	draft, err := svc.SaveDraft(1, dto.DraftInput{})
	assert.NoError(t, err)
	assert.Equal(t, 1, draft.CurrentStep)
}

func TestSaveDraft_SameInputConvergesToSameState(t *testing.T) {
	svc, mockDraft := setupWizardServiceMocks(t)

	input := dto.DraftInput{PetitionType: "national", Title: "Mehr Radwege", CurrentStep: 3}

	var first, second models.PetitionDraft
	mockDraft.EXPECT().LoadDraft(uint(1)).Return(models.PetitionDraft{}, gorm.ErrRecordNotFound)
	mockDraft.EXPECT().SaveDraft(gomock.Any()).DoAndReturn(func(draft *models.PetitionDraft) error {
		first = *draft
		return nil
	})

	_, err := svc.SaveDraft(1, input)
	assert.NoError(t, err)

	mockDraft.EXPECT().LoadDraft(uint(1)).Return(first, nil)
	mockDraft.EXPECT().SaveDraft(gomock.Any()).DoAndReturn(func(draft *models.PetitionDraft) error {
		second = *draft
		return nil
	})

	_, err = svc.SaveDraft(1, input)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

// --------------------- Next / Back ---------------------
func TestNext_AdvancesAndPersists(t *testing.T) {
	svc, mockDraft := setupWizardServiceMocks(t)

	stored := models.PetitionDraft{UID: 1, PetitionType: "national", CurrentStep: 1, Goal: 5000}
	mockDraft.EXPECT().LoadDraft(uint(1)).Return(stored, nil)
	mockDraft.EXPECT().SaveDraft(gomock.Any()).DoAndReturn(func(draft *models.PetitionDraft) error {
		assert.Equal(t, 2, draft.CurrentStep)
		return nil
	})

	draft, err := svc.Next(1)
	assert.NoError(t, err)
	assert.Equal(t, 2, draft.CurrentStep)
}

func TestNext_ValidationFailureDoesNotPersist(t *testing.T) {
	svc, mockDraft := setupWizardServiceMocks(t)

	stored := models.PetitionDraft{UID: 1, PetitionType: "lokal", CurrentStep: 2, Goal: 5000}
	mockDraft.EXPECT().LoadDraft(uint(1)).Return(stored, nil)

	draft, err := svc.Next(1)
	assert.ErrorIs(t, err, ErrLocationRequired)
	assert.Equal(t, 2, draft.CurrentStep)
}

func TestBack_RetreatsAndPersists(t *testing.T) {
	svc, mockDraft := setupWizardServiceMocks(t)

	stored := models.PetitionDraft{UID: 1, PetitionType: "national", CurrentStep: 3, Goal: 5000}
	mockDraft.EXPECT().LoadDraft(uint(1)).Return(stored, nil)
	mockDraft.EXPECT().SaveDraft(gomock.Any()).Return(nil)

	draft, err := svc.Back(1)
	assert.NoError(t, err)
	assert.Equal(t, 2, draft.CurrentStep)
}

// --------------------- ClearDraft ---------------------
func TestClearDraft(t *testing.T) {
	svc, mockDraft := setupWizardServiceMocks(t)
	mockDraft.EXPECT().ClearDraft(uint(1)).Return(nil)

	assert.NoError(t, svc.ClearDraft(1))
}
