package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"github.com/meinwort/meinwort-go/repositories/mock_repositories"
	"github.com/meinwort/meinwort-go/storage"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
type petitionServiceMocks struct {
	petition *mock_repositories.MockPetitionRepo
	draft    *mock_repositories.MockDraftRepo
	sig      *mock_repositories.MockSignatureRepo
	saved    *mock_repositories.MockSavedPetitionRepo
}

func setupPetitionServiceMocks(t *testing.T, store storage.Store) (*PetitionService, petitionServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mocks := petitionServiceMocks{
		petition: mock_repositories.NewMockPetitionRepo(ctrl),
		draft:    mock_repositories.NewMockDraftRepo(ctrl),
		sig:      mock_repositories.NewMockSignatureRepo(ctrl),
		saved:    mock_repositories.NewMockSavedPetitionRepo(ctrl),
	}
	repos := &repositories.Repos{
		Petition:  mocks.petition,
		Draft:     mocks.draft,
		Signature: mocks.sig,
		Saved:     mocks.saved,
	}
	svc := NewPetitionService(repos, store)
	return svc, mocks
}

func completeLocalDraft() models.PetitionDraft {
	return models.PetitionDraft{
		UID:          1,
		PetitionType: "lokal",
		Location:     "Berlin",
		Title:        "Mehr Parks",
		Description:  "Wir fordern mehr Parks in Berlin.",
		Category:     "Umwelt",
		Goal:         5000,
		CurrentStep:  6,
	}
}

type failingStore struct{}

func (failingStore) Upload(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	return "", errors.New("bucket unavailable")
}

func (failingStore) Delete(ctx context.Context, objectName string) error { return nil }

// --------------------- SubmitPetition ---------------------
func TestSubmitPetition_UploadsSequentiallyThenInserts(t *testing.T) {
	store := storage.NewMemoryStore()
	svc, mocks := setupPetitionServiceMocks(t, store)

	var created models.Petition
	mocks.petition.EXPECT().CreatePetition(gomock.Any()).DoAndReturn(func(p *models.Petition) error {
		p.PID = 42
		created = *p
		return nil
	})
	mocks.draft.EXPECT().ClearDraft(uint(1)).Return(nil)

	attachments := []PendingAttachment{
		{Filename: "first.jpg", ContentType: "image/jpeg", Data: []byte("aaa")},
		{Filename: "second.png", ContentType: "image/png", Data: []byte("bbb")},
	}

	var progress []int
	petition, err := svc.SubmitPetition(context.Background(), 1, completeLocalDraft(), attachments, func(p int) {
		progress = append(progress, p)
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(42), petition.PID)

	// uploads fill the 10-50 band in order, then 60 and 100
	assert.Equal(t, []int{10, 30, 50, 60, 100}, progress)

	names := store.ObjectNames()
	assert.Len(t, names, 2)
	assert.Regexp(t, `^1/\d+_0\.jpg$`, names[0])
	assert.Regexp(t, `^1/\d+_1\.png$`, names[1])

	assert.Equal(t, string(models.PetitionStatusPending), created.Status)
	assert.NotNil(t, created.ImageURL)
	assert.Equal(t, "mem://"+names[0], *created.ImageURL)
	assert.NotNil(t, created.Location)
	assert.Equal(t, "Berlin", *created.Location)

	var urls []string
	assert.NoError(t, json.Unmarshal(created.Images, &urls))
	assert.Equal(t, []string{"mem://" + names[0], "mem://" + names[1]}, urls)
}

func TestSubmitPetition_NoAttachments(t *testing.T) {
	svc, mocks := setupPetitionServiceMocks(t, storage.NewMemoryStore())

	var created models.Petition
	mocks.petition.EXPECT().CreatePetition(gomock.Any()).DoAndReturn(func(p *models.Petition) error {
		created = *p
		return nil
	})
	mocks.draft.EXPECT().ClearDraft(uint(1)).Return(nil)

	draft := completeLocalDraft()
	draft.PetitionType = "national"
	draft.Location = ""

	var progress []int
	_, err := svc.SubmitPetition(context.Background(), 1, draft, nil, func(p int) {
		progress = append(progress, p)
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{60, 100}, progress)
	assert.Nil(t, created.ImageURL)
	assert.Nil(t, created.Location)
	assert.Empty(t, created.Images)
}

func TestSubmitPetition_UploadFailureLeavesDraft(t *testing.T) {
	// no CreatePetition and no ClearDraft expectations: a failed upload must
	// abort the pipeline before the insert and keep the draft for a retry
	svc, _ := setupPetitionServiceMocks(t, failingStore{})

	attachments := []PendingAttachment{{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("x")}}
	_, err := svc.SubmitPetition(context.Background(), 1, completeLocalDraft(), attachments, nil)
	assert.Error(t, err)
}

func TestSubmitPetition_IncompleteDraft(t *testing.T) {
	svc, _ := setupPetitionServiceMocks(t, storage.NewMemoryStore())

	draft := completeLocalDraft()
	draft.Location = ""

	_, err := svc.SubmitPetition(context.Background(), 1, draft, nil, nil)
	assert.ErrorIs(t, err, ErrLocationRequired)

	draft = completeLocalDraft()
	draft.Category = ""
	_, err = svc.SubmitPetition(context.Background(), 1, draft, nil, nil)
	assert.ErrorIs(t, err, ErrDraftIncomplete)
}

func TestSubmitPetition_ClearDraftFailureDoesNotFailSubmission(t *testing.T) {
	svc, mocks := setupPetitionServiceMocks(t, storage.NewMemoryStore())

	mocks.petition.EXPECT().CreatePetition(gomock.Any()).Return(nil)
	mocks.draft.EXPECT().ClearDraft(uint(1)).Return(errors.New("db gone"))

	_, err := svc.SubmitPetition(context.Background(), 1, completeLocalDraft(), nil, nil)
	assert.NoError(t, err)
}

// --------------------- GetPublished ---------------------
func TestGetPublished_HidesPendingPetitions(t *testing.T) {
	svc, mocks := setupPetitionServiceMocks(t, storage.NewMemoryStore())

	mocks.petition.EXPECT().GetPetitionByID(uint(7)).Return(models.Petition{PID: 7, Status: string(models.PetitionStatusPending)}, nil)

	_, err := svc.GetPublished(7)
	assert.ErrorIs(t, err, ErrPetitionNotFound)
}

func TestGetPublished_DecoratesWithCount(t *testing.T) {
	svc, mocks := setupPetitionServiceMocks(t, storage.NewMemoryStore())

	mocks.petition.EXPECT().GetPetitionByID(uint(7)).Return(models.Petition{PID: 7, Status: string(models.PetitionStatusPublished), Goal: 100}, nil)
	mocks.sig.EXPECT().CountVerified(uint(7)).Return(int64(150), nil)

	view, err := svc.GetPublished(7)
	assert.NoError(t, err)
	assert.Equal(t, int64(150), view.SignatureCount)
	assert.Equal(t, 1.0, view.Progress)
	assert.True(t, view.GoalReached)
}

// --------------------- SavePetition ---------------------
func TestSavePetition_DuplicateSurfacesConflict(t *testing.T) {
	svc, mocks := setupPetitionServiceMocks(t, storage.NewMemoryStore())

	mocks.petition.EXPECT().GetPetitionByID(uint(7)).Return(models.Petition{PID: 7}, nil)
	mocks.saved.EXPECT().Save(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	err := svc.SavePetition(1, 7)
	assert.ErrorIs(t, err, ErrAlreadySaved)
}
