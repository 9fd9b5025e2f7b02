package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"github.com/meinwort/meinwort-go/repositories/mock_repositories"
	"github.com/meinwort/meinwort-go/websocket"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupSignatureServiceMocks(t *testing.T) (*SignatureService, *mock_repositories.MockPetitionRepo, *mock_repositories.MockSignatureRepo, *websocket.Hub) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockPetition := mock_repositories.NewMockPetitionRepo(ctrl)
	mockSignature := mock_repositories.NewMockSignatureRepo(ctrl)
	repos := &repositories.Repos{
		Petition:  mockPetition,
		Signature: mockSignature,
	}
	hub := websocket.NewHub()
	svc := NewSignatureService(repos, hub, websocket.NewCountTracker())
	return svc, mockPetition, mockSignature, hub
}

func validSignInput() dto.SignInput {
	return dto.SignInput{
		FirstName:     "Erika",
		LastName:      "Mustermann",
		Email:         "Erika.Mustermann@example.org",
		AgreedToTerms: true,
	}
}

// --------------------- SignPetition ---------------------
func TestSignPetition_ConsentRequired(t *testing.T) {
	svc, _, _, _ := setupSignatureServiceMocks(t)

	input := validSignInput()
	input.AgreedToTerms = false

	_, err := svc.SignPetition(7, input, "")
	assert.ErrorIs(t, err, ErrConsentRequired)
}

func TestSignPetition_NotPublished(t *testing.T) {
	svc, mockPetition, _, _ := setupSignatureServiceMocks(t)

	mockPetition.EXPECT().GetPetitionByID(uint(7)).Return(models.Petition{PID: 7, Status: string(models.PetitionStatusPending)}, nil)

	_, err := svc.SignPetition(7, validSignInput(), "")
	assert.ErrorIs(t, err, ErrPetitionNotPublished)
}

func TestSignPetition_NotFound(t *testing.T) {
	svc, mockPetition, _, _ := setupSignatureServiceMocks(t)

	mockPetition.EXPECT().GetPetitionByID(uint(7)).Return(models.Petition{}, gorm.ErrRecordNotFound)

	_, err := svc.SignPetition(7, validSignInput(), "")
	assert.ErrorIs(t, err, ErrPetitionNotFound)
}

func TestSignPetition_InsertsVerified(t *testing.T) {
	svc, mockPetition, mockSignature, _ := setupSignatureServiceMocks(t)

	mockPetition.EXPECT().GetPetitionByID(uint(7)).Return(models.Petition{PID: 7, Status: string(models.PetitionStatusPublished)}, nil)
	mockSignature.EXPECT().CreateSignature(gomock.Any()).DoAndReturn(func(sig *models.Signature) error {
		assert.Equal(t, uint(7), sig.PetitionID)
		assert.Equal(t, "Erika Mustermann", sig.SignerName)
		assert.Equal(t, "erika.mustermann@example.org", sig.SignerEmail)
		assert.Equal(t, string(models.VerificationVerified), sig.VerificationStatus)
		assert.NotNil(t, sig.VerificationToken)
		assert.NotNil(t, sig.VerifiedAt)
		return nil
	})

	signature, err := svc.SignPetition(7, validSignInput(), "203.0.113.9")
	assert.NoError(t, err)
	assert.NotNil(t, signature.IPAddress)
	assert.Equal(t, "203.0.113.9", *signature.IPAddress)
}

func TestSignPetition_DuplicateEmail(t *testing.T) {
	svc, mockPetition, mockSignature, _ := setupSignatureServiceMocks(t)

	mockPetition.EXPECT().GetPetitionByID(uint(7)).Return(models.Petition{PID: 7, Status: string(models.PetitionStatusPublished)}, nil)
	mockSignature.EXPECT().CreateSignature(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.SignPetition(7, validSignInput(), "")
	assert.ErrorIs(t, err, ErrAlreadySigned)
}

func TestSignPetition_AnnouncesOnFeed(t *testing.T) {
	svc, mockPetition, mockSignature, hub := setupSignatureServiceMocks(t)

	mockPetition.EXPECT().GetPetitionByID(uint(7)).Return(models.Petition{PID: 7, Status: string(models.PetitionStatusPublished)}, nil)
	mockSignature.EXPECT().CreateSignature(gomock.Any()).Return(nil)

	sub := hub.Subscribe(websocket.SignatureKey(7))
	defer hub.Unsubscribe(sub)

	_, err := svc.SignPetition(7, validSignInput(), "")
	assert.NoError(t, err)

	select {
	case data := <-sub.C:
		var event websocket.SignatureEvent
		assert.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, uint(7), event.PetitionID)
		assert.Equal(t, string(models.VerificationVerified), event.VerificationStatus)
	case <-time.After(time.Second):
		t.Fatal("no signature event on the feed")
	}
}

func TestSignPetition_TrackedCountBumpsOncePerSignature(t *testing.T) {
	svc, mockPetition, mockSignature, hub := setupSignatureServiceMocks(t)

	mockPetition.EXPECT().GetPetitionByID(uint(7)).Return(models.Petition{PID: 7, Status: string(models.PetitionStatusPublished)}, nil)
	mockSignature.EXPECT().CreateSignature(gomock.Any()).Return(nil)

	// two viewers of the same petition share one tracked count
	first := hub.Subscribe(websocket.SignatureKey(7))
	second := hub.Subscribe(websocket.SignatureKey(7))
	defer hub.Unsubscribe(first)
	defer hub.Unsubscribe(second)
	svc.Tracker.Set(7, 100)

	_, err := svc.SignPetition(7, validSignInput(), "")
	assert.NoError(t, err)

	for _, sub := range []*websocket.Subscription{first, second} {
		select {
		case <-sub.C:
		case <-time.After(time.Second):
			t.Fatal("no signature event on the feed")
		}
	}

	count, ok := svc.Tracker.Get(7)
	assert.True(t, ok)
	assert.Equal(t, int64(101), count)
}

// --------------------- ListForCreator ---------------------
func TestListForCreator_RestrictedToCreator(t *testing.T) {
	svc, mockPetition, _, _ := setupSignatureServiceMocks(t)

	mockPetition.EXPECT().GetPetitionByID(uint(7)).Return(models.Petition{PID: 7, CreatorID: 2}, nil)

	_, err := svc.ListForCreator(1, 7)
	assert.ErrorIs(t, err, ErrNotAllowed)
}

// --------------------- Progress ---------------------
func TestProgress_CappedAtOne(t *testing.T) {
	ratio, reached := Progress(150, 100)
	assert.Equal(t, 1.0, ratio)
	assert.True(t, reached)

	ratio, reached = Progress(50, 100)
	assert.Equal(t, 0.5, ratio)
	assert.False(t, reached)

	ratio, reached = Progress(10, 0)
	assert.Equal(t, 0.0, ratio)
	assert.False(t, reached)
}
