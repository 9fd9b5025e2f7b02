package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"github.com/meinwort/meinwort-go/websocket"
	"gorm.io/gorm"
)

var (
	ErrAlreadySigned   = errors.New("petition already signed with this email")
	ErrConsentRequired = errors.New("consent to the privacy terms is required")
)

type SignatureService struct {
	Repos   *repositories.Repos
	Hub     *websocket.Hub
	Tracker *websocket.CountTracker
}

func NewSignatureService(repos *repositories.Repos, hub *websocket.Hub, tracker *websocket.CountTracker) *SignatureService {
	return &SignatureService{Repos: repos, Hub: hub, Tracker: tracker}
}

// SignPetition records one verified signature. The (petition, email) pair is
// unique; a second attempt surfaces ErrAlreadySigned so callers can tell the
// conflict apart from a generic failure. A verified insert bumps the tracked
// count exactly once, here at publish time, and is then announced on the
// petition's signature feed; feed subscribers only read the tracked value.
func (s *SignatureService) SignPetition(petitionID uint, input dto.SignInput, ip string) (models.Signature, error) {
	if !input.AgreedToTerms {
		return models.Signature{}, ErrConsentRequired
	}

	petition, err := s.Repos.Petition.GetPetitionByID(petitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Signature{}, ErrPetitionNotFound
		}
		return models.Signature{}, err
	}
	if petition.Status != string(models.PetitionStatusPublished) {
		return models.Signature{}, ErrPetitionNotPublished
	}

	now := time.Now()
	token := uuid.NewString()
	signature := models.Signature{
		PetitionID:         petitionID,
		SignerName:         strings.TrimSpace(input.FirstName + " " + input.LastName),
		SignerEmail:        strings.ToLower(strings.TrimSpace(input.Email)),
		Comment:            input.Comment,
		VerificationStatus: string(models.VerificationVerified),
		VerificationToken:  &token,
		VerifiedAt:         &now,
	}
	if ip != "" {
		signature.IPAddress = &ip
	}

	if err := s.Repos.Signature.CreateSignature(&signature); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Signature{}, ErrAlreadySigned
		}
		return models.Signature{}, err
	}

	if s.Hub != nil {
		event := websocket.SignatureEvent{
			PetitionID:         petitionID,
			VerificationStatus: signature.VerificationStatus,
		}
		if s.Tracker != nil {
			s.Tracker.Apply(event)
		}
		s.Hub.Publish(websocket.SignatureKey(petitionID), event)
	}

	return signature, nil
}

// CountVerified returns the server-confirmed verified signature count.
func (s *SignatureService) CountVerified(petitionID uint) (int64, error) {
	return s.Repos.Signature.CountVerified(petitionID)
}

// ListForCreator returns a petition's signatures, restricted to its creator.
func (s *SignatureService) ListForCreator(uid, petitionID uint) ([]models.Signature, error) {
	petition, err := s.Repos.Petition.GetPetitionByID(petitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPetitionNotFound
		}
		return nil, err
	}
	if petition.CreatorID != uid {
		return nil, ErrNotAllowed
	}
	return s.Repos.Signature.ListByPetition(petitionID)
}

// Progress derives the goal ratio for display. The ratio is capped at 1.
func Progress(count int64, goal int) (float64, bool) {
	if goal <= 0 {
		return 0, false
	}
	ratio := float64(count) / float64(goal)
	if ratio > 1 {
		ratio = 1
	}
	return ratio, count >= int64(goal)
}
