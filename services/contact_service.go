package services

import (
	"errors"

	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"gorm.io/gorm"
)

var ErrContactRequestNotFound = errors.New("contact request not found")

type ContactService struct {
	Repos *repositories.Repos
}

func NewContactService(repos *repositories.Repos) *ContactService {
	return &ContactService{Repos: repos}
}

func (s *ContactService) SubmitRequest(input dto.ContactInput) (models.ContactRequest, error) {
	request := models.ContactRequest{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := s.Repos.Contact.CreateContactRequest(&request); err != nil {
		return models.ContactRequest{}, err
	}
	return request, nil
}

func (s *ContactService) ListRequests(onlyUnprocessed bool) ([]models.ContactRequest, error) {
	return s.Repos.Contact.ListContactRequests(onlyUnprocessed)
}

func (s *ContactService) MarkProcessed(id uint) (models.ContactRequest, error) {
	request, err := s.Repos.Contact.GetContactRequestByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ContactRequest{}, ErrContactRequestNotFound
		}
		return models.ContactRequest{}, err
	}

	request.Processed = true
	if err := s.Repos.Contact.UpdateContactRequest(&request); err != nil {
		return models.ContactRequest{}, err
	}
	return request, nil
}
