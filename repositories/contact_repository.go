package repositories

import (
	"github.com/meinwort/meinwort-go/db"
	"github.com/meinwort/meinwort-go/models"
)

type ContactRepo interface {
	CreateContactRequest(request *models.ContactRequest) error
	ListContactRequests(onlyUnprocessed bool) ([]models.ContactRequest, error)
	GetContactRequestByID(id uint) (models.ContactRequest, error)
	UpdateContactRequest(request *models.ContactRequest) error
}

type DBContactRepo struct{}

func (r *DBContactRepo) CreateContactRequest(request *models.ContactRequest) error {
	return db.DB.Create(request).Error
}

func (r *DBContactRepo) ListContactRequests(onlyUnprocessed bool) ([]models.ContactRequest, error) {
	var requests []models.ContactRequest
	q := db.DB.Order("create_at DESC")
	if onlyUnprocessed {
		q = q.Where("processed = false")
	}
	err := q.Find(&requests).Error
	return requests, err
}

func (r *DBContactRepo) GetContactRequestByID(id uint) (models.ContactRequest, error) {
	var request models.ContactRequest
	err := db.DB.First(&request, id).Error
	return request, err
}

func (r *DBContactRepo) UpdateContactRequest(request *models.ContactRequest) error {
	return db.DB.Save(request).Error
}
