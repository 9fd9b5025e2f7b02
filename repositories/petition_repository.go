package repositories

import (
	"github.com/meinwort/meinwort-go/db"
	"github.com/meinwort/meinwort-go/models"
)

type PetitionQuery struct {
	Status       string
	Category     string
	PetitionType string
	Location     string
	Search       string
	Limit        int
	Offset       int
}

type PetitionRepo interface {
	CreatePetition(petition *models.Petition) error
	GetPetitionByID(id uint) (models.Petition, error)
	ListPetitions(query PetitionQuery) ([]models.Petition, error)
	ListPetitionsByCreator(uid uint) ([]models.Petition, error)
	ListPetitionsByIDs(ids []uint) ([]models.Petition, error)
	UpdatePetition(petition *models.Petition) error
	DeletePetition(id uint) error
	CountPetitionsByStatus(status string) (int64, error)
}

type DBPetitionRepo struct{}

func (r *DBPetitionRepo) CreatePetition(petition *models.Petition) error {
	return db.DB.Create(petition).Error
}

func (r *DBPetitionRepo) GetPetitionByID(id uint) (models.Petition, error) {
	var petition models.Petition
	err := db.DB.First(&petition, id).Error
	return petition, err
}

func (r *DBPetitionRepo) ListPetitions(query PetitionQuery) ([]models.Petition, error) {
	var petitions []models.Petition
	q := db.DB.Model(&models.Petition{})

	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}
	if query.Category != "" {
		q = q.Where("category = ?", query.Category)
	}
	if query.PetitionType != "" {
		q = q.Where("petition_type = ?", query.PetitionType)
	}
	if query.Location != "" {
		q = q.Where("location = ?", query.Location)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	q = q.Order("create_at DESC")
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}
	if query.Offset > 0 {
		q = q.Offset(query.Offset)
	}

	err := q.Find(&petitions).Error
	return petitions, err
}

func (r *DBPetitionRepo) ListPetitionsByCreator(uid uint) ([]models.Petition, error) {
	var petitions []models.Petition
	err := db.DB.Where("creator_id = ?", uid).Order("create_at DESC").Find(&petitions).Error
	return petitions, err
}

func (r *DBPetitionRepo) ListPetitionsByIDs(ids []uint) ([]models.Petition, error) {
	var petitions []models.Petition
	if len(ids) == 0 {
		return petitions, nil
	}
	err := db.DB.Where("p_id IN ?", ids).Find(&petitions).Error
	return petitions, err
}

func (r *DBPetitionRepo) UpdatePetition(petition *models.Petition) error {
	return db.DB.Save(petition).Error
}

func (r *DBPetitionRepo) DeletePetition(id uint) error {
	return db.DB.Delete(&models.Petition{}, id).Error
}

func (r *DBPetitionRepo) CountPetitionsByStatus(status string) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Petition{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
