package repositories

import (
	"github.com/meinwort/meinwort-go/db"
	"github.com/meinwort/meinwort-go/models"
)

type SignatureRepo interface {
	CreateSignature(signature *models.Signature) error
	CountVerified(petitionID uint) (int64, error)
	ListByPetition(petitionID uint) ([]models.Signature, error)
	CountAllVerified() (int64, error)
}

type DBSignatureRepo struct{}

func (r *DBSignatureRepo) CreateSignature(signature *models.Signature) error {
	return db.DB.Create(signature).Error
}

// CountVerified issues a count-only query; callers deliberately invoke it per
// petition without caching so displayed counts always reflect the database.
func (r *DBSignatureRepo) CountVerified(petitionID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Signature{}).
		Where("petition_id = ? AND verification_status = ?", petitionID, models.VerificationVerified).
		Count(&count).Error
	return count, err
}

func (r *DBSignatureRepo) ListByPetition(petitionID uint) ([]models.Signature, error) {
	var signatures []models.Signature
	err := db.DB.Where("petition_id = ?", petitionID).Order("create_at DESC").Find(&signatures).Error
	return signatures, err
}

func (r *DBSignatureRepo) CountAllVerified() (int64, error) {
	var count int64
	err := db.DB.Model(&models.Signature{}).
		Where("verification_status = ?", models.VerificationVerified).
		Count(&count).Error
	return count, err
}
