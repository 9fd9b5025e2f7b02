package repositories

import (
	"errors"

	"github.com/meinwort/meinwort-go/db"
	"github.com/meinwort/meinwort-go/models"
	"gorm.io/gorm"
)

type SavedPetitionRepo interface {
	Save(saved *models.SavedPetition) error
	Unsave(uid, pid uint) error
	IsSaved(uid, pid uint) (bool, error)
	ListSavedPetitionIDs(uid uint) ([]uint, error)
}

type DBSavedPetitionRepo struct{}

func (r *DBSavedPetitionRepo) Save(saved *models.SavedPetition) error {
	return db.DB.Create(saved).Error
}

func (r *DBSavedPetitionRepo) Unsave(uid, pid uint) error {
	return db.DB.Where("u_id = ? AND p_id = ?", uid, pid).Delete(&models.SavedPetition{}).Error
}

func (r *DBSavedPetitionRepo) IsSaved(uid, pid uint) (bool, error) {
	var saved models.SavedPetition
	err := db.DB.First(&saved, "u_id = ? AND p_id = ?", uid, pid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *DBSavedPetitionRepo) ListSavedPetitionIDs(uid uint) ([]uint, error) {
	var ids []uint
	err := db.DB.Model(&models.SavedPetition{}).Where("u_id = ?", uid).
		Order("create_at DESC").Pluck("p_id", &ids).Error
	return ids, err
}
