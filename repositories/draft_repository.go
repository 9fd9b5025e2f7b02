package repositories

import (
	"github.com/meinwort/meinwort-go/db"
	"github.com/meinwort/meinwort-go/models"
)

// DraftRepo is the persistent store for in-progress wizard state. One row per
// user; SaveDraft overwrites it, ClearDraft removes it after submission.
type DraftRepo interface {
	LoadDraft(uid uint) (models.PetitionDraft, error)
	SaveDraft(draft *models.PetitionDraft) error
	ClearDraft(uid uint) error
}

type DBDraftRepo struct{}

func (r *DBDraftRepo) LoadDraft(uid uint) (models.PetitionDraft, error) {
	var draft models.PetitionDraft
	err := db.DB.First(&draft, "u_id = ?", uid).Error
	return draft, err
}

func (r *DBDraftRepo) SaveDraft(draft *models.PetitionDraft) error {
	return db.DB.Save(draft).Error
}

func (r *DBDraftRepo) ClearDraft(uid uint) error {
	return db.DB.Delete(&models.PetitionDraft{}, "u_id = ?", uid).Error
}
