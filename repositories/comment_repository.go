package repositories

import (
	"github.com/meinwort/meinwort-go/db"
	"github.com/meinwort/meinwort-go/models"
)

type CommentRepo interface {
	CreateComment(comment *models.PetitionComment) error
	GetCommentByID(id uint) (models.PetitionComment, error)
	ListByPetition(petitionID uint) ([]models.PetitionComment, error)
	DeleteComment(id uint) error
	CreateLike(like *models.CommentLike) error
	CountLikes(commentID uint) (int64, error)
}

type DBCommentRepo struct{}

func (r *DBCommentRepo) CreateComment(comment *models.PetitionComment) error {
	return db.DB.Create(comment).Error
}

func (r *DBCommentRepo) GetCommentByID(id uint) (models.PetitionComment, error) {
	var comment models.PetitionComment
	err := db.DB.First(&comment, id).Error
	return comment, err
}

func (r *DBCommentRepo) ListByPetition(petitionID uint) ([]models.PetitionComment, error) {
	var comments []models.PetitionComment
	err := db.DB.Where("petition_id = ?", petitionID).Order("create_at DESC").Find(&comments).Error
	return comments, err
}

func (r *DBCommentRepo) DeleteComment(id uint) error {
	return db.DB.Delete(&models.PetitionComment{}, id).Error
}

func (r *DBCommentRepo) CreateLike(like *models.CommentLike) error {
	return db.DB.Create(like).Error
}

func (r *DBCommentRepo) CountLikes(commentID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.CommentLike{}).Where("c_id = ?", commentID).Count(&count).Error
	return count, err
}
