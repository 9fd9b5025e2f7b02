package repositories

import (
	"errors"

	"github.com/meinwort/meinwort-go/db"
	"github.com/meinwort/meinwort-go/models"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByEmail(email string) (models.User, error)
	GetUserByID(id uint) (models.User, error)
	SaveUser(user *models.User) error
	DeleteUser(id uint) error
	HasRole(uid uint, role string) (bool, error)
	CountUsers() (int64, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) SaveUser(user *models.User) error {
	return db.DB.Save(user).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return db.DB.Delete(&models.User{}, id).Error
}

func (r *DBUserRepo) HasRole(uid uint, role string) (bool, error) {
	var assignment models.UserRoleAssignment
	err := db.DB.First(&assignment, "u_id = ? AND role = ?", uid, role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *DBUserRepo) CountUsers() (int64, error) {
	var count int64
	err := db.DB.Model(&models.User{}).Count(&count).Error
	return count, err
}
