package services

import (
	"errors"
	"time"

	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/middleware"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrEmailTaken          = errors.New("email already registered")
	ErrNotAllowed          = errors.New("not allowed")
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) RegisterUser(input dto.CreateUserInput) error {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		return ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	user := models.User{
		Email:    input.Email,
		Password: string(hashed),
		FullName: input.FullName,
		City:     input.City,
	}

	return s.Repos.User.SaveUser(&user)
}

func (s *UserService) LoginUser(email, password string) (models.User, string, bool, error) {
	user, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return models.User{}, "", false, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", false, errors.New("invalid credentials")
	}

	token, isAdmin, err := middleware.GenerateToken(user.UID, user.Email, 24*time.Hour, s.Repos.User)
	if err != nil {
		return models.User{}, "", false, err
	}

	return user, token, isAdmin, nil
}

func (s *UserService) FindUserByID(id uint) (models.User, error) {
	user, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(id uint, input dto.UpdateUserInput) (models.User, error) {
	user, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return models.User{}, ErrMissingOldPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*input.OldPassword)); err != nil {
			return models.User{}, ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, ErrPasswordHashFailure
		}
		user.Password = string(hashed)
	}

	if input.FullName != nil {
		user.FullName = input.FullName
	}
	if input.City != nil {
		user.City = input.City
	}

	if err := s.Repos.User.SaveUser(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) RemoveUser(id uint) error {
	return s.Repos.User.DeleteUser(id)
}

func (s *UserService) IsAdmin(id uint) (bool, error) {
	return s.Repos.User.HasRole(id, string(models.UserRoleAdmin))
}
