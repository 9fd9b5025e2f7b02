package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/middleware"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"github.com/meinwort/meinwort-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos)
	return svc, mockUser
}

func hashedPassword(t *testing.T, plain string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

// --------------------- RegisterUser ---------------------
func TestRegisterUser_HashesPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("anna@example.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(user *models.User) error {
		assert.Equal(t, "anna@example.com", user.Email)
		assert.NotEqual(t, "password123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
		return nil
	})

	err := svc.RegisterUser(dto.CreateUserInput{Email: "anna@example.com", Password: "password123"})
	assert.NoError(t, err)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("anna@example.com").Return(models.User{UID: 1, Email: "anna@example.com"}, nil)

	err := svc.RegisterUser(dto.CreateUserInput{Email: "anna@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

// --------------------- LoginUser ---------------------
func TestLoginUser_ReturnsToken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("anna@example.com").Return(models.User{
		UID:      1,
		Email:    "anna@example.com",
		Password: hashedPassword(t, "password123"),
	}, nil)

	original := middleware.GenerateToken
	middleware.GenerateToken = func(uid uint, email string, ttl time.Duration, users repositories.UserRepo) (string, bool, error) {
		assert.Equal(t, uint(1), uid)
		return "test-token", true, nil
	}
	t.Cleanup(func() { middleware.GenerateToken = original })

	user, token, isAdmin, err := svc.LoginUser("anna@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.UID)
	assert.Equal(t, "test-token", token)
	assert.True(t, isAdmin)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("anna@example.com").Return(models.User{
		UID:      1,
		Email:    "anna@example.com",
		Password: hashedPassword(t, "password123"),
	}, nil)

	_, _, _, err := svc.LoginUser("anna@example.com", "wrong")
	assert.EqualError(t, err, "invalid credentials")
}

// --------------------- UpdateUser ---------------------
func TestUpdateUser_PasswordChangeNeedsOldPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(models.User{UID: 1, Password: hashedPassword(t, "password123")}, nil)

	newPass := "newPass123"
	_, err := svc.UpdateUser(1, dto.UpdateUserInput{Password: &newPass})
	assert.ErrorIs(t, err, ErrMissingOldPassword)
}

func TestUpdateUser_RejectsWrongOldPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(models.User{UID: 1, Password: hashedPassword(t, "password123")}, nil)

	oldPass := "wrong"
	newPass := "newPass123"
	_, err := svc.UpdateUser(1, dto.UpdateUserInput{OldPassword: &oldPass, Password: &newPass})
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestUpdateUser_ChangesProfileFields(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(models.User{UID: 1, Password: hashedPassword(t, "password123")}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	name := "Anna Schmidt"
	city := "Hamburg"
	user, err := svc.UpdateUser(1, dto.UpdateUserInput{FullName: &name, City: &city})
	assert.NoError(t, err)
	assert.Equal(t, &name, user.FullName)
	assert.Equal(t, &city, user.City)
}

// --------------------- IsAdmin ---------------------
func TestIsAdmin_DelegatesToRoleCheck(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().HasRole(uint(1), "admin").Return(true, nil)

	isAdmin, err := svc.IsAdmin(1)
	assert.NoError(t, err)
	assert.True(t, isAdmin)
}
