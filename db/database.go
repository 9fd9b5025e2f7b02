package db

import (
	"fmt"
	"log"

	"github.com/meinwort/meinwort-go/config"
	"github.com/meinwort/meinwort-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.User{},
		&models.UserRoleAssignment{},
		&models.Petition{},
		&models.PetitionDraft{},
		&models.Signature{},
		&models.PetitionComment{},
		&models.CommentLike{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupMessage{},
		&models.GroupPetition{},
		&models.SavedPetition{},
		&models.Report{},
		&models.ContactRequest{},
		&models.AuditLog{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
