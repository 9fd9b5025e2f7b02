package models

import (
	"time"

	"gorm.io/datatypes"
)

type PetitionStatus string

const (
	PetitionStatusDraft     PetitionStatus = "draft"
	PetitionStatusPending   PetitionStatus = "pending"
	PetitionStatusPublished PetitionStatus = "published"
	PetitionStatusClosed    PetitionStatus = "closed"
	PetitionStatusRejected  PetitionStatus = "rejected"
)

type PetitionType string

const (
	PetitionTypeLocal    PetitionType = "lokal"
	PetitionTypeNational PetitionType = "national"
	PetitionTypeGlobal   PetitionType = "weltweit"
)

type Petition struct {
	PID               uint           `gorm:"primaryKey;column:p_id"`
	Title             string         `gorm:"size:200;not null"`
	Description       string         `gorm:"type:text;not null"`
	Goal              int            `gorm:"not null;default:5000"`
	Category          string         `gorm:"size:50;not null"`
	TargetInstitution *string        `gorm:"size:200"`
	CreatorID         uint           `gorm:"not null;index"`
	Status            string         `gorm:"size:20;default:'pending';not null;index"`
	ImageURL          *string        `gorm:"size:500"`
	Images            datatypes.JSON // ordered list of uploaded image URLs
	PetitionType      string         `gorm:"size:20;not null"`
	Location          *string        `gorm:"size:100;index"`
	PhoneNumber       *string        `gorm:"size:50"`
	CreatedAt         time.Time      `gorm:"column:create_at;autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"column:update_at;autoUpdateTime"`
	PublishedAt       *time.Time
}
