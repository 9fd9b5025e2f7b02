package models

import "time"

// PetitionDraft is the per-user wizard state. Exactly one row per user,
// written on every wizard mutation and removed after a successful submission.
type PetitionDraft struct {
	UID               uint      `gorm:"primaryKey;column:u_id"`
	PetitionType      string    `gorm:"size:20"`
	Location          string    `gorm:"size:100"`
	Title             string    `gorm:"size:200"`
	Description       string    `gorm:"type:text"`
	Goal              int       `gorm:"default:5000"`
	Category          string    `gorm:"size:50"`
	TargetInstitution string    `gorm:"size:200"`
	PhoneNumber       string    `gorm:"size:50"`
	CurrentStep       int       `gorm:"default:1"`
	UpdatedAt         time.Time `gorm:"column:update_at;autoUpdateTime"`
}
